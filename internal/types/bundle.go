package types

// Bundle is the generated interview prep pack for one stage. It is derived and read-only.
type Bundle struct {
	Stage         Stage    `json:"stage"`
	Questions     []string `json:"questions"`
	StarFramework []string `json:"starFramework"`
	Tips          []string `json:"tips"`
	CoverKeywords []string `json:"coverKeywords"`
}

// FAQ is a single question/answer pair shown in an accordion.
type FAQ struct {
	Q string `json:"q" yaml:"q"`
	A string `json:"a" yaml:"a"`
}

// Segment is a piece of highlighted text.
type Segment struct {
	Content string `json:"content"`
	IsMatch bool   `json:"isMatch"`
}
