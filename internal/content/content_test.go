package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-prep/internal/types"
)

func TestLookup_AllStagesComplete(t *testing.T) {
	for _, stage := range types.Stages() {
		t.Run(stage.String(), func(t *testing.T) {
			e, err := Lookup(stage)
			require.NoError(t, err)
			assert.NotEmpty(t, e.Questions)
			assert.NotEmpty(t, e.Framework)
			assert.NotEmpty(t, e.Tips)
			assert.NotEmpty(t, e.Keywords)
		})
	}
}

func TestLookup_UnknownStage(t *testing.T) {
	_, err := Lookup(types.Stage("Board"))
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, types.Stage("Board"), cfgErr.Stage)
}

func TestLookup_Idempotent(t *testing.T) {
	a, err := Lookup(types.StageLeadership)
	require.NoError(t, err)
	b, err := Lookup(types.StageLeadership)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLookup_ReturnsCopies(t *testing.T) {
	a, err := Lookup(types.StageHiringManager)
	require.NoError(t, err)
	original := a.Questions[0]
	a.Questions[0] = "mutated"
	a.Keywords[0] = "mutated"

	b, err := Lookup(types.StageHiringManager)
	require.NoError(t, err)
	assert.Equal(t, original, b.Questions[0])
	assert.NotEqual(t, "mutated", b.Keywords[0])
}

func TestLookup_SharedFramework(t *testing.T) {
	hr, err := Lookup(types.StageHR)
	require.NoError(t, err)
	lead, err := Lookup(types.StageLeadership)
	require.NoError(t, err)

	assert.Equal(t, hr.Framework, lead.Framework)
	require.Len(t, hr.Framework, 4)
	assert.True(t, strings.HasPrefix(hr.Framework[0], "Situation:"))
	assert.True(t, strings.HasPrefix(hr.Framework[3], "Result:"))
}

func TestGenerate_RoleFallback(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		b, err := Generate(types.StageHR, title)
		require.NoError(t, err)
		assert.Contains(t, b.Questions[0], "this role")
		assert.NotContains(t, b.Questions[0], RolePlaceholder)
	}
}

func TestGenerate_RoleSubstitution(t *testing.T) {
	b, err := Generate(types.StageHR, "  Growth Marketing Manager ")
	require.NoError(t, err)
	assert.Equal(t,
		"Walk me through your background and why you're interested in Growth Marketing Manager.",
		b.Questions[0])
	assert.NotContains(t, b.Questions[0], "this role")
}

func TestGenerate_JobTitleOnlyAffectsHR(t *testing.T) {
	for _, stage := range []types.Stage{types.StageHiringManager, types.StageLeadership} {
		e, err := Lookup(stage)
		require.NoError(t, err)

		b, err := Generate(stage, "SEO Lead")
		require.NoError(t, err)
		assert.Equal(t, e.Questions, b.Questions)
		assert.Equal(t, stage, b.Stage)
	}

	hr, err := Lookup(types.StageHR)
	require.NoError(t, err)
	b, err := Generate(types.StageHR, "SEO Lead")
	require.NoError(t, err)
	assert.Equal(t, hr.Questions[1:], b.Questions[1:])
}

func TestGenerate_DoesNotMutateTable(t *testing.T) {
	_, err := Generate(types.StageHR, "Brand Lead")
	require.NoError(t, err)

	e, err := Lookup(types.StageHR)
	require.NoError(t, err)
	assert.Contains(t, e.Questions[0], RolePlaceholder)
}

func TestFAQs(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)

	faqs, err := tbl.FAQs(types.StageLeadership)
	require.NoError(t, err)
	require.Len(t, faqs, 7)
	assert.Equal(t, "What does leadership evaluate in this stage?", faqs[0].Q)
	assert.Equal(t, "How should I use these questions to practice?", faqs[2].Q)

	_, err = tbl.FAQs(types.Stage("nope"))
	assert.Error(t, err)

	assert.Len(t, tbl.HomeFAQs(), 3)
}

const validDoc = `
version: 1
star_framework: ["Situation: s"]
stages:
  - stage: HR
    questions: ["q {role}"]
    tips: ["t"]
    keywords: ["k"]
  - stage: Hiring Manager
    questions: ["q"]
    tips: ["t"]
    keywords: ["k"]
  - stage: Leadership
    questions: ["q"]
    tips: ["t"]
    keywords: ["k"]
`

func TestParse_Valid(t *testing.T) {
	tbl, err := Parse([]byte(validDoc))
	require.NoError(t, err)

	b, err := tbl.Generate(types.StageHR, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"q this role"}, b.Questions)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{
			name: "not yaml",
			doc:  "stages: [",
			msg:  "failed to parse",
		},
		{
			name: "wrong version",
			doc:  strings.Replace(validDoc, "version: 1", "version: 2", 1),
			msg:  "unsupported content version",
		},
		{
			name: "missing stage",
			doc: `
version: 1
star_framework: ["s"]
stages:
  - stage: HR
    questions: ["q"]
    tips: ["t"]
    keywords: ["k"]
`,
			msg: "stage has no content entry",
		},
		{
			name: "unknown stage",
			doc:  validDoc + "  - stage: Board\n    questions: [q]\n    tips: [t]\n    keywords: [k]\n",
			msg:  "unknown stage",
		},
		{
			name: "duplicate stage",
			doc:  validDoc + "  - stage: HR\n    questions: [q]\n    tips: [t]\n    keywords: [k]\n",
			msg:  "more than once",
		},
		{
			name: "empty tips",
			doc:  strings.Replace(validDoc, `tips: ["t"]`, `tips: []`, 1),
			msg:  "tips list is empty",
		},
		{
			name: "blank keyword",
			doc:  strings.Replace(validDoc, `keywords: ["k"]`, `keywords: ["  "]`, 1),
			msg:  "keywords[0] is blank",
		},
		{
			name: "empty framework",
			doc:  strings.Replace(validDoc, `star_framework: ["Situation: s"]`, `star_framework: []`, 1),
			msg:  "star_framework list is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestRoleName(t *testing.T) {
	assert.Equal(t, "this role", RoleName(""))
	assert.Equal(t, "this role", RoleName("  "))
	assert.Equal(t, "SEO Lead", RoleName(" SEO Lead "))
}
