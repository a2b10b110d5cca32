// Package rendering renders the input view, the results view, and their plain-text exports.
package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/jonathan/interview-prep/internal/highlight"
	"github.com/jonathan/interview-prep/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageMeta is the per-page SEO metadata.
type PageMeta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
}

// FormValues are the input view's field values, used to pre-fill the form.
type FormValues struct {
	JobTitle       string
	CompanyWebsite string
	JDText         string
	ResumeText     string
	Stage          types.Stage
}

// StageOption is one radio button on the input view.
type StageOption struct {
	Value    types.Stage
	Selected bool
}

// HomePage is the data for the input view.
type HomePage struct {
	Meta   PageMeta
	Form   FormValues
	Stages []StageOption
	Errors []string
	FAQs   []types.FAQ
}

// Line is one highlighted list item.
type Line struct {
	Number   string
	Segments []types.Segment
}

// CopyText holds the clipboard payload for each copy button.
type CopyText struct {
	All       string
	Questions string
	Framework string
	Tips      string
}

// ResultsPage is the data for the results view.
type ResultsPage struct {
	Meta       PageMeta
	Stage      types.Stage
	StageLabel string
	JobTitle   string
	Questions  []Line
	Framework  []Line
	Tips       []Line
	Keywords   []string
	FAQs       []types.FAQ
	Copy       CopyText
}

type emptyPage struct {
	Meta PageMeta
}

// Renderer executes the embedded view templates.
type Renderer struct {
	baseURL string
	home    *template.Template
	results *template.Template
	empty   *template.Template
}

// NewRenderer parses the embedded templates. baseURL prefixes canonical links.
func NewRenderer(baseURL string) (*Renderer, error) {
	r := &Renderer{baseURL: strings.TrimRight(baseURL, "/")}
	var err error
	if r.home, err = parsePage("home.html"); err != nil {
		return nil, err
	}
	if r.results, err = parsePage("results.html"); err != nil {
		return nil, err
	}
	if r.empty, err = parsePage("empty.html"); err != nil {
		return nil, err
	}
	return r, nil
}

func parsePage(name string) (*template.Template, error) {
	tmpl, err := template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
	if err != nil {
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to parse template %s", name),
			Cause:   err,
		}
	}
	return tmpl, nil
}

func (r *Renderer) execute(w io.Writer, tmpl *template.Template, data any) error {
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return &TemplateError{
			Message: fmt.Sprintf("failed to execute template %s", tmpl.Name()),
			Cause:   err,
		}
	}
	return nil
}

// Home renders the input view. An unset stage selects HR.
func (r *Renderer) Home(w io.Writer, form FormValues, errors []string, faqs []types.FAQ) error {
	if !form.Stage.Valid() {
		form.Stage = types.StageHR
	}
	options := make([]StageOption, 0, len(types.Stages()))
	for _, s := range types.Stages() {
		options = append(options, StageOption{Value: s, Selected: s == form.Stage})
	}

	return r.execute(w, r.home, HomePage{
		Meta: PageMeta{
			Title:       "Marketing Interview Answer Generator",
			Description: "Paste a company website, job description, and your resume to generate tailored interview questions, STAR answer frameworks, and tips for HR, Hiring Manager, and Leadership stages.",
			Canonical:   r.baseURL + "/",
		},
		Form:   form,
		Stages: options,
		Errors: errors,
		FAQs:   faqs,
	})
}

// Results renders the results view for a submission and its generated bundle.
func (r *Renderer) Results(w io.Writer, sub *types.Submission, bundle *types.Bundle, faqs []types.FAQ) error {
	if sub == nil || bundle == nil {
		return &RenderError{Message: "results view needs a submission and a bundle"}
	}
	page := BuildResultsPage(sub, bundle, faqs)
	page.Meta = r.resultsMeta()
	return r.execute(w, r.results, page)
}

// Empty renders the "No input found" state of the results view.
func (r *Renderer) Empty(w io.Writer) error {
	return r.execute(w, r.empty, emptyPage{Meta: r.resultsMeta()})
}

// Results depend on per-session data, so they are kept out of search indexes.
func (r *Renderer) resultsMeta() PageMeta {
	return PageMeta{
		Title:       "Generated Interview Prep",
		Description: "Your stage-specific interview questions, STAR answer framework, and key tips based on your pasted inputs.",
		Canonical:   r.baseURL + "/results",
		Robots:      "noindex, follow",
	}
}

// BuildResultsPage highlights every generated line with the bundle's cover keywords.
func BuildResultsPage(sub *types.Submission, bundle *types.Bundle, faqs []types.FAQ) ResultsPage {
	matcher := highlight.NewMatcher(bundle.CoverKeywords)

	lines := func(texts []string, numbered bool) []Line {
		out := make([]Line, 0, len(texts))
		for i, text := range texts {
			l := Line{Segments: matcher.Highlight(text)}
			if numbered {
				l.Number = fmt.Sprintf("%02d", i+1)
			}
			out = append(out, l)
		}
		return out
	}

	return ResultsPage{
		Stage:      bundle.Stage,
		StageLabel: strings.ToUpper(string(bundle.Stage)),
		JobTitle:   sub.DisplayJobTitle(),
		Questions:  lines(bundle.Questions, true),
		Framework:  lines(bundle.StarFramework, false),
		Tips:       lines(bundle.Tips, false),
		Keywords:   bundle.CoverKeywords,
		FAQs:       faqs,
		Copy: CopyText{
			All:       CopyAll(bundle),
			Questions: JoinLines(bundle.Questions),
			Framework: JoinLines(bundle.StarFramework),
			Tips:      JoinLines(bundle.Tips),
		},
	}
}
