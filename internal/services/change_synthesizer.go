package services

import (
	"fmt"

	"github.com/thomas-vilte/frontend-edit-agent/internal/models"
)

const (
	PropertyBackgroundColor = "background-color"
	PropertyColor           = "color"
	PropertyFontSize        = "font-size"
)

// cssTemplate holds the known stylesheet rule for an element and how to
// rewrite it for each supported property.
type cssTemplate struct {
	original   string
	background func(value string) string
	color      func(value string) string
}

var cssTemplates = map[string]cssTemplate{
	"header": {
		original: "header { color: black; }",
		background: func(v string) string {
			return fmt.Sprintf("header { color: black; background-color: %s; }", v)
		},
		color: func(v string) string {
			return fmt.Sprintf("header { color: %s; }", v)
		},
	},
	"button": {
		original: "button { background-color: blue; color: white; }",
		background: func(v string) string {
			return fmt.Sprintf("button { background-color: %s; color: white; }", v)
		},
		color: func(v string) string {
			return fmt.Sprintf("button { background-color: blue; color: %s; }", v)
		},
	},
}

// ChangeSynthesizer produces a before/after CSS snippet from an analysis. It
// never reads repository content.
type ChangeSynthesizer struct {
	templates map[string]cssTemplate
}

func NewChangeSynthesizer() *ChangeSynthesizer {
	return &ChangeSynthesizer{templates: cssTemplates}
}

// Synthesize returns empty strings for elements without a template.
func (s *ChangeSynthesizer) Synthesize(analysis models.Analysis) models.CodeChange {
	element, ok := analysis.FirstElement()
	if !ok {
		return models.CodeChange{}
	}

	tmpl, ok := s.templates[element]
	if !ok {
		return models.CodeChange{}
	}

	change := models.CodeChange{Original: tmpl.original}

	value, hasValue := analysis.FirstValue()
	if !hasValue {
		return change
	}

	switch {
	case analysis.HasProperty(PropertyBackgroundColor):
		change.Modified = tmpl.background(value)
	case analysis.HasProperty(PropertyColor):
		change.Modified = tmpl.color(value)
	}

	return change
}
