package services

import (
	"strings"

	"github.com/thomas-vilte/frontend-edit-agent/internal/models"
)

var (
	// Checked in order, the first keyword found is the target element.
	elementKeywords = []string{"header", "button", "body"}

	// Checked in order, the first color found is the value.
	colorKeywords = []string{"red", "blue", "green", "black", "white", "yellow", "purple"}
)

// classificationRule pairs a predicate over the lower-cased request with the
// action that fills the analysis when it matches.
type classificationRule struct {
	requestType models.RequestType
	matches     func(text string) bool
	apply       func(text string, analysis *models.Analysis)
}

// RequestClassifier maps free text to an Analysis. Rules are evaluated in
// order and only the first matching rule applies.
type RequestClassifier struct {
	rules []classificationRule
}

func NewRequestClassifier() *RequestClassifier {
	return &RequestClassifier{
		rules: []classificationRule{
			{
				requestType: models.RequestTypeStyle,
				matches:     containsAny("background", "color"),
				apply:       applyStyleChange,
			},
			{
				requestType: models.RequestTypeFont,
				matches:     containsAny("font", "size"),
				apply:       applyFontChange,
			},
		},
	}
}

func (c *RequestClassifier) Classify(request string) models.Analysis {
	text := strings.ToLower(request)
	analysis := models.NewAnalysis()

	for _, rule := range c.rules {
		if rule.matches(text) {
			analysis.RequestType = rule.requestType
			rule.apply(text, &analysis)
			break
		}
	}

	return analysis
}

func applyStyleChange(text string, analysis *models.Analysis) {
	if element, ok := firstContained(text, elementKeywords); ok {
		analysis.TargetElements = append(analysis.TargetElements, element)
	}

	switch {
	case strings.Contains(text, "background"):
		analysis.Properties = append(analysis.Properties, PropertyBackgroundColor)
	case strings.Contains(text, "color"):
		analysis.Properties = append(analysis.Properties, PropertyColor)
	}

	if color, ok := firstContained(text, colorKeywords); ok {
		analysis.Values = append(analysis.Values, color)
	}
}

func applyFontChange(text string, analysis *models.Analysis) {
	analysis.Properties = append(analysis.Properties, PropertyFontSize)

	switch {
	case strings.Contains(text, "increase"):
		analysis.Values = append(analysis.Values, "larger")
	case strings.Contains(text, "decrease"):
		analysis.Values = append(analysis.Values, "smaller")
	}
}

func containsAny(keywords ...string) func(string) bool {
	return func(text string) bool {
		for _, k := range keywords {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}
}

func firstContained(text string, keywords []string) (string, bool) {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return k, true
		}
	}
	return "", false
}
