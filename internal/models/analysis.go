package models

type RequestType string

const (
	RequestTypeUnknown RequestType = "unknown"
	RequestTypeStyle   RequestType = "style change"
	RequestTypeFont    RequestType = "font change"
)

type (
	// Analysis is the structured classification of a free-text UI change request.
	// The lists are never nil so they always serialize as JSON arrays.
	Analysis struct {
		RequestType    RequestType `json:"requestType"`
		TargetElements []string    `json:"targetElements"`
		Properties     []string    `json:"properties"`
		Values         []string    `json:"values"`
	}

	// CodeChange is a synthesized before/after snippet pair, not a real diff.
	CodeChange struct {
		Original string `json:"original"`
		Modified string `json:"modified"`
	}

	// PRDetails describes the fabricated pull request. BaseBranch is only set
	// when a repository lookup is configured and succeeds.
	PRDetails struct {
		URL        string `json:"url"`
		Title      string `json:"title"`
		BranchName string `json:"branchName"`
		BaseBranch string `json:"baseBranch,omitempty"`
	}
)

// NewAnalysis returns an unknown analysis with empty lists.
func NewAnalysis() Analysis {
	return Analysis{
		RequestType:    RequestTypeUnknown,
		TargetElements: []string{},
		Properties:     []string{},
		Values:         []string{},
	}
}

func (a Analysis) FirstElement() (string, bool) {
	return first(a.TargetElements)
}

func (a Analysis) FirstProperty() (string, bool) {
	return first(a.Properties)
}

func (a Analysis) FirstValue() (string, bool) {
	return first(a.Values)
}

// HasProperty reports whether prop was recorded.
func (a Analysis) HasProperty(prop string) bool {
	for _, p := range a.Properties {
		if p == prop {
			return true
		}
	}
	return false
}

func first(s []string) (string, bool) {
	if len(s) == 0 {
		return "", false
	}
	return s[0], true
}
