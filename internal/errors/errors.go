package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeMissingParameter ErrorType = "MISSING_PARAMETER"
	TypeInvalidRepoURL   ErrorType = "INVALID_REPO_URL"
	TypeInternal         ErrorType = "INTERNAL"
	TypeConfiguration    ErrorType = "CONFIGURATION"
	TypeVCS              ErrorType = "VCS"
)

// AppError represents a domain-level error with a type and an underlying error.
// MessageID points at the translation used when the error reaches a client.
type AppError struct {
	Type       ErrorType
	Message    string
	MessageID  string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if field, ok := e.Context["field"].(string); ok && field != "" {
			msg += fmt.Sprintf(" - %s", field)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same type and message, so
// sentinels keep matching after WithError/WithContext produced a copy.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	c := e.clone()
	c.Err = err
	return c
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{}, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value

	c := e.clone()
	c.Context = ctx
	return c
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	c := e.clone()
	c.Suggestion = suggestion
	return c
}

func (e *AppError) clone() *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		MessageID:  e.MessageID,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

func newLocalized(t ErrorType, messageID, msg string) *AppError {
	e := NewAppError(t, msg, nil)
	e.MessageID = messageID
	return e
}

// Request errors
var (
	ErrMissingParameters = newLocalized(TypeMissingParameter, "error.missing_parameters", "Missing required parameters").
				WithSuggestion("Send a JSON body with both 'request' and 'repoUrl'")

	ErrInvalidRepoURL = newLocalized(TypeInvalidRepoURL, "error.invalid_repo_url", "Invalid GitHub repository URL").
				WithSuggestion("Use a URL like https://github.com/<owner>/<repo>")

	ErrInternal = newLocalized(TypeInternal, "error.internal", "An error occurred while processing your request")
)

// Configuration errors
var (
	ErrConfigInvalid = NewAppError(TypeConfiguration, "configuration is invalid", nil).
				WithSuggestion("Check the values with: frontend-edit-agent config show")

	ErrConfigRead = NewAppError(TypeConfiguration, "failed to read configuration file", nil)

	ErrConfigWrite = NewAppError(TypeConfiguration, "failed to write configuration file", nil)
)

// VCS errors
var (
	ErrRepositoryLookup = NewAppError(TypeVCS, "failed to look up repository", nil).
				WithSuggestion("Check the repository exists and GITHUB_TOKEN has read access")
)

// StatusCode maps an error to the HTTP status a client should receive.
// Anything that is not an AppError is treated as internal.
func StatusCode(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Type {
	case TypeMissingParameter, TypeInvalidRepoURL:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AsInternal wraps an unexpected failure so it is reported as an internal error.
// AppErrors pass through unchanged.
func AsInternal(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal.WithError(err)
}
