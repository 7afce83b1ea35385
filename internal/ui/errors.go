package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	domainErrors "github.com/thomas-vilte/frontend-edit-agent/internal/errors"
	"github.com/thomas-vilte/frontend-edit-agent/internal/i18n"
)

// PrintAppError writes a human-readable report of err to w, including the
// suggestion carried by an AppError.
func PrintAppError(w io.Writer, err error, t *i18n.Translations) {
	if err == nil {
		return
	}

	errorColor := color.New(color.FgRed, color.Bold)

	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) {
		_, _ = errorColor.Fprintf(w, "%s\n", err)
		return
	}

	message := appErr.Message
	if appErr.MessageID != "" {
		message = t.GetMessage(appErr.MessageID, 0, nil)
	}
	_, _ = errorColor.Fprintf(w, "%s: %s\n", appErr.Type, message)

	if appErr.Err != nil {
		_, _ = color.New(color.FgHiBlack).Fprintf(w, "   %s %v\n", t.GetMessage("ui.details", 0, nil), appErr.Err)
	}

	if appErr.Suggestion != "" {
		suggestionColor := color.New(color.FgCyan)
		_, _ = suggestionColor.Fprintf(w, "%s\n", t.GetMessage("ui.try_suggestion", 0, nil))
		for _, line := range strings.Split(appErr.Suggestion, "\n") {
			_, _ = fmt.Fprintf(w, "   %s\n", line)
		}
	}
}
