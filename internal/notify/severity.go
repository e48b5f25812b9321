package notify

import (
	"errors"
	"fmt"

	"github.com/ytget/uikit/internal/textutil"
)

// ErrUnknownSeverity is returned when a severity name is not recognized
var ErrUnknownSeverity = errors.New("unknown severity")

// Severity tags a notification with how good or bad the news is
type Severity int

const (
	// SeveritySuccess reports a completed action
	SeveritySuccess Severity = iota

	// SeverityWarning reports something the user should look at
	SeverityWarning

	// SeverityFailure reports an action that did not work
	SeverityFailure
)

// Severities lists every severity in display order
var Severities = []Severity{SeveritySuccess, SeverityWarning, SeverityFailure}

// String returns the lowercase name of the severity
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityFailure:
		return "failure"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Title returns the capitalized name used as a notification title
func (s Severity) Title() string {
	switch s {
	case SeveritySuccess:
		return "Success"
	case SeverityWarning:
		return "Warning"
	case SeverityFailure:
		return "Failure"
	default:
		return "Notice"
	}
}

// ParseSeverity maps a name to a Severity, ignoring case. "error" is accepted for failure.
func ParseSeverity(name string) (Severity, error) {
	switch {
	case textutil.IEquals(name, "success"):
		return SeveritySuccess, nil
	case textutil.IEquals(name, "warning"):
		return SeverityWarning, nil
	case textutil.IEquals(name, "failure"), textutil.IEquals(name, "error"):
		return SeverityFailure, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
}
