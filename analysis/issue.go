package analysis

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Severity classifies an analysis issue.
type Severity int8

const (
	// SeverityWarning marks conditions that do not prevent fulfillment but
	// deserve attention, such as a window expiring soon.
	SeverityWarning Severity = iota
	// SeverityError marks conditions under which fulfillment would revert.
	SeverityError
)

// String returns the canonical name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Issue is one validation finding against one order of the analyzed batch.
type Issue struct {
	OrderIndex uint
	Severity   Severity
	Code       string
	Message    string
}

// Error renders the issue as a single-line diagnostic.
func (i Issue) Error() string {
	return fmt.Sprintf("order %d [%s/%s]: %s", i.OrderIndex, i.Severity, i.Code, i.Message)
}

// Err flattens the error-severity issues of the result into a single error,
// or nil when fulfillment is expected to succeed. Warnings never contribute.
func (r *Result) Err() error {
	var merr *multierror.Error
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			merr = multierror.Append(merr, issue)
		}
	}
	return merr.ErrorOrNil()
}
