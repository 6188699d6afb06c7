package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/jsamuelsen11/todo-lifecycle/internal/domain"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitValidation  = 2
	ExitNotFound    = 3
	ExitUnavailable = 4
)

// flagError marks a command-line usage problem (bad flag or argument count).
type flagError struct {
	err error
}

func (e *flagError) Error() string { return e.err.Error() }
func (e *flagError) Unwrap() error { return e.err }

// ExitCode maps an error to the process exit code. Usage errors share the
// validation code.
func ExitCode(err error) int {
	var flagErr *flagError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &flagErr), errors.Is(err, domain.ErrValidation):
		return ExitValidation
	case errors.Is(err, domain.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, domain.ErrUnavailable):
		return ExitUnavailable
	default:
		return ExitFailure
	}
}

// FieldError is one validation failure as shown to the user.
type FieldError struct {
	Field   string
	Message string
}

// WriteError prints err to w. Validation failures are expanded to one
// sorted line per field.
func WriteError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "error: %v\n", err)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for _, fe := range fieldErrors(verr.Fields) {
		_, _ = fmt.Fprintf(w, "  %s: %s\n", fe.Field, fe.Message)
	}
}

// fieldErrors converts validation fields to entries sorted by field name.
func fieldErrors(fields map[string]string) []FieldError {
	out := make([]FieldError, 0, len(fields))
	for field, msg := range fields {
		out = append(out, FieldError{Field: field, Message: msg})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Field < out[j].Field
	})
	return out
}
