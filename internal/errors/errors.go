package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/myday/internal/logger"
)

// Format renders err for the terminal with an "Error: " prefix. Kinds the
// user can act on get a hint on a second line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if hint := Hint(err); hint != "" {
		msg += "\nHint: " + hint
	}
	return msg
}

// Hint suggests a next step for err, or returns "". Rejected input wins over a
// failed AI call because the call never left the machine.
func Hint(err error) string {
	switch {
	case IsValidation(err):
		return "check the value and try again, or see --help"
	case IsGateway(err):
		return "run 'myday doctor' to check the API key and connection"
	default:
		return ""
	}
}

// Fatal logs err and exits with status 1. A nil err is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}
