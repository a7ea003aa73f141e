package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "validation error",
			err:      NewValidationError("Text", "is required"),
			expected: "Error: text is required\nHint: check the value and try again, or see --help",
		},
		{
			name:     "wrapped gateway error",
			err:      fmt.Errorf("insights: %w", &GatewayError{Op: "suggest", Err: errors.New("quota")}),
			expected: "Error: insights: gateway suggest failed: quota\nHint: run 'myday doctor' to check the API key and connection",
		},
		{
			name:     "gateway error rejecting input",
			err:      &GatewayError{Op: "analyze", Err: NewValidationError("text", "must not be empty")},
			expected: "Error: gateway analyze failed: text must not be empty\nHint: check the value and try again, or see --help",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestHint(t *testing.T) {
	if got := Hint(&PersistenceError{Op: "save", Key: "k", Err: errors.New("x")}); got != "" {
		t.Errorf("Hint(PersistenceError) = %q, want none", got)
	}
	if got := Hint(nil); got != "" {
		t.Errorf("Hint(nil) = %q", got)
	}
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("disk full")

	perr := &PersistenceError{Op: "save", Key: "gemini-journal-entries", Err: cause}
	if !errors.Is(perr, cause) {
		t.Error("PersistenceError should unwrap to its cause")
	}
	if !strings.Contains(perr.Error(), "save") || !strings.Contains(perr.Error(), "disk full") {
		t.Errorf("PersistenceError.Error() = %q", perr.Error())
	}

	gerr := fmt.Errorf("insights: %w", &GatewayError{Op: "analyze", Err: cause})
	if !IsGateway(gerr) {
		t.Error("IsGateway() = false for wrapped GatewayError")
	}
	if IsValidation(gerr) {
		t.Error("IsValidation() = true for GatewayError")
	}

	verr := &GatewayError{Op: "analyze", Err: NewValidationError("text", "must not be empty")}
	if !IsValidation(verr) {
		t.Error("IsValidation() = false for GatewayError wrapping ValidationError")
	}

	if (&ValidationError{Reason: "bad"}).Error() != "bad" {
		t.Error("ValidationError without field should print reason only")
	}
}

// TestFatal tests the Fatal function using exec helper process
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(errors.New("test error"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 1 {
			t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
		}
		if !strings.Contains(stderr.String(), "Error: test error") {
			t.Errorf("Fatal() stderr = %q, want to contain %q", stderr.String(), "Error: test error")
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}

// TestFatal_NilError tests that Fatal does nothing when passed a nil error
func TestFatal_NilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal_NilError")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")

	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}
