package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewError(t *testing.T) {
	err := New(ErrorTypeValidation, "bad input").WithDetail("field", "rows")

	if !strings.Contains(err.Error(), "validation") || !strings.Contains(err.Error(), "bad input") {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if err.Details["field"] != "rows" {
		t.Errorf("detail not recorded: %v", err.Details)
	}
	if len(err.Stack) == 0 {
		t.Error("stack not captured")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(cause, ErrorTypeData, "flushing chunk")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("cause missing from message: %s", err.Error())
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, ErrorTypeInternal, "nothing") != nil {
		t.Error("wrapping nil should return nil")
	}
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeConfig, "bad flag")

	if !IsType(err, ErrorTypeConfig) {
		t.Error("IsType should match the error's type")
	}
	if IsType(err, ErrorTypeData) {
		t.Error("IsType should not match a different type")
	}
	if IsType(stderrors.New("plain"), ErrorTypeConfig) {
		t.Error("IsType should not match plain errors")
	}

	wrapped := Wrap(err, ErrorTypeInternal, "outer")
	if !IsType(wrapped, ErrorTypeInternal) {
		t.Error("IsType should see the outermost type")
	}
}
