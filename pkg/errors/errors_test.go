package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidContent, "section %d has no heading", 3)

	if err.Code != ErrCodeInvalidContent {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidContent)
	}
	if err.Message != "section 3 has no heading" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause should be nil, got %v", err.Cause)
	}

	want := "INVALID_CONTENT: section 3 has no heading"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Wrap(ErrCodeInvalidPath, cause, "write %s", "out.pdf")

	if err.Cause != cause {
		t.Error("Cause should be the wrapped error")
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}

	want := "INVALID_PATH: write out.pdf: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeFileNotFound, "content file missing")

	if !Is(err, ErrCodeFileNotFound) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match a plain error")
	}
	if Is(nil, ErrCodeInternal) {
		t.Error("Is should not match nil")
	}
}

func TestIsWrapped(t *testing.T) {
	inner := New(ErrCodeInvalidContent, "bad section")
	outer := fmt.Errorf("loading content: %w", inner)

	if !Is(outer, ErrCodeInvalidContent) {
		t.Error("Is should find the code through fmt.Errorf wrapping")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInternal, "boom")); got != ErrCodeInternal {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeInternal)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode of plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidContent, "section has no heading")
	if got := UserMessage(err); got != "section has no heading" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage of plain error = %q", got)
	}
}
