package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeDuplicateNode, "node %q already exists", "A")

	want := `INVARIANT_DUPLICATE_NODE: node "A" already exists`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrCodeDuplicateNode) {
		t.Error("Is should match the code")
	}
	if Is(err, ErrCodeCycle) {
		t.Error("Is should not match a different code")
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeIO, cause, "write %s", "out.graph.json")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
	if GetCode(err) != ErrCodeIO {
		t.Errorf("GetCode = %q, want %q", GetCode(err), ErrCodeIO)
	}
}

func TestIsUnwrapsChain(t *testing.T) {
	inner := New(ErrCodeCycle, "cycle detected")
	outer := fmt.Errorf("closure failed: %w", inner)

	if !Is(outer, ErrCodeCycle) {
		t.Error("Is should look through fmt.Errorf wrapping")
	}
}

func TestGetCodePlainError(t *testing.T) {
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeMalformedInput, "node %q is not an object", "A")
	if got := UserMessage(err); got != `node "A" is not an object` {
		t.Errorf("UserMessage = %q", got)
	}
	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
