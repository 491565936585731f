package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpError_Message(t *testing.T) {
	err := &OpError{
		Op:     "fastx.decode",
		Kind:   KindTruncatedRecord,
		Record: 3,
		Line:   12,
		Err:    ErrTruncatedRecord,
	}
	msg := err.Error()
	for _, want := range []string{"fastx.decode", "truncated_record", "record=3", "line=12"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestOpError_NoPositionOmitted(t *testing.T) {
	err := &OpError{Op: "sniff.detect", Kind: KindUnsupportedCompression, Err: ErrUnsupportedCompression}
	if strings.Contains(err.Error(), "record=") {
		t.Errorf("message %q should not carry a position", err.Error())
	}
}

func TestOpError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &OpError{Op: "x", Kind: KindIO, Err: inner}
	if !errors.Is(err, inner) {
		t.Fatal("expected errors.Is to reach the wrapped error")
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "x", Kind: KindUnknownFormat, Err: ErrUnknownFormat}
	if !IsKind(err, KindUnknownFormat) {
		t.Fatal("expected IsKind=true")
	}
	if IsKind(err, KindIO) {
		t.Fatal("expected IsKind=false for different kind")
	}
	if IsKind(errors.New("plain"), KindIO) {
		t.Fatal("expected IsKind=false for non-OpError")
	}
}
