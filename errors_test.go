package logq

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLogErrorString(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)

	withPath := LogError{Time: at, Source: "write", Path: "/tmp/a.log", Err: errors.New("disk full")}
	if got := withPath.Error(); !strings.Contains(got, "write error on /tmp/a.log: disk full") {
		t.Errorf("Error() = %q", got)
	}

	noPath := LogError{Time: at, Source: "setup", Err: errors.New("no home dir")}
	if got := noPath.Error(); !strings.Contains(got, "setup error: no home dir") {
		t.Errorf("Error() = %q", got)
	}
}

func TestFallbackHandlerWrites(t *testing.T) {
	var buf bytes.Buffer
	h := fallbackHandler(&buf)
	h(LogError{Time: time.Now(), Source: "flush", Path: "x.log", Err: errors.New("bad fd")})

	out := buf.String()
	if !strings.HasPrefix(out, "logq: ") {
		t.Errorf("fallback output missing prefix: %q", out)
	}
	if !strings.Contains(out, "bad fd") {
		t.Errorf("fallback output missing cause: %q", out)
	}
}

func TestDescribeError(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		info := describeError(nil)
		if info.Message != "" || info.Diagnostic != "" {
			t.Errorf("describeError(nil) = %+v, want empty fields", info)
		}
	})

	t.Run("PlainError", func(t *testing.T) {
		info := describeError(errors.New("plain failure"))
		if info.Message != "plain failure" {
			t.Errorf("Message = %q", info.Message)
		}
		// A stack is captured at describe time for stackless errors.
		if !strings.Contains(info.Diagnostic, "errors_test.go") {
			t.Errorf("Diagnostic lacks a stack: %q", info.Diagnostic)
		}
	})

	t.Run("WrappedError", func(t *testing.T) {
		err := WrapError(errors.New("root cause"), "loading config")
		info := describeError(err)
		if info.Message != "loading config: root cause" {
			t.Errorf("Message = %q", info.Message)
		}
		if !strings.Contains(info.Diagnostic, "root cause") {
			t.Errorf("Diagnostic lacks the cause: %q", info.Diagnostic)
		}
		// The stack must point at the wrap site, not at describeError.
		if !strings.Contains(info.Diagnostic, "TestDescribeError") {
			t.Errorf("Diagnostic lacks the wrap site: %q", info.Diagnostic)
		}
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		info := describeError(errors.New(""))
		if info.Message != "" {
			t.Errorf("Message = %q, want empty", info.Message)
		}
	})
}
