package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestNormalize_Internal(t *testing.T) {
	status, msg := Normalize(ServerErr(errors.New("boom")))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if msg != "boom" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestNormalize_CodedKeepsValidStatus(t *testing.T) {
	for code := 100; code <= 599; code++ {
		status, _ := Normalize(MakeErr(code, "x"))
		if status != code {
			t.Fatalf("code %d: got status %d", code, status)
		}
	}
}

func TestNormalize_CodedInvalidStatusFallsBackTo500(t *testing.T) {
	for _, code := range []int{-1, 0, 1, 99, 600, 999, 1000, 65535} {
		if status, _ := Normalize(MakeErr(code, "x")); status != http.StatusInternalServerError {
			t.Fatalf("MakeErr(%d): expected 500, got %d", code, status)
		}
		// built by hand, bypassing MakeErr
		if status, _ := Normalize(Coded{Status: code, Detail: "x"}); status != http.StatusInternalServerError {
			t.Fatalf("Coded{%d}: expected 500, got %d", code, status)
		}
	}
}

func TestNormalize_Validation(t *testing.T) {
	status, msg := Normalize(Validation{})
	if status != http.StatusUnprocessableEntity || msg != "validation errors" {
		t.Fatalf("unexpected: %d %q", status, msg)
	}
}

func TestTrace_OnlyForInternalAndCoded(t *testing.T) {
	if s, ok := Trace(ServerErr("x")); !ok || s == "" {
		t.Fatalf("expected trace for internal")
	}
	if s, ok := Trace(MakeErr(404, "x")); !ok || !strings.Contains(s, "goroutine") {
		t.Fatalf("expected stack for coded, got %q", s)
	}
	if _, ok := Trace(Validation{}); ok {
		t.Fatalf("validation must not carry a trace")
	}
}

type causeErr struct {
	msg   string
	cause error
}

func (e causeErr) Error() string { return e.msg }
func (e causeErr) Unwrap() error { return e.cause }

func TestDebug(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "nil"},
		{"string is quoted", `say "hi"`, `"say \"hi\""`},
		{"plain error", errors.New("boom"), "boom"},
		{"wrapped text not repeated", fmt.Errorf("open x: %w", errors.New("denied")), "open x: denied"},
		{"single cause", causeErr{"lookup failed", errors.New("disk gone")}, "lookup failed\n\nCaused by:\n    disk gone"},
		{"numbered causes", causeErr{"lookup failed", causeErr{"read index", errors.New("disk gone")}}, "lookup failed\n\nCaused by:\n    0: read index\n    1: disk gone"},
		{"other values", struct{ A int }{A: 1}, "{A:1}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Debug(tc.in); got != tc.want {
				t.Fatalf("Debug() = %q, want %q", got, tc.want)
			}
		})
	}
}
