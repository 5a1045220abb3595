// Package errs defines the failure values handlers produce and the mapping
// from those values to an HTTP status and a client-facing message.
package errs

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
)

// ValidationMessage is the fixed client message for payload shape failures.
const ValidationMessage = "validation errors"

// Condition is a failure detected by a handler, prior to HTTP serialization.
// The set of implementations is closed: Internal, Coded and Validation.
type Condition interface {
	condition()
}

// Internal is an unexpected failure. It always maps to 500.
type Internal struct {
	Detail string
	stack  []byte
}

// Coded is a failure carrying the status the caller intends to send.
type Coded struct {
	Status int
	Detail string
	stack  []byte
}

// Validation means the request payload did not have the expected shape.
type Validation struct{}

func (Internal) condition() {}
func (Coded) condition() {}
func (Validation) condition() {}

// ServerErr wraps any cause as an Internal condition.
func ServerErr(v any) Internal {
	return Internal{Detail: Debug(v), stack: debug.Stack()}
}

// MakeErr wraps any cause with an explicit status. Codes outside [100,599]
// become 500.
func MakeErr(code int, v any) Coded {
	if !ValidStatus(code) {
		code = http.StatusInternalServerError
	}
	return Coded{Status: code, Detail: Debug(v), stack: debug.Stack()}
}

// ValidStatus reports whether code is usable as an HTTP status.
func ValidStatus(code int) bool { return code >= 100 && code <= 599 }

// Normalize maps a condition to the status and message sent to the client.
func Normalize(c Condition) (int, string) {
	switch c := c.(type) {
	case Internal:
		return http.StatusInternalServerError, c.Detail
	case Coded:
		if !ValidStatus(c.Status) {
			return http.StatusInternalServerError, c.Detail
		}
		return c.Status, c.Detail
	case Validation:
		return http.StatusUnprocessableEntity, ValidationMessage
	default:
		// unreachable while the variant set stays closed
		return http.StatusInternalServerError, fmt.Sprintf("%T", c)
	}
}

// Trace returns the stack captured when the condition was built.
// Validation conditions carry no trace.
func Trace(c Condition) (string, bool) {
	switch c := c.(type) {
	case Internal:
		return string(c.stack), true
	case Coded:
		return string(c.stack), true
	default:
		return "", false
	}
}

// Debug renders a cause for diagnostics. Errors print their message followed
// by the chain of wrapped causes; strings are quoted.
func Debug(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case error:
		return debugError(v)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%+v", v)
	}
}

func debugError(err error) string {
	var b strings.Builder
	b.WriteString(err.Error())
	causes := chain(err)
	switch len(causes) {
	case 0:
	case 1:
		b.WriteString("\n\nCaused by:\n    ")
		b.WriteString(causes[0])
	default:
		b.WriteString("\n\nCaused by:")
		for i, c := range causes {
			b.WriteString("\n    ")
			b.WriteString(strconv.Itoa(i))
			b.WriteString(": ")
			b.WriteString(c)
		}
	}
	return b.String()
}

// chain collects the messages of wrapped causes, skipping ones whose text
// is already contained in the message above them (fmt %w wrapping repeats it).
func chain(err error) []string {
	var out []string
	prev := err.Error()
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		msg := cause.Error()
		if !strings.HasSuffix(prev, msg) {
			out = append(out, msg)
		}
		prev = msg
	}
	return out
}
