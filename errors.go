/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package guard

import (
	"fmt"

	"dirpx.dev/guard/check"
	"dirpx.dev/guard/code"
	"dirpx.dev/guard/mapper"
)

// Error is the typed error raised by failing guard checks.
//
// It carries:
//   - Code: the normalized classification (required) that transport
//     adapters map to a status — bad_request, not_found or internal;
//   - Check: optional ident of the exact failing check;
//   - Name: the guarded parameter or entity name;
//   - Message: human-oriented description of what went wrong;
//   - Details: arbitrary key/value payload for logs or structured bodies;
//   - Cause: wrapped underlying error for debugging and unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be shared across goroutines and modified in a functional style. An
// Error never changes after construction.
type Error struct {
	// Code is the primary classification of the error. Must be a
	// normalized code from guard/code.
	Code code.Code

	// Check identifies the failing guard check, e.g. "argument.null".
	// May be empty for errors constructed outside the facade.
	Check check.Ident

	// Name is the parameter or entity name the check was guarding.
	Name string

	// Message is the human-readable explanation. This is what ends up in
	// logs and in the body of an HTTP error response.
	Message string

	// Details is an optional, shallow map of extra fields. The map is
	// treated as immutable: WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error, if any. Used for
	// errors.Is / errors.As and debugging in lower layers.
	Cause error
}

// E is the general constructor for Error.
//
// Usage:
//
//	return guard.E(code.NotFound, "order does not exist",
//	    guard.WithNameOption("orderID"),
//	    guard.WithDetailOption("order_id", id),
//	)
//
// It always returns a new Error and applies all options in order.
func E(c code.Code, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// BadRequest constructs an Error classified as caller fault (HTTP 400).
func BadRequest(msg string, opts ...Option) *Error {
	return E(code.BadRequest, msg, opts...)
}

// NotFound constructs an Error for a missing looked-up entity (HTTP 404).
func NotFound(msg string, opts ...Option) *Error {
	return E(code.NotFound, msg, opts...)
}

// Internal constructs an Error for a broken internal invariant (HTTP 500).
func Internal(msg string, opts ...Option) *Error {
	return E(code.Internal, msg, opts...)
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code>: <message>
//
// or, when a check ident is recorded:
//
//	<code>:<check>: <message>
//
// making the error both human- and machine-scannable in logs.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Check != "" {
		return fmt.Sprintf("%s:%s: %s", e.Code, e.Check, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() string { return string(e.Code) }

// FailedCheck implements apis.CheckedError.
func (e *Error) FailedCheck() string { return string(e.Check) }

// GuardedName implements apis.NamedError.
func (e *Error) GuardedName() string { return e.Name }

// HTTPStatus resolves the error's HTTP status through the default mapper:
// 400 for bad_request, 404 for not_found, 500 for internal and anything
// unrecognized. Transport boundaries that need custom rules should build
// their own mapper instead of relying on this shortcut.
func (e *Error) HTTPStatus() int {
	return mapper.Default().HTTPStatus(e.Code, e.Check)
}

// WithCheck returns a shallow copy of e with the given check ident set.
func (e *Error) WithCheck(id check.Ident) *Error {
	cp := *e
	cp.Check = id
	return &cp
}

// WithName returns a shallow copy of e with the guarded name set.
func (e *Error) WithName(name string) *Error {
	cp := *e
	cp.Name = name
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful to keep the classification but present the message in a different
// language or context.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in
// Details. The map is always copied to preserve immutability; nothing is
// shared between the original and the copy.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with all provided kv merged into
// Details, kv taking precedence on key conflicts. Both maps are copied.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the underlying cause
// attached. If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
