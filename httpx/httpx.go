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

// Package httpx translates guard errors into HTTP responses.
//
// The Translate middleware is the single boundary where raised guard
// errors become observable HTTP behavior: wrap the outermost handler with
// it so no earlier layer's errors escape unmapped. Classified errors map
// to their status with the body
//
//	Validation failed: {message}
//
// and everything else becomes a 500 with
//
//	An unexpected error occurred: {message}
//
// Bodies are plain text; that is the wire contract. Note the unexpected
// branch passes the error text through as-is — callers that consider their
// internal error strings sensitive should wrap them before returning.
package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"dirpx.dev/guard"
	"dirpx.dev/guard/apis"
	"dirpx.dev/guard/check"
	"dirpx.dev/guard/code"
	"dirpx.dev/guard/mapper"
)

// Response body prefixes; wire-visible, keep stable.
const (
	validationPrefix = "Validation failed: "
	unexpectedPrefix = "An unexpected error occurred: "
)

// Writer turns errors into plain-text HTTP responses using a status
// mapper. The zero value uses the library-default mapper.
//
// Most callers want the Translate middleware instead; Writer is for
// handlers that manage their own control flow and need to emit a guard
// error response directly.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves err's HTTP status and writes the plain-text error body.
// A nil err writes nothing. Write must be the first write on rw: it sets
// the status code.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	m := w.Mapper
	if m == nil {
		m = mapper.Default()
	}

	if c, id, msg, ok := classify(err); ok {
		writeBody(rw, m.HTTPStatus(c, id), validationPrefix+msg)
		return
	}
	writeBody(rw, http.StatusInternalServerError, unexpectedPrefix+err.Error())
}

// classify extracts the classification of a guard (or compatible) error.
// It reports false for errors that carry no usable code, which the caller
// folds into the unexpected branch.
func classify(err error) (code.Code, check.Ident, string, bool) {
	var ge *guard.Error
	if errors.As(err, &ge) {
		return ge.Code, ge.Check, ge.Message, true
	}

	// Foreign implementations of the coded-error contract get the same
	// treatment as guard errors, with their Error() text as the message.
	var ce apis.CodedError
	if errors.As(err, &ce) {
		c, perr := code.Parse(ce.ErrorCode())
		if perr != nil {
			return code.Empty, check.Empty, "", false
		}
		id := check.Empty
		var che apis.CheckedError
		if errors.As(err, &che) {
			id, _ = check.Parse(che.FailedCheck())
		}
		return c, id, ce.Error(), true
	}

	return code.Empty, check.Empty, "", false
}

func writeBody(rw http.ResponseWriter, status int, body string) {
	rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
	rw.Header().Set("X-Content-Type-Options", "nosniff")
	rw.WriteHeader(status)
	fmt.Fprint(rw, body)
}
