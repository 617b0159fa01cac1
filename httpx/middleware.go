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

package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"

	"dirpx.dev/guard/apis"
	"dirpx.dev/guard/mapper"
)

// HeaderRequestID carries the per-request correlation token. Incoming
// values are reused when well-formed; otherwise a fresh UUID is issued.
// The header is echoed on every response so clients can quote it.
const HeaderRequestID = "X-Request-ID"

// Handler is the downstream request-handling step wrapped by Translate:
// a handler that reports failures by returning an error instead of
// writing a status itself. On the error path the handler must not have
// written to the ResponseWriter.
type Handler func(http.ResponseWriter, *http.Request) error

// Option configures the Translate middleware.
type Option func(*translator)

// WithMapper replaces the status mapper used to resolve error codes.
// Defaults to mapper.Default().
func WithMapper(m apis.Mapper) Option {
	return func(t *translator) {
		if m != nil {
			t.writer.Mapper = m
		}
	}
}

// WithLogger replaces the logger used for error and panic reporting.
// Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(t *translator) {
		if log != nil {
			t.log = log
		}
	}
}

// Translate wraps h into an http.Handler that converts returned errors
// into HTTP responses.
//
//   - nil error: the response is whatever h wrote, untouched;
//   - classified error: mapped status, body "Validation failed: {message}";
//   - any other error: 500, body "An unexpected error occurred: {message}";
//   - panic: logged with a stack trace, then handled as an unexpected
//     error (http.ErrAbortHandler is re-raised, per net/http convention).
//
// Exactly one response is produced per request; errors are never
// re-raised past this boundary.
func Translate(h Handler, opts ...Option) http.Handler {
	t := &translator{
		next: h,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type translator struct {
	next   Handler
	writer Writer
	log    *slog.Logger
}

func (t *translator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rid := requestID(r)
	w.Header().Set(HeaderRequestID, rid)

	err := t.invoke(w, r)
	if err == nil {
		return
	}

	m := t.writer.Mapper
	if m == nil {
		m = mapper.Default()
	}

	status := http.StatusInternalServerError
	if c, id, _, ok := classify(err); ok {
		status = m.HTTPStatus(c, id)
	}

	t.log.LogAttrs(r.Context(), levelFor(status), "request failed",
		slog.String("request_id", rid),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)

	t.writer.Write(w, err)
}

// invoke runs the downstream handler, converting panics into errors so
// the translation path stays single.
func (t *translator) invoke(w http.ResponseWriter, r *http.Request) (err error) {
	defer func() {
		rvr := recover()
		if rvr == nil {
			return
		}
		if rvr == http.ErrAbortHandler {
			panic(rvr)
		}
		t.log.ErrorContext(r.Context(), "panic in handler",
			slog.Any("panic", rvr),
			slog.String("stack", string(debug.Stack())),
		)
		err = fmt.Errorf("panic: %v", rvr)
	}()

	return t.next(w, r)
}

// levelFor matches log severity to the response class: caller mistakes
// are warnings, server faults are errors.
func levelFor(status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	return slog.LevelWarn
}

// requestID reuses a sane inbound X-Request-ID or issues a fresh UUID.
func requestID(r *http.Request) string {
	v := strings.TrimSpace(r.Header.Get(HeaderRequestID))
	if v == "" || len(v) > 128 || strings.ContainsAny(v, "\r\n") {
		return uuid.NewString()
	}
	return v
}
