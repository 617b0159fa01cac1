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
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/guard"
	"dirpx.dev/guard/check"
	"dirpx.dev/guard/code"
)

func TestWriter_GuardError(t *testing.T) {
	rec := httptest.NewRecorder()
	var w Writer
	w.Write(rec, guard.BadRequest("quantity must be positive"))

	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, "Validation failed: quantity must be positive", rec.Body.String())
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestWriter_PlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	var w Writer
	w.Write(rec, errors.New("connection reset"))

	assert.Equal(t, 500, rec.Code)
	assert.Equal(t, "An unexpected error occurred: connection reset", rec.Body.String())
}

func TestWriter_NilError(t *testing.T) {
	rec := httptest.NewRecorder()
	var w Writer
	w.Write(rec, nil)

	assert.Equal(t, 200, rec.Code)
	assert.Empty(t, rec.Body.String())
}

// codedOnly carries a code but no message structure of its own, exercising
// the apis.CodedError path in classify.
type codedOnly struct{ c string }

func (e codedOnly) Error() string     { return "stale snapshot" }
func (e codedOnly) ErrorCode() string { return e.c }

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  code.Code
		wantCheck check.Ident
		wantMsg   string
		wantOK    bool
	}{
		{
			name:      "guard error",
			err:       guard.Against.Entity.Null(nil, "order").Err(),
			wantCode:  code.NotFound,
			wantCheck: check.EntityNull,
			wantMsg:   "Entity order cannot be null.",
			wantOK:    true,
		},
		{
			name:     "foreign coded error",
			err:      codedOnly{c: "internal"},
			wantCode: code.Internal,
			wantMsg:  "stale snapshot",
			wantOK:   true,
		},
		{
			name:     "malformed foreign code",
			err:      codedOnly{c: "Not A Code"},
			wantCode: code.Empty,
			wantOK:   false,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			wantCode: code.Empty,
			wantOK:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ck, msg, ok := classify(tt.err)
			assert.Equal(t, tt.wantCode, c)
			assert.Equal(t, tt.wantCheck, ck)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
