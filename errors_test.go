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
	"errors"
	"strings"
	"testing"

	"dirpx.dev/guard/check"
	"dirpx.dev/guard/code"
)

func TestError_Basics(t *testing.T) {
	e := E(code.NotFound, "order does not exist",
		WithCheckOption(check.EntityNull),
		WithNameOption("order"),
		WithDetailOption("order_id", 42),
	)

	if e.Code != code.NotFound {
		t.Fatal("code mismatch")
	}
	if e.Check != check.EntityNull {
		t.Fatal("check must be set")
	}
	if e.Name != "order" {
		t.Fatal("name must be set")
	}
	if e.Details["order_id"] != 42 {
		t.Fatal("detail missing")
	}

	s := e.Error()
	wantSubs := []string{"not_found", "entity.null", "order does not exist"}
	for _, sub := range wantSubs {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
}

func TestError_WithoutCheck_ErrorFormat(t *testing.T) {
	e := E(code.Internal, "boom")
	if got, want := e.Error(), "internal: boom"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestError_Constructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		code code.Code
		http int
	}{
		{"bad request", BadRequest("x"), code.BadRequest, 400},
		{"not found", NotFound("x"), code.NotFound, 404},
		{"internal", Internal("x"), code.Internal, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Fatalf("Code = %q, want %q", tt.err.Code, tt.code)
			}
			if got := tt.err.HTTPStatus(); got != tt.http {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tt.http)
			}
		})
	}
}

func TestError_Immutability_CopyOnWrite(t *testing.T) {
	e1 := E(code.BadRequest, "bad").WithDetail("k1", 1)
	e2 := e1.WithDetail("k2", 2)

	if len(e1.Details) != 1 || len(e2.Details) != 2 {
		t.Fatal("details size mismatch")
	}
	if _, ok := e1.Details["k2"]; ok {
		t.Fatal("original mutated")
	}

	e3 := e1.WithMessage("worse")
	if e1.Message != "bad" || e3.Message != "worse" {
		t.Fatal("message copy-on-write failed")
	}
}

func TestError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := E(code.Internal, "x").WithCause(root)
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap failed")
	}
	if e.WithCause(nil) != e {
		t.Fatal("WithCause(nil) must return the receiver")
	}
}

func TestError_WithDetails_Merge(t *testing.T) {
	e := E(code.BadRequest, "x").WithDetails(map[string]any{"a": 1})
	e2 := e.WithDetails(map[string]any{"b": 2, "a": 3})
	if e.Details["a"] != 1 {
		t.Fatal("original mutated")
	}
	if e2.Details["a"] != 3 || e2.Details["b"] != 2 {
		t.Fatal("merge failed")
	}
}

func TestError_APIContracts(t *testing.T) {
	e := E(code.BadRequest, "x",
		WithCheckOption(check.ArgumentNull),
		WithNameOption("userID"),
	)
	if e.ErrorCode() != "bad_request" {
		t.Fatal("ErrorCode mismatch")
	}
	if e.FailedCheck() != "argument.null" {
		t.Fatal("FailedCheck mismatch")
	}
	if e.GuardedName() != "userID" {
		t.Fatal("GuardedName mismatch")
	}
}
