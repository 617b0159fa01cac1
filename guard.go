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

// Package guard provides fluent argument, value and entity validation with
// status-classified errors.
//
// Checks are grouped into three chains under the Against facade. The chain
// a caller picks states *why* the check exists, and that intent fixes the
// classification of a failure:
//
//   - Against.Argument — caller-supplied input is invalid (bad_request, 400);
//   - Against.Value    — an internal invariant broke (internal, 500);
//   - Against.Entity   — a looked-up entity is missing (not_found, 404).
//
// Chains use value semantics: every call returns a copy carrying the first
// failure, so chains are independent, reusable and safe for concurrent use.
// Checks after a failure are skipped without evaluation. Err terminates the
// chain:
//
//	if err := guard.Against.Argument.
//	    Null(req, "request").
//	    NegativeOrZero(req.Quantity, "quantity").
//	    Err(); err != nil {
//	    return err
//	}
//
// The returned error is a *guard.Error; transport boundaries (guard/httpx,
// guard/grpcx) translate it into the matching HTTP or gRPC status.
package guard

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"dirpx.dev/guard/check"
	"dirpx.dev/guard/code"
)

// Guard is a single chain of checks bound to one failure classification.
// The zero value is not usable; obtain chains from Against.
type Guard struct {
	category string
	code     code.Code
	err      *Error
}

// Clause is the entry point grouping the three guard chains.
type Clause struct {
	// Argument classifies failures as caller fault (bad_request, 400).
	Argument Guard
	// Value classifies failures as broken internal invariants
	// (internal, 500).
	Value Guard
	// Entity classifies failures as missing looked-up records
	// (not_found, 404).
	Entity Guard
}

// Against is the process-wide guard facade. It holds no state — accessing
// a field hands out a fresh value-typed chain — so it is safe to use from
// any number of goroutines.
var Against = Clause{
	Argument: Guard{category: "Argument", code: code.BadRequest},
	Value:    Guard{category: "Value", code: code.Internal},
	Entity:   Guard{category: "Entity", code: code.NotFound},
}

// Check kinds; combined with the lowercased category they form the check
// ident recorded on the error ("argument.null", "entity.out_of_range", …).
const (
	kindNull            = "null"
	kindNonpositive     = "nonpositive"
	kindEmptyCollection = "empty_collection"
	kindEmptyString     = "empty_string"
	kindOutOfRange      = "out_of_range"
)

// Failure phrases. The message grammar "{Category} {name} {phrase}." is a
// wire-visible contract; do not reword without versioning consumers.
const (
	phraseNull            = "cannot be null"
	phraseNonpositive     = "must be greater than zero"
	phraseEmptyCollection = "cannot be null or an empty collection"
	phraseEmptyString     = "cannot be null or empty"
)

// Null fails when value is absent: a nil interface, or a nil pointer, map,
// slice, function or channel. Values of non-nillable kinds always pass.
func (g Guard) Null(value any, name string) Guard {
	if g.err != nil {
		return g
	}
	if isNil(value) {
		return g.failed(kindNull, name, phraseNull)
	}
	return g
}

// NegativeOrZero fails when value <= 0.
func (g Guard) NegativeOrZero(value int64, name string) Guard {
	if g.err != nil {
		return g
	}
	if value <= 0 {
		return g.failed(kindNonpositive, name, phraseNonpositive)
	}
	return g
}

// EmptyCollection fails when value is absent or has zero elements. Slices,
// arrays, maps and channels are inspected directly; pointers to them are
// dereferenced first. Non-collection values pass. For single-pass lazy
// sequences use EmptySeq, which never iterates beyond the first element.
func (g Guard) EmptyCollection(value any, name string) Guard {
	if g.err != nil {
		return g
	}
	if isEmptyCollection(value) {
		return g.failed(kindEmptyCollection, name, phraseEmptyCollection)
	}
	return g
}

// EmptyString fails when value is empty or consists only of whitespace.
func (g Guard) EmptyString(value string, name string) Guard {
	if g.err != nil {
		return g
	}
	if strings.TrimSpace(value) == "" {
		return g.failed(kindEmptyString, name, phraseEmptyString)
	}
	return g
}

// OutOfRange fails when value is outside the inclusive [min, max] range.
func (g Guard) OutOfRange(value, min, max int64, name string) Guard {
	if g.err != nil {
		return g
	}
	if value < min || value > max {
		phrase := fmt.Sprintf("must be between %d and %d", min, max)
		return g.failed(kindOutOfRange, name, phrase)
	}
	return g
}

// Err terminates the chain. It returns nil when every check passed, or the
// *guard.Error recorded by the first failing check.
func (g Guard) Err() error {
	if g.err == nil {
		return nil
	}
	return g.err
}

// EmptySeq applies EmptyCollection semantics to a single-pass lazy
// sequence. It pulls at most one element from seq and never re-iterates,
// so exhaustible sequences stay usable by the caller when the check passes
// only if the caller accounts for the consumed element.
func EmptySeq[T any](g Guard, seq iter.Seq[T], name string) Guard {
	if g.err != nil {
		return g
	}
	if seq == nil {
		return g.failed(kindEmptyCollection, name, phraseEmptyCollection)
	}
	for range seq {
		return g
	}
	return g.failed(kindEmptyCollection, name, phraseEmptyCollection)
}

// failed records the chain's first failure and returns the chain.
func (g Guard) failed(kind, name, phrase string) Guard {
	id := check.Ident(strings.ToLower(g.category) + "." + kind)
	g.err = E(g.code,
		fmt.Sprintf("%s %s %s.", g.category, name, phrase),
		WithCheckOption(id),
		WithNameOption(name),
	)
	return g
}

// isNil reports whether v is a nil interface or a nil value of a nillable
// kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// isEmptyCollection reports whether v is an absent or zero-length
// collection. Pointers are dereferenced; non-collection kinds are never
// considered empty.
func isEmptyCollection(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Chan:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer:
		if rv.IsNil() {
			return true
		}
		return isEmptyCollection(rv.Elem().Interface())
	}
	return false
}
