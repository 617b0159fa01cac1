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
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/guard/check"
	"dirpx.dev/guard/code"
)

func failure(t *testing.T, g Guard) *Error {
	t.Helper()
	err := g.Err()
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	return e
}

func TestChains_Classification(t *testing.T) {
	tests := []struct {
		name     string
		chain    Guard
		wantCode code.Code
		wantMsg  string
	}{
		{"argument", Against.Argument, code.BadRequest, "Argument x cannot be null."},
		{"value", Against.Value, code.Internal, "Value x cannot be null."},
		{"entity", Against.Entity, code.NotFound, "Entity x cannot be null."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := failure(t, tt.chain.Null(nil, "x"))
			assert.Equal(t, tt.wantCode, e.Code)
			assert.Equal(t, tt.wantMsg, e.Message)
			assert.Equal(t, "x", e.Name)
		})
	}
}

func TestNull(t *testing.T) {
	var nilMap map[string]int
	var nilSlice []int
	var nilPtr *int
	var nilFn func()
	n := 7

	passes := []any{"", 0, n, &n, struct{}{}, []int{}, map[string]int{}}
	for _, v := range passes {
		assert.NoError(t, Against.Argument.Null(v, "v").Err(), "value %#v", v)
	}

	fails := []any{nil, nilMap, nilSlice, nilPtr, nilFn, (chan int)(nil)}
	for _, v := range fails {
		e := failure(t, Against.Argument.Null(v, "v"))
		assert.Equal(t, check.ArgumentNull, e.Check)
		assert.Equal(t, "Argument v cannot be null.", e.Message)
	}
}

func TestNegativeOrZero(t *testing.T) {
	assert.NoError(t, Against.Argument.NegativeOrZero(1, "n").Err())
	assert.NoError(t, Against.Argument.NegativeOrZero(42, "n").Err())

	for _, v := range []int64{0, -1, -42} {
		e := failure(t, Against.Argument.NegativeOrZero(v, "quantity"))
		assert.Equal(t, check.ArgumentNonpositive, e.Check)
		assert.Equal(t, "Argument quantity must be greater than zero.", e.Message)
	}
}

func TestEmptyCollection(t *testing.T) {
	empty := []int{}
	var nilMap map[string]int

	assert.NoError(t, Against.Argument.EmptyCollection([]int{1}, "xs").Err())
	assert.NoError(t, Against.Argument.EmptyCollection(map[string]int{"a": 1}, "m").Err())
	// non-collection values pass
	assert.NoError(t, Against.Argument.EmptyCollection(42, "n").Err())

	for _, v := range []any{nil, empty, nilMap, &empty, [0]int{}} {
		e := failure(t, Against.Entity.EmptyCollection(v, "orders"))
		assert.Equal(t, check.EntityEmptyCollection, e.Check)
		assert.Equal(t, "Entity orders cannot be null or an empty collection.", e.Message)
	}
}

func TestEmptyString(t *testing.T) {
	assert.NoError(t, Against.Argument.EmptyString("ok", "s").Err())
	assert.NoError(t, Against.Argument.EmptyString(" a ", "s").Err())

	for _, v := range []string{"", " ", "\t\n  "} {
		e := failure(t, Against.Argument.EmptyString(v, "title"))
		assert.Equal(t, check.ArgumentEmptyString, e.Check)
		assert.Equal(t, "Argument title cannot be null or empty.", e.Message)
	}
}

func TestOutOfRange(t *testing.T) {
	assert.NoError(t, Against.Argument.OutOfRange(1, 1, 120, "age").Err())
	assert.NoError(t, Against.Argument.OutOfRange(120, 1, 120, "age").Err())

	for _, v := range []int64{0, 121} {
		e := failure(t, Against.Argument.OutOfRange(v, 1, 120, "age"))
		assert.Equal(t, check.ArgumentOutOfRange, e.Check)
		assert.Equal(t, "Argument age must be between 1 and 120.", e.Message)
	}
}

func TestChain_FirstFailureWins(t *testing.T) {
	e := failure(t, Against.Argument.
		EmptyString("", "title").
		NegativeOrZero(0, "quantity").
		Null(nil, "payload"))

	assert.Equal(t, check.ArgumentEmptyString, e.Check)
	assert.Equal(t, "title", e.Name)
}

func TestChain_ValueSemantics(t *testing.T) {
	base := Against.Argument
	failed := base.Null(nil, "x")

	require.Error(t, failed.Err())
	// the failure stayed in the copy; base is still clean
	assert.NoError(t, base.Err())
	assert.NoError(t, base.EmptyString("ok", "s").Err())
}

func countingSeq(vals []int, pulled *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range vals {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}

func TestEmptySeq(t *testing.T) {
	var pulled int
	g := EmptySeq(Against.Argument, countingSeq([]int{1, 2, 3}, &pulled), "stream")
	assert.NoError(t, g.Err())
	assert.Equal(t, 1, pulled, "must pull at most one element")

	pulled = 0
	e := failure(t, EmptySeq(Against.Entity, countingSeq(nil, &pulled), "stream"))
	assert.Equal(t, check.EntityEmptyCollection, e.Check)
	assert.Equal(t, "Entity stream cannot be null or an empty collection.", e.Message)
	assert.Zero(t, pulled)

	e = failure(t, EmptySeq[int](Against.Value, nil, "stream"))
	assert.Equal(t, check.ValueEmptyCollection, e.Check)
}

func TestEmptySeq_SkipsAfterFailure(t *testing.T) {
	var pulled int
	failed := Against.Argument.Null(nil, "x")
	g := EmptySeq(failed, countingSeq([]int{1}, &pulled), "stream")

	e := failure(t, g)
	assert.Equal(t, check.ArgumentNull, e.Check, "first failure must be kept")
	assert.Zero(t, pulled, "checks after a failure must not evaluate")
}
