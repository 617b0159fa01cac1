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

// Package segmenttrie implements a prefix index over dot-separated keys.
//
// Each trie node represents one key segment; longest-prefix match at
// segment boundaries picks the most specific rule. Tries are built once at
// mapper construction and never mutated afterwards, so lookups need no
// locking.
package segmenttrie

import (
	"errors"
	"strings"
)

// Trie indexes values by dot-separated prefixes such as "argument" or
// "entity.empty_string".
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the canonical dotted prefix for nodes carrying a value.
	// Stored at insert time so MatchWithPattern never builds strings on
	// the lookup path.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty segments or contains characters outside [a-z0-9_.].
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with a dot-separated prefix. Inserting the same
// prefix twice replaces the value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	segs := strings.Split(prefix, ".")
	if prefix == "" {
		return ErrInvalidPrefix
	}
	for _, seg := range segs {
		if !validSegment(seg) {
			return ErrInvalidPrefix
		}
	}

	cur := t
	for _, seg := range segs {
		child, ok := cur.children[seg]
		if !ok {
			child = New[T]()
			cur.children[seg] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match returns the value of the deepest prefix matching key, treating key
// as a dot-separated sequence of segments. It reports false when no
// inserted prefix covers the key.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match plus the canonical pattern of the winning
// rule, for Explain-style diagnostics.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var (
		bestVal T
		bestOK  bool
		bestPat string
	)

	cur := t
	if cur.hasVal {
		bestVal, bestOK, bestPat = cur.val, true, cur.pattern
	}
	if key == "" {
		return bestVal, bestOK, bestPat
	}

	for _, seg := range strings.Split(key, ".") {
		next, ok := cur.children[seg]
		if !ok {
			break
		}
		cur = next
		if cur.hasVal {
			bestVal, bestOK, bestPat = cur.val, true, cur.pattern
		}
	}
	return bestVal, bestOK, bestPat
}

// validSegment accepts [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
