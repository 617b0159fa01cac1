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

package mapper

import (
	"fmt"
	"strings"
	"sync"

	"dirpx.dev/guard/apis"
	"dirpx.dev/guard/check"
	"dirpx.dev/guard/code"
	"dirpx.dev/guard/mapper/internal/segmenttrie"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process:
//
//  1. Seed the builder with library defaults (HTTP and gRPC).
//  2. Apply user options (defaults, overrides, prefix rules, fallbacks).
//  3. Normalize and validate all check-ident prefixes via check.Parse.
//  4. Compile per-code segment tries supporting longest-prefix match.
//  5. Freeze every map into a fresh copy.
//
// The result is self-contained and safe for concurrent reuse; no shared
// references to caller-provided state remain. Errors indicate an invalid
// prefix rule.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := compileTries(b.httpPrefixes)
	if err != nil {
		return nil, err
	}
	grpcTrie, err := compileTries(b.grpcPrefixes)
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  frozen(b.httpDefaults),
		grpcDefault:  frozen(b.grpcDefaults),
		httpOverride: frozen(b.httpOverride),
		grpcOverride: frozen(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// Default returns the library-default mapper: guard codes resolved to
// 400/404/500 and InvalidArgument/NotFound/Internal, nothing else. It is
// built once and shared; transport packages use it when the caller does
// not supply a mapper of their own.
func Default() apis.Mapper {
	return defaultMapper()
}

var defaultMapper = sync.OnceValue(func() apis.Mapper {
	m, err := New()
	if err != nil {
		// New without options cannot fail; a panic here means the
		// library defaults themselves are broken.
		panic(fmt.Sprintf("mapper: building default mapper: %v", err))
	}
	return m
})

// mapper is the immutable implementation combining per-code defaults,
// exact overrides and check-prefix tries. Lookups are O(segments) and need
// no locking once constructed.
type mapper struct {
	httpDefault map[code.Code]int
	grpcDefault map[code.Code]codes.Code

	// overrides win over defaults but sit below prefix rules.
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	// per-code tries resolving statuses from check-ident prefixes.
	httpTrie map[code.Code]*segmenttrie.Trie[int]
	grpcTrie map[code.Code]*segmenttrie.Trie[codes.Code]

	// used when a code has no rule at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code and check ident.
//
// Resolution order, highest to lowest:
//
//  1. per-code longest-prefix match on the check ident;
//  2. exact per-code override;
//  3. per-code default (library or user-adjusted);
//  4. global fallback.
func (m *mapper) HTTPStatus(c code.Code, id check.Ident) int {
	if t := m.httpTrie[c]; t != nil {
		if v, ok := t.Match(string(id)); ok {
			return v
		}
	}
	if v, ok := m.httpOverride[c]; ok {
		return v
	}
	if v, ok := m.httpDefault[c]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status with the same precedence as
// HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code, id check.Ident) codes.Code {
	if t := m.grpcTrie[c]; t != nil {
		if v, ok := t.Match(string(id)); ok {
			return v
		}
	}
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both transports from the same inputs, keeping HTTP and
// gRPC decisions consistent for a single logical error.
func (m *mapper) Status(c code.Code, id check.Ident) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c, id),
		GRPC: m.GRPCStatus(c, id),
	}
}

// Explain produces a textual trace of how the mapper resolved both
// statuses for a (code, check) pair. It shows which tier matched and, for
// prefix matches, the winning pattern:
//
//	code="bad_request" check="argument.null"
//	http: source=prefix pattern="argument" -> 422
//	grpc: source=default -> InvalidArgument(3)
//
// The output is for diagnostics and golden tests, not machine parsing.
func (m *mapper) Explain(c code.Code, id check.Ident) string {
	var b strings.Builder
	fmt.Fprintf(&b, "code=%q check=%q\n", c, id)
	fmt.Fprintln(&b, m.explainHTTP(c, id))
	fmt.Fprint(&b, m.explainGRPC(c, id))
	return b.String()
}

func (m *mapper) explainHTTP(c code.Code, id check.Ident) string {
	if t := m.httpTrie[c]; t != nil {
		if v, ok, pat := t.MatchWithPattern(string(id)); ok {
			return fmt.Sprintf("http: source=prefix pattern=%q -> %d", pat, v)
		}
	}
	if v, ok := m.httpOverride[c]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok := m.httpDefault[c]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

func (m *mapper) explainGRPC(c code.Code, id check.Ident) string {
	if t := m.grpcTrie[c]; t != nil {
		if v, ok, pat := t.MatchWithPattern(string(id)); ok {
			return fmt.Sprintf("grpc: source=prefix pattern=%q -> %s(%d)", pat, v, int(v))
		}
	}
	if v, ok := m.grpcOverride[c]; ok {
		return fmt.Sprintf("grpc: source=override -> %s(%d)", v, int(v))
	}
	if v, ok := m.grpcDefault[c]; ok {
		return fmt.Sprintf("grpc: source=default -> %s(%d)", v, int(v))
	}
	return fmt.Sprintf("grpc: source=fallback -> %s(%d)", m.fallbackGRPC, int(m.fallbackGRPC))
}

// compileTries normalizes, validates and indexes prefix rules per code.
func compileTries[T any](rules map[code.Code][]prefixRule[T]) (map[code.Code]*segmenttrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	out := make(map[code.Code]*segmenttrie.Trie[T], len(rules))
	for c, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		t := segmenttrie.New[T]()
		for _, r := range rs {
			p, err := check.Parse(r.prefix)
			if err != nil || p == check.Empty {
				return nil, fmt.Errorf("mapper: invalid check prefix %q for code %q: %w", r.prefix, c, errOr(err))
			}
			if err := t.Insert(string(p), r.val); err != nil {
				return nil, fmt.Errorf("mapper: cannot index prefix %q for code %q: %w", p, c, err)
			}
		}
		out[c] = t
	}
	return out, nil
}

// errOr substitutes a description for the nil error produced when
// check.Parse accepts an empty prefix, which the mapper rejects.
func errOr(err error) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("empty prefix")
}

// frozen copies a rule map so the mapper cannot observe later mutations of
// builder- or caller-owned maps. Empty maps become nil to keep lookups
// cheap.
func frozen[V any](src map[code.Code]V) map[code.Code]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
