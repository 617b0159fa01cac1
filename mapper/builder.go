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
	"net/http"

	"dirpx.dev/guard/code"
	"google.golang.org/grpc/codes"
)

// prefixRule is one check-ident prefix rule awaiting trie compilation.
// The prefix is normalized and validated when the mapper is built.
type prefixRule[T any] struct {
	prefix string
	val    T
}

// builder accumulates user adjustments before they are frozen into an
// immutable mapper snapshot.
type builder struct {
	// per-code defaults; seeded from the library tables, user-replaceable.
	httpDefaults map[code.Code]int
	grpcDefaults map[code.Code]codes.Code

	// exact per-code overrides; above defaults, below prefix rules.
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	// per-code check-ident prefix rules, compiled into segment tries.
	httpPrefixes map[code.Code][]prefixRule[int]
	grpcPrefixes map[code.Code][]prefixRule[codes.Code]

	// fallbacks for codes with no rule at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	b := &builder{
		httpDefaults: make(map[code.Code]int, len(defaultHTTP)),
		grpcDefaults: make(map[code.Code]codes.Code, len(defaultGRPC)),
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]codes.Code),
		httpPrefixes: make(map[code.Code][]prefixRule[int]),
		grpcPrefixes: make(map[code.Code][]prefixRule[codes.Code]),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}
	return b
}
