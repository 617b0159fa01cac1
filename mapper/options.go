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
	"dirpx.dev/guard/code"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time. Options are applied to an
// internal builder and then frozen into an immutable snapshot.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for the given
// code, affecting the fallback used when no prefix rule or override
// matches.
func WithHTTPDefault(c code.Code, status int) Option {
	return func(b *builder) { b.httpDefaults[c] = status }
}

// WithGRPCDefault sets or replaces the default gRPC status for the given
// code.
func WithGRPCDefault(c code.Code, status codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[c] = status }
}

// WithHTTPOverride registers an exact HTTP override for the given code.
// Overrides win over defaults but sit below check-prefix rules.
func WithHTTPOverride(c code.Code, status int) Option {
	return func(b *builder) { b.httpOverride[c] = status }
}

// WithGRPCOverride registers an exact gRPC override for the given code.
// Overrides win over defaults but sit below check-prefix rules.
func WithGRPCOverride(c code.Code, status codes.Code) Option {
	return func(b *builder) { b.grpcOverride[c] = status }
}

// WithHTTPPrefix adds a longest-prefix-match rule evaluated against the
// failing check's ident for the given code. A more specific prefix wins:
// "argument.null" beats "argument".
func WithHTTPPrefix(c code.Code, prefix string, status int) Option {
	return func(b *builder) {
		b.httpPrefixes[c] = append(b.httpPrefixes[c], prefixRule[int]{prefix, status})
	}
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule for the given code,
// evaluated the same way as WithHTTPPrefix.
func WithGRPCPrefix(c code.Code, prefix string, status codes.Code) Option {
	return func(b *builder) {
		b.grpcPrefixes[c] = append(b.grpcPrefixes[c], prefixRule[codes.Code]{prefix, status})
	}
}

// WithFallback replaces the last-resort statuses used for codes the mapper
// knows nothing about. The library default is 500 / codes.Internal.
func WithFallback(httpStatus int, grpcStatus codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = httpStatus
		b.fallbackGRPC = grpcStatus
	}
}
