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

// Package mapper provides deterministic, immutable mappings from guard
// error codes (dirpx.dev/guard/code) and optional check idents
// (dirpx.dev/guard/check) to transport statuses for HTTP and gRPC.
//
// # Overview
//
// A guard error is classified in two parts: a Code ("bad_request",
// "not_found", "internal") and an optional check Ident naming the exact
// failing rule ("argument.null"). Transport boundaries turn that pair into
// concrete statuses. A Mapper does this in a way that is:
//
//   - immutable — a snapshot, safe for concurrent reuse;
//   - overridable — per-code defaults can be adjusted at build time;
//   - prefix-aware — fine-grained rules can target specific checks;
//   - dual — HTTP and gRPC resolve through the same logic.
//
// # Resolution model
//
// For each transport, the mapper resolves in order:
//
//  1. per-code longest-prefix match (LPM) on the check ident;
//  2. exact per-code override;
//  3. per-code default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Prefix rules are segment-aware: idents are "."-separated and a longer
// matching prefix wins, so
//
//	WithHTTPPrefix(code.BadRequest, "argument", 400)
//	WithHTTPPrefix(code.BadRequest, "argument.empty_string", 422)
//
// maps empty-string failures to 422 and every other argument failure
// to 400.
//
// # Library defaults
//
// The shipped defaults are the guard wire contract: bad_request → 400 /
// InvalidArgument, not_found → 404 / NotFound, internal → 500 / Internal.
// Default() returns a shared mapper with exactly these rules.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPPrefix(code.BadRequest, "argument.empty_string", 422),
//	)
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a particular
// (code, check) pair resolved, including the matched tier and pattern.
// It is intended for inspection and golden tests, not machine parsing.
package mapper
