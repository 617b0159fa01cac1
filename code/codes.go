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

package code

// Built-in guard error codes.
//
// The guard taxonomy is deliberately small: a failing check tells the caller
// *why the check existed*, and that reason determines the externally visible
// classification. Custom codes can be introduced with Parse/MustParse; the
// transport mappers fall back to internal semantics for anything they do not
// recognize.
const (
	// BadRequest indicates that caller-supplied input failed a guard check.
	// The caller can fix the request and retry.
	//
	// Raised by the Argument guard chain.
	// Mapped to HTTP 400 by default.
	BadRequest Code = "bad_request"

	// NotFound indicates that an entity the operation looked up and
	// expected to exist is absent. The request was well-formed; the
	// referenced object is simply not there.
	//
	// Raised by the Entity guard chain.
	// Mapped to HTTP 404 by default.
	NotFound Code = "not_found"

	// Internal indicates that an internal invariant broke: a value the
	// service itself produced or assumed failed a guard check. Nothing the
	// caller did caused it and nothing the caller does will fix it.
	//
	// Raised by the Value guard chain. Note that this intentionally folds
	// "invariant violated" and "something unexpected happened" into one
	// bucket; callers that need the distinction should register a mapper
	// override rather than reuse the Value chain for caller input.
	// Mapped to HTTP 500 by default.
	Internal Code = "internal"
)
