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

package apis

// CodedError represents an error classified into a well-defined,
// machine-readable error code such as "bad_request", "not_found" or
// "internal".
//
// Codes are stable and enumerable; they are the primary value transport
// adapters use to decide which status to return. Implementations must
// return a canonicalized code (lowercase, underscores, non-empty) as
// enforced by the guard/code package. Adapters treat unknown or empty codes
// as internal errors at the boundary rather than trying to repair them.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code.
	ErrorCode() string
}

// CheckedError represents an error that records which guard check failed,
// e.g. "argument.null" or "entity.empty_collection".
//
// While the code answers "what kind of failure is this?", the check ident
// answers "which exact rule tripped?". Having a separate interface lets
// callers degrade gracefully: an error without a recorded check is still
// fully classified by its code.
type CheckedError interface {
	error

	// FailedCheck returns the dot-separated ident of the failing check.
	// It MAY be empty when no check was recorded.
	FailedCheck() string
}

// NamedError represents an error that knows the name of the guarded
// parameter or entity that failed validation, e.g. "userID".
//
// Transport adapters surface the name in structured payloads (gRPC error
// details, log fields) so clients can attribute the failure to a specific
// input without parsing the human-readable message.
type NamedError interface {
	error

	// GuardedName returns the parameter or entity name the failing check
	// was guarding. May be empty for errors not raised by a guard check.
	GuardedName() string
}
