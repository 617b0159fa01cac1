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

import (
	"dirpx.dev/guard/check"
	"dirpx.dev/guard/code"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of status-mapping rules.
// It resolves a logical guard code (and optionally the failing check's
// ident) into transport statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the given code and check.
	// If no check-specific rule exists, the mapper falls back to the
	// code-level rule.
	HTTPStatus(c code.Code, id check.Ident) int

	// GRPCStatus returns the gRPC status for the given code and check,
	// with the same fallback behavior as HTTPStatus.
	GRPCStatus(c code.Code, id check.Ident) codes.Code

	// Status resolves both transports in one call using identical
	// matching logic, so a single logical error never maps inconsistently.
	Status(c code.Code, id check.Ident) Status

	// Explain returns a human-readable description of which rule matched.
	// Intended for diagnostics and tests, not for machine parsing.
	Explain(c code.Code, id check.Ident) string
}

// Status is a resolved pair of transport statuses for a single error.
// It is the final output of the mapper and can be written directly to
// HTTP and gRPC responses.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
