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

// View is a minimal, serializable representation of a guard error.
//
// This is not the concrete error type used internally — it is the shape we
// are comfortable exposing in structured logs or machine-readable payloads.
// Keeping it here lets HTTP and gRPC adapters share one struct. The wire
// default for HTTP remains plain text; View is for callers that opt into a
// structured body or log record.
type View struct {
	// Code is the canonical error code, e.g. "bad_request".
	Code string `json:"code"`

	// Check is the ident of the failing guard check, e.g. "argument.null".
	// Empty when no check was recorded.
	Check string `json:"check,omitempty"`

	// Name is the guarded parameter or entity name, e.g. "userID".
	Name string `json:"name,omitempty"`

	// Message is the human-friendly message.
	Message string `json:"message,omitempty"`

	// Details carries optional structured data attached to the error.
	// Values should survive a JSON round-trip.
	Details map[string]any `json:"details,omitempty"`
}
