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

// Descriptor is a flat, transport-friendly description of a classified
// error together with its resolved transport statuses.
//
// It intentionally uses plain strings and ints (not the internal Code and
// Ident value types) so it can cross package boundaries freely: adapters,
// log pipelines and message-bus consumers can handle it without importing
// the guard internals.
type Descriptor struct {
	// Code is the canonical error code, e.g. "not_found".
	Code string `json:"code"`

	// Check is the failing guard check's ident. May be empty.
	Check string `json:"check,omitempty"`

	// Name is the guarded parameter or entity name. May be empty.
	Name string `json:"name,omitempty"`

	// HTTPStatus is the resolved HTTP status. 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer.
	// 0 means OK and is never produced for a failing check.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the human-friendly message carried by the error.
	Message string `json:"message,omitempty"`
}
