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

// Package adapter projects guard errors into the transport-neutral shapes
// declared in the apis package.
package adapter

import (
	"maps"

	"dirpx.dev/guard"
	"dirpx.dev/guard/apis"
)

// ToDescriptor converts a guard error together with its resolved transport
// status into a portable Descriptor.
//
// The descriptor is intended for structured logging, tracing, or message
// bus propagation. It carries both the logical code/check and the concrete
// transport statuses (HTTP and gRPC).
func ToDescriptor(e *guard.Error, st apis.Status) apis.Descriptor {
	if e == nil {
		return apis.Descriptor{}
	}
	return apis.Descriptor{
		Code:       string(e.Code),
		Check:      string(e.Check),
		Name:       e.Name,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message,
	}
}

// ToView converts a guard error into a serializable View. It performs no
// redaction or filtering; details are copied so mutating the view does not
// reach back into the error, but detail values themselves are shared.
func ToView(e *guard.Error) apis.View {
	if e == nil {
		return apis.View{}
	}
	v := apis.View{
		Code:    string(e.Code),
		Check:   string(e.Check),
		Name:    e.Name,
		Message: e.Message,
	}
	if len(e.Details) > 0 {
		v.Details = maps.Clone(e.Details)
	}
	return v
}
