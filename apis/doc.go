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

// Package apis defines the public Go-level contracts for guard error
// handling.
//
// It provides small, composable interfaces that other guard packages depend
// on without importing the concrete error implementation: transport
// adapters (httpx, grpcx), the status mapper and user code all target this
// surface. Concrete error types implement these interfaces; callers should
// not rely on the concrete types.
//
// The package stays lightweight on purpose — interfaces and small view
// structs only, with the gRPC codes type as its single external dependency.
package apis
