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

// Package check provides parsing, normalization and validation for guard
// check identifiers.
//
// An ident is the machine-usable marker of *which* guard check failed,
// e.g. "argument.null" or "entity.empty_collection". It complements the
// error code: the code carries the externally visible classification, the
// ident the exact failing rule. Idents are optional — an error without one
// is still fully classified by its code.
package check
