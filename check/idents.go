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

package check

// Built-in idents for the facade's guard checks.
//
// The first segment names the guard chain (argument, value, entity), the
// second the check kind. Mapper prefix rules can target a whole chain
// ("argument") or a specific check ("entity.null").
const (
	ArgumentNull            Ident = "argument.null"
	ArgumentNonpositive     Ident = "argument.nonpositive"
	ArgumentEmptyCollection Ident = "argument.empty_collection"
	ArgumentEmptyString     Ident = "argument.empty_string"
	ArgumentOutOfRange      Ident = "argument.out_of_range"

	ValueNull            Ident = "value.null"
	ValueNonpositive     Ident = "value.nonpositive"
	ValueEmptyCollection Ident = "value.empty_collection"
	ValueEmptyString     Ident = "value.empty_string"
	ValueOutOfRange      Ident = "value.out_of_range"

	EntityNull            Ident = "entity.null"
	EntityNonpositive     Ident = "entity.nonpositive"
	EntityEmptyCollection Ident = "entity.empty_collection"
	EntityEmptyString     Ident = "entity.empty_string"
	EntityOutOfRange      Ident = "entity.out_of_range"
)
