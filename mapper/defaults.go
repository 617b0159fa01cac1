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

package mapper

import (
	"net/http"

	"dirpx.dev/guard/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP holds the built-in HTTP mappings for the guard codes. This
// is the externally visible contract of the guard chains: Argument → 400,
// Entity → 404, Value → 500. Callers may override per code at build time,
// but doing so changes wire behavior for every consumer of the mapper.
var defaultHTTP = map[code.Code]int{
	code.BadRequest: http.StatusBadRequest,
	code.NotFound:   http.StatusNotFound,
	code.Internal:   http.StatusInternalServerError,
}

// defaultGRPC aligns the guard codes with canonical gRPC statuses.
var defaultGRPC = map[code.Code]codes.Code{
	code.BadRequest: codes.InvalidArgument,
	code.NotFound:   codes.NotFound,
	code.Internal:   codes.Internal,
}
