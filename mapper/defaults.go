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

	"google.golang.org/grpc/codes"

	"dirpx.dev/solid/code"
)

var defaultHTTP = map[code.Code]int{
	code.Internal: http.StatusInternalServerError,
	code.Invalid:  http.StatusBadRequest,
}

var defaultGRPC = map[code.Code]codes.Code{
	code.Internal: codes.Internal,
	code.Invalid:  codes.InvalidArgument,
}
