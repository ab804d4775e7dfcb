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
	"google.golang.org/grpc/codes"

	"dirpx.dev/solid/code"
	"dirpx.dev/solid/reason"
)

// Mapper resolves a code and optional reason into transport statuses.
// Implementations are immutable and safe for concurrent use.
type Mapper interface {
	HTTPStatus(c code.Code, r reason.Reason) int
	GRPCStatus(c code.Code, r reason.Reason) codes.Code

	// Status resolves both with the same rules.
	Status(c code.Code, r reason.Reason) Status
}

// Status is a resolved pair of transport statuses.
type Status struct {
	HTTP int
	GRPC codes.Code
}
