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
	"dirpx.dev/solid/code"
	"dirpx.dev/solid/reason"
)

// CodedError is an error with a top-level classification. Adapters treat
// errors that do not implement it as code.Internal.
type CodedError interface {
	error

	// ErrorCode returns a canonical, non-empty code.
	ErrorCode() code.Code
}

// ReasonedError is an error that refines its code with a reason.
type ReasonedError interface {
	error

	// ErrorReason may return reason.Empty.
	ErrorReason() reason.Reason
}

// DetailedError exposes structured details. The returned slice must not be
// modified by the caller.
type DetailedError interface {
	error

	ErrorDetails() []Detail
}
