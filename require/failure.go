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

package require

import (
	"fmt"
	"runtime"
	"strconv"

	"dirpx.dev/solid/apis"
	"dirpx.dev/solid/code"
	"dirpx.dev/solid/reason"
)

// ReasonViolated is the reason reported by every Failure.
var ReasonViolated = reason.MustParse("require.violated")

// Failure records a violated precondition: where the check was made and the
// text describing the condition. It is immutable once raised.
type Failure struct {
	file        string
	line        int
	description string
}

var (
	_ apis.CodedError    = (*Failure)(nil)
	_ apis.ReasonedError = (*Failure)(nil)
	_ apis.DetailedError = (*Failure)(nil)
	_ apis.ViewProvider  = (*Failure)(nil)
)

// newFailure records the location skip frames above its caller.
func newFailure(skip int, description string) *Failure {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		file, line = "???", 0
	}
	return &Failure{file: file, line: line, description: description}
}

// File is the source file of the failed check.
func (f *Failure) File() string { return f.file }

// Line is the line of the failed check within File.
func (f *Failure) Line() int { return f.line }

// Description is the condition text exactly as the caller passed it.
func (f *Failure) Description() string { return f.description }

// Error formats the failure as
//
//	<file>:<line>: <description>
func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s:%d: %s", f.file, f.line, f.description)
}

// ErrorCode reports code.Internal: a violated precondition is a defect.
func (f *Failure) ErrorCode() code.Code { return code.Internal }

func (f *Failure) ErrorReason() reason.Reason { return ReasonViolated }

// ErrorDetails returns a single "source" detail with "file" and "line".
func (f *Failure) ErrorDetails() []apis.Detail {
	return []apis.Detail{{
		Type:   apis.DetailSource,
		Reason: "violated",
		Info: map[string]string{
			"file": f.file,
			"line": strconv.Itoa(f.line),
		},
	}}
}

// ErrorView implements apis.ViewProvider.
func (f *Failure) ErrorView() apis.ErrorView {
	return apis.ErrorView{
		Code:    f.ErrorCode().String(),
		Reason:  f.ErrorReason().String(),
		Message: f.description,
		Details: f.ErrorDetails(),
	}
}
