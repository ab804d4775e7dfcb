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

package adapter

import (
	"errors"

	"dirpx.dev/solid/apis"
	"dirpx.dev/solid/code"
	"dirpx.dev/solid/reason"
)

// Classify extracts the code and reason of err through its wrap chain.
// Errors that carry no code are reported as code.Internal.
func Classify(err error) (code.Code, reason.Reason) {
	c, r := code.Internal, reason.Empty
	var ce apis.CodedError
	if errors.As(err, &ce) {
		c = ce.ErrorCode()
	}
	var re apis.ReasonedError
	if errors.As(err, &re) {
		r = re.ErrorReason()
	}
	return c, r
}

// ToView builds the public view of err. Errors providing their own view are
// used as-is; anything else is described by its code, reason, message and
// details. The message of an unclassified error is not exposed.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		return vp.ErrorView()
	}

	c, r := Classify(err)
	v := apis.ErrorView{Code: c.String(), Reason: r.String()}
	var ce apis.CodedError
	if errors.As(err, &ce) {
		v.Message = ce.Error()
	}
	var de apis.DetailedError
	if errors.As(err, &de) {
		v.Details = de.ErrorDetails()
	}
	return v
}

// ToDescriptor flattens err together with the statuses it was mapped to.
func ToDescriptor(err error, st apis.Status) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	v := ToView(err)
	d := apis.ErrorDescriptor{
		Code:       v.Code,
		Reason:     v.Reason,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    v.Message,
	}
	d.File, _ = apis.Lookup(v.Details, apis.DetailSource, "file")
	d.Line, _ = apis.Lookup(v.Details, apis.DetailSource, "line")
	return d
}
