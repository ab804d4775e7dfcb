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

// ErrorDescriptor is a flat summary of an error together with the statuses
// it was mapped to. It is what the adapters log and what the gRPC adapter
// turns into a google.rpc.ErrorInfo.
type ErrorDescriptor struct {
	Code       string `json:"code"`
	Reason     string `json:"reason,omitempty"`
	HTTPStatus int    `json:"http_status,omitempty"`
	GRPCCode   int    `json:"grpc_code,omitempty"`
	Message    string `json:"message,omitempty"`

	// File and Line locate the failed check when the error carries a
	// "source" detail.
	File string `json:"file,omitempty"`
	Line string `json:"line,omitempty"`
}
