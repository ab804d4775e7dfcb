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

// ViewProvider is implemented by errors that can describe themselves in a
// form safe to put on the wire.
type ViewProvider interface {
	error

	ErrorView() ErrorView
}

// ErrorView is the JSON body written for an error by the HTTP adapter.
type ErrorView struct {
	Code    string   `json:"code"`
	Reason  string   `json:"reason,omitempty"`
	Message string   `json:"message,omitempty"`
	Details []Detail `json:"details,omitempty"`

	// RequestID echoes the correlation id of the failed request, if any.
	RequestID string `json:"request_id,omitempty"`
}
