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

// Detail is one structured fact about an error, such as the source location
// of a violated precondition.
type Detail struct {
	// Type classifies the detail, e.g. "source".
	Type string `json:"type,omitempty"`

	// Field is a logical path when the detail concerns an input field.
	Field string `json:"field,omitempty"`

	// Reason is a short explanation specific to this detail.
	Reason string `json:"reason,omitempty"`

	// Info carries string key/values, e.g. "file" and "line".
	Info map[string]string `json:"info,omitempty"`
}

// Lookup returns the Info value stored under key in the first detail of the
// given type.
func Lookup(details []Detail, typ, key string) (string, bool) {
	for _, d := range details {
		if d.Type != typ {
			continue
		}
		v, ok := d.Info[key]
		return v, ok
	}
	return "", false
}

// DetailSource is the Detail type locating a failed check. Its Info holds
// "file" and "line".
const DetailSource = "source"
