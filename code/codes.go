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

package code

// Codes produced by this module. Transport defaults for each live in the
// mapper package; any other valid Code maps to the mapper fallback.
const (
	// Internal is a defect inside the process. Violated preconditions
	// raised by require.That surface with this code.
	Internal Code = "internal"

	// Invalid means the caller sent a value that breaks a structural or
	// semantic rule, for example a malformed escape sequence.
	Invalid Code = "invalid"
)
