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

package literal

// Len counts the bytes from l's cursor up to the first terminator.
// It raises a require.Failure when l is null.
func Len(l Literal) int {
	cur := l
	for !cur.AtEnd() {
		cur = cur.Next()
	}
	return cur.Offset() - l.Offset()
}
