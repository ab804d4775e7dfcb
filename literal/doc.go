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

// Package literal provides Literal, a borrowed, zero-terminated byte
// sequence whose null state is checked on every dereference.
//
// A Literal built from a nil slice is not rejected at construction: it is a
// valid value in the "null" state, and the first operation that would read
// through it raises a require.Failure. Len therefore never has to handle a
// null input itself; the wrapper does.
//
//	literal.Len(literal.FromString("abc"))  // 3
//	literal.Len(literal.Null())             // raises require.Failure
package literal
