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

// Package require enforces preconditions that stay active in every build.
//
// Unlike assertion helpers guarded by build tags, That is an ordinary
// function: there is nothing to compile away. A false condition raises a
// *Failure by panicking with it, so the call stack unwinds exactly like any
// other Go panic:
//
//	require.That(p != nil, "p != nil")
//
// A Failure can be observed in two ways.
//
// Callers that expect it (tests, request boundaries) intercept it with
// Catch or Try, or with the httpx/grpcx adapters, and inspect the record
// directly.
//
// A Failure nobody intercepts reaches the process handler. Programs defer
// Guard at the top of main:
//
//	func main() {
//	    defer require.Guard()
//	    ...
//	}
//
// Guard writes the failure to the diagnostic stream and exits with status 1.
// The handler is installed once, either explicitly with Install or lazily
// the first time a check fails, and cannot be replaced afterwards.
package require
