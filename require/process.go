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

import "sync"

var (
	installOnce sync.Once
	process     *Handler
)

// Install sets up the process-wide handler used by Guard. Only the first
// call has an effect and only that call returns true; a handler cannot be
// replaced once installed. Programs that never call Install get the
// default handler the first time a check fails or Guard runs.
func Install(opts ...Option) bool {
	installed := false
	installOnce.Do(func() {
		process = NewHandler(opts...)
		installed = true
	})
	return installed
}

func ensureInstalled() *Handler {
	Install()
	return process
}

// Guard is Handler.Guard for the process-wide handler:
//
//	func main() {
//	    defer require.Guard()
//	    ...
//	}
func Guard() {
	if r := recover(); r != nil {
		ensureInstalled().handle(r)
	}
}
