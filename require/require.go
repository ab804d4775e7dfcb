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

import "errors"

// That raises a *Failure when cond is false. The failure records the file
// and line of the call to That and description verbatim. When cond is true
// That does nothing.
func That(cond bool, description string) {
	if cond {
		return
	}
	f := newFailure(1, description)
	// The handler must exist before the failure can reach top level.
	ensureInstalled()
	panic(f)
}

// Catch runs fn and returns the Failure it raised, or nil when fn returned
// normally. Panics that do not carry a *Failure keep propagating.
func Catch(fn func()) (failure *Failure) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		f, ok := r.(*Failure)
		if !ok {
			panic(r)
		}
		failure = f
	}()
	fn()
	return nil
}

// Try runs fn and converts a raised Failure into an error. On failure the
// zero T is returned together with the *Failure.
func Try[T any](fn func() T) (T, error) {
	var v T
	if f := Catch(func() { v = fn() }); f != nil {
		var zero T
		return zero, f
	}
	return v, nil
}

// AsFailure finds the first *Failure in err's chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// IsFailure reports whether err's chain contains a *Failure.
func IsFailure(err error) bool {
	_, ok := AsFailure(err)
	return ok
}
