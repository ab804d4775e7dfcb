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

import (
	"io"

	"github.com/rs/zerolog"
)

// Option configures a Handler.
type Option func(*Handler)

// WithOutput sets the diagnostic stream. The default is os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(h *Handler) {
		if w != nil {
			h.out = w
		}
	}
}

// WithExit replaces os.Exit. Tests use it to observe the exit status.
func WithExit(exit func(int)) Option {
	return func(h *Handler) {
		if exit != nil {
			h.exit = exit
		}
	}
}

// WithLogger additionally logs every reported failure as an error event.
func WithLogger(l zerolog.Logger) Option {
	return func(h *Handler) { h.log = l }
}

// WithColor forces colored output on or off. By default color is enabled
// when the diagnostic stream is a terminal.
func WithColor(enabled bool) Option {
	return func(h *Handler) {
		h.color = enabled
		h.colorSet = true
	}
}
