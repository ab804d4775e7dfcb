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
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// ExitFailure is the process status used after an uncaught Failure.
const ExitFailure = 1

// Handler reports failures that reached the top of a goroutine and ends the
// process. The zero value is not usable; build one with NewHandler.
type Handler struct {
	out      io.Writer
	exit     func(int)
	log      zerolog.Logger
	color    bool
	colorSet bool
}

// NewHandler returns a Handler writing to os.Stderr and exiting with
// os.Exit, adjusted by opts. Unless WithColor is given, color is used only
// when the diagnostic stream is a terminal and NO_COLOR is unset.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		out:  os.Stderr,
		exit: os.Exit,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if !h.colorSet {
		h.color = isTerminal(h.out)
	}
	return h
}

func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Report writes f to the diagnostic stream and logs it. It does not exit.
func (h *Handler) Report(f *Failure) {
	prefix := color.New(color.FgRed, color.Bold)
	if h.color {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	_, _ = fmt.Fprintf(h.out, "%s %s\n", prefix.Sprint("require failed:"), f)

	h.log.Error().
		Str("file", f.file).
		Int("line", f.line).
		Str("description", f.description).
		Msg("uncaught precondition failure")
}

// Guard must be deferred directly. It recovers a *Failure, reports it and
// exits with ExitFailure. Any other panic is raised again unchanged.
func (h *Handler) Guard() {
	if r := recover(); r != nil {
		h.handle(r)
	}
}

func (h *Handler) handle(r any) {
	f, ok := r.(*Failure)
	if !ok {
		panic(r)
	}
	h.Report(f)
	h.exit(ExitFailure)
}
