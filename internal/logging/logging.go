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

// Package logging builds the zerolog logger used by the strlen command.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"dirpx.dev/solid/internal/cliconfig"
)

// New returns a logger writing to w in the configured format and level.
// cfg must have been validated.
func New(w io.Writer, cfg cliconfig.Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	if cfg.LogFormat == cliconfig.FormatConsole {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor,
		}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
