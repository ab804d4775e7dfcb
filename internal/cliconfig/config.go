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

// Package cliconfig resolves the strlen command configuration from
// defaults, an optional TOML file, STRLEN_* environment variables and
// command-line flags, in increasing order of precedence.
package cliconfig

import (
	"fmt"
	"net"

	"github.com/rs/zerolog"
)

// Flag names shared by the command and Apply.
const (
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagNoColor   = "no-color"
	FlagEscapes   = "escapes"
	FlagHTTPAddr  = "http-addr"
	FlagGRPCAddr  = "grpc-addr"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds the strlen configuration.
type Config struct {
	LogLevel  string `toml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `toml:"log_format" env:"LOG_FORMAT"`
	NoColor   bool   `toml:"no_color" env:"NO_COLOR"`

	// Escapes makes arguments and query values go through escapes.Decode,
	// so "a\0b" contains an embedded terminator.
	Escapes bool `toml:"escapes" env:"ESCAPES"`

	HTTPAddr string `toml:"http_addr" env:"HTTP_ADDR"`
	GRPCAddr string `toml:"grpc_addr" env:"GRPC_ADDR"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:  zerolog.LevelInfoValue,
		LogFormat: FormatConsole,
		HTTPAddr:  "127.0.0.1:8080",
		GRPCAddr:  "127.0.0.1:9090",
	}
}

// Validate checks c. Empty addresses are allowed and disable that listener.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("log format %q: want %q or %q", c.LogFormat, FormatConsole, FormatJSON)
	}
	for name, addr := range map[string]string{FlagHTTPAddr: c.HTTPAddr, FlagGRPCAddr: c.GRPCAddr} {
		if addr == "" {
			continue
		}
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return fmt.Errorf("%s %q: %w", name, addr, err)
		}
	}
	return nil
}

// Apply copies src into dst for every setting whose flag was not changed
// on the command line.
func Apply(dst *Config, src Config, changed map[string]bool) {
	if !changed[FlagLogLevel] {
		dst.LogLevel = src.LogLevel
	}
	if !changed[FlagLogFormat] {
		dst.LogFormat = src.LogFormat
	}
	if !changed[FlagNoColor] {
		dst.NoColor = src.NoColor
	}
	if !changed[FlagEscapes] {
		dst.Escapes = src.Escapes
	}
	if !changed[FlagHTTPAddr] {
		dst.HTTPAddr = src.HTTPAddr
	}
	if !changed[FlagGRPCAddr] {
		dst.GRPCAddr = src.GRPCAddr
	}
}
