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

// Package escapes decodes Go-style backslash escapes in command-line and
// query text, so callers can write embedded terminators as \0.
package escapes

import (
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/solid/code"
	"dirpx.dev/solid/reason"
)

// ReasonEscape classifies DecodeError.
var ReasonEscape = reason.MustParse("input.escape")

// DecodeError reports a malformed escape sequence. It maps to code.Invalid.
type DecodeError struct {
	Input  string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("escapes: invalid sequence at offset %d in %q: %v", e.Offset, e.Input, e.Err)
}

func (e *DecodeError) Unwrap() error              { return e.Err }
func (e *DecodeError) ErrorCode() code.Code       { return code.Invalid }
func (e *DecodeError) ErrorReason() reason.Reason { return ReasonEscape }

// Decode interprets the escapes accepted in Go string literals (\n, \t,
// \xNN, \uNNNN, \NNN octal, ...). A lone \0 not followed by two octal digits
// is a NUL byte. Quotes need no escaping. Bytes outside escapes, valid UTF-8
// or not, are copied unchanged.
func Decode(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	rest := s
	for len(rest) > 0 {
		if rest[0] != '\\' {
			b.WriteByte(rest[0])
			rest = rest[1:]
			continue
		}
		if shortNUL(rest) {
			b.WriteByte(0)
			rest = rest[2:]
			continue
		}
		v, multibyte, tail, err := strconv.UnquoteChar(rest, 0)
		if err != nil {
			return "", &DecodeError{Input: s, Offset: len(s) - len(rest), Err: err}
		}
		if multibyte {
			b.WriteRune(v)
		} else {
			b.WriteByte(byte(v))
		}
		rest = tail
	}
	return b.String(), nil
}

func shortNUL(s string) bool {
	if len(s) < 2 || s[0] != '\\' || s[1] != '0' {
		return false
	}
	return len(s) < 4 || !isOctal(s[2]) || !isOctal(s[3])
}

func isOctal(c byte) bool { return '0' <= c && c <= '7' }
