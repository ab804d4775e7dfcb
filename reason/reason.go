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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is a validated, optional refinement of a code.
type Reason string

// Length limits for a non-empty reason.
const (
	MinLength = 3
	MaxLength = 128
)

// One to four segments, each a lowercase letter followed by lowercase
// letters, digits or underscores.
var reasonRe = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`)

var (
	ErrReasonInvalidFormat = errors.New("solid: invalid reason format")
	ErrReasonInvalidLength = errors.New("solid: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = Reason("")
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty means no reason was given.
const Empty Reason = ""

// Normalize trims and lowercases s, turns "/" into "." and "-" into "_".
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "/", ".")
	return strings.ReplaceAll(s, "-", "_")
}

// Parse normalizes and validates s. The empty string yields Empty.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse panics on invalid or empty input.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("solid: empty reason in MustParse")
	}
	return r
}

// Validate accepts Empty and any canonical reason.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// Segments splits r on dots. Empty yields nil.
func (r Reason) Segments() []string {
	if r == Empty {
		return nil
	}
	return strings.Split(string(r), ".")
}

// HasPrefix reports whether prefix names r or one of its ancestors,
// respecting segment boundaries: "require" matches "require.violated"
// but "req" does not.
func (r Reason) HasPrefix(prefix Reason) bool {
	if prefix == Empty {
		return true
	}
	s, p := string(r), string(prefix)
	return s == p || strings.HasPrefix(s, p+".")
}

func (r Reason) String() string { return string(r) }

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
