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

package literal

import (
	"unsafe"

	"dirpx.dev/solid/require"
)

// Terminator ends a sequence. Positions at or past the end of the borrowed
// bytes read as Terminator too.
const Terminator byte = 0

// Literal is a cursor over borrowed bytes. It never copies or owns them and
// is only meaningful while they stay alive and unmodified.
//
// The zero Literal is null.
type Literal struct {
	data  []byte
	pos   int
	valid bool
}

// New borrows b. A nil b yields the null Literal; an empty, non-nil b is a
// valid Literal of length 0.
func New(b []byte) Literal {
	return Literal{data: b, valid: b != nil}
}

// FromString borrows the bytes of s without copying. The result is always
// valid.
func FromString(s string) Literal {
	if s == "" {
		return Literal{data: []byte{}, valid: true}
	}
	return Literal{data: unsafe.Slice(unsafe.StringData(s), len(s)), valid: true}
}

// Null returns the null Literal.
func Null() Literal { return Literal{} }

// Valid reports whether l is bound to a sequence. It never raises.
func (l Literal) Valid() bool { return l.valid }

// AtEnd reports whether the cursor is on the terminator.
func (l Literal) AtEnd() bool {
	return l.Byte() == Terminator
}

// Byte returns the byte under the cursor.
func (l Literal) Byte() byte {
	require.That(l.valid, "literal != nil")
	if l.pos >= len(l.data) {
		return Terminator
	}
	return l.data[l.pos]
}

// Next returns l advanced by one byte. Advancing beyond the end keeps the
// cursor on the terminator.
func (l Literal) Next() Literal {
	require.That(l.valid, "literal != nil")
	l.pos++
	return l
}

// Offset is the cursor position from the start of the borrowed bytes.
func (l Literal) Offset() int { return l.pos }
