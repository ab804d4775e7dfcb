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
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Reason
		wantErr error
	}{
		{"canonical", "require.violated", Reason("require.violated"), nil},
		{"normalized", " Literal/Null-Deref ", Reason("literal.null_deref"), nil},
		{"four segments", "a1.b2.c3.d4", Reason("a1.b2.c3.d4"), nil},
		{"empty", "", Empty, nil},
		{"too short", "ab", Empty, ErrReasonInvalidLength},
		{"five segments", "aa.bb.cc.dd.ee", Empty, ErrReasonInvalidFormat},
		{"empty segment", "require..violated", Empty, ErrReasonInvalidFormat},
		{"leading digit", "1require", Empty, ErrReasonInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse(%q) err = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHasPrefix(t *testing.T) {
	r := MustParse("require.violated")
	tests := []struct {
		prefix Reason
		want   bool
	}{
		{Empty, true},
		{"require", true},
		{"require.violated", true},
		{"req", false},
		{"require.violated.more", false},
		{"literal", false},
	}
	for _, tt := range tests {
		if got := r.HasPrefix(tt.prefix); got != tt.want {
			t.Fatalf("HasPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestSegments(t *testing.T) {
	if got := Empty.Segments(); got != nil {
		t.Fatalf("Empty.Segments() = %v, want nil", got)
	}
	got := MustParse("require.violated").Segments()
	if len(got) != 2 || got[0] != "require" || got[1] != "violated" {
		t.Fatalf("Segments() = %v", got)
	}
}

func TestMustParse_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse(\"\") must panic")
		}
	}()
	_ = MustParse("")
}

func TestText(t *testing.T) {
	var r Reason
	if err := r.UnmarshalText([]byte("  ")); err != nil || r != Empty {
		t.Fatalf("UnmarshalText(blank) = %q, %v", r, err)
	}
	if err := r.UnmarshalText([]byte("REQUIRE.VIOLATED")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	b, err := r.MarshalText()
	if err != nil || string(b) != "require.violated" {
		t.Fatalf("MarshalText = %q, %v", b, err)
	}
}
