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

package mapper

import (
	"net/http"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/solid/apis"
	"dirpx.dev/solid/code"
	"dirpx.dev/solid/reason"
)

var _ apis.Mapper = (*mapper)(nil)

var violated = reason.MustParse("require.violated")

func TestDefaults(t *testing.T) {
	m := MustNew()
	tests := []struct {
		c        code.Code
		wantHTTP int
		wantGRPC codes.Code
	}{
		{code.Internal, 500, codes.Internal},
		{code.Invalid, 400, codes.InvalidArgument},
		{code.Code("unknown_code"), 500, codes.Internal},
	}
	for _, tt := range tests {
		st := m.Status(tt.c, reason.Empty)
		if st.HTTP != tt.wantHTTP || st.GRPC != tt.wantGRPC {
			t.Fatalf("Status(%q) = %+v, want HTTP=%d GRPC=%v", tt.c, st, tt.wantHTTP, tt.wantGRPC)
		}
	}
}

func TestFailureMapsToInternal(t *testing.T) {
	st := MustNew().Status(code.Internal, violated)
	if st.HTTP != http.StatusInternalServerError || st.GRPC != codes.Internal {
		t.Fatalf("Status = %+v", st)
	}
}

func TestPriority(t *testing.T) {
	m := MustNew(
		WithHTTPDefault(code.Internal, 599),
		WithHTTPReason(code.Internal, "require", 412),
		WithGRPCReason(code.Internal, "require", codes.FailedPrecondition),
	)
	if got := m.HTTPStatus(code.Internal, violated); got != 412 {
		t.Fatalf("reason rule must beat default; got %d", got)
	}
	if got := m.HTTPStatus(code.Internal, reason.Empty); got != 599 {
		t.Fatalf("empty reason must use default; got %d", got)
	}
	if got := m.GRPCStatus(code.Internal, violated); got != codes.FailedPrecondition {
		t.Fatalf("gRPC reason rule not applied; got %v", got)
	}

	m = MustNew(
		WithHTTPReason(code.Internal, "require", 412),
		WithHTTPOverride(code.Internal, 418),
		WithGRPCOverride(code.Internal, codes.Aborted),
	)
	if st := m.Status(code.Internal, violated); st.HTTP != 418 || st.GRPC != codes.Aborted {
		t.Fatalf("override must win; got %+v", st)
	}
}

func TestReasonRules_LongestPrefixOnSegments(t *testing.T) {
	m := MustNew(
		WithHTTPReason(code.Internal, "require", 412),
		WithHTTPReason(code.Internal, "require.violated", 422),
		WithHTTPReason(code.Internal, "req", 451),
	)
	if got := m.HTTPStatus(code.Internal, violated); got != 422 {
		t.Fatalf("longest prefix must win; got %d", got)
	}
	if got := m.HTTPStatus(code.Internal, reason.MustParse("require.other")); got != 412 {
		t.Fatalf("shorter prefix must still match; got %d", got)
	}
	if got := m.HTTPStatus(code.Internal, reason.MustParse("requirement")); got != 500 {
		t.Fatalf("prefix must not cross segment boundary; got %d", got)
	}
}

func TestReasonRules_Normalized(t *testing.T) {
	m := MustNew(WithHTTPReason(code.Internal, "  REQUIRE/Violated ", 412))
	if got := m.HTTPStatus(code.Internal, violated); got != 412 {
		t.Fatalf("normalized prefix should match; got %d", got)
	}
}

func TestNew_RejectsInvalidPrefix(t *testing.T) {
	if _, err := New(WithHTTPReason(code.Internal, "bad..prefix", 400)); err == nil {
		t.Fatal("New must reject an invalid reason prefix")
	}
	if _, err := New(WithGRPCReason(code.Internal, "", codes.Internal)); err == nil {
		t.Fatal("New must reject an empty reason prefix")
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	a := MustNew(WithHTTPDefault(code.Internal, 599))
	b := MustNew()
	if a.HTTPStatus(code.Internal, reason.Empty) == b.HTTPStatus(code.Internal, reason.Empty) {
		t.Fatal("options leaked between snapshots")
	}
}

func TestConcurrentStatus(t *testing.T) {
	m := MustNew(WithHTTPReason(code.Internal, "require", 412))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = m.Status(code.Internal, violated)
			}
		}()
	}
	wg.Wait()
}
