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

package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"dirpx.dev/solid/apis"
	"dirpx.dev/solid/internal/cliconfig"
)

func newTestServer(t *testing.T, escapes bool) *Server {
	t.Helper()
	cfg := cliconfig.DefaultConfig()
	cfg.Escapes = escapes
	return New(cfg, zerolog.Nop())
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestLength(t *testing.T) {
	s := newTestServer(t, false)
	tests := []struct {
		target string
		text   string
		want   int
	}{
		{"/v1/length", "", 0},
		{"/v1/length?text=abc", "abc", 3},
		{"/v1/length?text=a%00b", "a\x00b", 1},
		{"/v1/length?text=a%5C0b", `a\0b`, 4},
		{"/v1/length?text=a%5C0b&escapes=true", "a\x00b", 1},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, s, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			var got LengthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Text != tt.text || got.Length != tt.want {
				t.Fatalf("got %+v, want text %q length %d", got, tt.text, tt.want)
			}
		})
	}
}

func TestLength_EscapesDefaultFromConfig(t *testing.T) {
	s := newTestServer(t, true)
	var got LengthResponse
	rec := get(t, s, "/v1/length?text=a%5C0b")
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Length != 1 {
		t.Fatalf("length = %d, want 1", got.Length)
	}

	rec = get(t, s, "/v1/length?text=a%5C0b&escapes=false")
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Length != 4 {
		t.Fatalf("length = %d, want 4", got.Length)
	}
}

func TestLength_NullIsRecovered(t *testing.T) {
	s := newTestServer(t, false)
	rec := get(t, s, "/v1/length?null=true")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var v apis.ErrorView
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Code != "internal" || v.Reason != "require.violated" || v.Message != "literal != nil" {
		t.Fatalf("view = %+v", v)
	}

	// The server keeps answering after a failure.
	if rec := get(t, s, "/v1/length?text=ok"); rec.Code != http.StatusOK {
		t.Fatalf("follow-up status = %d", rec.Code)
	}
}

func TestLength_BadInput(t *testing.T) {
	s := newTestServer(t, false)
	for _, target := range []string{
		"/v1/length?null=maybe",
		"/v1/length?escapes=nope",
		"/v1/length?escapes=true&text=%5Cq",
	} {
		rec := get(t, s, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
		var v apis.ErrorView
		if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if v.Code != "invalid" {
			t.Fatalf("%s: view = %+v", target, v)
		}
	}
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestServer(t, false), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestServe(t *testing.T) {
	httpLis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	grpcLis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestServer(t, false).Serve(ctx, httpLis, grpcLis) }()

	resp, err := http.Get("http://" + httpLis.Addr().String() + "/v1/length?text=abc")
	if err != nil {
		t.Fatalf("http get: %v", err)
	}
	var got LengthResponse
	err = json.NewDecoder(resp.Body).Decode(&got)
	resp.Body.Close()
	if err != nil || got.Length != 3 {
		t.Fatalf("got %+v, err %v", got, err)
	}

	conn, err := grpc.NewClient(grpcLis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("grpc client: %v", err)
	}
	defer conn.Close()
	cctx, ccancel := context.WithTimeout(ctx, 5*time.Second)
	defer ccancel()
	hr, err := healthpb.NewHealthClient(conn).Check(cctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	if hr.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("health = %v", hr.GetStatus())
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestRun_NoListeners(t *testing.T) {
	cfg := cliconfig.DefaultConfig()
	cfg.HTTPAddr, cfg.GRPCAddr = "", ""
	if err := Run(context.Background(), cfg, zerolog.Nop()); err != ErrNoListeners {
		t.Fatalf("Run = %v, want ErrNoListeners", err)
	}
}
