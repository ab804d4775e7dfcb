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
	"google.golang.org/grpc/codes"

	"dirpx.dev/solid/code"
)

// Option adjusts the builder used by New.
type Option func(*builder)

type reasonRule[T any] struct {
	prefix string
	val    T
}

type builder struct {
	httpDefault  map[code.Code]int
	grpcDefault  map[code.Code]codes.Code
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code
	httpReasons  map[code.Code][]reasonRule[int]
	grpcReasons  map[code.Code][]reasonRule[codes.Code]
}

func newBuilder() *builder {
	b := &builder{
		httpDefault:  make(map[code.Code]int, len(defaultHTTP)),
		grpcDefault:  make(map[code.Code]codes.Code, len(defaultGRPC)),
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]codes.Code),
		httpReasons:  make(map[code.Code][]reasonRule[int]),
		grpcReasons:  make(map[code.Code][]reasonRule[codes.Code]),
	}
	for c, v := range defaultHTTP {
		b.httpDefault[c] = v
	}
	for c, v := range defaultGRPC {
		b.grpcDefault[c] = v
	}
	return b
}

// WithHTTPDefault replaces the default HTTP status of c.
func WithHTTPDefault(c code.Code, status int) Option {
	return func(b *builder) { b.httpDefault[c] = status }
}

// WithGRPCDefault replaces the default gRPC code of c.
func WithGRPCDefault(c code.Code, gc codes.Code) Option {
	return func(b *builder) { b.grpcDefault[c] = gc }
}

// WithHTTPOverride pins the HTTP status of c regardless of reason.
func WithHTTPOverride(c code.Code, status int) Option {
	return func(b *builder) { b.httpOverride[c] = status }
}

// WithGRPCOverride pins the gRPC code of c regardless of reason.
func WithGRPCOverride(c code.Code, gc codes.Code) Option {
	return func(b *builder) { b.grpcOverride[c] = gc }
}

// WithHTTPReason maps errors of code c whose reason starts with prefix.
// The prefix is normalized like a reason; New fails if it is invalid.
func WithHTTPReason(c code.Code, prefix string, status int) Option {
	return func(b *builder) {
		b.httpReasons[c] = append(b.httpReasons[c], reasonRule[int]{prefix, status})
	}
}

// WithGRPCReason is WithHTTPReason for gRPC.
func WithGRPCReason(c code.Code, prefix string, gc codes.Code) Option {
	return func(b *builder) {
		b.grpcReasons[c] = append(b.grpcReasons[c], reasonRule[codes.Code]{prefix, gc})
	}
}
