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
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/solid/apis"
	"dirpx.dev/solid/code"
	"dirpx.dev/solid/reason"
)

// New builds an immutable apis.Mapper from the library defaults and opts.
// It fails when a reason prefix is not a valid reason.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	httpReasons, err := compile(b.httpReasons)
	if err != nil {
		return nil, fmt.Errorf("mapper: HTTP %w", err)
	}
	grpcReasons, err := compile(b.grpcReasons)
	if err != nil {
		return nil, fmt.Errorf("mapper: gRPC %w", err)
	}

	return &mapper{
		http: table[int]{
			override: b.httpOverride,
			reasons:  httpReasons,
			defaults: b.httpDefault,
			fallback: http.StatusInternalServerError,
		},
		grpc: table[codes.Code]{
			override: b.grpcOverride,
			reasons:  grpcReasons,
			defaults: b.grpcDefault,
			fallback: codes.Internal,
		},
	}, nil
}

// MustNew is New for static configuration; it panics on error.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

type compiledRule[T any] struct {
	prefix reason.Reason
	depth  int
	val    T
}

func compile[T any](src map[code.Code][]reasonRule[T]) (map[code.Code][]compiledRule[T], error) {
	out := make(map[code.Code][]compiledRule[T], len(src))
	for c, rules := range src {
		for _, r := range rules {
			p, err := reason.Parse(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("reason prefix %q for code %q: %w", r.prefix, c, err)
			}
			if p == reason.Empty {
				return nil, fmt.Errorf("empty reason prefix for code %q", c)
			}
			out[c] = append(out[c], compiledRule[T]{prefix: p, depth: len(p.Segments()), val: r.val})
		}
	}
	return out, nil
}

// table holds the resolution tiers for one transport. The maps are owned
// by the snapshot and never written after New returns.
type table[T any] struct {
	override map[code.Code]T
	reasons  map[code.Code][]compiledRule[T]
	defaults map[code.Code]T
	fallback T
}

func (t *table[T]) resolve(c code.Code, r reason.Reason) T {
	if v, ok := t.override[c]; ok {
		return v
	}
	best := -1
	var val T
	for _, rule := range t.reasons[c] {
		// Later rules win ties so callers can refine earlier registrations.
		if rule.depth >= best && r.HasPrefix(rule.prefix) {
			best, val = rule.depth, rule.val
		}
	}
	if best >= 0 {
		return val
	}
	if v, ok := t.defaults[c]; ok {
		return v
	}
	return t.fallback
}

type mapper struct {
	http table[int]
	grpc table[codes.Code]
}

func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	return m.http.resolve(c, r)
}

func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	return m.grpc.resolve(c, r)
}

func (m *mapper) Status(c code.Code, r reason.Reason) apis.Status {
	return apis.Status{HTTP: m.HTTPStatus(c, r), GRPC: m.GRPCStatus(c, r)}
}
