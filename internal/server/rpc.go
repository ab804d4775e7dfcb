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

	"github.com/go-chi/chi/v5/middleware"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"dirpx.dev/solid/grpcx"
)

// LengthServiceName is the gRPC service exposing literal.Len.
const LengthServiceName = "solid.strlen.v1.Length"

// MeasureMethod is the full method name of Length.Measure. The request is a
// google.protobuf.Struct with the optional fields "text" (string),
// "escapes" (bool) and "null" (bool); the response is the length as a
// google.protobuf.Int64Value.
const MeasureMethod = "/" + LengthServiceName + "/Measure"

// LengthServer is the server API of the Length service.
type LengthServer interface {
	Measure(ctx context.Context, req *structpb.Struct) (*wrapperspb.Int64Value, error)
}

var lengthServiceDesc = grpc.ServiceDesc{
	ServiceName: LengthServiceName,
	HandlerType: (*LengthServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Measure", Handler: measureHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "solid/strlen/v1/length.proto",
}

func measureHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LengthServer).Measure(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MeasureMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LengthServer).Measure(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// Measure implements LengthServer. A null request raises inside the handler
// and is answered by the grpcx interceptor.
func (s *Server) Measure(_ context.Context, req *structpb.Struct) (*wrapperspb.Int64Value, error) {
	fields := req.GetFields()
	text, err := stringField(fields, "text")
	if err != nil {
		return nil, err
	}
	decode, err := boolField(fields, "escapes", s.escapes)
	if err != nil {
		return nil, err
	}
	null, err := boolField(fields, "null", false)
	if err != nil {
		return nil, err
	}

	_, n, err := measure(text, decode, null)
	if err != nil {
		return nil, err
	}
	return wrapperspb.Int64(int64(n)), nil
}

func stringField(fields map[string]*structpb.Value, name string) (string, error) {
	v, ok := fields[name]
	if !ok {
		return "", nil
	}
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", &ParamError{Name: name, Value: v.AsInterface(), Want: "a string"}
	}
	return sv.StringValue, nil
}

func boolField(fields map[string]*structpb.Value, name string, def bool) (bool, error) {
	v, ok := fields[name]
	if !ok {
		return def, nil
	}
	bv, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, &ParamError{Name: name, Value: v.AsInterface(), Want: "a boolean"}
	}
	return bv.BoolValue, nil
}

// requestID copies the x-request-id metadata of the incoming call into the
// error info attached by the interceptor.
func requestID(ctx context.Context, _ error) grpcx.Extras {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return grpcx.Extras{}
	}
	if v := md.Get(middleware.RequestIDHeader); len(v) > 0 {
		return grpcx.Extras{CorrelationID: v[0]}
	}
	return grpcx.Extras{}
}
