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

package grpcx

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/solid/adapter"
	"dirpx.dev/solid/apis"
	"dirpx.dev/solid/require"
)

// Domain is the ErrorInfo domain set on every mapped status.
const Domain = "solid.dirpx.dev"

// Metadata keys set on ErrorInfo.
const (
	MetaCode        = "code"
	MetaDescription = "description"
	MetaFile        = "file"
	MetaLine        = "line"
	MetaCorrelation = "correlation_id"
)

// Extras carries request-scoped values added to ErrorInfo metadata.
type Extras struct {
	CorrelationID string
}

// MetaFn extracts Extras for a failed call. It may return the zero value.
type MetaFn func(ctx context.Context, err error) Extras

// Status converts err into a gRPC status using m. Errors that already are
// gRPC statuses and errors without a code are returned unchanged.
func Status(m apis.Mapper, err error, ex Extras) error {
	if err == nil {
		return nil
	}
	if _, ok := gstatus.FromError(err); ok {
		return err
	}
	var ce apis.CodedError
	if !errors.As(err, &ce) {
		return err
	}

	c, r := adapter.Classify(err)
	st := m.Status(c, r)
	d := adapter.ToDescriptor(err, st)

	info := &errdetails.ErrorInfo{
		Reason: d.Reason,
		Domain: Domain,
		Metadata: map[string]string{
			MetaCode: d.Code,
		},
	}
	if info.Reason == "" {
		info.Reason = d.Code
	}
	if d.Message != "" {
		info.Metadata[MetaDescription] = d.Message
	}
	if d.File != "" {
		info.Metadata[MetaFile] = d.File
		info.Metadata[MetaLine] = d.Line
	}
	if ex.CorrelationID != "" {
		info.Metadata[MetaCorrelation] = ex.CorrelationID
	}

	base := gstatus.New(st.GRPC, d.Message)
	if with, err := base.WithDetails(info); err == nil {
		return with.Err()
	}
	return base.Err()
}

// UnaryServerInterceptor maps errors returned by handlers through m and
// turns a *require.Failure raised inside a handler into an error response
// instead of crashing the server. Other panics propagate.
func UnaryServerInterceptor(m apis.Mapper, log zerolog.Logger, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, error) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			f, ok := rec.(*require.Failure)
			if !ok {
				panic(rec)
			}
			log.Error().
				Str("rpc_method", info.FullMethod).
				Str("file", f.File()).
				Int("line", f.Line()).
				Str("description", f.Description()).
				Msg("precondition failure in rpc")
			resp, err = nil, Status(m, f, metaFn(ctx, f))
		}()

		resp, err = handler(ctx, req)
		if err != nil {
			return nil, Status(m, err, metaFn(ctx, err))
		}
		return resp, nil
	}
}

// ExtractErrorInfo returns the ErrorInfo attached by Status, if any.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}

// FailureLocation reads the file and line of a failed check back from a
// status produced by Status.
func FailureLocation(err error) (file string, line int, ok bool) {
	info, ok := ExtractErrorInfo(err)
	if !ok {
		return "", 0, false
	}
	file = info.GetMetadata()[MetaFile]
	line, convErr := strconv.Atoi(info.GetMetadata()[MetaLine])
	if file == "" || convErr != nil {
		return "", 0, false
	}
	return file, line, true
}
