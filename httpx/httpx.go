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

package httpx

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/rs/zerolog"

	"dirpx.dev/solid/adapter"
	"dirpx.dev/solid/apis"
	"dirpx.dev/solid/mapper"
	"dirpx.dev/solid/require"
)

var defaultMapper = sync.OnceValue(func() apis.Mapper { return mapper.MustNew() })

// Writer turns errors into JSON responses with a status chosen by Mapper.
// A nil Mapper means the library defaults.
type Writer struct {
	Mapper apis.Mapper
}

func (w Writer) mapper() apis.Mapper {
	if w.Mapper == nil {
		return defaultMapper()
	}
	return w.Mapper
}

// Status resolves the transport statuses for err.
func (w Writer) Status(err error) apis.Status {
	c, r := adapter.Classify(err)
	return w.mapper().Status(c, r)
}

// Write renders err as an apis.ErrorView. The chi request id, when present,
// is echoed in the body. A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	view := adapter.ToView(err)
	view.RequestID = middleware.GetReqID(r.Context())

	render.Status(r, w.Status(err).HTTP)
	render.JSON(rw, r, view)
}

// Recoverer is middleware that answers a request whose handler raised a
// *require.Failure with the mapped error response and logs the failure.
// Other panics propagate so outer middleware (or net/http) handles them.
func Recoverer(w Writer, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				f, ok := rec.(*require.Failure)
				if !ok {
					panic(rec)
				}
				d := adapter.ToDescriptor(f, w.Status(f))
				log.Error().
					Str("request_id", middleware.GetReqID(r.Context())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("file", d.File).
					Str("line", d.Line).
					Str("description", d.Message).
					Int("status", d.HTTPStatus).
					Msg("precondition failure in request")
				w.Write(rw, r, f)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
