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
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"dirpx.dev/solid/code"
	"dirpx.dev/solid/internal/escapes"
	"dirpx.dev/solid/literal"
	"dirpx.dev/solid/reason"
)

// LengthResponse is the body of GET /v1/length.
type LengthResponse struct {
	Text   string `json:"text"`
	Length int    `json:"length"`
}

// ReasonParam classifies ParamError.
var ReasonParam = reason.MustParse("input.param")

// ParamError reports a request parameter of the wrong type.
type ParamError struct {
	Name  string
	Value any
	Want  string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("parameter %s=%q: want %s", e.Name, fmt.Sprint(e.Value), e.Want)
}

func (e *ParamError) ErrorCode() code.Code       { return code.Invalid }
func (e *ParamError) ErrorReason() reason.Reason { return ReasonParam }

// measure decodes text when asked and returns it with its length. A null
// request raises through literal.Len.
func measure(text string, decode, null bool) (string, int, error) {
	if decode {
		var err error
		if text, err = escapes.Decode(text); err != nil {
			return "", 0, err
		}
	}
	lit := literal.FromString(text)
	if null {
		lit = literal.Null()
	}
	return text, literal.Len(lit), nil
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// length answers GET /v1/length?text=...&escapes=bool&null=bool. A null
// request measures the invalid literal; the raised failure is answered by
// the recoverer middleware.
func (s *Server) length(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	decode, err := boolParam(q.Get("escapes"), "escapes", s.escapes)
	if err != nil {
		s.errs.Write(w, r, err)
		return
	}
	null, err := boolParam(q.Get("null"), "null", false)
	if err != nil {
		s.errs.Write(w, r, err)
		return
	}

	text, n, err := measure(q.Get("text"), decode, null)
	if err != nil {
		s.errs.Write(w, r, err)
		return
	}
	render.JSON(w, r, LengthResponse{Text: text, Length: n})
}

func boolParam(v, name string, def bool) (bool, error) {
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, &ParamError{Name: name, Value: v, Want: "a boolean"}
	}
	return b, nil
}
