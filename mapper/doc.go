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

// Package mapper turns the code and reason of an error into an HTTP status
// and a gRPC code.
//
// A mapper is an immutable snapshot built with New. For a (code, reason)
// pair it picks, in order:
//
//  1. an exact override registered for the code;
//  2. the reason rule for the code with the longest matching prefix, where
//     prefixes match whole dot-separated segments ("require" matches
//     "require.violated", "req" does not);
//  3. the per-code default (see defaults.go, adjustable with options);
//  4. 500 / codes.Internal.
//
// By default a require.Failure (internal, require.violated) maps to
// 500 / Internal. A server that treats violated preconditions as caller
// errors can say so with a reason rule:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPReason(code.Internal, "require", http.StatusPreconditionFailed),
//	    mapper.WithGRPCReason(code.Internal, "require", codes.FailedPrecondition),
//	)
package mapper
