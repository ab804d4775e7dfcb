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

// Package code holds the top-level classification attached to failures when
// they leave the process through a transport (HTTP body, gRPC status).
//
// A code is short, lowercase and underscore-separated, e.g. "internal" or
// "precondition_failed". The require package reports every violated
// precondition as Internal: a broken precondition is a defect in the caller,
// never something the remote peer can fix by retrying.
//
// The empty code is not a valid code.
package code
