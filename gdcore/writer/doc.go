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

// Package writer turns a record graph into GEDCOM 5.5 or 5.5.1 lines.
//
// A write runs in three stages:
//
//  1. The validation gate runs the configured validator (unless suppressed)
//     and refuses to continue if any finding has error severity.
//  2. The compatibility check picks the dialect and rejects the graph at the
//     first feature that dialect does not allow.
//  3. The emitters walk the graph and append lines of the form
//     "LEVEL [XREF] TAG [VALUE]" to a single buffer, ending with "0 TRLR".
//
// Emission is synchronous and fully buffered: Emit returns either the complete
// line sequence or an error, never a partial result. WriteTo hands a
// successful result to a line sink.
//
// Progress observers subscribe to construction and file-writing
// notifications through Writer.ConstructObservers and Writer.FileObservers.
// Cancel (or cancelling the context given to Emit) stops the write at the
// next top-level record boundary.
//
// Every error returned by this package matches exactly one of the sentinels
// in the gdcore/errors package: ErrStructural, ErrDialect, ErrPreflight,
// ErrCancelled or ErrConfig.
package writer
