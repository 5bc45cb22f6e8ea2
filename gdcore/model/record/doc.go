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

// Package record is the in-memory GEDCOM record graph: the Gedcom root
// aggregate, its keyed collections of top-level records, their
// substructures, and the two extension containers that carry tags the model
// does not understand natively.
//
// # References
//
// Records refer to one another by pointer (a Family's Husband is an
// *Individual), never by ownership. A pointer that is nil where the grammar
// requires a target, or that points at a record missing from its collection,
// is a structural problem reported at write time; the graph itself does not
// enforce it.
//
// # Values
//
// Most scalar fields are *Text. A nil *Text is absent, a *Text with an empty
// Value is present but empty, and anything else is present with a value. The
// writer depends on that distinction for a handful of tags.
//
// # Extensions
//
// Unrecognized input is kept at two levels of fidelity. A CustomFact is
// semi-typed: it has a tag plus first-class date, description, place and
// citations. A StringTree is fully untyped: id, tag, value and children. Both
// are written back after every natively modeled field of their parent.
package record
