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

package record

import (
	"slices"

	"dirpx.dev/gedcom/gdcore/errors"
	"dirpx.dev/gedcom/gdcore/model"
)

// Note is a NOTE substructure. It either points at a root note record
// (Ref set) or carries its text inline (Lines, written as CONT lines).
type Note struct {
	Ref       *NoteRecord `json:"-" yaml:"-"`
	Lines     []string    `json:"lines,omitempty" yaml:"lines,omitempty"`
	Citations []Citation  `json:"-" yaml:"-"`
	Extensions
}

// InlineNote returns a note carrying lines inline.
func InlineNote(lines ...string) *Note {
	return &Note{Lines: lines}
}

// NoteRef returns a note that points at a root note record.
func NoteRef(r *NoteRecord) *Note {
	return &Note{Ref: r}
}

// Copy returns a deep copy of n. The referenced note record is shared.
func (n *Note) Copy() *Note {
	if n == nil {
		return nil
	}
	return &Note{
		Ref:        n.Ref,
		Lines:      slices.Clone(n.Lines),
		Citations:  copyCitations(n.Citations),
		Extensions: n.Extensions.Copy(),
	}
}

// Equal reports whether n and other are structurally equal. Referenced note
// records are compared by xref.
func (n *Note) Equal(other *Note) bool {
	if n == nil || other == nil {
		return n == other
	}
	return sameXref(n.Ref, other.Ref) &&
		slices.Equal(n.Lines, other.Lines) &&
		slices.EqualFunc(n.Citations, other.Citations, EqualCitations) &&
		n.Extensions.Equal(other.Extensions)
}

// NoteRecord is a root-level NOTE record.
type NoteRecord struct {
	Xref           string           `json:"xref" yaml:"xref"`
	Lines          []string         `json:"lines,omitempty" yaml:"lines,omitempty"`
	Citations      []Citation       `json:"-" yaml:"-"`
	UserReferences []*UserReference `json:"userReferences,omitempty" yaml:"userReferences,omitempty"`
	RecIDNumber    *Text            `json:"recIdNumber,omitempty" yaml:"recIdNumber,omitempty"`
	ChangeDate     *ChangeDate      `json:"changeDate,omitempty" yaml:"changeDate,omitempty"`
	Extensions
}

var _ model.Record = (*NoteRecord)(nil)

// XrefID returns the record's cross-reference id.
func (r *NoteRecord) XrefID() string { return r.Xref }

// TypeName returns "NoteRecord".
func (r *NoteRecord) TypeName() string { return "NoteRecord" }

// IsZero reports whether the record has no xref and no text.
func (r *NoteRecord) IsZero() bool { return r == nil || (r.Xref == "" && len(r.Lines) == 0) }

// Validate checks the record's xref.
func (r *NoteRecord) Validate() error { return validateXref("NoteRecord", r.Xref) }

func copyNotes(in []*Note) []*Note {
	if in == nil {
		return nil
	}
	out := make([]*Note, len(in))
	for i, n := range in {
		out[i] = n.Copy()
	}
	return out
}

// xrefHolder is implemented by every record pointer type.
type xrefHolder interface {
	comparable
	XrefID() string
}

func sameXref[T xrefHolder](a, b T) bool {
	var zero T
	if a == zero || b == zero {
		return a == b
	}
	return a.XrefID() == b.XrefID()
}

func validateXref(typeName, xref string) error {
	if !IsXref(xref) {
		return &errors.ValidationError{Type: typeName, Field: "Xref", Reason: "must have the form @ID@", Value: xref}
	}
	return nil
}

// IsXref reports whether s has the form of a cross-reference id: at least one
// character other than '@' enclosed in '@'.
func IsXref(s string) bool {
	if len(s) < 3 || s[0] != '@' || s[len(s)-1] != '@' {
		return false
	}
	for i := 1; i < len(s)-1; i++ {
		if s[i] == '@' {
			return false
		}
	}
	return true
}
