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

	"dirpx.dev/gedcom/gdcore/model"
)

// Multimedia is a root OBJE record.
//
// GEDCOM 5.5 embeds the object: EmbeddedMediaFormat, EmbeddedTitle, Blob and
// ContinuedObject. GEDCOM 5.5.1 links to files instead: FileReferences. A
// record using both is valid data for neither dialect; the writer rejects it.
type Multimedia struct {
	Xref                string           `json:"xref" yaml:"xref"`
	EmbeddedMediaFormat *Text            `json:"embeddedMediaFormat,omitempty" yaml:"embeddedMediaFormat,omitempty"`
	EmbeddedTitle       *Text            `json:"embeddedTitle,omitempty" yaml:"embeddedTitle,omitempty"`
	Blob                []string         `json:"blob,omitempty" yaml:"blob,omitempty"`
	ContinuedObject     *Multimedia      `json:"-" yaml:"-"`
	FileReferences      []*FileReference `json:"fileReferences,omitempty" yaml:"fileReferences,omitempty"`
	UserReferences      []*UserReference `json:"userReferences,omitempty" yaml:"userReferences,omitempty"`
	RecIDNumber         *Text            `json:"recIdNumber,omitempty" yaml:"recIdNumber,omitempty"`
	Citations           []Citation       `json:"-" yaml:"-"`
	Notes               []*Note          `json:"notes,omitempty" yaml:"notes,omitempty"`
	ChangeDate          *ChangeDate      `json:"changeDate,omitempty" yaml:"changeDate,omitempty"`
	Extensions
}

var _ model.Record = (*Multimedia)(nil)

// XrefID returns the record's cross-reference id.
func (m *Multimedia) XrefID() string { return m.Xref }

// TypeName returns "Multimedia".
func (m *Multimedia) TypeName() string { return "Multimedia" }

// IsZero reports whether m is nil or has no xref.
func (m *Multimedia) IsZero() bool { return m == nil || m.Xref == "" }

// Validate checks the record's xref.
func (m *Multimedia) Validate() error { return validateXref("Multimedia", m.Xref) }

// FileReference is a FILE structure of a GEDCOM 5.5.1 multimedia record or
// link.
type FileReference struct {
	ReferenceToFile *Text `json:"file" yaml:"file"`
	Format          *Text `json:"format,omitempty" yaml:"format,omitempty"`
	MediaType       *Text `json:"mediaType,omitempty" yaml:"mediaType,omitempty"`
	Title           *Text `json:"title,omitempty" yaml:"title,omitempty"`
	Extensions
}

// Copy returns a deep copy of fr.
func (fr *FileReference) Copy() *FileReference {
	if fr == nil {
		return nil
	}
	return &FileReference{
		ReferenceToFile: fr.ReferenceToFile.Copy(),
		Format:          fr.Format.Copy(),
		MediaType:       fr.MediaType.Copy(),
		Title:           fr.Title.Copy(),
		Extensions:      fr.Extensions.Copy(),
	}
}

// Equal reports whether fr and other are structurally equal.
func (fr *FileReference) Equal(other *FileReference) bool {
	if fr == nil || other == nil {
		return fr == other
	}
	return fr.ReferenceToFile.Equal(other.ReferenceToFile) &&
		fr.Format.Equal(other.Format) &&
		fr.MediaType.Equal(other.MediaType) &&
		fr.Title.Equal(other.Title) &&
		fr.Extensions.Equal(other.Extensions)
}

// MultimediaLink is an OBJE substructure. It either points at a Multimedia
// record (Ref set) or describes the object inline: with Format, Title and
// File in GEDCOM 5.5, or with FileReferences and Title in GEDCOM 5.5.1.
type MultimediaLink struct {
	Ref            *Multimedia      `json:"-" yaml:"-"`
	Format         *Text            `json:"format,omitempty" yaml:"format,omitempty"`
	Title          *Text            `json:"title,omitempty" yaml:"title,omitempty"`
	File           *Text            `json:"file,omitempty" yaml:"file,omitempty"`
	FileReferences []*FileReference `json:"fileReferences,omitempty" yaml:"fileReferences,omitempty"`
	Notes          []*Note          `json:"notes,omitempty" yaml:"notes,omitempty"`
	Extensions
}

// Copy returns a deep copy of l. The referenced record is shared.
func (l *MultimediaLink) Copy() *MultimediaLink {
	if l == nil {
		return nil
	}
	out := &MultimediaLink{
		Ref:        l.Ref,
		Format:     l.Format.Copy(),
		Title:      l.Title.Copy(),
		File:       l.File.Copy(),
		Notes:      copyNotes(l.Notes),
		Extensions: l.Extensions.Copy(),
	}
	for _, fr := range l.FileReferences {
		out.FileReferences = append(out.FileReferences, fr.Copy())
	}
	return out
}

// Equal reports whether l and other are structurally equal. Referenced
// records are compared by xref.
func (l *MultimediaLink) Equal(other *MultimediaLink) bool {
	if l == nil || other == nil {
		return l == other
	}
	return sameXref(l.Ref, other.Ref) &&
		l.Format.Equal(other.Format) &&
		l.Title.Equal(other.Title) &&
		l.File.Equal(other.File) &&
		slices.EqualFunc(l.FileReferences, other.FileReferences, (*FileReference).Equal) &&
		slices.EqualFunc(l.Notes, other.Notes, (*Note).Equal) &&
		l.Extensions.Equal(other.Extensions)
}
