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

import "dirpx.dev/gedcom/gdcore/model"

// Repository is a root REPO record.
type Repository struct {
	Xref           string           `json:"xref" yaml:"xref"`
	Name           *Text            `json:"name,omitempty" yaml:"name,omitempty"`
	Address        *Address         `json:"address,omitempty" yaml:"address,omitempty"`
	Notes          []*Note          `json:"notes,omitempty" yaml:"notes,omitempty"`
	UserReferences []*UserReference `json:"userReferences,omitempty" yaml:"userReferences,omitempty"`
	RecIDNumber    *Text            `json:"recIdNumber,omitempty" yaml:"recIdNumber,omitempty"`
	ChangeDate     *ChangeDate      `json:"changeDate,omitempty" yaml:"changeDate,omitempty"`
	ContactInfo
	Extensions
}

var _ model.Record = (*Repository)(nil)

// XrefID returns the record's cross-reference id.
func (r *Repository) XrefID() string { return r.Xref }

// TypeName returns "Repository".
func (r *Repository) TypeName() string { return "Repository" }

// IsZero reports whether r is nil or has no xref.
func (r *Repository) IsZero() bool { return r == nil || r.Xref == "" }

// Validate checks the record's xref.
func (r *Repository) Validate() error { return validateXref("Repository", r.Xref) }

// Submitter is a root SUBM record. Name is required.
type Submitter struct {
	Xref                string            `json:"xref" yaml:"xref"`
	Name                *Text             `json:"name" yaml:"name"`
	Address             *Address          `json:"address,omitempty" yaml:"address,omitempty"`
	Multimedia          []*MultimediaLink `json:"multimedia,omitempty" yaml:"multimedia,omitempty"`
	LanguagePreferences []*Text           `json:"languagePreferences,omitempty" yaml:"languagePreferences,omitempty"`
	RegFileNumber       *Text             `json:"regFileNumber,omitempty" yaml:"regFileNumber,omitempty"`
	RecIDNumber         *Text             `json:"recIdNumber,omitempty" yaml:"recIdNumber,omitempty"`
	UserReferences      []*UserReference  `json:"userReferences,omitempty" yaml:"userReferences,omitempty"`
	Notes               []*Note           `json:"notes,omitempty" yaml:"notes,omitempty"`
	ChangeDate          *ChangeDate       `json:"changeDate,omitempty" yaml:"changeDate,omitempty"`
	ContactInfo
	Extensions
}

var _ model.Record = (*Submitter)(nil)

// XrefID returns the record's cross-reference id.
func (s *Submitter) XrefID() string { return s.Xref }

// TypeName returns "Submitter".
func (s *Submitter) TypeName() string { return "Submitter" }

// IsZero reports whether s is nil or has no xref.
func (s *Submitter) IsZero() bool { return s == nil || s.Xref == "" }

// Validate checks the record's xref.
func (s *Submitter) Validate() error { return validateXref("Submitter", s.Xref) }

// Submission is the optional SUBN record.
type Submission struct {
	Xref                 string     `json:"xref" yaml:"xref"`
	Submitter            *Submitter `json:"-" yaml:"-"`
	NameOfFamilyFile     *Text      `json:"nameOfFamilyFile,omitempty" yaml:"nameOfFamilyFile,omitempty"`
	TempleCode           *Text      `json:"templeCode,omitempty" yaml:"templeCode,omitempty"`
	AncestorsCount       *Text      `json:"ancestorsCount,omitempty" yaml:"ancestorsCount,omitempty"`
	DescendantsCount     *Text      `json:"descendantsCount,omitempty" yaml:"descendantsCount,omitempty"`
	OrdinanceProcessFlag *Text      `json:"ordinanceProcessFlag,omitempty" yaml:"ordinanceProcessFlag,omitempty"`
	RecIDNumber          *Text      `json:"recIdNumber,omitempty" yaml:"recIdNumber,omitempty"`
	Extensions
}

var _ model.Record = (*Submission)(nil)

// XrefID returns the record's cross-reference id.
func (s *Submission) XrefID() string { return s.Xref }

// TypeName returns "Submission".
func (s *Submission) TypeName() string { return "Submission" }

// IsZero reports whether s is nil or has no xref.
func (s *Submission) IsZero() bool { return s == nil || s.Xref == "" }

// Validate checks the record's xref.
func (s *Submission) Validate() error { return validateXref("Submission", s.Xref) }
