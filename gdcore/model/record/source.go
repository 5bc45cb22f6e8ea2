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

// Source is a root SOUR record. The multi-line fields are written as a first
// line plus CONT lines.
type Source struct {
	Xref               string              `json:"xref" yaml:"xref"`
	Data               *SourceData         `json:"data,omitempty" yaml:"data,omitempty"`
	OriginatorsAuthors []string            `json:"originatorsAuthors,omitempty" yaml:"originatorsAuthors,omitempty"`
	Title              []string            `json:"title,omitempty" yaml:"title,omitempty"`
	SourceFiledBy      *Text               `json:"sourceFiledBy,omitempty" yaml:"sourceFiledBy,omitempty"`
	PublicationFacts   []string            `json:"publicationFacts,omitempty" yaml:"publicationFacts,omitempty"`
	SourceText         []string            `json:"sourceText,omitempty" yaml:"sourceText,omitempty"`
	RepositoryCitation *RepositoryCitation `json:"repositoryCitation,omitempty" yaml:"repositoryCitation,omitempty"`
	Multimedia         []*MultimediaLink   `json:"multimedia,omitempty" yaml:"multimedia,omitempty"`
	Notes              []*Note             `json:"notes,omitempty" yaml:"notes,omitempty"`
	UserReferences     []*UserReference    `json:"userReferences,omitempty" yaml:"userReferences,omitempty"`
	RecIDNumber        *Text               `json:"recIdNumber,omitempty" yaml:"recIdNumber,omitempty"`
	ChangeDate         *ChangeDate         `json:"changeDate,omitempty" yaml:"changeDate,omitempty"`
	Extensions
}

var _ model.Record = (*Source)(nil)

// XrefID returns the record's cross-reference id.
func (s *Source) XrefID() string { return s.Xref }

// TypeName returns "Source".
func (s *Source) TypeName() string { return "Source" }

// IsZero reports whether s is nil or has no xref.
func (s *Source) IsZero() bool { return s == nil || s.Xref == "" }

// Validate checks the record's xref.
func (s *Source) Validate() error { return validateXref("Source", s.Xref) }

// SourceData is the DATA block of a source record.
type SourceData struct {
	EventsRecorded []*EventRecorded `json:"eventsRecorded,omitempty" yaml:"eventsRecorded,omitempty"`
	RespAgency     *Text            `json:"respAgency,omitempty" yaml:"respAgency,omitempty"`
	Notes          []*Note          `json:"notes,omitempty" yaml:"notes,omitempty"`
	Extensions
}

// EventRecorded is an EVEN line inside a source's DATA block.
type EventRecorded struct {
	EventType    *Text `json:"eventType,omitempty" yaml:"eventType,omitempty"`
	DatePeriod   *Text `json:"datePeriod,omitempty" yaml:"datePeriod,omitempty"`
	Jurisdiction *Text `json:"jurisdiction,omitempty" yaml:"jurisdiction,omitempty"`
	Extensions
}

// RepositoryCitation points a source at the repository holding it.
type RepositoryCitation struct {
	Repository  *Repository         `json:"-" yaml:"-"`
	CallNumbers []*SourceCallNumber `json:"callNumbers,omitempty" yaml:"callNumbers,omitempty"`
	Notes       []*Note             `json:"notes,omitempty" yaml:"notes,omitempty"`
	Extensions
}

// SourceCallNumber is a CALN structure.
type SourceCallNumber struct {
	CallNumber *Text `json:"callNumber" yaml:"callNumber"`
	MediaType  *Text `json:"mediaType,omitempty" yaml:"mediaType,omitempty"`
	Extensions
}
