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

// Header is the HEAD record.
type Header struct {
	SourceSystem      *SourceSystem  `json:"sourceSystem,omitempty" yaml:"sourceSystem,omitempty"`
	DestinationSystem *Text          `json:"destinationSystem,omitempty" yaml:"destinationSystem,omitempty"`
	Date              *Text          `json:"date,omitempty" yaml:"date,omitempty"`
	Time              *Text          `json:"time,omitempty" yaml:"time,omitempty"`
	Submitter         *Submitter     `json:"-" yaml:"-"`
	Submission        *Submission    `json:"-" yaml:"-"`
	FileName          *Text          `json:"fileName,omitempty" yaml:"fileName,omitempty"`
	CopyrightData     []string       `json:"copyrightData,omitempty" yaml:"copyrightData,omitempty"`
	GedcomVersion     *GedcomVersion `json:"gedcomVersion,omitempty" yaml:"gedcomVersion,omitempty"`
	CharacterSet      *CharacterSet  `json:"characterSet,omitempty" yaml:"characterSet,omitempty"`
	Language          *Text          `json:"language,omitempty" yaml:"language,omitempty"`
	PlaceHierarchy    *Text          `json:"placeHierarchy,omitempty" yaml:"placeHierarchy,omitempty"`
	Notes             []string       `json:"notes,omitempty" yaml:"notes,omitempty"`
	Extensions
}

// Dialect returns the dialect declared by the header, or
// model.DialectUnspecified when the header declares none.
func (h *Header) Dialect() model.Dialect {
	if h == nil || h.GedcomVersion == nil {
		return model.DialectUnspecified
	}
	return h.GedcomVersion.VersionNumber
}

// SourceSystem is the SOUR structure of the header. SystemID is required.
type SourceSystem struct {
	SystemID      *Text             `json:"systemId" yaml:"systemId"`
	VersionNumber *Text             `json:"versionNumber,omitempty" yaml:"versionNumber,omitempty"`
	ProductName   *Text             `json:"productName,omitempty" yaml:"productName,omitempty"`
	Corporation   *Corporation      `json:"corporation,omitempty" yaml:"corporation,omitempty"`
	SourceData    *HeaderSourceData `json:"sourceData,omitempty" yaml:"sourceData,omitempty"`
	Extensions
}

// Corporation is the CORP structure of the header's source system.
type Corporation struct {
	BusinessName *Text    `json:"businessName" yaml:"businessName"`
	Address      *Address `json:"address,omitempty" yaml:"address,omitempty"`
	ContactInfo
	Extensions
}

// HeaderSourceData is the DATA structure of the header's source system.
type HeaderSourceData struct {
	Name        *Text `json:"name" yaml:"name"`
	PublishDate *Text `json:"publishDate,omitempty" yaml:"publishDate,omitempty"`
	Copyright   *Text `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Extensions
}

// GedcomVersion is the GEDC structure of the header.
type GedcomVersion struct {
	VersionNumber model.Dialect `json:"versionNumber" yaml:"versionNumber"`
	GedcomForm    *Text         `json:"gedcomForm,omitempty" yaml:"gedcomForm,omitempty"`
	Extensions
}

// DefaultGedcomForm is the only GEDC.FORM value either dialect defines.
const DefaultGedcomForm = "LINEAGE-LINKED"

// NewGedcomVersion returns a GEDC structure for d with the default form.
func NewGedcomVersion(d model.Dialect) *GedcomVersion {
	return &GedcomVersion{VersionNumber: d, GedcomForm: NewText(DefaultGedcomForm)}
}

// CharacterSet is the CHAR structure of the header.
type CharacterSet struct {
	CharacterSetName *Text `json:"characterSetName" yaml:"characterSetName"`
	VersionNumber    *Text `json:"versionNumber,omitempty" yaml:"versionNumber,omitempty"`
	Extensions
}

// IsUTF8 reports whether the declared character set is UTF-8.
func (c *CharacterSet) IsUTF8() bool {
	return c != nil && c.CharacterSetName != nil && c.CharacterSetName.Value == "UTF-8"
}
