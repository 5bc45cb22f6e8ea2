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

// Family is a root FAM record. Husband, Wife and Children point at
// Individual records in the same graph.
type Family struct {
	Xref              string              `json:"xref" yaml:"xref"`
	Events            []*FamilyEvent      `json:"events,omitempty" yaml:"events,omitempty"`
	Husband           *Individual         `json:"-" yaml:"-"`
	Wife              *Individual         `json:"-" yaml:"-"`
	Children          []*Individual       `json:"-" yaml:"-"`
	NumChildren       *Text               `json:"numChildren,omitempty" yaml:"numChildren,omitempty"`
	Submitters        []*Submitter        `json:"-" yaml:"-"`
	LdsSpouseSealings []*LdsSpouseSealing `json:"ldsSpouseSealings,omitempty" yaml:"ldsSpouseSealings,omitempty"`
	RestrictionNotice *Text               `json:"restrictionNotice,omitempty" yaml:"restrictionNotice,omitempty"`
	Citations         []Citation          `json:"-" yaml:"-"`
	Multimedia        []*MultimediaLink   `json:"multimedia,omitempty" yaml:"multimedia,omitempty"`
	Notes             []*Note             `json:"notes,omitempty" yaml:"notes,omitempty"`
	UserReferences    []*UserReference    `json:"userReferences,omitempty" yaml:"userReferences,omitempty"`
	AutomatedRecordID *Text               `json:"automatedRecordId,omitempty" yaml:"automatedRecordId,omitempty"`
	ChangeDate        *ChangeDate         `json:"changeDate,omitempty" yaml:"changeDate,omitempty"`
	Extensions
}

var _ model.Record = (*Family)(nil)

// XrefID returns the record's cross-reference id.
func (f *Family) XrefID() string { return f.Xref }

// TypeName returns "Family".
func (f *Family) TypeName() string { return "Family" }

// IsZero reports whether f is nil or has no xref.
func (f *Family) IsZero() bool { return f == nil || f.Xref == "" }

// Validate checks the record's xref and event kinds.
func (f *Family) Validate() error {
	if err := validateXref("Family", f.Xref); err != nil {
		return err
	}
	for _, e := range f.Events {
		if e != nil && !e.Type.Valid() {
			return invalidKind("FamilyEvent", string(e.Type))
		}
	}
	return nil
}
