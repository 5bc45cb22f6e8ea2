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

// Individual is a root INDI record.
type Individual struct {
	Xref                    string                    `json:"xref" yaml:"xref"`
	RestrictionNotice       *Text                     `json:"restrictionNotice,omitempty" yaml:"restrictionNotice,omitempty"`
	Names                   []*PersonalName           `json:"names,omitempty" yaml:"names,omitempty"`
	Sex                     *Text                     `json:"sex,omitempty" yaml:"sex,omitempty"`
	Events                  []*IndividualEvent        `json:"events,omitempty" yaml:"events,omitempty"`
	Attributes              []*IndividualAttribute    `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	LdsIndividualOrdinances []*LdsIndividualOrdinance `json:"ldsIndividualOrdinances,omitempty" yaml:"ldsIndividualOrdinances,omitempty"`
	FamiliesWhereChild      []*FamilyChild            `json:"-" yaml:"-"`
	FamiliesWhereSpouse     []*FamilySpouse           `json:"-" yaml:"-"`
	Submitters              []*Submitter              `json:"-" yaml:"-"`
	Associations            []*Association            `json:"associations,omitempty" yaml:"associations,omitempty"`
	Aliases                 []*Text                   `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	AncestorInterest        []*Submitter              `json:"-" yaml:"-"`
	DescendantInterest      []*Submitter              `json:"-" yaml:"-"`
	Citations               []Citation                `json:"-" yaml:"-"`
	Multimedia              []*MultimediaLink         `json:"multimedia,omitempty" yaml:"multimedia,omitempty"`
	Notes                   []*Note                   `json:"notes,omitempty" yaml:"notes,omitempty"`
	PermanentRecFileNumber  *Text                     `json:"permanentRecFileNumber,omitempty" yaml:"permanentRecFileNumber,omitempty"`
	AncestralFileNumber     *Text                     `json:"ancestralFileNumber,omitempty" yaml:"ancestralFileNumber,omitempty"`
	UserReferences          []*UserReference          `json:"userReferences,omitempty" yaml:"userReferences,omitempty"`
	RecIDNumber             *Text                     `json:"recIdNumber,omitempty" yaml:"recIdNumber,omitempty"`
	ChangeDate              *ChangeDate               `json:"changeDate,omitempty" yaml:"changeDate,omitempty"`
	ContactInfo
	Extensions
}

var _ model.Record = (*Individual)(nil)

// XrefID returns the record's cross-reference id.
func (i *Individual) XrefID() string { return i.Xref }

// TypeName returns "Individual".
func (i *Individual) TypeName() string { return "Individual" }

// IsZero reports whether i is nil or has no xref.
func (i *Individual) IsZero() bool { return i == nil || i.Xref == "" }

// Validate checks the record's xref and the kinds of its events and
// attributes.
func (i *Individual) Validate() error {
	if err := validateXref("Individual", i.Xref); err != nil {
		return err
	}
	for _, e := range i.Events {
		if e != nil && !e.Type.Valid() {
			return invalidKind("IndividualEvent", string(e.Type))
		}
	}
	for _, a := range i.Attributes {
		if a != nil && !a.Type.Valid() {
			return invalidKind("IndividualAttribute", string(a.Type))
		}
	}
	for _, o := range i.LdsIndividualOrdinances {
		if o != nil && !o.Type.Valid() {
			return invalidKind("LdsIndividualOrdinance", string(o.Type))
		}
	}
	return nil
}

// Redacted returns the xref only; names are personal data.
func (i *Individual) Redacted() string { return "Individual " + i.Xref }

// String returns the xref and the first name, if any.
func (i *Individual) String() string {
	if len(i.Names) > 0 && i.Names[0] != nil && !i.Names[0].Basic.IsEmpty() {
		return "Individual " + i.Xref + " (" + i.Names[0].Basic.Value + ")"
	}
	return i.Redacted()
}

// PersonalName is a NAME structure.
type PersonalName struct {
	Basic         *Text                    `json:"basic,omitempty" yaml:"basic,omitempty"`
	NameType      *Text                    `json:"type,omitempty" yaml:"type,omitempty"`
	Prefix        *Text                    `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	GivenName     *Text                    `json:"givenName,omitempty" yaml:"givenName,omitempty"`
	Nickname      *Text                    `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	SurnamePrefix *Text                    `json:"surnamePrefix,omitempty" yaml:"surnamePrefix,omitempty"`
	Surname       *Text                    `json:"surname,omitempty" yaml:"surname,omitempty"`
	Suffix        *Text                    `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Romanized     []*PersonalNameVariation `json:"romanized,omitempty" yaml:"romanized,omitempty"`
	Phonetic      []*PersonalNameVariation `json:"phonetic,omitempty" yaml:"phonetic,omitempty"`
	Citations     []Citation               `json:"-" yaml:"-"`
	Notes         []*Note                  `json:"notes,omitempty" yaml:"notes,omitempty"`
	Extensions
}

// PersonalNameVariation is a romanized (ROMN) or phonetic (FONE) variation
// of a personal name. Variation is required.
type PersonalNameVariation struct {
	Variation     *Text      `json:"variation" yaml:"variation"`
	VariationType *Text      `json:"type,omitempty" yaml:"type,omitempty"`
	Prefix        *Text      `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	GivenName     *Text      `json:"givenName,omitempty" yaml:"givenName,omitempty"`
	Nickname      *Text      `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	SurnamePrefix *Text      `json:"surnamePrefix,omitempty" yaml:"surnamePrefix,omitempty"`
	Surname       *Text      `json:"surname,omitempty" yaml:"surname,omitempty"`
	Suffix        *Text      `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Citations     []Citation `json:"-" yaml:"-"`
	Notes         []*Note    `json:"notes,omitempty" yaml:"notes,omitempty"`
	Extensions
}

// FamilyChild links an individual to a family in which they are a child
// (FAMC). Status exists only in GEDCOM 5.5.1. AdoptedBy is used only from
// an ADOP event.
type FamilyChild struct {
	Family    *Family `json:"-" yaml:"-"`
	Pedigree  *Text   `json:"pedigree,omitempty" yaml:"pedigree,omitempty"`
	Status    *Text   `json:"status,omitempty" yaml:"status,omitempty"`
	AdoptedBy *Text   `json:"adoptedBy,omitempty" yaml:"adoptedBy,omitempty"`
	Notes     []*Note `json:"notes,omitempty" yaml:"notes,omitempty"`
	Extensions
}

// FamilySpouse links an individual to a family in which they are a spouse
// (FAMS).
type FamilySpouse struct {
	Family *Family `json:"-" yaml:"-"`
	Notes  []*Note `json:"notes,omitempty" yaml:"notes,omitempty"`
	Extensions
}

// Association is an ASSO structure.
type Association struct {
	AssociatedEntityXref *Text      `json:"xref" yaml:"xref"`
	AssociatedEntityType *Text      `json:"type,omitempty" yaml:"type,omitempty"`
	Relationship         *Text      `json:"relationship" yaml:"relationship"`
	Citations            []Citation `json:"-" yaml:"-"`
	Notes                []*Note    `json:"notes,omitempty" yaml:"notes,omitempty"`
	Extensions
}
