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

import "dirpx.dev/gedcom/gdcore/errors"

// LdsIndividualOrdinanceType is the tag of an LDS individual ordinance.
type LdsIndividualOrdinanceType string

// LDS individual ordinance tags.
const (
	LdsBaptism      LdsIndividualOrdinanceType = "BAPL"
	LdsConfirmation LdsIndividualOrdinanceType = "CONL"
	LdsEndowment    LdsIndividualOrdinanceType = "ENDL"
	ChildSealing    LdsIndividualOrdinanceType = "SLGC"
)

// Tag returns the GEDCOM tag.
func (t LdsIndividualOrdinanceType) Tag() string { return string(t) }

// String returns the GEDCOM tag.
func (t LdsIndividualOrdinanceType) String() string { return string(t) }

// Valid reports whether t is a known ordinance tag.
func (t LdsIndividualOrdinanceType) Valid() bool {
	switch t {
	case LdsBaptism, LdsConfirmation, LdsEndowment, ChildSealing:
		return true
	default:
		return false
	}
}

// LdsIndividualOrdinance is an LDS ordinance of an individual. A
// ChildSealing ordinance must name the family the child is sealed to.
type LdsIndividualOrdinance struct {
	Type             LdsIndividualOrdinanceType `json:"tag" yaml:"tag"`
	Y                *Text                      `json:"y,omitempty" yaml:"y,omitempty"`
	Status           *Text                      `json:"status,omitempty" yaml:"status,omitempty"`
	Date             *Text                      `json:"date,omitempty" yaml:"date,omitempty"`
	Temple           *Text                      `json:"temple,omitempty" yaml:"temple,omitempty"`
	Place            *Text                      `json:"place,omitempty" yaml:"place,omitempty"`
	FamilyWhereChild *FamilyChild               `json:"-" yaml:"-"`
	Citations        []Citation                 `json:"-" yaml:"-"`
	Notes            []*Note                    `json:"notes,omitempty" yaml:"notes,omitempty"`
	Extensions
}

// LdsSpouseSealing is an SLGS structure of a family.
type LdsSpouseSealing struct {
	Status    *Text      `json:"status,omitempty" yaml:"status,omitempty"`
	Date      *Text      `json:"date,omitempty" yaml:"date,omitempty"`
	Temple    *Text      `json:"temple,omitempty" yaml:"temple,omitempty"`
	Place     *Text      `json:"place,omitempty" yaml:"place,omitempty"`
	Citations []Citation `json:"-" yaml:"-"`
	Notes     []*Note    `json:"notes,omitempty" yaml:"notes,omitempty"`
	Extensions
}

func invalidKind(typeName, tag string) error {
	return &errors.ValidationError{Type: typeName, Field: "Type", Reason: "unknown tag " + tag, Value: tag}
}
