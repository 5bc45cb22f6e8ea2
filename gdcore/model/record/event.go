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

// IndividualEventType is the tag of an individual event.
type IndividualEventType string

// Individual event tags.
const (
	Birth             IndividualEventType = "BIRT"
	Christening       IndividualEventType = "CHR"
	Death             IndividualEventType = "DEAT"
	Burial            IndividualEventType = "BURI"
	Cremation         IndividualEventType = "CREM"
	Adoption          IndividualEventType = "ADOP"
	Baptism           IndividualEventType = "BAPM"
	BarMitzvah        IndividualEventType = "BARM"
	BasMitzvah        IndividualEventType = "BASM"
	Blessing          IndividualEventType = "BLES"
	AdultChristening  IndividualEventType = "CHRA"
	Confirmation      IndividualEventType = "CONF"
	FirstCommunion    IndividualEventType = "FCOM"
	Ordination        IndividualEventType = "ORDN"
	Naturalization    IndividualEventType = "NATU"
	Emigration        IndividualEventType = "EMIG"
	Immigration       IndividualEventType = "IMMI"
	IndividualCensus  IndividualEventType = "CENS"
	Probate           IndividualEventType = "PROB"
	Will              IndividualEventType = "WILL"
	Graduation        IndividualEventType = "GRAD"
	Retirement        IndividualEventType = "RETI"
	IndividualGeneric IndividualEventType = "EVEN"
)

var individualEventTypes = map[IndividualEventType]bool{
	Birth: true, Christening: true, Death: true, Burial: true, Cremation: true,
	Adoption: true, Baptism: true, BarMitzvah: true, BasMitzvah: true,
	Blessing: true, AdultChristening: true, Confirmation: true,
	FirstCommunion: true, Ordination: true, Naturalization: true,
	Emigration: true, Immigration: true, IndividualCensus: true, Probate: true,
	Will: true, Graduation: true, Retirement: true, IndividualGeneric: true,
}

// Tag returns the GEDCOM tag.
func (t IndividualEventType) Tag() string { return string(t) }

// String returns the GEDCOM tag.
func (t IndividualEventType) String() string { return string(t) }

// Valid reports whether t is a known individual event tag.
func (t IndividualEventType) Valid() bool { return individualEventTypes[t] }

// IndividualAttributeType is the tag of an individual attribute.
type IndividualAttributeType string

// Individual attribute tags. Fact exists only in GEDCOM 5.5.1.
const (
	Caste                  IndividualAttributeType = "CAST"
	PhysicalDescription    IndividualAttributeType = "DSCR"
	Education              IndividualAttributeType = "EDUC"
	NationalIDNumber       IndividualAttributeType = "IDNO"
	NationalOrTribalOrigin IndividualAttributeType = "NATI"
	CountOfChildren        IndividualAttributeType = "NCHI"
	CountOfMarriages       IndividualAttributeType = "NMR"
	Occupation             IndividualAttributeType = "OCCU"
	Possessions            IndividualAttributeType = "PROP"
	ReligiousAffiliation   IndividualAttributeType = "RELI"
	Residence              IndividualAttributeType = "RESI"
	SocialSecurityNumber   IndividualAttributeType = "SSN"
	NobilityTypeTitle      IndividualAttributeType = "TITL"
	Fact                   IndividualAttributeType = "FACT"
)

var individualAttributeTypes = map[IndividualAttributeType]bool{
	Caste: true, PhysicalDescription: true, Education: true,
	NationalIDNumber: true, NationalOrTribalOrigin: true, CountOfChildren: true,
	CountOfMarriages: true, Occupation: true, Possessions: true,
	ReligiousAffiliation: true, Residence: true, SocialSecurityNumber: true,
	NobilityTypeTitle: true, Fact: true,
}

// Tag returns the GEDCOM tag.
func (t IndividualAttributeType) Tag() string { return string(t) }

// String returns the GEDCOM tag.
func (t IndividualAttributeType) String() string { return string(t) }

// Valid reports whether t is a known individual attribute tag.
func (t IndividualAttributeType) Valid() bool { return individualAttributeTypes[t] }

// FamilyEventType is the tag of a family event.
type FamilyEventType string

// Family event tags.
const (
	Annulment          FamilyEventType = "ANUL"
	FamilyCensus       FamilyEventType = "CENS"
	Divorce            FamilyEventType = "DIV"
	DivorceFiled       FamilyEventType = "DIVF"
	Engagement         FamilyEventType = "ENGA"
	MarriageBann       FamilyEventType = "MARB"
	MarriageContract   FamilyEventType = "MARC"
	Marriage           FamilyEventType = "MARR"
	MarriageLicense    FamilyEventType = "MARL"
	MarriageSettlement FamilyEventType = "MARS"
	FamilyResidence    FamilyEventType = "RESI"
	FamilyGeneric      FamilyEventType = "EVEN"
)

var familyEventTypes = map[FamilyEventType]bool{
	Annulment: true, FamilyCensus: true, Divorce: true, DivorceFiled: true,
	Engagement: true, MarriageBann: true, MarriageContract: true,
	Marriage: true, MarriageLicense: true, MarriageSettlement: true,
	FamilyResidence: true, FamilyGeneric: true,
}

// Tag returns the GEDCOM tag.
func (t FamilyEventType) Tag() string { return string(t) }

// String returns the GEDCOM tag.
func (t FamilyEventType) String() string { return string(t) }

// Valid reports whether t is a known family event tag.
func (t FamilyEventType) Valid() bool { return familyEventTypes[t] }

// EventDetail holds the fields shared by every event and attribute. The
// writer emits them in this order.
type EventDetail struct {
	SubType              *Text             `json:"type,omitempty" yaml:"type,omitempty"`
	Date                 *Text             `json:"date,omitempty" yaml:"date,omitempty"`
	Place                *Place            `json:"place,omitempty" yaml:"place,omitempty"`
	Address              *Address          `json:"address,omitempty" yaml:"address,omitempty"`
	Age                  *Text             `json:"age,omitempty" yaml:"age,omitempty"`
	RespAgency           *Text             `json:"respAgency,omitempty" yaml:"respAgency,omitempty"`
	Cause                *Text             `json:"cause,omitempty" yaml:"cause,omitempty"`
	ReligiousAffiliation *Text             `json:"religiousAffiliation,omitempty" yaml:"religiousAffiliation,omitempty"`
	RestrictionNotice    *Text             `json:"restrictionNotice,omitempty" yaml:"restrictionNotice,omitempty"`
	Citations            []Citation        `json:"-" yaml:"-"`
	Multimedia           []*MultimediaLink `json:"multimedia,omitempty" yaml:"multimedia,omitempty"`
	Notes                []*Note           `json:"notes,omitempty" yaml:"notes,omitempty"`
	ContactInfo
	Extensions
}

// IndividualEvent is an event in an individual's life.
//
// Y is the optional "Y" flag asserting the event happened without further
// detail. Family links the event to the family in which the individual is a
// child; it is written only for BIRT, CHR and ADOP.
type IndividualEvent struct {
	Type   IndividualEventType `json:"tag" yaml:"tag"`
	Y      *Text               `json:"y,omitempty" yaml:"y,omitempty"`
	Family *FamilyChild        `json:"-" yaml:"-"`
	EventDetail
}

// IndividualAttribute is a fact about an individual. Description is the
// value of the attribute line.
type IndividualAttribute struct {
	Type        IndividualAttributeType `json:"tag" yaml:"tag"`
	Description *Text                   `json:"description,omitempty" yaml:"description,omitempty"`
	EventDetail
}

// FamilyEvent is an event in the life of a family.
type FamilyEvent struct {
	Type       FamilyEventType `json:"tag" yaml:"tag"`
	Y          *Text           `json:"y,omitempty" yaml:"y,omitempty"`
	HusbandAge *Text           `json:"husbandAge,omitempty" yaml:"husbandAge,omitempty"`
	WifeAge    *Text           `json:"wifeAge,omitempty" yaml:"wifeAge,omitempty"`
	EventDetail
}
