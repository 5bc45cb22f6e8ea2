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

package writer

import (
	"dirpx.dev/gedcom/gdcore/model/record"
)

func (e *emitter) emitIndividual(i *record.Individual) error {
	e.current = i.Xref
	e.line(0, i.Xref, "INDI", "")
	if err := e.emitIfPresent(1, "RESN", i.RestrictionNotice); err != nil {
		return err
	}
	for _, n := range i.Names {
		if err := e.emitPersonalName(1, n); err != nil {
			return err
		}
	}
	if err := e.emitIfPresent(1, "SEX", i.Sex); err != nil {
		return err
	}
	for _, ev := range i.Events {
		if err := e.emitIndividualEvent(1, ev); err != nil {
			return err
		}
	}
	for _, a := range i.Attributes {
		if err := e.emitIndividualAttribute(1, a); err != nil {
			return err
		}
	}
	for _, o := range i.LdsIndividualOrdinances {
		if err := e.emitLdsIndividualOrdinance(1, o); err != nil {
			return err
		}
	}
	for _, fc := range i.FamiliesWhereChild {
		if err := e.emitChildToFamilyLink(1, fc); err != nil {
			return err
		}
	}
	for _, fs := range i.FamiliesWhereSpouse {
		if err := e.emitSpouseToFamilyLink(1, fs); err != nil {
			return err
		}
	}
	if err := e.emitSubmitterLinks(1, "SUBM", i.Submitters); err != nil {
		return err
	}
	for _, a := range i.Associations {
		if err := e.emitAssociation(1, a); err != nil {
			return err
		}
	}
	for _, a := range i.Aliases {
		if err := e.emitRequired(1, "ALIA", a); err != nil {
			return err
		}
	}
	if err := e.emitSubmitterLinks(1, "ANCI", i.AncestorInterest); err != nil {
		return err
	}
	if err := e.emitSubmitterLinks(1, "DESI", i.DescendantInterest); err != nil {
		return err
	}
	if err := e.emitContactInfo(1, i.ContactInfo); err != nil {
		return err
	}
	if err := e.emitCitations(1, i.Citations); err != nil {
		return err
	}
	if err := e.emitMultimediaLinks(1, i.Multimedia); err != nil {
		return err
	}
	if err := e.emitNotes(1, i.Notes); err != nil {
		return err
	}
	if err := e.emitIfPresent(1, "RFN", i.PermanentRecFileNumber); err != nil {
		return err
	}
	if err := e.emitIfPresent(1, "AFN", i.AncestralFileNumber); err != nil {
		return err
	}
	if err := e.emitUserReferences(1, i.UserReferences); err != nil {
		return err
	}
	if err := e.emitIfPresent(1, "RIN", i.RecIDNumber); err != nil {
		return err
	}
	if err := e.emitChangeDate(1, i.ChangeDate); err != nil {
		return err
	}
	return e.emitExtensions(1, i.Extensions)
}

// emitPersonalName writes a NAME structure. Name pieces that were captured
// blank are written back as bare tags.
func (e *emitter) emitPersonalName(level int, n *record.PersonalName) error {
	if n == nil {
		return nil
	}
	if err := e.emitOptionalValue(level, "NAME", n.Basic); err != nil {
		return err
	}
	if err := e.emitIfPresent(level+1, "TYPE", n.NameType); err != nil {
		return err
	}
	if err := e.emitNamePieces(level+1, n.Prefix, n.GivenName, n.Nickname, n.SurnamePrefix, n.Surname, n.Suffix); err != nil {
		return err
	}
	for _, v := range n.Romanized {
		if err := e.emitPersonalNameVariation(level+1, "ROMN", v); err != nil {
			return err
		}
	}
	for _, v := range n.Phonetic {
		if err := e.emitPersonalNameVariation(level+1, "FONE", v); err != nil {
			return err
		}
	}
	if err := e.emitCitations(level+1, n.Citations); err != nil {
		return err
	}
	if err := e.emitNotes(level+1, n.Notes); err != nil {
		return err
	}
	return e.emitExtensions(level+1, n.Extensions)
}

func (e *emitter) emitPersonalNameVariation(level int, tag string, v *record.PersonalNameVariation) error {
	if v == nil {
		return nil
	}
	if err := e.emitRequired(level, tag, v.Variation); err != nil {
		return err
	}
	if err := e.emitIfPresent(level+1, "TYPE", v.VariationType); err != nil {
		return err
	}
	if err := e.emitNamePieces(level+1, v.Prefix, v.GivenName, v.Nickname, v.SurnamePrefix, v.Surname, v.Suffix); err != nil {
		return err
	}
	if err := e.emitCitations(level+1, v.Citations); err != nil {
		return err
	}
	if err := e.emitNotes(level+1, v.Notes); err != nil {
		return err
	}
	return e.emitExtensions(level+1, v.Extensions)
}

var namePieceTags = [...]string{"NPFX", "GIVN", "NICK", "SPFX", "SURN", "NSFX"}

func (e *emitter) emitNamePieces(level int, pieces ...*record.Text) error {
	for k, p := range pieces {
		if err := e.emitValueOrBlank(level, namePieceTags[k], p); err != nil {
			return err
		}
	}
	return nil
}

// emitEventDetail writes the EVENT_DETAIL fields shared by individual
// events, attributes and family events.
func (e *emitter) emitEventDetail(level int, d *record.EventDetail) error {
	if err := e.emitIfPresent(level, "TYPE", d.SubType); err != nil {
		return err
	}
	if err := e.emitIfPresent(level, "DATE", d.Date); err != nil {
		return err
	}
	if err := e.emitPlace(level, d.Place); err != nil {
		return err
	}
	if err := e.emitAddress(level, d.Address); err != nil {
		return err
	}
	if err := e.emitContactInfo(level, d.ContactInfo); err != nil {
		return err
	}
	for _, p := range []struct {
		tag string
		t   *record.Text
	}{
		{"AGE", d.Age},
		{"AGNC", d.RespAgency},
		{"CAUS", d.Cause},
		{"RELI", d.ReligiousAffiliation},
		{"RESN", d.RestrictionNotice},
	} {
		if err := e.emitIfPresent(level, p.tag, p.t); err != nil {
			return err
		}
	}
	if err := e.emitCitations(level, d.Citations); err != nil {
		return err
	}
	if err := e.emitMultimediaLinks(level, d.Multimedia); err != nil {
		return err
	}
	return e.emitNotes(level, d.Notes)
}

// emitIndividualEvent writes an event. Birth, christening and adoption
// events point at the family the individual is a child of, when that family
// resolves.
func (e *emitter) emitIndividualEvent(level int, ev *record.IndividualEvent) error {
	if ev == nil {
		return nil
	}
	if !ev.Type.Valid() {
		return e.structural(ev.Type.Tag(), "unknown individual event tag")
	}
	if err := e.emitOptionalValue(level, ev.Type.Tag(), ev.Y); err != nil {
		return err
	}
	if err := e.emitEventDetail(level+1, &ev.EventDetail); err != nil {
		return err
	}
	if fam := familyOf(ev.Family); fam != nil {
		switch ev.Type {
		case record.Birth, record.Christening:
			if err := emitLink(e, level+1, "FAMC", fam, families); err != nil {
				return err
			}
		case record.Adoption:
			if err := emitLink(e, level+1, "FAMC", fam, families); err != nil {
				return err
			}
			if err := e.emitIfPresent(level+2, "ADOP", ev.Family.AdoptedBy); err != nil {
				return err
			}
		}
	}
	return e.emitExtensions(level+1, ev.Extensions)
}

// familyOf returns the family an event links to, or nil when the link or
// its family is absent or the family has no xref.
func familyOf(fc *record.FamilyChild) *record.Family {
	if fc == nil || fc.Family == nil || fc.Family.Xref == "" {
		return nil
	}
	return fc.Family
}

func (e *emitter) emitIndividualAttribute(level int, a *record.IndividualAttribute) error {
	if a == nil {
		return nil
	}
	if !a.Type.Valid() {
		return e.structural(a.Type.Tag(), "unknown individual attribute tag")
	}
	if err := e.emitOptionalValue(level, a.Type.Tag(), a.Description); err != nil {
		return err
	}
	if err := e.emitEventDetail(level+1, &a.EventDetail); err != nil {
		return err
	}
	return e.emitExtensions(level+1, a.Extensions)
}

// emitLdsIndividualOrdinance writes BAPL, CONL, ENDL or SLGC. A child
// sealing must point at a family.
func (e *emitter) emitLdsIndividualOrdinance(level int, o *record.LdsIndividualOrdinance) error {
	if o == nil {
		return nil
	}
	if !o.Type.Valid() {
		return e.structural(o.Type.Tag(), "unknown LDS ordinance tag")
	}
	if err := e.emitOptionalValue(level, o.Type.Tag(), o.Y); err != nil {
		return err
	}
	if err := e.emitLdsFields(level+1, o.Status, o.Date, o.Temple, o.Place); err != nil {
		return err
	}
	if o.Type == record.ChildSealing {
		if o.FamilyWhereChild == nil {
			return e.structural("SLGC", "child sealing has no family link")
		}
		if o.FamilyWhereChild.Family == nil {
			return e.structural("SLGC", "child sealing family link has no family")
		}
		if err := emitLink(e, level+1, "FAMC", o.FamilyWhereChild.Family, families); err != nil {
			return err
		}
	}
	if err := e.emitCitations(level+1, o.Citations); err != nil {
		return err
	}
	if err := e.emitNotes(level+1, o.Notes); err != nil {
		return err
	}
	return e.emitExtensions(level+1, o.Extensions)
}

func (e *emitter) emitLdsFields(level int, status, date, temple, place *record.Text) error {
	for _, p := range []struct {
		tag string
		t   *record.Text
	}{
		{"STAT", status},
		{"DATE", date},
		{"TEMP", temple},
		{"PLAC", place},
	} {
		if err := e.emitIfPresent(level, p.tag, p.t); err != nil {
			return err
		}
	}
	return nil
}

func (e *emitter) emitChildToFamilyLink(level int, fc *record.FamilyChild) error {
	if fc == nil {
		return e.structural("FAMC", "child-to-family link is nil")
	}
	if fc.Family == nil {
		return e.structural("FAMC", "child-to-family link has no family")
	}
	if err := emitLink(e, level, "FAMC", fc.Family, families); err != nil {
		return err
	}
	if err := e.emitIfPresent(level+1, "PEDI", fc.Pedigree); err != nil {
		return err
	}
	if err := e.emitIfPresent(level+1, "STAT", fc.Status); err != nil {
		return err
	}
	if err := e.emitNotes(level+1, fc.Notes); err != nil {
		return err
	}
	return e.emitExtensions(level+1, fc.Extensions)
}

func (e *emitter) emitSpouseToFamilyLink(level int, fs *record.FamilySpouse) error {
	if fs == nil {
		return e.structural("FAMS", "spouse-to-family link is nil")
	}
	if fs.Family == nil {
		return e.structural("FAMS", "spouse-to-family link has no family")
	}
	if err := emitLink(e, level, "FAMS", fs.Family, families); err != nil {
		return err
	}
	if err := e.emitNotes(level+1, fs.Notes); err != nil {
		return err
	}
	return e.emitExtensions(level+1, fs.Extensions)
}

func (e *emitter) emitAssociation(level int, a *record.Association) error {
	if a == nil {
		return nil
	}
	if err := e.emitRequired(level, "ASSO", a.AssociatedEntityXref); err != nil {
		return err
	}
	if err := e.emitIfPresent(level+1, "TYPE", a.AssociatedEntityType); err != nil {
		return err
	}
	if err := e.emitRequired(level+1, "RELA", a.Relationship); err != nil {
		return err
	}
	if err := e.emitNotes(level+1, a.Notes); err != nil {
		return err
	}
	if err := e.emitCitations(level+1, a.Citations); err != nil {
		return err
	}
	return e.emitExtensions(level+1, a.Extensions)
}
