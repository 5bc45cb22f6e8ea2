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

func (e *emitter) emitFamily(f *record.Family) error {
	e.current = f.Xref
	e.line(0, f.Xref, "FAM", "")
	for _, ev := range f.Events {
		if err := e.emitFamilyEvent(1, ev); err != nil {
			return err
		}
	}
	if f.Husband != nil {
		if err := emitLink(e, 1, "HUSB", f.Husband, individuals); err != nil {
			return err
		}
	}
	if f.Wife != nil {
		if err := emitLink(e, 1, "WIFE", f.Wife, individuals); err != nil {
			return err
		}
	}
	for _, c := range f.Children {
		if c == nil {
			return e.structural("CHIL", "child link is nil")
		}
		if err := emitLink(e, 1, "CHIL", c, individuals); err != nil {
			return err
		}
	}
	if err := e.emitIfPresent(1, "NCHI", f.NumChildren); err != nil {
		return err
	}
	if err := e.emitSubmitterLinks(1, "SUBM", f.Submitters); err != nil {
		return err
	}
	for _, s := range f.LdsSpouseSealings {
		if err := e.emitLdsSpouseSealing(1, s); err != nil {
			return err
		}
	}
	if err := e.emitIfPresent(1, "RESN", f.RestrictionNotice); err != nil {
		return err
	}
	if err := e.emitCitations(1, f.Citations); err != nil {
		return err
	}
	if err := e.emitMultimediaLinks(1, f.Multimedia); err != nil {
		return err
	}
	if err := e.emitNotes(1, f.Notes); err != nil {
		return err
	}
	if err := e.emitUserReferences(1, f.UserReferences); err != nil {
		return err
	}
	if err := e.emitIfPresent(1, "RIN", f.AutomatedRecordID); err != nil {
		return err
	}
	if err := e.emitChangeDate(1, f.ChangeDate); err != nil {
		return err
	}
	return e.emitExtensions(1, f.Extensions)
}

func (e *emitter) emitFamilyEvent(level int, ev *record.FamilyEvent) error {
	if ev == nil {
		return nil
	}
	if !ev.Type.Valid() {
		return e.structural(ev.Type.Tag(), "unknown family event tag")
	}
	if err := e.emitOptionalValue(level, ev.Type.Tag(), ev.Y); err != nil {
		return err
	}
	if err := e.emitEventDetail(level+1, &ev.EventDetail); err != nil {
		return err
	}
	if ev.HusbandAge != nil {
		e.emitTag(level+1, "HUSB")
		if err := e.emitRequired(level+2, "AGE", ev.HusbandAge); err != nil {
			return err
		}
	}
	if ev.WifeAge != nil {
		e.emitTag(level+1, "WIFE")
		if err := e.emitRequired(level+2, "AGE", ev.WifeAge); err != nil {
			return err
		}
	}
	return e.emitExtensions(level+1, ev.Extensions)
}

func (e *emitter) emitLdsSpouseSealing(level int, s *record.LdsSpouseSealing) error {
	if s == nil {
		return nil
	}
	e.emitTag(level, "SLGS")
	if err := e.emitLdsFields(level+1, s.Status, s.Date, s.Temple, s.Place); err != nil {
		return err
	}
	if err := e.emitCitations(level+1, s.Citations); err != nil {
		return err
	}
	if err := e.emitNotes(level+1, s.Notes); err != nil {
		return err
	}
	return e.emitExtensions(level+1, s.Extensions)
}
