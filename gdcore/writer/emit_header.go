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

// unspecifiedSystem is written as the source system ID when the header has
// none.
const unspecifiedSystem = "UNSPECIFIED"

func (e *emitter) emitHeader(h *record.Header) error {
	if h == nil {
		return e.structural("HEAD", "graph has no header")
	}
	e.emitTag(0, "HEAD")
	if err := e.emitSourceSystem(h.SourceSystem); err != nil {
		return err
	}
	if err := e.emitIfPresent(1, "DEST", h.DestinationSystem); err != nil {
		return err
	}
	if !h.Date.IsEmpty() {
		if err := e.emitIfPresent(1, "DATE", h.Date); err != nil {
			return err
		}
		if err := e.emitIfPresent(2, "TIME", h.Time); err != nil {
			return err
		}
	}
	if h.Submitter != nil {
		if err := emitLink(e, 1, "SUBM", h.Submitter, submitters); err != nil {
			return err
		}
	}
	if h.Submission != nil {
		if err := emitLink(e, 1, "SUBN", h.Submission, submissions); err != nil {
			return err
		}
	}
	if err := e.emitIfPresent(1, "FILE", h.FileName); err != nil {
		return err
	}
	// COPR spans lines only in 5.5.1; the compatibility check has already
	// rejected multi-line copyright for 5.5.
	e.emitLinesOfText(1, "", "COPR", h.CopyrightData)
	if err := e.emitGedcomVersion(h.GedcomVersion); err != nil {
		return err
	}
	if err := e.emitCharacterSet(h.CharacterSet); err != nil {
		return err
	}
	if err := e.emitIfPresent(1, "LANG", h.Language); err != nil {
		return err
	}
	if !h.PlaceHierarchy.IsEmpty() {
		e.emitTag(1, "PLAC")
		if err := e.emitRequired(2, "FORM", h.PlaceHierarchy); err != nil {
			return err
		}
	}
	e.emitLinesOfText(1, "", "NOTE", h.Notes)
	return e.emitExtensions(1, h.Extensions)
}

func (e *emitter) emitSourceSystem(s *record.SourceSystem) error {
	if s == nil {
		e.line(1, "", "SOUR", unspecifiedSystem)
		return nil
	}
	if err := e.emitRequired(1, "SOUR", s.SystemID); err != nil {
		return err
	}
	if err := e.emitIfPresent(2, "VERS", s.VersionNumber); err != nil {
		return err
	}
	if err := e.emitIfPresent(2, "NAME", s.ProductName); err != nil {
		return err
	}
	if c := s.Corporation; c != nil {
		if err := e.emitRequired(2, "CORP", c.BusinessName); err != nil {
			return err
		}
		if err := e.emitAddress(3, c.Address); err != nil {
			return err
		}
		if err := e.emitContactInfo(3, c.ContactInfo); err != nil {
			return err
		}
		if err := e.emitExtensions(3, c.Extensions); err != nil {
			return err
		}
	}
	if d := s.SourceData; d != nil {
		if err := e.emitRequired(2, "DATA", d.Name); err != nil {
			return err
		}
		if err := e.emitIfPresent(3, "DATE", d.PublishDate); err != nil {
			return err
		}
		if err := e.emitIfPresent(3, "COPR", d.Copyright); err != nil {
			return err
		}
		if err := e.emitExtensions(3, d.Extensions); err != nil {
			return err
		}
	}
	return e.emitExtensions(2, s.Extensions)
}

// emitGedcomVersion writes GEDC with the dialect being written, regardless of
// what the header declares.
func (e *emitter) emitGedcomVersion(v *record.GedcomVersion) error {
	e.emitTag(1, "GEDC")
	e.line(2, "", "VERS", e.dialect.String())
	form := record.NewText(record.DefaultGedcomForm)
	if v != nil && !v.GedcomForm.IsEmpty() {
		form = v.GedcomForm
	}
	if err := e.emitRequired(2, "FORM", form); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	return e.emitExtensions(2, v.Extensions)
}

func (e *emitter) emitCharacterSet(c *record.CharacterSet) error {
	if c == nil {
		return nil
	}
	if err := e.emitRequired(1, "CHAR", c.CharacterSetName); err != nil {
		return err
	}
	if err := e.emitIfPresent(2, "VERS", c.VersionNumber); err != nil {
		return err
	}
	return e.emitExtensions(2, c.Extensions)
}

func (e *emitter) emitSubmission(s *record.Submission) error {
	if s == nil {
		return nil
	}
	e.current = s.Xref
	e.line(0, s.Xref, "SUBN", "")
	if s.Submitter != nil {
		if err := emitLink(e, 1, "SUBM", s.Submitter, submitters); err != nil {
			return err
		}
	}
	for _, p := range []struct {
		tag string
		t   *record.Text
	}{
		{"FAMF", s.NameOfFamilyFile},
		{"TEMP", s.TempleCode},
		{"ANCE", s.AncestorsCount},
		{"DESC", s.DescendantsCount},
		{"ORDI", s.OrdinanceProcessFlag},
		{"RIN", s.RecIDNumber},
	} {
		if err := e.emitIfPresent(1, p.tag, p.t); err != nil {
			return err
		}
	}
	return e.emitExtensions(1, s.Extensions)
}
