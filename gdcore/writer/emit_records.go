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

func (e *emitter) emitNoteRecord(n *record.NoteRecord) error {
	e.current = n.Xref
	e.emitLinesOfText(0, n.Xref, "NOTE", n.Lines)
	if err := e.emitCitations(1, n.Citations); err != nil {
		return err
	}
	if err := e.emitUserReferences(1, n.UserReferences); err != nil {
		return err
	}
	if err := e.emitIfPresent(1, "RIN", n.RecIDNumber); err != nil {
		return err
	}
	if err := e.emitChangeDate(1, n.ChangeDate); err != nil {
		return err
	}
	return e.emitExtensions(1, n.Extensions)
}

func (e *emitter) emitRepository(r *record.Repository) error {
	e.current = r.Xref
	e.line(0, r.Xref, "REPO", "")
	if err := e.emitIfPresent(1, "NAME", r.Name); err != nil {
		return err
	}
	if err := e.emitAddress(1, r.Address); err != nil {
		return err
	}
	if err := e.emitNotes(1, r.Notes); err != nil {
		return err
	}
	if err := e.emitUserReferences(1, r.UserReferences); err != nil {
		return err
	}
	if err := e.emitIfPresent(1, "RIN", r.RecIDNumber); err != nil {
		return err
	}
	if err := e.emitContactInfo(1, r.ContactInfo); err != nil {
		return err
	}
	if err := e.emitChangeDate(1, r.ChangeDate); err != nil {
		return err
	}
	return e.emitExtensions(1, r.Extensions)
}

func (e *emitter) emitSource(s *record.Source) error {
	e.current = s.Xref
	e.line(0, s.Xref, "SOUR", "")
	if d := s.Data; d != nil {
		e.emitTag(1, "DATA")
		for _, ev := range d.EventsRecorded {
			if ev == nil {
				continue
			}
			if err := e.emitOptionalValue(2, "EVEN", ev.EventType); err != nil {
				return err
			}
			if err := e.emitIfPresent(3, "DATE", ev.DatePeriod); err != nil {
				return err
			}
			if err := e.emitIfPresent(3, "PLAC", ev.Jurisdiction); err != nil {
				return err
			}
			if err := e.emitExtensions(3, ev.Extensions); err != nil {
				return err
			}
		}
		if err := e.emitIfPresent(2, "AGNC", d.RespAgency); err != nil {
			return err
		}
		if err := e.emitNotes(2, d.Notes); err != nil {
			return err
		}
		if err := e.emitExtensions(2, d.Extensions); err != nil {
			return err
		}
	}
	e.emitLinesOfText(1, "", "AUTH", s.OriginatorsAuthors)
	e.emitLinesOfText(1, "", "TITL", s.Title)
	if err := e.emitIfPresent(1, "ABBR", s.SourceFiledBy); err != nil {
		return err
	}
	e.emitLinesOfText(1, "", "PUBL", s.PublicationFacts)
	e.emitLinesOfText(1, "", "TEXT", s.SourceText)
	if err := e.emitRepositoryCitation(1, s.RepositoryCitation); err != nil {
		return err
	}
	if err := e.emitMultimediaLinks(1, s.Multimedia); err != nil {
		return err
	}
	if err := e.emitNotes(1, s.Notes); err != nil {
		return err
	}
	if err := e.emitUserReferences(1, s.UserReferences); err != nil {
		return err
	}
	if err := e.emitIfPresent(1, "RIN", s.RecIDNumber); err != nil {
		return err
	}
	if err := e.emitChangeDate(1, s.ChangeDate); err != nil {
		return err
	}
	return e.emitExtensions(1, s.Extensions)
}

func (e *emitter) emitRepositoryCitation(level int, rc *record.RepositoryCitation) error {
	if rc == nil {
		return nil
	}
	if rc.Repository == nil {
		return e.structural("REPO", "repository citation has no repository")
	}
	if err := emitLink(e, level, "REPO", rc.Repository, repositories); err != nil {
		return err
	}
	if err := e.emitNotes(level+1, rc.Notes); err != nil {
		return err
	}
	for _, cn := range rc.CallNumbers {
		if cn == nil {
			continue
		}
		if err := e.emitRequired(level+1, "CALN", cn.CallNumber); err != nil {
			return err
		}
		if err := e.emitIfPresent(level+2, "MEDI", cn.MediaType); err != nil {
			return err
		}
		if err := e.emitExtensions(level+2, cn.Extensions); err != nil {
			return err
		}
	}
	return e.emitExtensions(level+1, rc.Extensions)
}

func (e *emitter) emitSubmitter(s *record.Submitter) error {
	e.current = s.Xref
	e.line(0, s.Xref, "SUBM", "")
	if err := e.emitRequired(1, "NAME", s.Name); err != nil {
		return err
	}
	if err := e.emitAddress(1, s.Address); err != nil {
		return err
	}
	if err := e.emitContactInfo(1, s.ContactInfo); err != nil {
		return err
	}
	if err := e.emitMultimediaLinks(1, s.Multimedia); err != nil {
		return err
	}
	if err := e.emitTexts(1, "LANG", s.LanguagePreferences); err != nil {
		return err
	}
	if err := e.emitIfPresent(1, "RFN", s.RegFileNumber); err != nil {
		return err
	}
	if err := e.emitIfPresent(1, "RIN", s.RecIDNumber); err != nil {
		return err
	}
	if err := e.emitUserReferences(1, s.UserReferences); err != nil {
		return err
	}
	if err := e.emitNotes(1, s.Notes); err != nil {
		return err
	}
	if err := e.emitChangeDate(1, s.ChangeDate); err != nil {
		return err
	}
	return e.emitExtensions(1, s.Extensions)
}

// emitMultimedia writes an OBJE record in the layout of the target dialect.
// Features of the other dialect are rejected before any line of the record
// is written.
func (e *emitter) emitMultimedia(m *record.Multimedia) error {
	e.current = m.Xref
	if e.g55() {
		return e.emitMultimedia55(m)
	}
	return e.emitMultimedia551(m)
}

func (e *emitter) emitMultimedia55(m *record.Multimedia) error {
	if len(m.FileReferences) > 0 {
		return e.dialectError("multimedia record has file references; 5.5 uses embedded BLOB data")
	}
	e.line(0, m.Xref, "OBJE", "")
	if err := e.emitRequired(1, "FORM", m.EmbeddedMediaFormat); err != nil {
		return err
	}
	if err := e.emitIfPresent(1, "TITL", m.EmbeddedTitle); err != nil {
		return err
	}
	if err := e.emitNotes(1, m.Notes); err != nil {
		return err
	}
	if err := e.emitCitations(1, m.Citations); err != nil {
		return err
	}
	e.emitTag(1, "BLOB")
	for _, b := range m.Blob {
		if b == "" {
			return e.structural("CONT", "BLOB line is empty")
		}
		e.line(2, "", "CONT", b)
	}
	if m.ContinuedObject != nil {
		if err := emitLink(e, 1, "OBJE", m.ContinuedObject, multimedia); err != nil {
			return err
		}
	}
	return e.emitMultimediaTrailer(m, false)
}

func (e *emitter) emitMultimedia551(m *record.Multimedia) error {
	switch {
	case len(m.Blob) > 0:
		return e.dialectError("multimedia record has BLOB data")
	case m.ContinuedObject != nil:
		return e.dialectError("multimedia record has a continued object")
	case m.EmbeddedMediaFormat != nil:
		return e.dialectError("multimedia record has an embedded media format")
	case m.EmbeddedTitle != nil:
		return e.dialectError("multimedia record has an embedded title")
	}
	e.line(0, m.Xref, "OBJE", "")
	for _, fr := range m.FileReferences {
		if fr == nil {
			continue
		}
		if err := e.emitRequired(1, "FILE", fr.ReferenceToFile); err != nil {
			return err
		}
		if err := e.emitRequired(2, "FORM", fr.Format); err != nil {
			return err
		}
		if err := e.emitIfPresent(3, "TYPE", fr.MediaType); err != nil {
			return err
		}
		if err := e.emitIfPresent(2, "TITL", fr.Title); err != nil {
			return err
		}
		if err := e.emitExtensions(2, fr.Extensions); err != nil {
			return err
		}
	}
	return e.emitMultimediaTrailer(m, true)
}

// emitMultimediaTrailer writes the parts both layouts share. 5.5.1 places
// notes and citations after the record identifiers.
func (e *emitter) emitMultimediaTrailer(m *record.Multimedia, withNotes bool) error {
	if err := e.emitUserReferences(1, m.UserReferences); err != nil {
		return err
	}
	if err := e.emitIfPresent(1, "RIN", m.RecIDNumber); err != nil {
		return err
	}
	if withNotes {
		if err := e.emitNotes(1, m.Notes); err != nil {
			return err
		}
		if err := e.emitCitations(1, m.Citations); err != nil {
			return err
		}
	}
	if err := e.emitChangeDate(1, m.ChangeDate); err != nil {
		return err
	}
	return e.emitExtensions(1, m.Extensions)
}
