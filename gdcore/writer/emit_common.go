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
	"strings"

	"dirpx.dev/gedcom/gdcore/errors"
	"dirpx.dev/gedcom/gdcore/model/record"
)

func (e *emitter) emitNotes(level int, notes []*record.Note) error {
	for _, n := range notes {
		if err := e.emitNote(level, n); err != nil {
			return err
		}
	}
	return nil
}

// emitNote writes a pointer to a root note, or the inline note text with
// its citations.
func (e *emitter) emitNote(level int, n *record.Note) error {
	if n == nil {
		return nil
	}
	if n.Ref != nil {
		if err := emitLink(e, level, "NOTE", n.Ref, notes); err != nil {
			return err
		}
	} else {
		e.emitValue(level, "", "NOTE", joinLines(n.Lines))
		if err := e.emitCitations(level+1, n.Citations); err != nil {
			return err
		}
	}
	return e.emitExtensions(level+1, n.Extensions)
}

func (e *emitter) emitCitations(level int, cs []record.Citation) error {
	for _, c := range cs {
		if err := e.emitCitation(level, c); err != nil {
			return err
		}
	}
	return nil
}

func (e *emitter) emitCitation(level int, c record.Citation) error {
	switch c := c.(type) {
	case nil:
		return nil
	case *record.CitationWithSource:
		return e.emitCitationWithSource(level, c)
	case *record.CitationWithoutSource:
		return e.emitCitationWithoutSource(level, c)
	default:
		return e.structural("SOUR", "unsupported citation type")
	}
}

func (e *emitter) emitCitationWithSource(level int, c *record.CitationWithSource) error {
	if c == nil {
		return nil
	}
	if c.Source == nil {
		return e.structural("SOUR", "citation has no source")
	}
	if err := emitLink(e, level, "SOUR", c.Source, sources); err != nil {
		return err
	}
	if err := e.emitIfPresent(level+1, "PAGE", c.WhereInSource); err != nil {
		return err
	}
	if err := e.emitIfPresent(level+1, "EVEN", c.EventCited); err != nil {
		return err
	}
	if !c.EventCited.IsEmpty() {
		if err := e.emitIfPresent(level+2, "ROLE", c.RoleInEvent); err != nil {
			return err
		}
	}
	for _, d := range c.Data {
		if d == nil {
			continue
		}
		e.emitTag(level+1, "DATA")
		if err := e.emitIfPresent(level+2, "DATE", d.EntryDate); err != nil {
			return err
		}
		if len(d.SourceText) > 0 {
			e.emitLinesOfText(level+2, "", "TEXT", d.SourceText)
		}
		if err := e.emitExtensions(level+2, d.Extensions); err != nil {
			return err
		}
	}
	if err := e.emitIfPresent(level+1, "QUAY", c.Certainty); err != nil {
		return err
	}
	if err := e.emitMultimediaLinks(level+1, c.Multimedia); err != nil {
		return err
	}
	if err := e.emitNotes(level+1, c.Notes); err != nil {
		return err
	}
	return e.emitExtensions(level+1, c.Extensions)
}

func (e *emitter) emitCitationWithoutSource(level int, c *record.CitationWithoutSource) error {
	if c == nil {
		return nil
	}
	e.emitValue(level, "", "SOUR", joinLines(c.Description))
	for _, text := range c.TextFromSource {
		if len(text) > 0 {
			e.emitLinesOfText(level+1, "", "TEXT", text)
		}
	}
	if err := e.emitNotes(level+1, c.Notes); err != nil {
		return err
	}
	return e.emitExtensions(level+1, c.Extensions)
}

// emitPlace writes a PLAC structure. The place name is always written, even
// when blank.
func (e *emitter) emitPlace(level int, p *record.Place) error {
	if p == nil {
		return nil
	}
	e.emitValue(level, "", "PLAC", p.PlaceName)
	if err := e.emitIfPresent(level+1, "FORM", p.Form); err != nil {
		return err
	}
	if err := e.emitNameVariations(level+1, "FONE", p.Phonetic); err != nil {
		return err
	}
	if err := e.emitNameVariations(level+1, "ROMN", p.Romanized); err != nil {
		return err
	}
	if !p.Latitude.IsEmpty() || !p.Longitude.IsEmpty() {
		e.emitTag(level+1, "MAP")
		if err := e.emitIfPresent(level+2, "LATI", p.Latitude); err != nil {
			return err
		}
		if err := e.emitIfPresent(level+2, "LONG", p.Longitude); err != nil {
			return err
		}
	}
	if err := e.emitCitations(level+1, p.Citations); err != nil {
		return err
	}
	if err := e.emitNotes(level+1, p.Notes); err != nil {
		return err
	}
	return e.emitExtensions(level+1, p.Extensions)
}

func (e *emitter) emitNameVariations(level int, tag string, vs []*record.NameVariation) error {
	for _, v := range vs {
		if v == nil {
			continue
		}
		if err := e.emitRequired(level, tag, v.Variation); err != nil {
			return err
		}
		if err := e.emitIfPresent(level+1, "TYPE", v.VariationType); err != nil {
			return err
		}
		if err := e.emitExtensions(level+1, v.Extensions); err != nil {
			return err
		}
	}
	return nil
}

// emitAddress writes an ADDR structure: free-form lines first, then the
// structured parts.
func (e *emitter) emitAddress(level int, a *record.Address) error {
	if a == nil {
		return nil
	}
	e.emitValue(level, "", "ADDR", joinLines(a.Lines))
	for _, p := range []struct {
		tag string
		t   *record.Text
	}{
		{"ADR1", a.AddressLine1},
		{"ADR2", a.AddressLine2},
		{"ADR3", a.AddressLine3},
		{"CITY", a.City},
		{"STAE", a.StateProvince},
		{"POST", a.PostalCode},
		{"CTRY", a.Country},
	} {
		if err := e.emitIfPresent(level+1, p.tag, p.t); err != nil {
			return err
		}
	}
	return e.emitExtensions(level+1, a.Extensions)
}

// emitContactInfo writes PHON, then WWW, FAX and EMAIL, all at level.
func (e *emitter) emitContactInfo(level int, c record.ContactInfo) error {
	if err := e.emitTexts(level, "PHON", c.PhoneNumbers); err != nil {
		return err
	}
	if err := e.emitTexts(level, "WWW", c.WWWURLs); err != nil {
		return err
	}
	if err := e.emitTexts(level, "FAX", c.FaxNumbers); err != nil {
		return err
	}
	return e.emitTexts(level, "EMAIL", c.Emails)
}

func (e *emitter) emitChangeDate(level int, c *record.ChangeDate) error {
	if c == nil {
		return nil
	}
	e.emitTag(level, "CHAN")
	if err := e.emitRequired(level+1, "DATE", c.Date); err != nil {
		return err
	}
	if err := e.emitIfPresent(level+2, "TIME", c.Time); err != nil {
		return err
	}
	if err := e.emitNotes(level+1, c.Notes); err != nil {
		return err
	}
	return e.emitExtensions(level+1, c.Extensions)
}

func (e *emitter) emitUserReferences(level int, refs []*record.UserReference) error {
	for _, r := range refs {
		if r == nil {
			continue
		}
		if err := e.emitRequired(level, "REFN", r.ReferenceNum); err != nil {
			return err
		}
		if err := e.emitIfPresent(level+1, "TYPE", r.Type); err != nil {
			return err
		}
		if err := e.emitExtensions(level+1, r.Extensions); err != nil {
			return err
		}
	}
	return nil
}

// emitSubmitterLinks writes one pointer line per submitter. A nil entry is a
// structural error.
func (e *emitter) emitSubmitterLinks(level int, tag string, subs []*record.Submitter) error {
	for _, s := range subs {
		if s == nil {
			return e.structural(tag, "submitter link is nil")
		}
		if err := emitLink(e, level, tag, s, submitters); err != nil {
			return err
		}
	}
	return nil
}

func (e *emitter) emitMultimediaLinks(level int, links []*record.MultimediaLink) error {
	for _, l := range links {
		if err := e.emitMultimediaLink(level, l); err != nil {
			return err
		}
	}
	return nil
}

// emitMultimediaLink writes an OBJE pointer, or an inline multimedia link in
// the layout of the target dialect.
func (e *emitter) emitMultimediaLink(level int, l *record.MultimediaLink) error {
	if l == nil {
		return nil
	}
	if l.Ref != nil {
		if err := emitLink(e, level, "OBJE", l.Ref, multimedia); err != nil {
			return err
		}
		return e.emitExtensions(level+1, l.Extensions)
	}
	if e.g55() {
		if len(l.FileReferences) > 0 {
			return e.dialectError("multimedia link has file references; use FORM and FILE instead")
		}
		e.emitTag(level, "OBJE")
		if err := e.emitRequired(level+1, "FORM", l.Format); err != nil {
			return err
		}
		if err := e.emitIfPresent(level+1, "TITL", l.Title); err != nil {
			return err
		}
		if err := e.emitRequired(level+1, "FILE", l.File); err != nil {
			return err
		}
	} else {
		if l.Format != nil || l.File != nil {
			return e.dialectError("multimedia link has FORM or FILE outside a file reference")
		}
		e.emitTag(level, "OBJE")
		for _, fr := range l.FileReferences {
			if fr == nil {
				continue
			}
			if err := e.emitRequired(level+1, "FILE", fr.ReferenceToFile); err != nil {
				return err
			}
			if err := e.emitRequired(level+2, "FORM", fr.Format); err != nil {
				return err
			}
			if err := e.emitIfPresent(level+3, "MEDI", fr.MediaType); err != nil {
				return err
			}
			if err := e.emitExtensions(level+2, fr.Extensions); err != nil {
				return err
			}
		}
		if err := e.emitIfPresent(level+1, "TITL", l.Title); err != nil {
			return err
		}
	}
	if err := e.emitNotes(level+1, l.Notes); err != nil {
		return err
	}
	return e.emitExtensions(level+1, l.Extensions)
}

func (e *emitter) dialectError(reason string) error {
	return &errors.DialectError{Dialect: e.dialect.String(), Xref: e.current, Reason: reason}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
