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
	"strconv"
	"strings"
	"unicode/utf8"

	"dirpx.dev/gedcom/gdcore/errors"
	"dirpx.dev/gedcom/gdcore/model"
	"dirpx.dev/gedcom/gdcore/model/record"
)

// maxValueLength is the longest value written on one line. Longer values
// continue on CONC lines.
const maxValueLength = 248

// emitter owns the output buffer of one write. Its methods each emit one
// kind of substructure at a given level.
type emitter struct {
	dialect model.Dialect
	lines   []string

	// graph, when set, is the graph every written reference must resolve
	// into. Emitters used on detached substructures leave it nil.
	graph *record.Gedcom

	// current is the xref of the top-level record being emitted. Structural
	// errors report it.
	current string
}

func newEmitter(d model.Dialect) *emitter {
	return &emitter{dialect: d}
}

func (e *emitter) g55() bool { return e.dialect == model.V55 }

func (e *emitter) line(level int, xref, tag, value string) {
	var b strings.Builder
	b.Grow(len(xref) + len(tag) + len(value) + 6)
	b.WriteString(strconv.Itoa(level))
	b.WriteByte(' ')
	if xref != "" {
		b.WriteString(xref)
		b.WriteByte(' ')
	}
	b.WriteString(tag)
	if value != "" {
		b.WriteByte(' ')
		b.WriteString(value)
	}
	e.lines = append(e.lines, b.String())
}

func (e *emitter) structural(tag, reason string) error {
	return &errors.StructuralError{Xref: e.current, Tag: tag, Reason: reason}
}

// emitTag writes a line with no value.
func (e *emitter) emitTag(level int, tag string) {
	e.line(level, "", tag, "")
}

// emitValue writes tag with value, continuing embedded newlines on CONT
// lines and overlong lines on CONC lines one level deeper.
func (e *emitter) emitValue(level int, xref, tag, value string) {
	for i, ln := range strings.Split(value, "\n") {
		chunks := splitLong(strings.TrimSuffix(ln, "\r"))
		if i == 0 {
			e.line(level, xref, tag, chunks[0])
		} else {
			e.line(level+1, "", "CONT", chunks[0])
		}
		for _, c := range chunks[1:] {
			e.line(level+1, "", "CONC", c)
		}
	}
}

// splitLong cuts s into pieces of at most maxValueLength bytes on rune
// boundaries. A cut is moved left so that no piece ends in a space, since
// readers may trim trailing whitespace.
func splitLong(s string) []string {
	var out []string
	for len(s) > maxValueLength {
		cut := maxValueLength
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		if cut == 0 {
			cut = maxValueLength
		}
		for c := cut; c > 1; c-- {
			if s[c-1] != ' ' && s[c] != ' ' && utf8.RuneStart(s[c]) {
				cut = c
				break
			}
		}
		out = append(out, s[:cut])
		s = s[cut:]
	}
	return append(out, s)
}

// emitRequired writes tag with the value of t. An absent or empty value is a
// structural error.
func (e *emitter) emitRequired(level int, tag string, t *record.Text) error {
	if t.IsEmpty() {
		return e.structural(tag, "required value is missing")
	}
	e.emitValue(level, "", tag, t.Value)
	return e.emitCustomFacts(level+1, t.CustomFacts)
}

// linked is a record that can be the target of a cross-reference.
type linked interface {
	comparable
	XrefID() string
}

// emitLink writes tag pointing at r. The target must have an xref and, when
// the emitter is bound to a graph, be the very record stored under that xref
// in the collection returned by in.
func emitLink[T linked](e *emitter, level int, tag string, r T, in func(*record.Gedcom) map[string]T) error {
	xref := r.XrefID()
	if xref == "" {
		return e.structural(tag, "referenced record has no xref")
	}
	if e.graph != nil {
		if !record.Resolves(in(e.graph), r) {
			return e.structural(tag, "reference "+xref+" is not in the graph")
		}
	}
	e.line(level, "", tag, xref)
	return nil
}

func individuals(g *record.Gedcom) map[string]*record.Individual  { return g.Individuals }
func families(g *record.Gedcom) map[string]*record.Family         { return g.Families }
func sources(g *record.Gedcom) map[string]*record.Source          { return g.Sources }
func repositories(g *record.Gedcom) map[string]*record.Repository { return g.Repositories }
func multimedia(g *record.Gedcom) map[string]*record.Multimedia   { return g.Multimedia }
func submitters(g *record.Gedcom) map[string]*record.Submitter    { return g.Submitters }
func notes(g *record.Gedcom) map[string]*record.NoteRecord        { return g.Notes }

// submissions exposes the graph's single submission as a collection.
func submissions(g *record.Gedcom) map[string]*record.Submission {
	if g.Submission == nil {
		return nil
	}
	return map[string]*record.Submission{g.Submission.Xref: g.Submission}
}

// emitIfPresent writes tag only when t has a non-empty value.
func (e *emitter) emitIfPresent(level int, tag string, t *record.Text) error {
	if t.IsEmpty() {
		return nil
	}
	e.emitValue(level, "", tag, t.Value)
	return e.emitCustomFacts(level+1, t.CustomFacts)
}

// emitOptionalValue always writes tag, with the value of t when it has one.
func (e *emitter) emitOptionalValue(level int, tag string, t *record.Text) error {
	e.emitValue(level, "", tag, t.String())
	if t == nil {
		return nil
	}
	return e.emitCustomFacts(level+1, t.CustomFacts)
}

// emitValueOrBlank writes nothing for an absent t, a bare tag for a present
// but empty t, and tag with value otherwise.
func (e *emitter) emitValueOrBlank(level int, tag string, t *record.Text) error {
	if t == nil {
		return nil
	}
	return e.emitOptionalValue(level, tag, t)
}

// emitLinesOfText writes the first line as the value of tag and the rest as
// CONT lines. Nothing is written for an empty slice.
func (e *emitter) emitLinesOfText(level int, xref, tag string, lines []string) {
	if len(lines) == 0 {
		if xref != "" {
			e.line(level, xref, tag, "")
		}
		return
	}
	e.emitValue(level, xref, tag, strings.Join(lines, "\n"))
}

// emitTexts writes one tag line per non-empty value.
func (e *emitter) emitTexts(level int, tag string, ts []*record.Text) error {
	for _, t := range ts {
		if err := e.emitIfPresent(level, tag, t); err != nil {
			return err
		}
	}
	return nil
}

// emitExtensions writes custom facts, then custom tags. It is always the
// last thing written for a structure.
func (e *emitter) emitExtensions(level int, x record.Extensions) error {
	if err := e.emitCustomFacts(level, x.CustomFacts); err != nil {
		return err
	}
	return e.emitCustomTags(level, x.CustomTags)
}

// emitCustomTags writes each tree and its children, one level deeper per
// generation, exactly as captured.
func (e *emitter) emitCustomTags(level int, trees []*record.StringTree) error {
	for _, st := range trees {
		if st == nil {
			continue
		}
		if strings.TrimSpace(st.Tag) == "" {
			return e.structural("", "custom tag has no tag")
		}
		e.line(level, unlessBlank(st.ID), st.Tag, unlessBlank(st.Value))
		if err := e.emitCustomTags(level+1, st.Children); err != nil {
			return err
		}
	}
	return nil
}

// unlessBlank returns s untouched, or "" when s holds only whitespace.
func unlessBlank(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// emitCustomFacts writes each fact as "LEVEL [XREF] TAG [DESCRIPTION]" followed
// by its date, place, citations, notes and nested facts.
func (e *emitter) emitCustomFacts(level int, facts []*record.CustomFact) error {
	for _, cf := range facts {
		if cf == nil {
			continue
		}
		if cf.Tag() == "" {
			return e.structural("", "custom fact has no tag")
		}
		e.emitValue(level, cf.Xref, cf.Tag(), cf.Description.String())
		if cf.Description != nil {
			if err := e.emitCustomFacts(level+1, cf.Description.CustomFacts); err != nil {
				return err
			}
		}
		if err := e.emitIfPresent(level+1, "DATE", cf.Date); err != nil {
			return err
		}
		if err := e.emitPlace(level+1, cf.Place); err != nil {
			return err
		}
		if err := e.emitCitations(level+1, cf.Citations); err != nil {
			return err
		}
		if err := e.emitNotes(level+1, cf.Notes); err != nil {
			return err
		}
		if err := e.emitCustomFacts(level+1, cf.CustomFacts); err != nil {
			return err
		}
	}
	return nil
}
