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

import "slices"

// Citation is a SOUR citation substructure. It has exactly two forms:
// *CitationWithSource, which points at a Source record, and
// *CitationWithoutSource, which carries its description inline.
//
// Code that handles citations switches over both cases.
type Citation interface {
	isCitation()
}

// CitationWithSource cites a Source record.
type CitationWithSource struct {
	Source        *Source           `json:"-" yaml:"-"`
	WhereInSource *Text             `json:"page,omitempty" yaml:"page,omitempty"`
	EventCited    *Text             `json:"eventCited,omitempty" yaml:"eventCited,omitempty"`
	RoleInEvent   *Text             `json:"roleInEvent,omitempty" yaml:"roleInEvent,omitempty"`
	Data          []*CitationData   `json:"data,omitempty" yaml:"data,omitempty"`
	Certainty     *Text             `json:"certainty,omitempty" yaml:"certainty,omitempty"`
	Multimedia    []*MultimediaLink `json:"multimedia,omitempty" yaml:"multimedia,omitempty"`
	Notes         []*Note           `json:"notes,omitempty" yaml:"notes,omitempty"`
	Extensions
}

// CitationData is the DATA block of a citation with source.
type CitationData struct {
	EntryDate  *Text    `json:"entryDate,omitempty" yaml:"entryDate,omitempty"`
	SourceText []string `json:"sourceText,omitempty" yaml:"sourceText,omitempty"`
	Extensions
}

// CitationWithoutSource is a free-text citation. Description is written as
// the SOUR value plus CONT lines; each TextFromSource block becomes a TEXT
// structure.
type CitationWithoutSource struct {
	Description    []string   `json:"description,omitempty" yaml:"description,omitempty"`
	TextFromSource [][]string `json:"textFromSource,omitempty" yaml:"textFromSource,omitempty"`
	Notes          []*Note    `json:"notes,omitempty" yaml:"notes,omitempty"`
	Extensions
}

func (*CitationWithSource) isCitation()    {}
func (*CitationWithoutSource) isCitation() {}

// Copy returns a deep copy of c. The cited Source record is shared.
func (c *CitationWithSource) Copy() *CitationWithSource {
	if c == nil {
		return nil
	}
	out := &CitationWithSource{
		Source:        c.Source,
		WhereInSource: c.WhereInSource.Copy(),
		EventCited:    c.EventCited.Copy(),
		RoleInEvent:   c.RoleInEvent.Copy(),
		Certainty:     c.Certainty.Copy(),
		Notes:         copyNotes(c.Notes),
		Extensions:    c.Extensions.Copy(),
	}
	for _, d := range c.Data {
		out.Data = append(out.Data, d.Copy())
	}
	for _, m := range c.Multimedia {
		out.Multimedia = append(out.Multimedia, m.Copy())
	}
	return out
}

// Equal reports whether c and other are structurally equal. The cited
// sources are compared by xref.
func (c *CitationWithSource) Equal(other *CitationWithSource) bool {
	if c == nil || other == nil {
		return c == other
	}
	return sameXref(c.Source, other.Source) &&
		c.WhereInSource.Equal(other.WhereInSource) &&
		c.EventCited.Equal(other.EventCited) &&
		c.RoleInEvent.Equal(other.RoleInEvent) &&
		slices.EqualFunc(c.Data, other.Data, (*CitationData).Equal) &&
		c.Certainty.Equal(other.Certainty) &&
		slices.EqualFunc(c.Multimedia, other.Multimedia, (*MultimediaLink).Equal) &&
		slices.EqualFunc(c.Notes, other.Notes, (*Note).Equal) &&
		c.Extensions.Equal(other.Extensions)
}

// Copy returns a deep copy of d.
func (d *CitationData) Copy() *CitationData {
	if d == nil {
		return nil
	}
	return &CitationData{
		EntryDate:  d.EntryDate.Copy(),
		SourceText: slices.Clone(d.SourceText),
		Extensions: d.Extensions.Copy(),
	}
}

// Equal reports whether d and other are structurally equal.
func (d *CitationData) Equal(other *CitationData) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.EntryDate.Equal(other.EntryDate) &&
		slices.Equal(d.SourceText, other.SourceText) &&
		d.Extensions.Equal(other.Extensions)
}

// Copy returns a deep copy of c.
func (c *CitationWithoutSource) Copy() *CitationWithoutSource {
	if c == nil {
		return nil
	}
	out := &CitationWithoutSource{
		Description: slices.Clone(c.Description),
		Notes:       copyNotes(c.Notes),
		Extensions:  c.Extensions.Copy(),
	}
	for _, block := range c.TextFromSource {
		out.TextFromSource = append(out.TextFromSource, slices.Clone(block))
	}
	return out
}

// Equal reports whether c and other are structurally equal.
func (c *CitationWithoutSource) Equal(other *CitationWithoutSource) bool {
	if c == nil || other == nil {
		return c == other
	}
	return slices.Equal(c.Description, other.Description) &&
		slices.EqualFunc(c.TextFromSource, other.TextFromSource, slices.Equal[[]string]) &&
		slices.EqualFunc(c.Notes, other.Notes, (*Note).Equal) &&
		c.Extensions.Equal(other.Extensions)
}

// CopyCitation returns a deep copy of c, preserving its form.
func CopyCitation(c Citation) Citation {
	switch c := c.(type) {
	case *CitationWithSource:
		return c.Copy()
	case *CitationWithoutSource:
		return c.Copy()
	default:
		return nil
	}
}

// EqualCitations reports whether a and b have the same form and are
// structurally equal.
func EqualCitations(a, b Citation) bool {
	switch a := a.(type) {
	case *CitationWithSource:
		b, ok := b.(*CitationWithSource)
		return ok && a.Equal(b)
	case *CitationWithoutSource:
		b, ok := b.(*CitationWithoutSource)
		return ok && a.Equal(b)
	default:
		return a == nil && b == nil
	}
}

func copyCitations(in []Citation) []Citation {
	if in == nil {
		return nil
	}
	out := make([]Citation, len(in))
	for i, c := range in {
		out[i] = CopyCitation(c)
	}
	return out
}
