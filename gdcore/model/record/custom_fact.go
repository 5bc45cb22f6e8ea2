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

import (
	"slices"

	"github.com/mitchellh/hashstructure/v2"
)

// CustomFact is a substructure whose tag the model does not know, kept with
// first-class date, description, place, citations, notes and nested custom
// facts so that it can be inspected and written back.
//
// The tag is fixed at construction and cannot be changed afterwards.
type CustomFact struct {
	tag string

	// Xref is the optional cross-reference id written before the tag.
	Xref string `json:"xref,omitempty" yaml:"xref,omitempty"`

	// Description is written as the value of the fact's own line.
	Description *Text      `json:"description,omitempty" yaml:"description,omitempty"`
	Date        *Text      `json:"date,omitempty" yaml:"date,omitempty"`
	Place       *Place     `json:"place,omitempty" yaml:"place,omitempty"`
	Citations   []Citation `json:"-" yaml:"-"`

	Notes       []*Note       `json:"notes,omitempty" yaml:"notes,omitempty"`
	CustomFacts []*CustomFact `json:"customFacts,omitempty" yaml:"customFacts,omitempty"`
}

// NewCustomFact returns an empty custom fact with the given tag.
func NewCustomFact(tag string) *CustomFact {
	return &CustomFact{tag: tag}
}

// Tag returns the fact's tag.
func (cf *CustomFact) Tag() string {
	return cf.tag
}

// Copy returns a deep copy of cf. Owned values (date, description, place,
// citations, notes and nested facts) are copied; references to other records
// from inside citations and notes are shared.
func (cf *CustomFact) Copy() *CustomFact {
	if cf == nil {
		return nil
	}
	out := &CustomFact{
		tag:         cf.tag,
		Xref:        cf.Xref,
		Description: cf.Description.Copy(),
		Date:        cf.Date.Copy(),
		Place:       cf.Place.Copy(),
		Citations:   copyCitations(cf.Citations),
		Notes:       copyNotes(cf.Notes),
		CustomFacts: copyFacts(cf.CustomFacts),
	}
	return out
}

// Equal reports whether cf and other are structurally equal: every field,
// including notes and nested custom facts, matches or is absent in both.
func (cf *CustomFact) Equal(other *CustomFact) bool {
	if cf == nil || other == nil {
		return cf == other
	}
	return cf.tag == other.tag &&
		cf.Xref == other.Xref &&
		cf.Description.Equal(other.Description) &&
		cf.Date.Equal(other.Date) &&
		cf.Place.Equal(other.Place) &&
		slices.EqualFunc(cf.Citations, other.Citations, EqualCitations) &&
		slices.EqualFunc(cf.Notes, other.Notes, (*Note).Equal) &&
		equalFacts(cf.CustomFacts, other.CustomFacts)
}

// Hash returns a structural hash of cf. Facts that are Equal hash equally.
func (cf *CustomFact) Hash() (uint64, error) {
	return hashstructure.Hash(cf.hashView(), hashstructure.FormatV2, nil)
}

// factView exposes the unexported tag and nested tags to hashstructure.
// Record references inside citations and notes are hashed by xref only.
type factView struct {
	Tag       string
	Xref      string
	DescValue *textView
	Date      *textView
	PlaceView *placeView
	Citations []citationView
	Notes     []noteView
	Children  []factView
}

type textView struct {
	Value string
	Facts []factView
}

type placeView struct {
	Name       string
	Form       *textView
	Latitude   *textView
	Longitude  *textView
	Variations []string
	Citations  []citationView
	Notes      []noteView
}

type citationView struct {
	Kind   string
	Source string
	Fields []string
	Lines  []string
	Notes  []noteView
}

type noteView struct {
	Ref   string
	Lines []string
}

func (cf *CustomFact) hashView() factView {
	v := factView{
		Tag:       cf.tag,
		Xref:      cf.Xref,
		DescValue: viewText(cf.Description),
		Date:      viewText(cf.Date),
		PlaceView: viewPlace(cf.Place),
		Citations: viewCitations(cf.Citations),
		Notes:     viewNotes(cf.Notes),
	}
	for _, c := range cf.CustomFacts {
		if c != nil {
			v.Children = append(v.Children, c.hashView())
		}
	}
	return v
}

func viewText(t *Text) *textView {
	if t == nil {
		return nil
	}
	v := &textView{Value: t.Value}
	for _, f := range t.CustomFacts {
		if f != nil {
			v.Facts = append(v.Facts, f.hashView())
		}
	}
	return v
}

func viewPlace(p *Place) *placeView {
	if p == nil {
		return nil
	}
	v := &placeView{
		Name:      p.PlaceName,
		Form:      viewText(p.Form),
		Latitude:  viewText(p.Latitude),
		Longitude: viewText(p.Longitude),
		Citations: viewCitations(p.Citations),
		Notes:     viewNotes(p.Notes),
	}
	for _, nv := range slices.Concat(p.Romanized, p.Phonetic) {
		if nv != nil {
			v.Variations = append(v.Variations, nv.Variation.String(), nv.VariationType.String())
		}
	}
	return v
}

func viewCitations(cs []Citation) []citationView {
	var out []citationView
	for _, c := range cs {
		switch c := c.(type) {
		case *CitationWithSource:
			v := citationView{
				Kind:   "source",
				Fields: []string{c.WhereInSource.String(), c.EventCited.String(), c.RoleInEvent.String(), c.Certainty.String()},
				Notes:  viewNotes(c.Notes),
			}
			if c.Source != nil {
				v.Source = c.Source.Xref
			}
			for _, d := range c.Data {
				if d != nil {
					v.Lines = append(v.Lines, d.EntryDate.String())
					v.Lines = append(v.Lines, d.SourceText...)
				}
			}
			out = append(out, v)
		case *CitationWithoutSource:
			v := citationView{Kind: "text", Lines: slices.Clone(c.Description), Notes: viewNotes(c.Notes)}
			for _, block := range c.TextFromSource {
				v.Fields = append(v.Fields, block...)
			}
			out = append(out, v)
		}
	}
	return out
}

func viewNotes(ns []*Note) []noteView {
	var out []noteView
	for _, n := range ns {
		if n == nil {
			continue
		}
		v := noteView{Lines: n.Lines}
		if n.Ref != nil {
			v.Ref = n.Ref.Xref
		}
		out = append(out, v)
	}
	return out
}

func copyFacts(in []*CustomFact) []*CustomFact {
	if in == nil {
		return nil
	}
	out := make([]*CustomFact, len(in))
	for i, f := range in {
		out[i] = f.Copy()
	}
	return out
}

func equalFacts(a, b []*CustomFact) bool {
	return slices.EqualFunc(a, b, (*CustomFact).Equal)
}
