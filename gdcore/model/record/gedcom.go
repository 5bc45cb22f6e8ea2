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
	"fmt"

	"go.uber.org/multierr"

	"dirpx.dev/gedcom/gdcore/model"
)

// Gedcom is the root aggregate of a record graph.
//
// Each collection is keyed by the record's cross-reference id; the key and
// the record's Xref field must agree. Map order carries no meaning.
type Gedcom struct {
	Header       *Header                `json:"header" yaml:"header"`
	Submission   *Submission            `json:"submission,omitempty" yaml:"submission,omitempty"`
	Individuals  map[string]*Individual `json:"individuals,omitempty" yaml:"individuals,omitempty"`
	Families     map[string]*Family     `json:"families,omitempty" yaml:"families,omitempty"`
	Sources      map[string]*Source     `json:"sources,omitempty" yaml:"sources,omitempty"`
	Repositories map[string]*Repository `json:"repositories,omitempty" yaml:"repositories,omitempty"`
	Multimedia   map[string]*Multimedia `json:"multimedia,omitempty" yaml:"multimedia,omitempty"`
	Submitters   map[string]*Submitter  `json:"submitters,omitempty" yaml:"submitters,omitempty"`
	Notes        map[string]*NoteRecord `json:"notes,omitempty" yaml:"notes,omitempty"`
	CustomTags   []*StringTree          `json:"customTags,omitempty" yaml:"customTags,omitempty"`
}

// NewGedcom returns an empty graph with an empty header and initialized
// collections.
func NewGedcom() *Gedcom {
	return &Gedcom{
		Header:       &Header{},
		Individuals:  map[string]*Individual{},
		Families:     map[string]*Family{},
		Sources:      map[string]*Source{},
		Repositories: map[string]*Repository{},
		Multimedia:   map[string]*Multimedia{},
		Submitters:   map[string]*Submitter{},
		Notes:        map[string]*NoteRecord{},
	}
}

// AddIndividual stores i under its xref and returns it. A record without an xref
// is given the first free "@I<n>@" id.
func (g *Gedcom) AddIndividual(i *Individual) *Individual {
	g.Individuals = add(g.Individuals, "I", &i.Xref, i)
	return i
}

// AddFamily stores f under its xref and returns it. A record without an xref
// is given the first free "@F<n>@" id.
func (g *Gedcom) AddFamily(f *Family) *Family {
	g.Families = add(g.Families, "F", &f.Xref, f)
	return f
}

// AddSource stores s under its xref and returns it. A record without an xref
// is given the first free "@S<n>@" id.
func (g *Gedcom) AddSource(s *Source) *Source {
	g.Sources = add(g.Sources, "S", &s.Xref, s)
	return s
}

// AddRepository stores r under its xref and returns it. A record without an xref
// is given the first free "@R<n>@" id.
func (g *Gedcom) AddRepository(r *Repository) *Repository {
	g.Repositories = add(g.Repositories, "R", &r.Xref, r)
	return r
}

// AddMultimedia stores m under its xref and returns it. A record without an xref
// is given the first free "@M<n>@" id.
func (g *Gedcom) AddMultimedia(m *Multimedia) *Multimedia {
	g.Multimedia = add(g.Multimedia, "M", &m.Xref, m)
	return m
}

// AddSubmitter stores s under its xref and returns it. A record without an xref
// is given the first free "@U<n>@" id.
func (g *Gedcom) AddSubmitter(s *Submitter) *Submitter {
	g.Submitters = add(g.Submitters, "U", &s.Xref, s)
	return s
}

// AddNote stores n under its xref and returns it. A record without an xref
// is given the first free "@N<n>@" id.
func (g *Gedcom) AddNote(n *NoteRecord) *NoteRecord {
	g.Notes = add(g.Notes, "N", &n.Xref, n)
	return n
}

func add[T any](m map[string]T, prefix string, xref *string, v T) map[string]T {
	if m == nil {
		m = map[string]T{}
	}
	if *xref == "" {
		*xref = NextXref(m, prefix)
	}
	m[*xref] = v
	return m
}

// Link records that child is a child of f on both sides of the
// relationship and returns the child's FamilyChild link.
func (g *Gedcom) Link(f *Family, child *Individual) *FamilyChild {
	f.Children = append(f.Children, child)
	fc := &FamilyChild{Family: f}
	child.FamiliesWhereChild = append(child.FamiliesWhereChild, fc)
	return fc
}

// Marry records husband and wife as the spouses of f on both sides of the
// relationship. Either may be nil.
func (g *Gedcom) Marry(f *Family, husband, wife *Individual) {
	if husband != nil {
		f.Husband = husband
		husband.FamiliesWhereSpouse = append(husband.FamiliesWhereSpouse, &FamilySpouse{Family: f})
	}
	if wife != nil {
		f.Wife = wife
		wife.FamiliesWhereSpouse = append(wife.FamiliesWhereSpouse, &FamilySpouse{Family: f})
	}
}

// Validate checks every record's own invariants and that each collection key
// matches its record's xref. All problems are reported, not only the first.
func (g *Gedcom) Validate() error {
	var err error
	err = multierr.Append(err, validateCollection(g.Individuals))
	err = multierr.Append(err, validateCollection(g.Families))
	err = multierr.Append(err, validateCollection(g.Sources))
	err = multierr.Append(err, validateCollection(g.Repositories))
	err = multierr.Append(err, validateCollection(g.Multimedia))
	err = multierr.Append(err, validateCollection(g.Submitters))
	err = multierr.Append(err, validateCollection(g.Notes))
	if g.Submission != nil {
		err = multierr.Append(err, g.Submission.Validate())
	}
	return err
}

func validateCollection[T model.Record](m map[string]T) error {
	var err error
	for _, key := range SortedKeys(m) {
		r := m[key]
		if r.IsZero() {
			err = multierr.Append(err, fmt.Errorf("collection key %s: nil or empty record", key))
		} else if r.XrefID() != key {
			err = multierr.Append(err, fmt.Errorf("collection key %s holds %s %s", key, r.TypeName(), r.XrefID()))
		}
	}
	return multierr.Append(err, model.ValidateAll(model.FilterZero(Sorted(m))))
}
