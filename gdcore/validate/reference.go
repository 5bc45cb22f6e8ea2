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

package validate

import (
	"slices"

	"go.uber.org/multierr"

	"dirpx.dev/gedcom/gdcore/model/record"
)

// ReferenceValidator checks that every record-to-record reference in the
// graph resolves to a live record stored in the right collection, and that
// each collection key matches its record's xref.
//
// With autorepair, nil entries in link lists are removed and reported as
// warnings. Dangling references are never repaired.
type ReferenceValidator struct{}

var _ Validator = ReferenceValidator{}

// Validate implements Validator.
func (ReferenceValidator) Validate(g *record.Gedcom, autorepair bool) []Finding {
	v := &refCheck{g: g, autorepair: autorepair}
	if g.Header == nil {
		v.add(Error, "", "header is missing")
	} else {
		v.checkHeader(g.Header)
	}
	for _, err := range multierr.Errors(g.Validate()) {
		v.add(Error, "", err.Error())
	}
	if s := g.Submission; s != nil && s.Submitter != nil {
		v.submitter(s.Xref, "SUBN.SUBM", s.Submitter)
	}
	for _, i := range record.Sorted(g.Individuals) {
		if i != nil {
			v.checkIndividual(i)
		}
	}
	for _, f := range record.Sorted(g.Families) {
		if f != nil {
			v.checkFamily(f)
		}
	}
	for _, s := range record.Sorted(g.Sources) {
		if s == nil {
			continue
		}
		if rc := s.RepositoryCitation; rc != nil {
			if rc.Repository == nil {
				v.add(Error, s.Xref, "repository citation has no repository")
			} else if !record.Resolves(g.Repositories, rc.Repository) {
				v.add(Error, s.Xref, "repository citation points at "+rc.Repository.Xref+" which is not in the graph")
			}
		}
		v.links(s.Xref, s.Multimedia)
		v.notes(s.Xref, s.Notes)
	}
	for _, m := range record.Sorted(g.Multimedia) {
		if m == nil {
			continue
		}
		if m.ContinuedObject != nil && !record.Resolves(g.Multimedia, m.ContinuedObject) {
			v.add(Error, m.Xref, "continued object "+m.ContinuedObject.Xref+" is not in the graph")
		}
		v.citations(m.Xref, m.Citations)
		v.notes(m.Xref, m.Notes)
	}
	return v.findings
}

type refCheck struct {
	g          *record.Gedcom
	autorepair bool
	findings   []Finding
}

func (v *refCheck) add(sev Severity, xref, msg string) {
	v.findings = append(v.findings, Finding{Severity: sev, Xref: xref, Message: msg})
}

func (v *refCheck) checkHeader(h *record.Header) {
	if h.Submitter == nil {
		v.add(Warning, "", "header names no submitter")
	} else {
		v.submitter("", "HEAD.SUBM", h.Submitter)
	}
	if h.Submission != nil && v.g.Submission != h.Submission {
		v.add(Error, "", "header submission "+h.Submission.Xref+" is not the graph's submission")
	}
}

func (v *refCheck) submitter(owner, where string, s *record.Submitter) {
	if s == nil {
		v.add(Error, owner, where+" is nil")
	} else if !record.Resolves(v.g.Submitters, s) {
		v.add(Error, owner, where+" points at "+s.Xref+" which is not in the graph")
	}
}

func (v *refCheck) family(owner, where string, f *record.Family) {
	if f == nil {
		v.add(Error, owner, where+" has no family")
	} else if !record.Resolves(v.g.Families, f) {
		v.add(Error, owner, where+" points at "+f.Xref+" which is not in the graph")
	}
}

func (v *refCheck) individual(owner, where string, i *record.Individual) {
	if !record.Resolves(v.g.Individuals, i) {
		v.add(Error, owner, where+" points at "+i.Xref+" which is not in the graph")
	}
}

func (v *refCheck) checkIndividual(i *record.Individual) {
	if v.autorepair {
		i.FamiliesWhereChild = dropNil(v, i.Xref, "FAMC", i.FamiliesWhereChild)
		i.FamiliesWhereSpouse = dropNil(v, i.Xref, "FAMS", i.FamiliesWhereSpouse)
		i.Submitters = dropNil(v, i.Xref, "SUBM", i.Submitters)
	}
	for _, fc := range i.FamiliesWhereChild {
		if fc == nil {
			v.add(Error, i.Xref, "FAMC link is nil")
			continue
		}
		v.family(i.Xref, "FAMC", fc.Family)
		v.notes(i.Xref, fc.Notes)
	}
	for _, fs := range i.FamiliesWhereSpouse {
		if fs == nil {
			v.add(Error, i.Xref, "FAMS link is nil")
			continue
		}
		v.family(i.Xref, "FAMS", fs.Family)
		v.notes(i.Xref, fs.Notes)
	}
	for _, s := range slices.Concat(i.Submitters, i.AncestorInterest, i.DescendantInterest) {
		v.submitter(i.Xref, "submitter link", s)
	}
	for _, e := range i.Events {
		if e == nil {
			continue
		}
		if e.Family != nil && e.Family.Family != nil {
			v.family(i.Xref, e.Type.Tag()+".FAMC", e.Family.Family)
		}
		v.detail(i.Xref, &e.EventDetail)
	}
	for _, a := range i.Attributes {
		if a != nil {
			v.detail(i.Xref, &a.EventDetail)
		}
	}
	for _, o := range i.LdsIndividualOrdinances {
		if o == nil {
			continue
		}
		if o.Type == record.ChildSealing {
			if o.FamilyWhereChild == nil {
				v.add(Error, i.Xref, "SLGC has no family link")
			} else {
				v.family(i.Xref, "SLGC.FAMC", o.FamilyWhereChild.Family)
			}
		}
		v.citations(i.Xref, o.Citations)
		v.notes(i.Xref, o.Notes)
	}
	for _, n := range i.Names {
		if n != nil {
			v.citations(i.Xref, n.Citations)
			v.notes(i.Xref, n.Notes)
		}
	}
	v.citations(i.Xref, i.Citations)
	v.links(i.Xref, i.Multimedia)
	v.notes(i.Xref, i.Notes)
}

func (v *refCheck) checkFamily(f *record.Family) {
	if v.autorepair {
		f.Children = dropNil(v, f.Xref, "CHIL", f.Children)
		f.Submitters = dropNil(v, f.Xref, "SUBM", f.Submitters)
	}
	if f.Husband != nil {
		v.individual(f.Xref, "HUSB", f.Husband)
	}
	if f.Wife != nil {
		v.individual(f.Xref, "WIFE", f.Wife)
	}
	for _, c := range f.Children {
		if c == nil {
			v.add(Error, f.Xref, "CHIL link is nil")
			continue
		}
		v.individual(f.Xref, "CHIL", c)
	}
	for _, s := range f.Submitters {
		v.submitter(f.Xref, "SUBM", s)
	}
	for _, e := range f.Events {
		if e != nil {
			v.detail(f.Xref, &e.EventDetail)
		}
	}
	v.citations(f.Xref, f.Citations)
	v.links(f.Xref, f.Multimedia)
	v.notes(f.Xref, f.Notes)
}

func (v *refCheck) detail(owner string, d *record.EventDetail) {
	v.citations(owner, d.Citations)
	v.links(owner, d.Multimedia)
	v.notes(owner, d.Notes)
}

func (v *refCheck) citations(owner string, cs []record.Citation) {
	for _, c := range cs {
		switch c := c.(type) {
		case *record.CitationWithSource:
			if c.Source == nil {
				v.add(Error, owner, "source citation has no source")
			} else if !record.Resolves(v.g.Sources, c.Source) {
				v.add(Error, owner, "source citation points at "+c.Source.Xref+" which is not in the graph")
			}
			v.links(owner, c.Multimedia)
			v.notes(owner, c.Notes)
		case *record.CitationWithoutSource:
			v.notes(owner, c.Notes)
		case nil:
			v.add(Error, owner, "citation is nil")
		}
	}
}

func (v *refCheck) notes(owner string, ns []*record.Note) {
	for _, n := range ns {
		if n != nil && n.Ref != nil && !record.Resolves(v.g.Notes, n.Ref) {
			v.add(Error, owner, "note reference points at "+n.Ref.Xref+" which is not in the graph")
		}
	}
}

func (v *refCheck) links(owner string, ls []*record.MultimediaLink) {
	for _, l := range ls {
		if l != nil && l.Ref != nil && !record.Resolves(v.g.Multimedia, l.Ref) {
			v.add(Error, owner, "multimedia link points at "+l.Ref.Xref+" which is not in the graph")
		}
	}
}

func dropNil[T comparable](v *refCheck, owner, tag string, in []T) []T {
	var zero T
	n := len(in)
	out := slices.DeleteFunc(in, func(x T) bool { return x == zero })
	if len(out) < n {
		v.add(Warning, owner, "removed nil "+tag+" link(s)")
	}
	return out
}
