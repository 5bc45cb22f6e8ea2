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
	"dirpx.dev/gedcom/gdcore/errors"
	"dirpx.dev/gedcom/gdcore/model"
	"dirpx.dev/gedcom/gdcore/model/record"
)

// resolveDialect picks the dialect of a write. An explicit request wins.
// Otherwise the header's declared version is used, and when the header
// declares none, DefaultDialect is written back into it.
func resolveDialect(g *record.Gedcom, requested model.Dialect) (model.Dialect, error) {
	if g.Header == nil {
		return model.DialectUnspecified, &errors.StructuralError{Tag: "HEAD", Reason: "graph has no header"}
	}
	if requested != model.DialectUnspecified {
		if !requested.Valid() {
			return model.DialectUnspecified, &errors.ConfigError{Option: "dialect", Value: requested.String(), Reason: "unknown dialect"}
		}
		return requested, nil
	}
	h := g.Header
	if h.GedcomVersion == nil {
		h.GedcomVersion = record.NewGedcomVersion(model.DefaultDialect)
	} else if h.GedcomVersion.VersionNumber == model.DialectUnspecified {
		h.GedcomVersion.VersionNumber = model.DefaultDialect
	}
	if !h.GedcomVersion.VersionNumber.Valid() {
		return model.DialectUnspecified, &errors.ConfigError{Option: "dialect", Value: h.GedcomVersion.VersionNumber.String(), Reason: "header declares an unknown dialect"}
	}
	return h.GedcomVersion.VersionNumber, nil
}

// checkCompatibility returns the first feature of g that d does not allow.
// It does not modify g.
func checkCompatibility(g *record.Gedcom, d model.Dialect) error {
	if d == model.V55 {
		return check55(g)
	}
	return check551(g)
}

func mismatch(d model.Dialect, xref, reason string) error {
	return &errors.DialectError{Dialect: d.String(), Xref: xref, Reason: reason}
}

// newerContact reports which 5.5.1-only contact field c uses, if any.
func newerContact(c record.ContactInfo) string {
	switch {
	case len(c.WWWURLs) > 0:
		return "www urls"
	case len(c.FaxNumbers) > 0:
		return "fax numbers"
	case len(c.Emails) > 0:
		return "emails"
	}
	return ""
}

func check55(g *record.Gedcom) error {
	h := g.Header
	if len(h.CopyrightData) > 1 {
		return mismatch(model.V55, "", "header has multi-line copyright data")
	}
	if h.CharacterSet.IsUTF8() {
		return mismatch(model.V55, "", "header declares the UTF-8 character set")
	}
	if h.SourceSystem != nil && h.SourceSystem.Corporation != nil {
		if f := newerContact(h.SourceSystem.Corporation.ContactInfo); f != "" {
			return mismatch(model.V55, "", "source system corporation has "+f)
		}
	}
	for _, i := range record.Sorted(g.Individuals) {
		if i == nil {
			continue
		}
		if f := newerContact(i.ContactInfo); f != "" {
			return mismatch(model.V55, i.Xref, "individual has "+f)
		}
		for _, ev := range i.Events {
			if ev == nil {
				continue
			}
			if f := newerContact(ev.ContactInfo); f != "" {
				return mismatch(model.V55, i.Xref, "individual has "+f+" on an event")
			}
		}
		for _, a := range i.Attributes {
			if a != nil && a.Type == record.Fact {
				return mismatch(model.V55, i.Xref, "individual has a FACT attribute")
			}
		}
		for _, fc := range i.FamiliesWhereChild {
			if fc != nil && fc.Status != nil {
				return mismatch(model.V55, i.Xref, "individual is a child in a family with a status")
			}
		}
	}
	for _, s := range record.Sorted(g.Submitters) {
		if s == nil {
			continue
		}
		if f := newerContact(s.ContactInfo); f != "" {
			return mismatch(model.V55, s.Xref, "submitter has "+f)
		}
	}
	for _, r := range record.Sorted(g.Repositories) {
		if r == nil {
			continue
		}
		if f := newerContact(r.ContactInfo); f != "" {
			return mismatch(model.V55, r.Xref, "repository has "+f)
		}
	}
	return nil
}

func check551(g *record.Gedcom) error {
	for _, m := range record.Sorted(g.Multimedia) {
		if m != nil && len(m.Blob) > 0 {
			return mismatch(model.V551, m.Xref, "multimedia record contains BLOB data")
		}
	}
	return nil
}
