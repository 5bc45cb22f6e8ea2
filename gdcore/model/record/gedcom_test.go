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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareXrefs(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"@I1@", "@I1@", 0},
		{"@I2@", "@I10@", -1},
		{"@I10@", "@I2@", 1},
		{"@F1@", "@I1@", -1},
		{"@I01@", "@I1@", -1},
		{"@I1@", "@I1A@", -1},
		{"@ABC@", "@ABD@", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareXrefs(tt.a, tt.b))
		})
	}
}

func TestSorted(t *testing.T) {
	m := map[string]int{"@I10@": 10, "@I2@": 2, "@I1@": 1, "@I3@": 3}
	assert.Equal(t, []int{1, 2, 3, 10}, Sorted(m))
	assert.Equal(t, []string{"@I1@", "@I2@", "@I3@", "@I10@"}, SortedKeys(m))
	assert.Empty(t, Sorted(map[string]int(nil)))
}

func TestLookup(t *testing.T) {
	i := &Individual{Xref: "@I1@"}
	m := map[string]*Individual{"@I1@": i}
	got, ok := Lookup(m, "@I1@")
	assert.True(t, ok)
	assert.Same(t, i, got)
	_, ok = Lookup(m, "@I2@")
	assert.False(t, ok)
}

func TestResolves(t *testing.T) {
	i := &Individual{Xref: "@I1@"}
	m := map[string]*Individual{"@I1@": i}
	assert.True(t, Resolves(m, i))
	assert.False(t, Resolves(m, &Individual{Xref: "@I1@"}))
	assert.False(t, Resolves(m, &Individual{Xref: "@I2@"}))
}

func TestNextXref(t *testing.T) {
	m := map[string]bool{"@I1@": true, "@I2@": true}
	assert.Equal(t, "@I3@", NextXref(m, "I"))
	assert.Equal(t, "@F1@", NextXref(map[string]bool{}, "F"))
}

func TestGedcom_AddAssignsXref(t *testing.T) {
	g := NewGedcom()
	g.AddIndividual(&Individual{Xref: "@I1@"})
	i := g.AddIndividual(&Individual{})
	assert.Equal(t, "@I2@", i.Xref)
	assert.Same(t, i, g.Individuals["@I2@"])

	kept := g.AddFamily(&Family{Xref: "@F9@"})
	assert.Equal(t, "@F9@", kept.Xref)
	assert.Equal(t, "@U1@", g.AddSubmitter(&Submitter{}).Xref)
	assert.Equal(t, "@N1@", g.AddNote(&NoteRecord{}).Xref)

	var empty Gedcom
	assert.Equal(t, "@M1@", empty.AddMultimedia(&Multimedia{}).Xref)
	assert.Len(t, empty.Multimedia, 1)
}

func TestIsXref(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"@I1@", true},
		{"@X@", true},
		{"@@", false},
		{"I1", false},
		{"@I1", false},
		{"@I@1@", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsXref(tt.in))
		})
	}
}

func TestGedcom_Validate(t *testing.T) {
	g := NewGedcom()
	g.AddIndividual(&Individual{Xref: "@I1@"})
	g.AddFamily(&Family{Xref: "@F1@"})
	require.NoError(t, g.Validate())

	g.Individuals["@I2@"] = &Individual{Xref: "@I3@"}
	g.Families["@F2@"] = &Family{Xref: "F2"}
	g.Sources["@S1@"] = nil
	g.Individuals["@I4@"] = &Individual{Xref: "@I4@", Events: []*IndividualEvent{{Type: "BORN"}}}

	err := g.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "collection key @I2@ holds Individual @I3@")
	assert.Contains(t, msg, "Family F2")
	assert.Contains(t, msg, "collection key @S1@: nil or empty record")
	assert.Contains(t, msg, "unknown tag BORN")
}

func TestGedcom_LinkAndMarry(t *testing.T) {
	g := NewGedcom()
	f := g.AddFamily(&Family{Xref: "@F1@"})
	h := g.AddIndividual(&Individual{Xref: "@I1@"})
	w := g.AddIndividual(&Individual{Xref: "@I2@"})
	c := g.AddIndividual(&Individual{Xref: "@I3@"})

	g.Marry(f, h, w)
	fc := g.Link(f, c)

	assert.Same(t, h, f.Husband)
	assert.Same(t, w, f.Wife)
	assert.Equal(t, []*Individual{c}, f.Children)
	assert.Same(t, f, fc.Family)
	assert.Same(t, f, h.FamiliesWhereSpouse[0].Family)
	assert.Same(t, f, w.FamiliesWhereSpouse[0].Family)
	assert.Same(t, fc, c.FamiliesWhereChild[0])
}

func TestHeader_Dialect(t *testing.T) {
	var h *Header
	assert.True(t, h.Dialect().IsZero())
	h = &Header{GedcomVersion: NewGedcomVersion(2)}
	assert.Equal(t, "5.5.1", h.Dialect().String())
	assert.Equal(t, DefaultGedcomForm, h.GedcomVersion.GedcomForm.Value)
}
