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
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	gderrors "dirpx.dev/gedcom/gdcore/errors"
	"dirpx.dev/gedcom/gdcore/model"
	"dirpx.dev/gedcom/gdcore/model/record"
	"dirpx.dev/gedcom/gdcore/validate"
)

func name(s string) []*record.PersonalName {
	return []*record.PersonalName{{Basic: record.NewText(s)}}
}

// familyGraph is a small but complete graph: two spouses, one child with a
// cited birth, a shared note, a source and a submitter.
func familyGraph() *record.Gedcom {
	g := record.NewGedcom()
	g.Header.SourceSystem = &record.SourceSystem{
		SystemID:      record.NewText("GEDKIT"),
		VersionNumber: record.NewText("1.0"),
		ProductName:   record.NewText("Gedkit"),
	}
	g.Header.CharacterSet = &record.CharacterSet{CharacterSetName: record.NewText("UTF-8")}
	g.Header.Submitter = g.AddSubmitter(&record.Submitter{Xref: "@U1@", Name: record.NewText("Jane Doe")})

	f := g.AddFamily(&record.Family{Xref: "@F1@", Events: []*record.FamilyEvent{{
		Type:        record.Marriage,
		EventDetail: record.EventDetail{Date: record.NewText("1 JUN 1920"), Place: &record.Place{PlaceName: "Boston"}},
	}}})
	h := g.AddIndividual(&record.Individual{Xref: "@I1@", Names: name("John /Doe/"), Sex: record.NewText("M")})
	w := g.AddIndividual(&record.Individual{Xref: "@I2@", Names: name("Mary /Roe/"), Sex: record.NewText("F")})
	c := g.AddIndividual(&record.Individual{Xref: "@I3@", Names: name("Baby /Doe/")})
	g.Marry(f, h, w)
	fc := g.Link(f, c)
	c.Events = []*record.IndividualEvent{{
		Type:        record.Birth,
		Family:      fc,
		EventDetail: record.EventDetail{Date: record.NewText("3 MAR 1921")},
	}}
	s := g.AddSource(&record.Source{Xref: "@S1@", Title: []string{"Parish register"}})
	c.Citations = []record.Citation{&record.CitationWithSource{Source: s, WhereInSource: record.NewText("p. 12")}}
	n := g.AddNote(&record.NoteRecord{Xref: "@N1@", Lines: []string{"Shared note"}})
	h.Notes = []*record.Note{record.NoteRef(n)}
	return g
}

func emit(t *testing.T, g *record.Gedcom, opts ...Option) ([]string, error) {
	t.Helper()
	w, err := New(g, opts...)
	require.NoError(t, err)
	return w.Emit(context.Background())
}

// recordLines returns the lines of the level-0 record whose first line
// starts with "0 "+xref.
func recordLines(lines []string, xref string) []string {
	var out []string
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "0 "+xref+" "):
			out = append(out, l)
		case strings.HasPrefix(l, "0 "):
			if out != nil {
				return out
			}
		case out != nil:
			out = append(out, l)
		}
	}
	return out
}

func TestEmit_FamilyGraph(t *testing.T) {
	lines, err := emit(t, familyGraph())
	require.NoError(t, err)
	want := []string{
		"0 HEAD",
		"1 SOUR GEDKIT",
		"2 VERS 1.0",
		"2 NAME Gedkit",
		"1 SUBM @U1@",
		"1 GEDC",
		"2 VERS 5.5.1",
		"2 FORM LINEAGE-LINKED",
		"1 CHAR UTF-8",
		"0 @I1@ INDI",
		"1 NAME John /Doe/",
		"1 SEX M",
		"1 FAMS @F1@",
		"1 NOTE @N1@",
		"0 @I2@ INDI",
		"1 NAME Mary /Roe/",
		"1 SEX F",
		"1 FAMS @F1@",
		"0 @I3@ INDI",
		"1 NAME Baby /Doe/",
		"1 BIRT",
		"2 DATE 3 MAR 1921",
		"2 FAMC @F1@",
		"1 FAMC @F1@",
		"1 SOUR @S1@",
		"2 PAGE p. 12",
		"0 @F1@ FAM",
		"1 MARR",
		"2 DATE 1 JUN 1920",
		"2 PLAC Boston",
		"1 HUSB @I1@",
		"1 WIFE @I2@",
		"1 CHIL @I3@",
		"0 @N1@ NOTE Shared note",
		"0 @S1@ SOUR",
		"1 TITL Parish register",
		"0 @U1@ SUBM",
		"1 NAME Jane Doe",
		"0 TRLR",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Emit() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmit_EmptyGraph(t *testing.T) {
	lines, err := emit(t, record.NewGedcom())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0 HEAD",
		"1 SOUR UNSPECIFIED",
		"1 GEDC",
		"2 VERS 5.5.1",
		"2 FORM LINEAGE-LINKED",
		"0 TRLR",
	}, lines)
}

func TestEmit_BirthFamilyLink(t *testing.T) {
	tests := []struct {
		name string
		link func(g *record.Gedcom, f *record.Family, i *record.Individual) *record.FamilyChild
		want []string
	}{
		{
			"resolvable",
			func(g *record.Gedcom, f *record.Family, i *record.Individual) *record.FamilyChild {
				return g.Link(f, i)
			},
			[]string{"0 @I1@ INDI", "1 BIRT", "2 FAMC @F1@", "1 FAMC @F1@"},
		},
		{
			"no link",
			func(*record.Gedcom, *record.Family, *record.Individual) *record.FamilyChild { return nil },
			[]string{"0 @I1@ INDI", "1 BIRT"},
		},
		{
			"link without family",
			func(*record.Gedcom, *record.Family, *record.Individual) *record.FamilyChild {
				return &record.FamilyChild{}
			},
			[]string{"0 @I1@ INDI", "1 BIRT"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := record.NewGedcom()
			f := g.AddFamily(&record.Family{Xref: "@F1@"})
			i := g.AddIndividual(&record.Individual{Xref: "@I1@"})
			i.Events = []*record.IndividualEvent{{Type: record.Birth, Family: tt.link(g, f, i)}}
			lines, err := emit(t, g)
			require.NoError(t, err)
			assert.Equal(t, tt.want, recordLines(lines, "@I1@"))
		})
	}
}

func TestEmit_AdoptionAndChristening(t *testing.T) {
	g := record.NewGedcom()
	f := g.AddFamily(&record.Family{Xref: "@F1@"})
	i := g.AddIndividual(&record.Individual{Xref: "@I1@"})
	fc := g.Link(f, i)
	fc.AdoptedBy = record.NewText("BOTH")
	i.Events = []*record.IndividualEvent{
		{Type: record.Christening, Y: record.NewText("Y"), Family: fc},
		{Type: record.Adoption, Family: fc},
		{Type: record.Death, Family: fc},
	}
	lines, err := emit(t, g)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0 @I1@ INDI",
		"1 CHR Y",
		"2 FAMC @F1@",
		"1 ADOP",
		"2 FAMC @F1@",
		"3 ADOP BOTH",
		"1 DEAT",
		"1 FAMC @F1@",
	}, recordLines(lines, "@I1@"))
}

func TestEmit_RecordOrder(t *testing.T) {
	g := record.NewGedcom()
	for _, x := range []string{"@I10@", "@I2@", "@I1@"} {
		g.AddIndividual(&record.Individual{Xref: x})
	}
	g.AddRepository(&record.Repository{Xref: "@R1@"})
	g.AddMultimedia(&record.Multimedia{Xref: "@M1@"})
	g.AddNote(&record.NoteRecord{Xref: "@N1@"})
	g.AddFamily(&record.Family{Xref: "@F1@"})
	g.Submission = &record.Submission{Xref: "@SUBN@"}
	g.CustomTags = []*record.StringTree{{ID: "@X1@", Tag: "_ROOT", Value: "v", Children: []*record.StringTree{{Tag: "_KID"}}}}

	lines, err := emit(t, g)
	require.NoError(t, err)
	var top []string
	for _, l := range lines {
		if strings.HasPrefix(l, "0 ") {
			top = append(top, l)
		}
	}
	assert.Equal(t, []string{
		"0 HEAD",
		"0 @SUBN@ SUBN",
		"0 @I1@ INDI",
		"0 @I2@ INDI",
		"0 @I10@ INDI",
		"0 @F1@ FAM",
		"0 @M1@ OBJE",
		"0 @N1@ NOTE",
		"0 @R1@ REPO",
		"0 @X1@ _ROOT v",
		"0 TRLR",
	}, top)
	assert.Equal(t, "1 _KID", lines[len(lines)-2])
}

func TestEmit_CustomTagsAtEndOfParent(t *testing.T) {
	g := record.NewGedcom()
	i := g.AddIndividual(&record.Individual{Xref: "@I1@", Sex: record.NewText("F")})
	i.CustomTags = []*record.StringTree{{Tag: "_UID", Value: "42", Children: []*record.StringTree{{Tag: "_SRC", Value: "app"}}}}
	i.Names = []*record.PersonalName{{Basic: record.NewText("Ann /Lee/")}}
	i.Names[0].CustomTags = []*record.StringTree{{Tag: "_AKA", Value: "Annie"}}

	lines, err := emit(t, g)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0 @I1@ INDI",
		"1 NAME Ann /Lee/",
		"2 _AKA Annie",
		"1 SEX F",
		"1 _UID 42",
		"2 _SRC app",
	}, recordLines(lines, "@I1@"))
}

func TestEmit_NamePieces(t *testing.T) {
	g := record.NewGedcom()
	g.AddIndividual(&record.Individual{Xref: "@I1@", Names: []*record.PersonalName{{
		Basic:     record.NewText("John //"),
		GivenName: record.NewText("John"),
		Surname:   record.NewText(""),
		Romanized: []*record.PersonalNameVariation{{Variation: record.NewText("Jon"), VariationType: record.NewText("romaji")}},
	}}})
	lines, err := emit(t, g)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0 @I1@ INDI",
		"1 NAME John //",
		"2 GIVN John",
		"2 SURN",
		"2 ROMN Jon",
		"3 TYPE romaji",
	}, recordLines(lines, "@I1@"))
}

func TestEmit_StructuralErrors(t *testing.T) {
	tests := []struct {
		name   string
		build  func(g *record.Gedcom)
		xref   string
		tag    string
		reason string
	}{
		{
			"child link without family",
			func(g *record.Gedcom) {
				g.AddIndividual(&record.Individual{Xref: "@I1@", FamiliesWhereChild: []*record.FamilyChild{{}}})
			},
			"@I1@", "FAMC", "child-to-family link has no family",
		},
		{
			"nil spouse link",
			func(g *record.Gedcom) {
				g.AddIndividual(&record.Individual{Xref: "@I1@", FamiliesWhereSpouse: []*record.FamilySpouse{nil}})
			},
			"@I1@", "FAMS", "spouse-to-family link is nil",
		},
		{
			"child sealing without family",
			func(g *record.Gedcom) {
				g.AddIndividual(&record.Individual{Xref: "@I1@", LdsIndividualOrdinances: []*record.LdsIndividualOrdinance{{Type: record.ChildSealing}}})
			},
			"@I1@", "SLGC", "child sealing has no family link",
		},
		{
			"child sealing link without family",
			func(g *record.Gedcom) {
				g.AddIndividual(&record.Individual{Xref: "@I1@", LdsIndividualOrdinances: []*record.LdsIndividualOrdinance{{
					Type: record.ChildSealing, FamilyWhereChild: &record.FamilyChild{},
				}}})
			},
			"@I1@", "SLGC", "child sealing family link has no family",
		},
		{
			"nil child in family",
			func(g *record.Gedcom) { g.AddFamily(&record.Family{Xref: "@F1@", Children: []*record.Individual{nil}}) },
			"@F1@", "CHIL", "child link is nil",
		},
		{
			"citation without source record",
			func(g *record.Gedcom) {
				g.AddFamily(&record.Family{Xref: "@F1@", Citations: []record.Citation{&record.CitationWithSource{}}})
			},
			"@F1@", "SOUR", "citation has no source",
		},
		{
			"repository citation without repository",
			func(g *record.Gedcom) {
				g.AddSource(&record.Source{Xref: "@S1@", RepositoryCitation: &record.RepositoryCitation{}})
			},
			"@S1@", "REPO", "repository citation has no repository",
		},
		{
			"husband not in graph",
			func(g *record.Gedcom) {
				g.AddFamily(&record.Family{Xref: "@F1@", Husband: &record.Individual{Xref: "@I9@"}})
			},
			"@F1@", "HUSB", "reference @I9@ is not in the graph",
		},
		{
			"child replaced by a stranger with the same xref",
			func(g *record.Gedcom) {
				g.AddIndividual(&record.Individual{Xref: "@I1@"})
				g.AddFamily(&record.Family{Xref: "@F1@", Children: []*record.Individual{{Xref: "@I1@"}}})
			},
			"@F1@", "CHIL", "reference @I1@ is not in the graph",
		},
		{
			"birth family not in graph",
			func(g *record.Gedcom) {
				g.AddIndividual(&record.Individual{Xref: "@I1@", Events: []*record.IndividualEvent{{
					Type: record.Birth, Family: &record.FamilyChild{Family: &record.Family{Xref: "@F7@"}},
				}}})
			},
			"@I1@", "FAMC", "reference @F7@ is not in the graph",
		},
		{
			"source citation outside the graph",
			func(g *record.Gedcom) {
				g.AddFamily(&record.Family{Xref: "@F1@", Citations: []record.Citation{
					&record.CitationWithSource{Source: &record.Source{Xref: "@S1@"}},
				}})
			},
			"@F1@", "SOUR", "reference @S1@ is not in the graph",
		},
		{
			"note reference outside the graph",
			func(g *record.Gedcom) {
				g.AddIndividual(&record.Individual{Xref: "@I1@", Notes: []*record.Note{
					record.NoteRef(&record.NoteRecord{Xref: "@N1@"}),
				}})
			},
			"@I1@", "NOTE", "reference @N1@ is not in the graph",
		},
		{
			"header submitter outside the graph",
			func(g *record.Gedcom) {
				g.Header.Submitter = &record.Submitter{Xref: "@U1@", Name: record.NewText("Jane")}
			},
			"", "SUBM", "reference @U1@ is not in the graph",
		},
		{
			"empty BLOB line",
			func(g *record.Gedcom) {
				g.Header.GedcomVersion = record.NewGedcomVersion(model.V55)
				g.AddMultimedia(&record.Multimedia{Xref: "@M1@", EmbeddedMediaFormat: record.NewText("bmp"), Blob: []string{"abc", ""}})
			},
			"@M1@", "CONT", "BLOB line is empty",
		},
		{
			"submitter without name",
			func(g *record.Gedcom) { g.AddSubmitter(&record.Submitter{Xref: "@U1@"}) },
			"@U1@", "NAME", "required value is missing",
		},
		{
			"change date without date",
			func(g *record.Gedcom) {
				g.AddRepository(&record.Repository{Xref: "@R1@", ChangeDate: &record.ChangeDate{}})
			},
			"@R1@", "DATE", "required value is missing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := record.NewGedcom()
			tt.build(g)
			lines, err := emit(t, g, WithoutValidation())
			assert.Nil(t, lines)
			var se *gderrors.StructuralError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.xref, se.Xref)
			assert.Equal(t, tt.tag, se.Tag)
			assert.Equal(t, tt.reason, se.Reason)
			assert.ErrorIs(t, err, gderrors.ErrStructural)
		})
	}
}

func TestEmit_ValidationGate(t *testing.T) {
	g := familyGraph()
	g.Families["@F1@"].Husband = &record.Individual{Xref: "@I9@"}

	w, err := New(g)
	require.NoError(t, err)
	lines, err := w.Emit(context.Background())
	assert.Nil(t, lines)
	var pe *gderrors.PreflightError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.ErrorCount)
	assert.Equal(t, 1, validate.CountErrors(w.ValidationFindings()))

	// Suppressed validation skips the gate, but the emitter still refuses
	// the dangling husband.
	w, err = New(g, WithoutValidation())
	require.NoError(t, err)
	lines, err = w.Emit(context.Background())
	assert.Nil(t, lines)
	assert.Nil(t, w.ValidationFindings())
	var se *gderrors.StructuralError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "@F1@", se.Xref)
	assert.Equal(t, "HUSB", se.Tag)
}

func TestEmit_CustomValidator(t *testing.T) {
	var gotRepair bool
	v := validate.ValidatorFunc(func(_ *record.Gedcom, autorepair bool) []validate.Finding {
		gotRepair = autorepair
		return []validate.Finding{{Severity: validate.Warning, Message: "looks odd"}}
	})
	w, err := New(record.NewGedcom(), WithValidator(v), WithAutorepair(true))
	require.NoError(t, err)
	_, err = w.Emit(context.Background())
	require.NoError(t, err)
	assert.True(t, gotRepair)
	assert.Len(t, w.ValidationFindings(), 1)
}

func TestEmit_RecordWithoutXref(t *testing.T) {
	g := record.NewGedcom()
	g.Individuals["@I1@"] = &record.Individual{}
	g.Individuals["@I2@"] = nil
	_, err := emit(t, g, WithoutValidation())
	require.ErrorIs(t, err, gderrors.ErrStructural)
	assert.Contains(t, err.Error(), "Individual record has no xref")
}

func TestEmit_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	lines, err := emit(t, familyGraph(), WithLogger(zap.New(core)))
	require.NoError(t, err)
	finished := logs.FilterMessage("emission finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, "5.5.1", finished[0].ContextMap()["dialect"])
	assert.EqualValues(t, len(lines), finished[0].ContextMap()["lines"])

	kinds := map[string]any{}
	for _, entry := range logs.FilterMessage("records emitted").All() {
		kinds[entry.ContextMap()["kind"].(string)] = entry.ContextMap()["count"]
	}
	assert.EqualValues(t, 3, kinds["individuals"])
	assert.EqualValues(t, 1, kinds["families"])
}

func TestNew_NilGraph(t *testing.T) {
	w, err := New(nil)
	assert.Nil(t, w)
	assert.ErrorIs(t, err, gderrors.ErrConfig)
}

func TestEmit_ForcedDialectLeavesHeader(t *testing.T) {
	g := record.NewGedcom()
	lines, err := emit(t, g, WithDialect(model.V55))
	require.NoError(t, err)
	assert.Contains(t, lines, "2 VERS 5.5")
	assert.Nil(t, g.Header.GedcomVersion)
}
