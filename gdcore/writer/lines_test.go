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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gderrors "dirpx.dev/gedcom/gdcore/errors"
	"dirpx.dev/gedcom/gdcore/model"
	"dirpx.dev/gedcom/gdcore/model/record"
)

func TestSplitLong(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		parts int
	}{
		{"short", "hello", 1},
		{"exact", strings.Repeat("a", maxValueLength), 1},
		{"one over", strings.Repeat("a", maxValueLength+1), 2},
		{"words", strings.Repeat("word ", 120), 3},
		{"multibyte", strings.Repeat("é", 200), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLong(tt.in)
			assert.Len(t, got, tt.parts)
			assert.Equal(t, tt.in, strings.Join(got, ""))
			for i, p := range got {
				assert.LessOrEqual(t, len(p), maxValueLength)
				assert.True(t, strings.ToValidUTF8(p, "?") == p, "part %d is not valid UTF-8", i)
				if i < len(got)-1 && strings.TrimSpace(tt.in) != "" {
					assert.False(t, strings.HasSuffix(p, " "), "part %d ends with a space", i)
				}
			}
		})
	}
}

func TestEmitValue_Continuation(t *testing.T) {
	e := newEmitter(model.V551)
	long := strings.Repeat("x", maxValueLength+10)
	e.emitValue(1, "", "NOTE", "first\n\n"+long)
	want := []string{
		"1 NOTE first",
		"2 CONT",
		"2 CONT " + strings.Repeat("x", maxValueLength),
		"2 CONC " + strings.Repeat("x", 10),
	}
	if diff := cmp.Diff(want, e.lines); diff != "" {
		t.Errorf("emitValue() mismatch (-want +got):\n%s", diff)
	}
}

func TestValueHelpers_ThreeState(t *testing.T) {
	tests := []struct {
		name     string
		t        *record.Text
		ifPres   []string
		optional []string
		orBlank  []string
		reqErr   bool
	}{
		{"absent", nil, nil, []string{"2 GIVN"}, nil, true},
		{"present empty", record.NewText(""), nil, []string{"2 GIVN"}, []string{"2 GIVN"}, true},
		{"value", record.NewText("John"), []string{"2 GIVN John"}, []string{"2 GIVN John"}, []string{"2 GIVN John"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEmitter(model.V551)
			require.NoError(t, e.emitIfPresent(2, "GIVN", tt.t))
			assert.Equal(t, tt.ifPres, e.lines, "emitIfPresent")

			e = newEmitter(model.V551)
			require.NoError(t, e.emitOptionalValue(2, "GIVN", tt.t))
			assert.Equal(t, tt.optional, e.lines, "emitOptionalValue")

			e = newEmitter(model.V551)
			require.NoError(t, e.emitValueOrBlank(2, "GIVN", tt.t))
			assert.Equal(t, tt.orBlank, e.lines, "emitValueOrBlank")

			e = newEmitter(model.V551)
			e.current = "@I1@"
			err := e.emitRequired(2, "GIVN", tt.t)
			if tt.reqErr {
				var se *gderrors.StructuralError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, "@I1@", se.Xref)
				assert.Equal(t, "GIVN", se.Tag)
				assert.Empty(t, e.lines)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestEmitCustomTags_Nesting(t *testing.T) {
	trees := []*record.StringTree{
		{Tag: "_UID", Value: "abc", Children: []*record.StringTree{
			{Tag: "_SRC", Value: " x ", Children: []*record.StringTree{{Tag: "_DEEP"}}},
		}},
		nil,
		{ID: "@X1@", Tag: "_REF"},
		{ID: "  ", Tag: "_BLANK", Value: "   "},
	}
	e := newEmitter(model.V551)
	require.NoError(t, e.emitCustomTags(1, trees))
	want := []string{"1 _UID abc", "2 _SRC  x ", "3 _DEEP", "1 @X1@ _REF", "1 _BLANK"}
	if diff := cmp.Diff(want, e.lines); diff != "" {
		t.Errorf("emitCustomTags() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitCustomTags_KeepsPadding(t *testing.T) {
	e := newEmitter(model.V551)
	e.current = "@I1@"
	require.NoError(t, e.emitCustomTags(1, []*record.StringTree{{Tag: "_X", Value: "  indented value  "}}))
	assert.Equal(t, []string{"1 _X   indented value  "}, e.lines)
}

func TestEmitCustomTags_MissingTag(t *testing.T) {
	e := newEmitter(model.V551)
	e.current = "@I1@"
	err := e.emitCustomTags(1, []*record.StringTree{
		{Tag: "_OK", Children: []*record.StringTree{{Value: "orphan"}}},
	})
	var se *gderrors.StructuralError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "@I1@", se.Xref)
	assert.Equal(t, "custom tag has no tag", se.Reason)
}

func TestEmitCustomFacts(t *testing.T) {
	src := &record.Source{Xref: "@S1@"}
	child := record.NewCustomFact("_SUB")
	child.Description = record.NewText("inner")

	cf := record.NewCustomFact("_MILT")
	cf.Description = record.NewText("Army")
	cf.Date = record.NewText("1917")
	cf.Place = &record.Place{PlaceName: "France"}
	cf.Citations = []record.Citation{
		&record.CitationWithSource{Source: src, WhereInSource: record.NewText("p. 3")},
		&record.CitationWithoutSource{Description: []string{"family bible"}},
	}
	cf.Notes = []*record.Note{record.InlineNote("served two years")}
	cf.CustomFacts = []*record.CustomFact{child}

	e := newEmitter(model.V551)
	require.NoError(t, e.emitCustomFacts(1, []*record.CustomFact{cf}))
	want := []string{
		"1 _MILT Army",
		"2 DATE 1917",
		"2 PLAC France",
		"2 SOUR @S1@",
		"3 PAGE p. 3",
		"2 SOUR family bible",
		"2 NOTE served two years",
		"2 _SUB inner",
	}
	if diff := cmp.Diff(want, e.lines); diff != "" {
		t.Errorf("emitCustomFacts() mismatch (-want +got):\n%s", diff)
	}

	e = newEmitter(model.V551)
	require.ErrorIs(t, e.emitCustomFacts(1, []*record.CustomFact{{}}), gderrors.ErrStructural)
}
