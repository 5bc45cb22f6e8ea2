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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gderrors "dirpx.dev/gedcom/gdcore/errors"
	"dirpx.dev/gedcom/gdcore/model/record"
)

func TestWriteTo(t *testing.T) {
	w, err := New(familyGraph(), WithFileNotificationRate(10))
	require.NoError(t, err)
	var events []FileProgress
	w.FileObservers().Subscribe(func(p FileProgress) { events = append(events, p) })

	var buf bytes.Buffer
	n, err := w.WriteTo(context.Background(), &buf)
	require.NoError(t, err)
	assert.EqualValues(t, buf.Len(), n)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "0 HEAD\n1 SOUR GEDKIT\n"))
	assert.True(t, strings.HasSuffix(out, "\n0 TRLR\n"))
	written := strings.Count(out, "\n")

	require.NotEmpty(t, events)
	assert.Equal(t, FileProgress{LinesWritten: written, Complete: true}, events[len(events)-1])
	for _, ev := range events[:len(events)-1] {
		assert.False(t, ev.Complete)
	}
	assert.Len(t, events, 1+written/11)
}

func TestWriteTo_NothingOnFailure(t *testing.T) {
	g := record.NewGedcom()
	g.AddSubmitter(&record.Submitter{Xref: "@U1@"})
	w, err := New(g, WithoutValidation())
	require.NoError(t, err)
	var buf bytes.Buffer
	n, err := w.WriteTo(context.Background(), &buf)
	require.ErrorIs(t, err, gderrors.ErrStructural)
	assert.Zero(t, n)
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteTo_OutputError(t *testing.T) {
	w, err := New(record.NewGedcom())
	require.NoError(t, err)
	var complete bool
	w.FileObservers().Subscribe(func(p FileProgress) { complete = complete || p.Complete })
	_, err = w.WriteTo(context.Background(), failingWriter{})
	require.EqualError(t, err, "disk full")
	assert.False(t, complete)
}
