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

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"dirpx.dev/gedcom/gdcore/errors"
	"dirpx.dev/gedcom/gdcore/model"
	"dirpx.dev/gedcom/gdcore/model/record"
	"dirpx.dev/gedcom/gdcore/validate"
)

// Writer serializes one record graph. It reads the graph and never changes
// it, except for the validator's autorepair and the default dialect written
// back into a header that declares none.
//
// Emit and WriteTo must not run concurrently on the same Writer. Cancel and
// the observer registries may be used from any goroutine.
type Writer struct {
	g         *record.Gedcom
	opts      Options
	validator validate.Validator
	logger    *zap.Logger

	construct Registry[ConstructProgress]
	file      Registry[FileProgress]
	cancelled atomic.Bool

	findings []validate.Finding
}

// New returns a Writer for g. Invalid options are rejected here, before any
// emission is attempted.
func New(g *record.Gedcom, opts ...Option) (*Writer, error) {
	if g == nil {
		return nil, &errors.ConfigError{Option: "graph", Reason: "must not be nil"}
	}
	w := &Writer{
		g:      g,
		opts:   DefaultOptions(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Options returns the current configuration.
func (w *Writer) Options() Options { return w.opts }

// SetConstructionNotificationRate sets how many built lines must pass
// between construction notifications.
func (w *Writer) SetConstructionNotificationRate(n int) error {
	if err := validateRate("construction_notification_rate", n); err != nil {
		return err
	}
	w.opts.ConstructionNotificationRate = n
	return nil
}

// SetFileNotificationRate sets how many written lines must pass between
// file notifications.
func (w *Writer) SetFileNotificationRate(n int) error {
	if err := validateRate("file_notification_rate", n); err != nil {
		return err
	}
	w.opts.FileNotificationRate = n
	return nil
}

// ConstructObservers returns the registry of construction observers.
func (w *Writer) ConstructObservers() *Registry[ConstructProgress] { return &w.construct }

// FileObservers returns the registry of file observers.
func (w *Writer) FileObservers() *Registry[FileProgress] { return &w.file }

// Cancel asks a running or future write to stop at the next top-level record
// boundary. It is permanent for this Writer.
func (w *Writer) Cancel() {
	w.cancelled.Store(true)
}

// Cancelled reports whether Cancel was called.
func (w *Writer) Cancelled() bool { return w.cancelled.Load() }

// ValidationFindings returns every finding of the last validation run,
// whether or not the write went ahead.
func (w *Writer) ValidationFindings() []validate.Finding { return w.findings }

// Emit builds the complete line sequence of the graph, ending with "0 TRLR".
// On error the returned slice is nil.
func (w *Writer) Emit(ctx context.Context) ([]string, error) {
	gate := &validate.Gate{
		Validator:  w.validator,
		Suppress:   w.opts.SuppressValidation,
		Autorepair: w.opts.Autorepair,
		Logger:     w.logger,
	}
	err := gate.Run(w.g)
	w.findings = gate.Findings()
	if err != nil {
		w.logger.Warn("write refused by validation", zap.Error(err))
		return nil, err
	}

	d, err := resolveDialect(w.g, w.opts.Dialect)
	if err != nil {
		return nil, err
	}
	w.logger.Debug("dialect resolved", zap.Stringer("dialect", d))
	if err := checkCompatibility(w.g, d); err != nil {
		w.logger.Warn("graph does not fit dialect", zap.Stringer("dialect", d), zap.Error(err))
		return nil, err
	}

	e := newEmitter(d)
	e.graph = w.g
	r := &run{
		w:        w,
		ctx:      ctx,
		e:        e,
		throttle: throttle{rate: w.opts.ConstructionNotificationRate},
	}
	if err := r.emitAll(); err != nil {
		w.logger.Warn("emission failed", zap.Stringer("dialect", d), zap.Error(err))
		return nil, err
	}
	w.logger.Info("emission finished", zap.Stringer("dialect", d), zap.Int("lines", len(r.e.lines)))
	return r.e.lines, nil
}

// run is the state of one emission pass.
type run struct {
	w        *Writer
	ctx      context.Context
	e        *emitter
	throttle throttle
}

func (r *run) emitAll() error {
	e := r.e
	if err := e.emitHeader(r.w.g.Header); err != nil {
		return err
	}
	if err := e.emitSubmission(r.w.g.Submission); err != nil {
		return err
	}
	r.notify()
	if err := r.checkCancel(""); err != nil {
		return err
	}

	if err := eachRecord(r, "individuals", r.w.g.Individuals, e.emitIndividual, true); err != nil {
		return err
	}
	if err := eachRecord(r, "families", r.w.g.Families, e.emitFamily, true); err != nil {
		return err
	}
	if err := eachRecord(r, "multimedia", r.w.g.Multimedia, e.emitMultimedia, true); err != nil {
		return err
	}
	if err := eachRecord(r, "notes", r.w.g.Notes, e.emitNoteRecord, false); err != nil {
		return err
	}
	if err := eachRecord(r, "repositories", r.w.g.Repositories, e.emitRepository, true); err != nil {
		return err
	}
	if err := eachRecord(r, "sources", r.w.g.Sources, e.emitSource, true); err != nil {
		return err
	}
	if err := eachRecord(r, "submitters", r.w.g.Submitters, e.emitSubmitter, false); err != nil {
		return err
	}

	e.current = ""
	if err := e.emitCustomTags(0, r.w.g.CustomTags); err != nil {
		return err
	}
	e.emitTag(0, "TRLR")
	r.w.construct.Notify(ConstructProgress{LinesProcessed: len(e.lines), Complete: true})
	return nil
}

// eachRecord emits the records of m in xref order, skipping nil entries.
// Boundary records notify observers and poll for cancellation after each
// record.
func eachRecord[T model.Record](r *run, kind string, m map[string]T, emit func(T) error, boundary bool) error {
	var none T
	count := 0
	defer func() { r.w.logger.Debug("records emitted", zap.String("kind", kind), zap.Int("count", count)) }()
	for _, rec := range record.Sorted(m) {
		if any(rec) == any(none) {
			continue
		}
		if rec.XrefID() == "" {
			return &errors.StructuralError{Reason: rec.TypeName() + " record has no xref"}
		}
		if err := emit(rec); err != nil {
			return err
		}
		count++
		if boundary {
			r.notify()
			if err := r.checkCancel(rec.XrefID()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *run) notify() {
	if n := len(r.e.lines); r.throttle.due(n) {
		r.w.construct.Notify(ConstructProgress{LinesProcessed: n})
	}
}

func (r *run) checkCancel(after string) error {
	if r.w.cancelled.Load() {
		return &errors.CancelledError{After: after}
	}
	if r.ctx != nil {
		if err := r.ctx.Err(); err != nil {
			return &errors.CancelledError{After: after, Cause: err}
		}
	}
	return nil
}
