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
	"fmt"

	"go.uber.org/zap"

	"dirpx.dev/gedcom/gdcore/errors"
	"dirpx.dev/gedcom/gdcore/model"
	"dirpx.dev/gedcom/gdcore/validate"
)

// Options is the caller-facing configuration of a Writer. It can be loaded
// from YAML:
//
//	dialect: "5.5"
//	suppress_validation: false
//	autorepair: true
//	construction_notification_rate: 1000
//	file_notification_rate: 500
type Options struct {
	// Dialect forces the output dialect. When unspecified, the header's
	// declared version is used, falling back to model.DefaultDialect.
	Dialect model.Dialect `json:"dialect,omitempty" yaml:"dialect,omitempty"`

	// SuppressValidation skips the validation gate.
	SuppressValidation bool `json:"suppress_validation,omitempty" yaml:"suppress_validation,omitempty"`

	// Autorepair lets the validator fix what it can before emission.
	Autorepair bool `json:"autorepair,omitempty" yaml:"autorepair,omitempty"`

	// ConstructionNotificationRate is the number of built lines between
	// construction notifications. Must be at least 1.
	ConstructionNotificationRate int `json:"construction_notification_rate" yaml:"construction_notification_rate"`

	// FileNotificationRate is the number of written lines between file
	// notifications. Must be at least 1.
	FileNotificationRate int `json:"file_notification_rate" yaml:"file_notification_rate"`
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		ConstructionNotificationRate: DefaultNotificationRate,
		FileNotificationRate:         DefaultNotificationRate,
	}
}

// TypeName returns "Options".
func (o *Options) TypeName() string { return "Options" }

// Validate checks the dialect and both notification rates.
func (o *Options) Validate() error {
	if err := o.Dialect.Validate(); err != nil {
		return &errors.ConfigError{Option: "dialect", Value: o.Dialect, Reason: err.Error()}
	}
	if err := validateRate("construction_notification_rate", o.ConstructionNotificationRate); err != nil {
		return err
	}
	return validateRate("file_notification_rate", o.FileNotificationRate)
}

// LoadOptions parses YAML options. Keys that are absent keep their default
// values.
func LoadOptions(data []byte) (Options, error) {
	o := DefaultOptions()
	if err := model.FromYAML(data, &o); err != nil {
		return Options{}, fmt.Errorf("load writer options: %w", err)
	}
	return o, nil
}

// SaveOptions validates o and renders it as YAML that LoadOptions accepts.
func SaveOptions(o Options) ([]byte, error) {
	data, err := model.ToYAML(&o)
	if err != nil {
		return nil, fmt.Errorf("save writer options: %w", err)
	}
	return data, nil
}

// Option configures a Writer in New.
type Option func(*Writer) error

// WithOptions replaces the whole configuration.
func WithOptions(o Options) Option {
	return func(w *Writer) error {
		if err := o.Validate(); err != nil {
			return err
		}
		w.opts = o
		return nil
	}
}

// WithDialect forces the output dialect.
func WithDialect(d model.Dialect) Option {
	return func(w *Writer) error {
		if !d.Valid() {
			return &errors.ConfigError{Option: "dialect", Value: d, Reason: "must be 5.5 or 5.5.1"}
		}
		w.opts.Dialect = d
		return nil
	}
}

// WithoutValidation skips the validation gate.
func WithoutValidation() Option {
	return func(w *Writer) error {
		w.opts.SuppressValidation = true
		return nil
	}
}

// WithAutorepair enables or disables validator autorepair.
func WithAutorepair(on bool) Option {
	return func(w *Writer) error {
		w.opts.Autorepair = on
		return nil
	}
}

// WithConstructionNotificationRate sets the construction notification rate.
func WithConstructionNotificationRate(n int) Option {
	return func(w *Writer) error { return w.SetConstructionNotificationRate(n) }
}

// WithFileNotificationRate sets the file notification rate.
func WithFileNotificationRate(n int) Option {
	return func(w *Writer) error { return w.SetFileNotificationRate(n) }
}

// WithValidator replaces the default reference validator.
func WithValidator(v validate.Validator) Option {
	return func(w *Writer) error {
		w.validator = v
		return nil
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(w *Writer) error {
		if l != nil {
			w.logger = l
		}
		return nil
	}
}
