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

// Package errors provides the error types used across the gedcom module.
//
// Two families of errors live here. The first is the small set of value
// errors used by enum-like model types (Dialect, Severity) when parsing,
// marshaling and unmarshaling: ParseError, MarshalError, UnmarshalError and
// ValidationError.
//
// The second family describes why a write attempt failed. Every failure of
// the writer is exactly one of the following kinds:
//
//   - StructuralError
//     The record graph is malformed relative to the GEDCOM grammar: a
//     mandatory value is missing or a required cross-reference is nil or
//     dangling. The error always names the offending record.
//
//   - DialectError
//     The graph uses a feature that the selected GEDCOM dialect does not
//     allow. Only the first violation is reported.
//
//   - PreflightError
//     The validator reported one or more error-severity findings, so
//     emission never started. All findings are carried.
//
//   - CancelledError
//     The caller asked for the write to stop.
//
//   - ConfigError
//     An option was set to an invalid value. Returned at configuration
//     time, never during emission.
//
// Each kind has a sentinel (ErrStructural, ErrDialect, ErrPreflight,
// ErrCancelled, ErrConfig) so callers can classify a failure with the
// standard library:
//
//	lines, err := w.Emit(ctx)
//	switch {
//	case errors.Is(err, gderrors.ErrCancelled):
//	    // the caller asked for this
//	case errors.Is(err, gderrors.ErrDialect):
//	    // fix the data or pick the other dialect
//	}
package errors

import (
	"strconv"
	"strings"
)

// kind is the sentinel type behind the Err* values.
type kind string

func (k kind) Error() string { return "gedcom: " + string(k) }

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrStructural error = kind("structural error")
	ErrDialect    error = kind("dialect mismatch")
	ErrPreflight  error = kind("validation failed")
	ErrCancelled  error = kind("write cancelled")
	ErrConfig     error = kind("invalid configuration")
)

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Dialect"), and
// Value contains the exact string that could not be interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Dialect").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"gedcom: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "gedcom: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error (for example, a
// zero value that was never validated).
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "Severity").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"gedcom: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "gedcom: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The Data field is not included in the formatted message; callers can log
// it separately when appropriate.
func (e *UnmarshalError) Error() string {
	return "gedcom: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Individual"), Field optionally identifies which field failed validation,
// and Reason explains the failure.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"gedcom: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"gedcom: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "gedcom: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "gedcom: invalid " + e.Type + ": " + e.Reason
}

// StructuralError reports a record graph that cannot be expressed in the
// GEDCOM grammar: a mandatory value is absent, or a reference that must
// resolve to a live record is nil or dangling.
//
// Xref names the top-level record being emitted when the problem was found.
// It is empty only for structures outside any record (the header).
type StructuralError struct {
	// Xref is the cross-reference id of the offending record.
	Xref string

	// Tag is the GEDCOM tag being emitted, when known.
	Tag string

	// Reason is a short, human-readable explanation.
	Reason string
}

// Error implements the error interface for StructuralError.
//
// The error message format is:
//
//	"gedcom: structural error in {Xref} at {Tag}: {Reason}"
func (e *StructuralError) Error() string {
	var b strings.Builder
	b.WriteString("gedcom: structural error")
	if e.Xref != "" {
		b.WriteString(" in " + e.Xref)
	}
	if e.Tag != "" {
		b.WriteString(" at " + e.Tag)
	}
	b.WriteString(": " + e.Reason)
	return b.String()
}

// Is reports whether target is ErrStructural.
func (e *StructuralError) Is(target error) bool { return target == ErrStructural }

// DialectError reports the first feature found in the graph that the target
// GEDCOM dialect does not allow.
type DialectError struct {
	// Dialect is the textual name of the target dialect ("5.5" or "5.5.1").
	Dialect string

	// Xref is the offending record, or empty for header-level features.
	Xref string

	// Reason describes the disallowed feature.
	Reason string
}

// Error implements the error interface for DialectError.
//
// The error message format is:
//
//	"gedcom: dialect mismatch: GEDCOM {Dialect}, {Xref}: {Reason}"
func (e *DialectError) Error() string {
	msg := "gedcom: dialect mismatch: GEDCOM " + e.Dialect
	if e.Xref != "" {
		msg += ", " + e.Xref
	}
	return msg + ": " + e.Reason
}

// Is reports whether target is ErrDialect.
func (e *DialectError) Is(target error) bool { return target == ErrDialect }

// PreflightError is returned when validation before emission found at least
// one error-severity finding.
//
// Findings holds the aggregated error of every finding at error severity.
// The complete finding list, including warnings, is available from the
// writer after the attempt.
type PreflightError struct {
	// ErrorCount is the number of error-severity findings.
	ErrorCount int

	// Findings aggregates one error per error-severity finding.
	Findings error
}

// Error implements the error interface for PreflightError.
func (e *PreflightError) Error() string {
	return "gedcom: validation failed: " + strconv.Itoa(e.ErrorCount) +
		" error(s) found, review the validation findings to determine root cause"
}

// Is reports whether target is ErrPreflight.
func (e *PreflightError) Is(target error) bool { return target == ErrPreflight }

// Unwrap returns the aggregated findings.
func (e *PreflightError) Unwrap() error { return e.Findings }

// CancelledError is returned when a write stops because the caller asked it
// to, either through the writer's Cancel method or through its context.
type CancelledError struct {
	// After is the xref of the last record fully emitted before the stop.
	After string

	// Cause is the context error when cancellation came from a context.
	Cause error
}

// Error implements the error interface for CancelledError.
func (e *CancelledError) Error() string {
	msg := "gedcom: write cancelled"
	if e.After != "" {
		msg += " after " + e.After
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Is reports whether target is ErrCancelled.
func (e *CancelledError) Is(target error) bool { return target == ErrCancelled }

// Unwrap returns the context error, if any.
func (e *CancelledError) Unwrap() error { return e.Cause }

// ConfigError reports an option value rejected at configuration time.
type ConfigError struct {
	// Option is the option name as it appears in configuration files.
	Option string

	// Value is the rejected value.
	Value any

	// Reason is a short, human-readable explanation.
	Reason string
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	return "gedcom: invalid configuration " + e.Option + ": " + e.Reason
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }
