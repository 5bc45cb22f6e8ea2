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

package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{"Dialect type", &ParseError{Type: "Dialect", Value: "7.0"}, "gedcom: invalid Dialect value: 7.0"},
		{"Severity type", &ParseError{Type: "Severity", Value: "fatal"}, "gedcom: invalid Severity value: fatal"},
		{"empty value", &ParseError{Type: "Dialect", Value: ""}, "gedcom: invalid Dialect value: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalError_Error(t *testing.T) {
	err := &MarshalError{Type: "Severity", Value: -1}
	if got, want := err.Error(), "gedcom: cannot marshal invalid Severity value: -1"; got != want {
		t.Errorf("MarshalError.Error() = %q, want %q", got, want)
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	err := &UnmarshalError{Type: "Dialect", Data: []byte("secret"), Reason: "empty data"}
	if got, want := err.Error(), "gedcom: cannot unmarshal Dialect: empty data"; got != want {
		t.Errorf("UnmarshalError.Error() = %q, want %q", got, want)
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{"with field", &ValidationError{Type: "Individual", Field: "Xref", Reason: "must not be empty"}, "gedcom: invalid Individual.Xref: must not be empty"},
		{"without field", &ValidationError{Type: "Dialect", Reason: "invalid value"}, "gedcom: invalid Dialect: invalid value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructuralError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuralError
		want string
	}{
		{"full", &StructuralError{Xref: "@I1@", Tag: "FAMC", Reason: "nil family reference"}, "gedcom: structural error in @I1@ at FAMC: nil family reference"},
		{"no tag", &StructuralError{Xref: "@F1@", Reason: "child is nil"}, "gedcom: structural error in @F1@: child is nil"},
		{"header", &StructuralError{Tag: "SOUR", Reason: "required value missing"}, "gedcom: structural error at SOUR: required value missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("StructuralError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDialectError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *DialectError
		want string
	}{
		{"record", &DialectError{Dialect: "5.5", Xref: "@I1@", Reason: "has emails"}, "gedcom: dialect mismatch: GEDCOM 5.5, @I1@: has emails"},
		{"header", &DialectError{Dialect: "5.5", Reason: "data is encoded using UTF-8"}, "gedcom: dialect mismatch: GEDCOM 5.5: data is encoded using UTF-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("DialectError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCancelledError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *CancelledError
		want string
	}{
		{"bare", &CancelledError{}, "gedcom: write cancelled"},
		{"after record", &CancelledError{After: "@I3@"}, "gedcom: write cancelled after @I3@"},
		{"context", &CancelledError{Cause: context.Canceled}, "gedcom: write cancelled: context canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("CancelledError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKinds_Is(t *testing.T) {
	findings := fmt.Errorf("finding: %w", stderrors.New("dangling @F9@"))

	tests := []struct {
		name   string
		err    error
		target error
		others []error
	}{
		{"structural", &StructuralError{Xref: "@I1@", Reason: "x"}, ErrStructural, []error{ErrDialect, ErrPreflight, ErrCancelled, ErrConfig}},
		{"dialect", &DialectError{Dialect: "5.5", Reason: "x"}, ErrDialect, []error{ErrStructural, ErrPreflight, ErrCancelled, ErrConfig}},
		{"preflight", &PreflightError{ErrorCount: 1, Findings: findings}, ErrPreflight, []error{ErrStructural, ErrDialect, ErrCancelled, ErrConfig}},
		{"cancelled", &CancelledError{}, ErrCancelled, []error{ErrStructural, ErrDialect, ErrPreflight, ErrConfig}},
		{"config", &ConfigError{Option: "file_notification_rate", Value: 0, Reason: "must be at least 1"}, ErrConfig, []error{ErrStructural, ErrDialect, ErrPreflight, ErrCancelled}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("write: %w", tt.err)
			if !stderrors.Is(wrapped, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.target)
			}
			for _, o := range tt.others {
				if stderrors.Is(wrapped, o) {
					t.Errorf("errors.Is(%v, %v) = true, want false", wrapped, o)
				}
			}
		})
	}
}

func TestCancelledError_UnwrapsContext(t *testing.T) {
	err := &CancelledError{Cause: context.DeadlineExceeded}
	if !stderrors.Is(err, context.DeadlineExceeded) {
		t.Error("CancelledError should unwrap to its context cause")
	}
}

func TestPreflightError_Unwrap(t *testing.T) {
	inner := stderrors.New("dangling @F9@")
	err := &PreflightError{ErrorCount: 1, Findings: inner}
	if !stderrors.Is(err, inner) {
		t.Error("PreflightError should unwrap to its findings")
	}
	want := "gedcom: validation failed: 1 error(s) found, review the validation findings to determine root cause"
	if got := err.Error(); got != want {
		t.Errorf("PreflightError.Error() = %q, want %q", got, want)
	}
}
