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
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"dirpx.dev/gedcom/gdcore/errors"
	"dirpx.dev/gedcom/gdcore/model"
)

// Severity ranks a validation finding. Only Error blocks a write.
type Severity int

const (
	// Info findings are observations with no effect on the output.
	Info Severity = iota

	// Warning findings describe data that will be written but is suspect.
	Warning

	// Error findings describe data that must not be written.
	Error
)

// Compile-time check that Severity implements model.Model interface.
var _ model.Model = (*Severity)(nil)

// String constants for Severity values.
const (
	InfoStr    = "info"
	WarningStr = "warning"
	ErrorStr   = "error"
)

// String returns the lowercase name of s, or "unknown".
func (s Severity) String() string {
	switch s {
	case Info:
		return InfoStr
	case Warning:
		return WarningStr
	case Error:
		return ErrorStr
	default:
		return "unknown"
	}
}

// ParseSeverity converts a case-insensitive severity name into a Severity.
func ParseSeverity(str string) (Severity, error) {
	switch strings.ToLower(str) {
	case InfoStr:
		return Info, nil
	case WarningStr, "warn":
		return Warning, nil
	case ErrorStr:
		return Error, nil
	default:
		return Info, &errors.ParseError{Type: "Severity", Value: str}
	}
}

// Valid reports whether s is a defined severity.
func (s Severity) Valid() bool {
	return s >= Info && s <= Error
}

// MarshalJSON implements json.Marshaler.
func (s Severity) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Severity", Value: int(s)}
	}
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Severity", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseSeverity(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Severity) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Severity", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Severity) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Severity", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseSeverity(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// TypeName returns "Severity".
func (s Severity) TypeName() string { return "Severity" }

// Redacted returns the same as String.
func (s Severity) Redacted() string { return s.String() }

// IsZero reports whether s is Info.
func (s Severity) IsZero() bool { return s == Info }

// Validate returns an error for undefined severities.
func (s Severity) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{Type: "Severity", Reason: "unknown severity", Value: int(s)}
	}
	return nil
}
