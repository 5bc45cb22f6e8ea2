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

package model

import (
	"encoding/json"

	bsemver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"

	"dirpx.dev/gedcom/gdcore/errors"
)

// Dialect selects which of the two supported GEDCOM grammars a file is
// written in.
//
// The two dialects are mutually incompatible: GEDCOM 5.5 allows embedded
// multimedia BLOB data but has no contact fields (WWW, FAX, EMAIL), no FACT
// attribute, no UTF-8 character set and no family-link status; GEDCOM 5.5.1
// adds all of those and drops BLOB data.
//
// The zero value is DialectUnspecified, meaning "take the dialect declared in
// the header, or DefaultDialect if the header declares none".
type Dialect int

const (
	// DialectUnspecified defers the choice to the header or DefaultDialect.
	DialectUnspecified Dialect = iota

	// V55 is GEDCOM 5.5.
	V55

	// V551 is GEDCOM 5.5.1.
	V551
)

// DefaultDialect is used when neither the caller nor the header name one.
const DefaultDialect = V551

// Compile-time check that Dialect implements model.Model interface.
var _ Model = (*Dialect)(nil)

// String constants for Dialect values. They are the exact values of the
// GEDC.VERS header line.
const (
	V55Str  = "5.5"
	V551Str = "5.5.1"
)

// String returns the GEDC.VERS spelling of the dialect, or "unspecified" /
// "unknown" for the zero value and out-of-range values.
func (d Dialect) String() string {
	switch d {
	case V55:
		return V55Str
	case V551:
		return V551Str
	case DialectUnspecified:
		return "unspecified"
	default:
		return "unknown"
	}
}

// ParseDialect converts a version string into a Dialect.
//
// Parsing is tolerant of the spellings found in real files and configuration:
// a leading "v", surrounding spaces and missing trailing components are
// accepted, so "5.5", "5.5.0" and "v5.5" all yield V55, and "5.5.1" and
// "v5.5.1" yield V551. Any other version is rejected with a ParseError.
func ParseDialect(str string) (Dialect, error) {
	v, err := bsemver.ParseTolerant(str)
	if err != nil || v.Major != 5 || v.Minor != 5 || len(v.Pre) > 0 {
		return DialectUnspecified, &errors.ParseError{Type: "Dialect", Value: str}
	}

	switch v.Patch {
	case 0:
		return V55, nil
	case 1:
		return V551, nil
	default:
		return DialectUnspecified, &errors.ParseError{Type: "Dialect", Value: str}
	}
}

// Valid reports whether d is one of the two concrete dialects.
func (d Dialect) Valid() bool {
	return d == V55 || d == V551
}

// OrDefault returns d if it is a concrete dialect, DefaultDialect otherwise.
func (d Dialect) OrDefault() Dialect {
	if d.Valid() {
		return d
	}
	return DefaultDialect
}

// MarshalJSON implements json.Marshaler.
func (d Dialect) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "Dialect", Value: int(d)}
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts the string form only.
func (d *Dialect) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Dialect", Data: data, Reason: "empty data"}
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Dialect", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseDialect(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Dialect) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "Dialect", Value: int(d)}
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dialect) UnmarshalText(text []byte) error {
	parsed, err := ParseDialect(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Dialect) MarshalYAML() (any, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "Dialect", Value: int(d)}
	}
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
// YAML reads an unquoted 5.5 as a float, so the raw scalar text is parsed
// rather than a decoded value.
func (d *Dialect) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &errors.UnmarshalError{Type: "Dialect", Data: []byte(node.Value), Reason: "expected a scalar"}
	}
	parsed, err := ParseDialect(node.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TypeName returns "Dialect".
func (d Dialect) TypeName() string {
	return "Dialect"
}

// Redacted returns the same as String; a dialect carries no sensitive data.
func (d Dialect) Redacted() string {
	return d.String()
}

// IsZero reports whether d is DialectUnspecified.
func (d Dialect) IsZero() bool {
	return d == DialectUnspecified
}

// Validate accepts the two concrete dialects and DialectUnspecified.
func (d Dialect) Validate() error {
	if d != DialectUnspecified && !d.Valid() {
		return &errors.ValidationError{Type: "Dialect", Reason: "unknown dialect", Value: int(d)}
	}
	return nil
}
