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

// Package model defines the contracts shared by every gedcom model type and
// the enum-like types that configure a write (Dialect).
//
// The record graph itself lives in the record subpackage. Types in this
// package and in record implement the small interfaces below so that generic
// helpers (ValidateAll, FilterZero, ToYAML, FromYAML) work across all of them.
package model

import "gopkg.in/yaml.v3"

// Model is the full contract implemented by enum-like value types such as
// Dialect. It combines validation, YAML serialization, logging, naming and
// zero checks.
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable is implemented by every type that can check its own invariants.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects.
	Validate() error
}

// Serializable is implemented by types with a canonical YAML form.
type Serializable interface {
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by types that can be written to logs.
type Loggable interface {
	// Redacted returns a representation safe for production logs. Living
	// persons' names and contact details MUST NOT appear in it.
	Redacted() string

	// String returns a human-readable representation that MAY include
	// personal data.
	String() string
}

// Identifiable is implemented by types that know their canonical type name.
type Identifiable interface {
	// TypeName returns the canonical CamelCase name of this type without a
	// package prefix (for example, "Individual").
	TypeName() string
}

// ZeroCheckable is implemented by types with a meaningful empty state.
type ZeroCheckable interface {
	// IsZero reports whether this instance carries no meaningful data.
	IsZero() bool
}

// Record is implemented by every top-level record of the record graph
// (individuals, families, sources, repositories, multimedia objects,
// submitters, submissions and note records).
type Record interface {
	Validatable
	Identifiable
	ZeroCheckable

	// XrefID returns the record's cross-reference id, for example "@I1@".
	XrefID() string
}

// Comparable is implemented by types with structural equality.
type Comparable[T any] interface {
	// Equal reports whether this instance is structurally equal to other.
	Equal(other T) bool
}

// Copyable is implemented by types that can produce a deep copy.
type Copyable[T any] interface {
	// Copy returns a deep copy that shares no mutable state with the
	// receiver.
	Copy() T
}
