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
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of records and returns all validation errors
// encountered, rather than stopping at the first one.
//
// Each failure is wrapped with the record's type name and cross-reference id
// and collected with rxmerr.Collector. Empty and nil slices are valid.
func ValidateAll[T Record](records []T) error {
	c := rxmerr.NewCollector()

	for _, r := range records {
		if err := r.Validate(); err != nil {
			c.Append(fmt.Errorf("%s %s: %w", r.TypeName(), r.XrefID(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice holding only the non-zero elements of items,
// preserving order.
func FilterZero[T ZeroCheckable](items []T) []T {
	result := make([]T, 0, len(items))

	for _, m := range items {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// ToYAML validates v and marshals it to YAML.
func ToYAML[T Validatable](v T) ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid value: %w", err)
	}
	return yaml.Marshal(v)
}

// FromYAML unmarshals data into v and validates the result.
func FromYAML[T Validatable](data []byte, v T) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("unmarshaled value is invalid: %w", err)
	}
	return nil
}
