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
	"dirpx.dev/gedcom/gdcore/model/record"
)

// Finding is one problem reported by a Validator.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`

	// Xref is the record the finding is about, or empty for the header and
	// graph-wide findings.
	Xref string `json:"xref,omitempty" yaml:"xref,omitempty"`

	Message string `json:"message" yaml:"message"`
}

// String returns "severity xref: message".
func (f Finding) String() string {
	if f.Xref == "" {
		return f.Severity.String() + ": " + f.Message
	}
	return f.Severity.String() + " " + f.Xref + ": " + f.Message
}

// Validator checks a record graph and reports every finding. When
// autorepair is true the validator may fix what it can in place; repaired
// problems should be reported below Error severity.
type Validator interface {
	Validate(g *record.Gedcom, autorepair bool) []Finding
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(g *record.Gedcom, autorepair bool) []Finding

// Validate calls f.
func (f ValidatorFunc) Validate(g *record.Gedcom, autorepair bool) []Finding {
	return f(g, autorepair)
}

// CountErrors returns the number of findings at Error severity.
func CountErrors(findings []Finding) int {
	n := 0
	for _, f := range findings {
		if f.Severity == Error {
			n++
		}
	}
	return n
}
