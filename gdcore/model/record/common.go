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

package record

// ChangeDate is a CHAN structure.
type ChangeDate struct {
	Date  *Text   `json:"date" yaml:"date"`
	Time  *Text   `json:"time,omitempty" yaml:"time,omitempty"`
	Notes []*Note `json:"notes,omitempty" yaml:"notes,omitempty"`
	Extensions
}

// UserReference is a REFN structure.
type UserReference struct {
	ReferenceNum *Text `json:"referenceNum" yaml:"referenceNum"`
	Type         *Text `json:"type,omitempty" yaml:"type,omitempty"`
	Extensions
}

// Address is an ADDR structure. Lines holds the free-form address; the
// first line is the ADDR value and the rest become CONT lines.
type Address struct {
	Lines         []string `json:"lines,omitempty" yaml:"lines,omitempty"`
	AddressLine1  *Text    `json:"addressLine1,omitempty" yaml:"addressLine1,omitempty"`
	AddressLine2  *Text    `json:"addressLine2,omitempty" yaml:"addressLine2,omitempty"`
	AddressLine3  *Text    `json:"addressLine3,omitempty" yaml:"addressLine3,omitempty"`
	City          *Text    `json:"city,omitempty" yaml:"city,omitempty"`
	StateProvince *Text    `json:"stateProvince,omitempty" yaml:"stateProvince,omitempty"`
	PostalCode    *Text    `json:"postalCode,omitempty" yaml:"postalCode,omitempty"`
	Country       *Text    `json:"country,omitempty" yaml:"country,omitempty"`
	Extensions
}
