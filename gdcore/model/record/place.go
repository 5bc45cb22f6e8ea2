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

import "slices"

// Place is a PLAC structure.
type Place struct {
	PlaceName string           `json:"placeName" yaml:"placeName"`
	Form      *Text            `json:"form,omitempty" yaml:"form,omitempty"`
	Romanized []*NameVariation `json:"romanized,omitempty" yaml:"romanized,omitempty"`
	Phonetic  []*NameVariation `json:"phonetic,omitempty" yaml:"phonetic,omitempty"`
	Latitude  *Text            `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude *Text            `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	Citations []Citation       `json:"-" yaml:"-"`
	Notes     []*Note          `json:"notes,omitempty" yaml:"notes,omitempty"`
	Extensions
}

// NameVariation is a romanized (ROMN) or phonetic (FONE) variation of a
// place name.
type NameVariation struct {
	Variation     *Text `json:"variation" yaml:"variation"`
	VariationType *Text `json:"type,omitempty" yaml:"type,omitempty"`
	Extensions
}

// Copy returns a deep copy of p.
func (p *Place) Copy() *Place {
	if p == nil {
		return nil
	}
	return &Place{
		PlaceName:  p.PlaceName,
		Form:       p.Form.Copy(),
		Romanized:  copyVariations(p.Romanized),
		Phonetic:   copyVariations(p.Phonetic),
		Latitude:   p.Latitude.Copy(),
		Longitude:  p.Longitude.Copy(),
		Citations:  copyCitations(p.Citations),
		Notes:      copyNotes(p.Notes),
		Extensions: p.Extensions.Copy(),
	}
}

// Equal reports whether p and other are structurally equal.
func (p *Place) Equal(other *Place) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.PlaceName == other.PlaceName &&
		p.Form.Equal(other.Form) &&
		slices.EqualFunc(p.Romanized, other.Romanized, (*NameVariation).Equal) &&
		slices.EqualFunc(p.Phonetic, other.Phonetic, (*NameVariation).Equal) &&
		p.Latitude.Equal(other.Latitude) &&
		p.Longitude.Equal(other.Longitude) &&
		slices.EqualFunc(p.Citations, other.Citations, EqualCitations) &&
		slices.EqualFunc(p.Notes, other.Notes, (*Note).Equal) &&
		p.Extensions.Equal(other.Extensions)
}

// Copy returns a deep copy of nv.
func (nv *NameVariation) Copy() *NameVariation {
	if nv == nil {
		return nil
	}
	return &NameVariation{
		Variation:     nv.Variation.Copy(),
		VariationType: nv.VariationType.Copy(),
		Extensions:    nv.Extensions.Copy(),
	}
}

// Equal reports whether nv and other are structurally equal.
func (nv *NameVariation) Equal(other *NameVariation) bool {
	if nv == nil || other == nil {
		return nv == other
	}
	return nv.Variation.Equal(other.Variation) &&
		nv.VariationType.Equal(other.VariationType) &&
		nv.Extensions.Equal(other.Extensions)
}

func copyVariations(in []*NameVariation) []*NameVariation {
	if in == nil {
		return nil
	}
	out := make([]*NameVariation, len(in))
	for i, nv := range in {
		out[i] = nv.Copy()
	}
	return out
}
