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

// Text is a scalar GEDCOM value together with any custom facts attached
// beneath it.
type Text struct {
	Value       string        `json:"value" yaml:"value"`
	CustomFacts []*CustomFact `json:"customFacts,omitempty" yaml:"customFacts,omitempty"`
}

// NewText returns a *Text holding s.
func NewText(s string) *Text {
	return &Text{Value: s}
}

// Texts converts each string into a *Text.
func Texts(ss ...string) []*Text {
	out := make([]*Text, len(ss))
	for i, s := range ss {
		out[i] = NewText(s)
	}
	return out
}

// String returns the value, or "" for a nil receiver.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return t.Value
}

// IsEmpty reports whether t is absent or has an empty value.
func (t *Text) IsEmpty() bool {
	return t == nil || t.Value == ""
}

// Copy returns a deep copy of t.
func (t *Text) Copy() *Text {
	if t == nil {
		return nil
	}
	return &Text{Value: t.Value, CustomFacts: copyFacts(t.CustomFacts)}
}

// Equal reports whether t and other are both absent, or both present with
// the same value and structurally equal custom facts.
func (t *Text) Equal(other *Text) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Value == other.Value && equalFacts(t.CustomFacts, other.CustomFacts)
}

// StringTree is one unrecognized GEDCOM line and the lines nested beneath it.
//
// Children sit one level deeper than their parent. ID and Value are omitted
// from the written line when blank.
type StringTree struct {
	ID       string        `json:"id,omitempty" yaml:"id,omitempty"`
	Tag      string        `json:"tag" yaml:"tag"`
	Value    string        `json:"value,omitempty" yaml:"value,omitempty"`
	Children []*StringTree `json:"children,omitempty" yaml:"children,omitempty"`
}

// Copy returns a deep copy of st.
func (st *StringTree) Copy() *StringTree {
	if st == nil {
		return nil
	}
	out := &StringTree{ID: st.ID, Tag: st.Tag, Value: st.Value}
	for _, c := range st.Children {
		out.Children = append(out.Children, c.Copy())
	}
	return out
}

// Equal reports whether st and other describe the same lines.
func (st *StringTree) Equal(other *StringTree) bool {
	if st == nil || other == nil {
		return st == other
	}
	return st.ID == other.ID && st.Tag == other.Tag && st.Value == other.Value &&
		slices.EqualFunc(st.Children, other.Children, (*StringTree).Equal)
}

// Extensions is embedded by every structure that can carry unrecognized
// content. Custom facts are written before custom tags, and both after every
// other child of the structure.
type Extensions struct {
	CustomFacts []*CustomFact `json:"customFacts,omitempty" yaml:"customFacts,omitempty"`
	CustomTags  []*StringTree `json:"customTags,omitempty" yaml:"customTags,omitempty"`
}

// Copy returns a deep copy of e.
func (e Extensions) Copy() Extensions {
	out := Extensions{CustomFacts: copyFacts(e.CustomFacts)}
	for _, st := range e.CustomTags {
		out.CustomTags = append(out.CustomTags, st.Copy())
	}
	return out
}

// Equal reports whether e and other carry structurally equal extensions.
func (e Extensions) Equal(other Extensions) bool {
	return equalFacts(e.CustomFacts, other.CustomFacts) &&
		slices.EqualFunc(e.CustomTags, other.CustomTags, (*StringTree).Equal)
}

// ContactInfo holds the contact lists shared by individuals, submitters,
// repositories, corporations and events. WWW, FAX and EMAIL exist only in
// GEDCOM 5.5.1.
type ContactInfo struct {
	PhoneNumbers []*Text `json:"phoneNumbers,omitempty" yaml:"phoneNumbers,omitempty"`
	WWWURLs      []*Text `json:"wwwUrls,omitempty" yaml:"wwwUrls,omitempty"`
	FaxNumbers   []*Text `json:"faxNumbers,omitempty" yaml:"faxNumbers,omitempty"`
	Emails       []*Text `json:"emails,omitempty" yaml:"emails,omitempty"`
}

func copyTexts(in []*Text) []*Text {
	if in == nil {
		return nil
	}
	out := make([]*Text, len(in))
	for i, t := range in {
		out[i] = t.Copy()
	}
	return out
}

func equalTexts(a, b []*Text) bool {
	return slices.EqualFunc(a, b, (*Text).Equal)
}
