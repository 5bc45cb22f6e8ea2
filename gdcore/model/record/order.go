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

import (
	"cmp"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// CompareXrefs orders cross-reference ids naturally: runs of digits compare
// by numeric value, so "@I2@" sorts before "@I10@". Ties fall back to plain
// string order.
func CompareXrefs(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			ei, ej := digitsEnd(a, i), digitsEnd(b, j)
			if c := compareDigits(a[i:ei], b[j:ej]); c != 0 {
				return c
			}
			i, j = ei, ej
			continue
		}
		if a[i] != b[j] {
			return cmp.Compare(a[i], b[j])
		}
		i++
		j++
	}
	if c := cmp.Compare(len(a)-i, len(b)-j); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func compareDigits(a, b string) int {
	ta, tb := strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(ta), len(tb)); c != 0 {
		return c
	}
	return strings.Compare(ta, tb)
}

func digitsEnd(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// SortedKeys returns the keys of m ordered with CompareXrefs.
func SortedKeys[T any](m map[string]T) []string {
	return slices.SortedFunc(maps.Keys(m), CompareXrefs)
}

// Sorted returns the values of m ordered by key with CompareXrefs.
func Sorted[T any](m map[string]T) []T {
	keys := SortedKeys(m)
	out := make([]T, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}

// NextXref returns the first id of the form "@<prefix><n>@" that is not a key
// of m, counting from 1.
func NextXref[T any](m map[string]T, prefix string) string {
	for n := 1; ; n++ {
		x := "@" + prefix + strconv.Itoa(n) + "@"
		if _, ok := m[x]; !ok {
			return x
		}
	}
}

// Lookup returns the record stored under xref in m.
func Lookup[T any](m map[string]T, xref string) (T, bool) {
	v, ok := m[xref]
	return v, ok
}

// Resolves reports whether r is the very record stored under its own xref
// in m.
func Resolves[T interface {
	comparable
	XrefID() string
}](m map[string]T, r T) bool {
	got, ok := Lookup(m, r.XrefID())
	return ok && got == r
}
