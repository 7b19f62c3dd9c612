// Copyright Krzesimir Nowak
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

type StringSet map[string]struct{}

func NewStringSet(strs ...string) StringSet {
	s := make(StringSet, len(strs))
	s.AddSlice(strs)
	return s
}

func (s StringSet) Add(str string) {
	s[str] = struct{}{}
}

func (s StringSet) AddSlice(other []string) {
	for _, str := range other {
		s.Add(str)
	}
}

func (s StringSet) Has(str string) bool {
	_, ok := s[str]
	return ok
}

func (s StringSet) Len() int {
	return len(s)
}

func (s StringSet) Diff(other StringSet) StringSet {
	diff := StringSet{}
	for str := range s {
		if !other.Has(str) {
			diff.Add(str)
		}
	}
	return diff
}

func (s StringSet) Equal(other StringSet) bool {
	return s.Len() == other.Len() && s.Diff(other).Len() == 0
}

func (s StringSet) ToSlice() []string {
	slice := make([]string, 0, len(s))
	for str := range s {
		slice = append(slice, str)
	}
	sort.Strings(slice)
	return slice
}

func TestStringSet(t *testing.T) {
	s1 := StringSet{}
	assert.Equal(t, 0, s1.Len())
	assert.False(t, s1.Has("ab"))
	s1.Add("ab")
	assert.Equal(t, 1, s1.Len())
	assert.True(t, s1.Has("ab"))
	s1.Add("ab")
	assert.Equal(t, 1, s1.Len())

	s1.AddSlice([]string{"ab", "Ab", "aB", "Ab", "aB"})
	assert.Equal(t, 3, s1.Len())
	assert.True(t, s1.Has("Ab"))
	assert.True(t, s1.Has("aB"))
	assert.False(t, s1.Has("AB"))

	s2 := NewStringSet("ab", "Ab", "aB", "AB")
	assert.Equal(t, 4, s2.Len())
	assert.False(t, s1.Equal(s2))
	assert.False(t, s2.Equal(s1))

	s12Diff := s1.Diff(s2)
	s21Diff := s2.Diff(s1)
	assert.Equal(t, 0, s12Diff.Len())
	assert.Equal(t, []string{"AB"}, s21Diff.ToSlice())

	s1.Add("AB")
	assert.True(t, s1.Equal(s2))
	assert.Equal(t, []string{"AB", "Ab", "aB", "ab"}, s1.ToSlice())
}
