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
	"errors"
	"fmt"
	"math"
	"math/bits"
	"runtime"
	"unsafe"

	"golang.org/x/sync/errgroup"
)

// maxResultBytes caps the memory taken by the string headers of the
// result slice alone, well below what makeslice accepts.
const maxResultBytes = min(math.MaxInt/2, 1<<40)

// MaxInputLength is the longest input whose result slice stays within
// maxResultBytes: 36 characters on 64-bit platforms.
var MaxInputLength = bits.Len64(maxResultBytes/uint64(unsafe.Sizeof(""))) - 1

// genChunk is the number of consecutive indexes a single generator task
// handles.
const genChunk = 1024

var ErrInputTooLong = errors.New("input string too long")

func NCombs(n int) uint64 {
	return (uint64)(1) << n
}

// CombGen produces the casing variants of a string. Variant idx has the
// rune at position j upper-cased when bit j of idx is set and lower-cased
// otherwise. Only ASCII letters are affected, other runes still take up
// a bit.
type CombGen struct {
	input   []rune
	n       uint64
	workers int
}

func NewCombGen(input string, workers int) (*CombGen, error) {
	runes := []rune(input)
	if len(runes) > MaxInputLength {
		return nil, fmt.Errorf("%w: %d characters, at most %d are supported", ErrInputTooLong, len(runes), MaxInputLength)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &CombGen{
		input:   runes,
		n:       NCombs(len(runes)),
		workers: workers,
	}, nil
}

func (g *CombGen) NCombs() uint64 {
	return g.n
}

func (g *CombGen) Len() int {
	return len(g.input)
}

func (g *CombGen) Get(idx uint64) string {
	return variant(make([]rune, len(g.input)), g.input, idx)
}

// Generate computes all the variants in parallel and returns them
// ordered by index. The counter is bumped once per variant.
func (g *CombGen) Generate(counter *Counter) []string {
	combs := make([]string, g.n)
	eg := errgroup.Group{}
	eg.SetLimit(g.workers)
	for start := uint64(0); start < g.n; start += genChunk {
		start := start
		end := min(start+genChunk, g.n)
		eg.Go(func() error {
			buf := make([]rune, len(g.input))
			for idx := start; idx < end; idx++ {
				combs[idx] = variant(buf, g.input, idx)
				counter.Inc()
			}
			return nil
		})
	}
	// tasks never return an error, a panicking one brings the
	// whole process down
	_ = eg.Wait()
	return combs
}

func variant(buf, input []rune, idx uint64) string {
	for j, r := range input {
		if idx&(1<<uint(j)) != 0 {
			buf[j] = toUpper(r)
		} else {
			buf[j] = toLower(r)
		}
	}
	return string(buf)
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// DistinctVariants returns how many different strings are among the
// variants of input. Runes without an ASCII case pair repeat variants.
func DistinctVariants(input string) uint64 {
	letters := 0
	for _, r := range input {
		if toUpper(r) != toLower(r) {
			letters++
		}
	}
	return NCombs(letters)
}
