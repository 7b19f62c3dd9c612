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
	"bufio"
	"fmt"
	"io"
	"os"
)

const DefaultBatchSize = 10000

// FlushCount returns how many flushes writing n combinations in batches
// of batchSize takes. The last, possibly partial, batch is flushed too.
func FlushCount(n, batchSize int) int {
	flushes := n / batchSize
	if n%batchSize != 0 {
		flushes++
	}
	return flushes
}

// WriteTarget is the value the write counter reaches once all the
// combinations are written: one unit per line and one per flush.
func WriteTarget(n, batchSize int) uint64 {
	return (uint64)(n) + (uint64)(FlushCount(n, batchSize))
}

type BatchWriter struct {
	w         *bufio.Writer
	batchSize int
	counter   *Counter
}

func NewBatchWriter(w io.Writer, batchSize int, counter *Counter) *BatchWriter {
	return &BatchWriter{
		w:         bufio.NewWriter(w),
		batchSize: batchSize,
		counter:   counter,
	}
}

// WriteAll writes every combination on its own line, flushing after
// each batch. Every line and every flush bumps the counter.
func (bw *BatchWriter) WriteAll(combs []string) error {
	for start, end := 0, 0; start < len(combs); start = end {
		// no start+batchSize, it can overflow for huge batches
		end = start + min(bw.batchSize, len(combs)-start)
		for idx := start; idx < end; idx++ {
			if _, err := bw.w.WriteString(combs[idx]); err != nil {
				return fmt.Errorf("failed to write combination %d: %w", idx, err)
			}
			if err := bw.w.WriteByte('\n'); err != nil {
				return fmt.Errorf("failed to write combination %d: %w", idx, err)
			}
			bw.counter.Inc()
		}
		if err := bw.w.Flush(); err != nil {
			return fmt.Errorf("failed to flush batch ending at %d: %w", end, err)
		}
		bw.counter.Inc()
	}
	return nil
}

// WriteFile creates or truncates path and writes the combinations into
// it. A file left behind by a failed write is not removed.
func WriteFile(path string, combs []string, batchSize int, counter *Counter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := NewBatchWriter(f, batchSize, counter).WriteAll(combs); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
