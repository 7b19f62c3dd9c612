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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isDone(c *Counter) bool {
	select {
	case <-c.Done():
		return true
	default:
		return false
	}
}

func TestCounter(t *testing.T) {
	c := NewCounter(3)
	assert.Equal(t, (uint64)(3), c.Target())
	assert.Equal(t, (uint64)(0), c.Load())
	assert.False(t, isDone(c))

	c.Inc()
	c.Add(0)
	assert.Equal(t, (uint64)(1), c.Load())
	assert.False(t, isDone(c))

	c.Add(2)
	assert.Equal(t, (uint64)(3), c.Load())
	assert.True(t, isDone(c))

	// going past the target does not close the channel again
	c.Inc()
	assert.Equal(t, (uint64)(4), c.Load())
	assert.True(t, isDone(c))
}

func TestCounterZeroTarget(t *testing.T) {
	c := NewCounter(0)
	assert.True(t, isDone(c))
	c.Inc()
	assert.Equal(t, (uint64)(1), c.Load())
}

func TestCounterJumpPastTarget(t *testing.T) {
	c := NewCounter(5)
	c.Add(2)
	require.False(t, isDone(c))
	c.Add(10)
	assert.True(t, isDone(c))
}

func TestCounterConcurrent(t *testing.T) {
	const (
		producers = 16
		perWorker = 5000
	)
	c := NewCounter(producers * perWorker)
	wg := sync.WaitGroup{}
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				c.Inc()
			}
		}()
	}
	<-c.Done()
	wg.Wait()
	assert.Equal(t, (uint64)(producers*perWorker), c.Load())
}
