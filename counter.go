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
	"sync/atomic"
)

// Counter is a monotonically increasing progress count shared between
// many producers and a single observer. It knows the value it is
// expected to reach and signals through Done once it gets there.
type Counter struct {
	n      atomic.Uint64
	target uint64
	done   chan struct{}
	once   sync.Once
}

func NewCounter(target uint64) *Counter {
	c := &Counter{
		target: target,
		done:   make(chan struct{}),
	}
	if target == 0 {
		c.signal()
	}
	return c
}

func (c *Counter) Inc() {
	c.Add(1)
}

func (c *Counter) Add(delta uint64) {
	if delta == 0 {
		return
	}
	v := c.n.Add(delta)
	// only the increment crossing the target closes the channel, the
	// once guards against Add calls racing past it together
	if v >= c.target && v-delta < c.target {
		c.signal()
	}
}

func (c *Counter) Load() uint64 {
	return c.n.Load()
}

func (c *Counter) Target() uint64 {
	return c.target
}

// Done is closed once the count reaches the target.
func (c *Counter) Done() <-chan struct{} {
	return c.done
}

func (c *Counter) signal() {
	c.once.Do(func() {
		close(c.done)
	})
}
