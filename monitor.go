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
	"time"

	"github.com/go-logr/logr"
)

const (
	DefaultInterval    = 100 * time.Millisecond
	defaultDoneMessage = "Wrapping up..."
)

type MonitorOptions struct {
	// Counter is observed until it reaches its target.
	Counter *Counter

	Display Display

	// Printer receives DoneMessage after the display is finished. Can
	// be nil.
	Printer     *Printer
	DoneMessage string

	// Interval between two samples of the counter.
	// Default: 100ms
	Interval time.Duration

	Log logr.Logger
}

// Monitor renders the progress of a counter from a separate goroutine
// until the counter reaches its target.
type Monitor struct {
	opts     MonitorOptions
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewMonitor(opts MonitorOptions) *Monitor {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.DoneMessage == "" {
		opts.DoneMessage = defaultDoneMessage
	}
	return &Monitor{
		opts:   opts,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

// Stop makes the monitor exit without rendering the finished state. It is
// meant for a phase that failed and will never reach the target.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
	})
}

// Wait blocks until the monitor goroutine exits, either after rendering
// the finished state, after a display failure or after Stop.
func (m *Monitor) Wait() {
	<-m.done
}

func (m *Monitor) loop() {
	defer close(m.done)

	counter := m.opts.Counter
	target := counter.Target()
	log := m.opts.Log
	if err := m.opts.Display.Start(target); err != nil {
		log.Error(err, "failed to start progress bar")
		return
	}

	ticker := time.NewTicker(m.opts.Interval)
	defer ticker.Stop()

	for {
		value := counter.Load()
		if err := m.opts.Display.Update(value); err != nil {
			log.Error(err, "failed to update progress bar")
			return
		}
		if value >= target {
			m.finish()
			return
		}
		log.V(2).Info("progress", "value", value, "target", target)
		select {
		case <-ticker.C:
		case <-counter.Done():
		case <-m.stopCh:
			log.V(1).Info("progress monitor stopped", "value", counter.Load(), "target", target)
			return
		}
	}
}

func (m *Monitor) finish() {
	log := m.opts.Log
	if err := m.opts.Display.Finish(); err != nil {
		log.Error(err, "failed to finish progress bar")
	}
	if m.opts.Printer == nil {
		return
	}
	if err := m.opts.Printer.Print(m.opts.DoneMessage); err != nil {
		log.Error(err, "failed to print message")
	}
}
