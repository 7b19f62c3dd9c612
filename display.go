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
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	defaultBarWidth = 40
	maxBarWidth     = 60
	minBarWidth     = 10
	// room left next to the bar for the percentage and the counts
	barPadding = 32
)

// Display renders the progress of a single phase, from zero up to the
// target passed to Start.
type Display interface {
	Start(target uint64) error
	Update(value uint64) error
	Finish() error
}

// Terminal describes where the progress goes and decides how it is
// rendered.
type Terminal struct {
	out   io.Writer
	tty   bool
	width int
}

func NewTerminal(f *os.File) *Terminal {
	fd := int(f.Fd())
	t := &Terminal{
		out:   f,
		tty:   term.IsTerminal(fd),
		width: defaultBarWidth,
	}
	if t.tty {
		if w, _, err := term.GetSize(fd); err == nil {
			t.width = max(minBarWidth, min(maxBarWidth, w-barPadding))
		}
	}
	return t
}

func (t *Terminal) IsTTY() bool {
	return t.tty
}

// NewDisplay returns an in-place bar on a terminal and a line per ten
// percent otherwise.
func (t *Terminal) NewDisplay() Display {
	if t.tty {
		return newTermBar(t.out, t.width)
	}
	return newLineBar(t.out)
}

func (t *Terminal) NewPrinter() *Printer {
	return NewPrinter(t.out)
}

func (t *Terminal) NewCursor() *Cursor {
	return &Cursor{
		out:     termenv.NewOutput(t.out),
		enabled: t.tty,
	}
}

func fraction(value, target uint64) float64 {
	if target == 0 || value >= target {
		return 1
	}
	return float64(value) / float64(target)
}

type termBar struct {
	out    io.Writer
	bar    progress.Model
	target uint64
}

func newTermBar(out io.Writer, width int) *termBar {
	return &termBar{
		out: out,
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(width)),
	}
}

func (b *termBar) Start(target uint64) error {
	b.target = target
	return b.Update(0)
}

func (b *termBar) Update(value uint64) error {
	value = min(value, b.target)
	_, err := fmt.Fprintf(b.out, "\r%s %s/%s", b.bar.ViewAs(fraction(value, b.target)), humanize.Comma(int64(value)), humanize.Comma(int64(b.target)))
	return err
}

func (b *termBar) Finish() error {
	if err := b.Update(b.target); err != nil {
		return err
	}
	_, err := io.WriteString(b.out, "\n")
	return err
}

type lineBar struct {
	out    io.Writer
	target uint64
	step   int
}

func newLineBar(out io.Writer) *lineBar {
	return &lineBar{
		out:  out,
		step: -1,
	}
}

func (b *lineBar) Start(target uint64) error {
	b.target = target
	b.step = -1
	return b.Update(0)
}

func (b *lineBar) Update(value uint64) error {
	value = min(value, b.target)
	step := int(fraction(value, b.target) * 10)
	if step <= b.step {
		return nil
	}
	b.step = step
	_, err := fmt.Fprintf(b.out, "%3d%% %s/%s\n", step*10, humanize.Comma(int64(value)), humanize.Comma(int64(b.target)))
	return err
}

func (b *lineBar) Finish() error {
	return b.Update(b.target)
}

// Printer writes status lines.
type Printer struct {
	out   io.Writer
	style lipgloss.Style
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:   out,
		style: lipgloss.NewRenderer(out).NewStyle().Bold(true),
	}
}

func (p *Printer) Print(msg string) error {
	_, err := fmt.Fprintln(p.out, p.style.Render(msg))
	return err
}

func (p *Printer) Printf(formatStr string, args ...interface{}) error {
	return p.Print(fmt.Sprintf(formatStr, args...))
}

// Cursor toggles the terminal cursor. It does nothing when the output
// is not a terminal.
type Cursor struct {
	out     *termenv.Output
	enabled bool
}

func (c *Cursor) Hide() {
	if c.enabled {
		c.out.HideCursor()
	}
}

func (c *Cursor) Show() {
	if c.enabled {
		c.out.ShowCursor()
	}
}
