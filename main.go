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
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

const usage = "Usage: casegen <input_string> [output_file]"

type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout *os.File, stderr io.Writer) int {
	cmd := newRootCmd(NewTerminal(stdout), stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		var uerr usageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(stderr, usage)
		}
		return ExitFailure
	}
	return ExitSuccess
}

func newRootCmd(t *Terminal, stderr io.Writer) *cobra.Command {
	var (
		configFile string
		batchSize  int
		workers    int
		interval   time.Duration
		verbosity  int
	)

	cmd := &cobra.Command{
		Use:   "casegen <input_string> [output_file]",
		Short: "Write every upper/lower-case variant of a string to a file",
		Long: `Write every upper/lower-case variant of a string to a file, one per line.

An input string starting with a dash has to follow "--", for example:

  casegen -- -ab out.txt`,
		Args: func(c *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(1, 2)(c, args); err != nil {
				return usageError{err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			log := newLogger(stderr, verbosity)

			cfg := DefaultConfig()
			if configFile != "" {
				var err error
				cfg, err = LoadConfig(configFile)
				if err != nil {
					log.Error(err, "unable to load configuration")
					return err
				}
			}
			flags := c.Flags()
			if flags.Changed("batch-size") {
				cfg.BatchSize = batchSize
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("interval") {
				cfg.Interval = interval
			}
			if len(args) == 2 {
				cfg.Output = args[1]
			}
			if err := cfg.Validate(); err != nil {
				log.Error(err, "invalid configuration")
				return err
			}

			if err := generateAndWrite(args[0], cfg, t, log); err != nil {
				log.Error(err, "failed to generate combinations", "output", cfg.Output)
				return err
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "path to a YAML configuration file")
	flags.IntVar(&batchSize, "batch-size", DefaultBatchSize, "number of lines written between two flushes")
	flags.IntVar(&workers, "workers", 0, "number of generator goroutines, 0 uses all CPUs")
	flags.DurationVar(&interval, "interval", DefaultInterval, "progress bar refresh interval")
	flags.CountVarP(&verbosity, "verbose", "v", "increase log verbosity, can be repeated")
	return cmd
}

// generateAndWrite runs the two phases: all the combinations are computed
// in memory first and then written to the output file, each phase with
// its own progress bar.
func generateAndWrite(input string, cfg Config, t *Terminal, log logr.Logger) error {
	gen, err := NewCombGen(input, cfg.Workers)
	if err != nil {
		return err
	}

	printer := t.NewPrinter()
	cursor := t.NewCursor()
	cursor.Hide()
	defer cursor.Show()

	log.V(1).Info("generating combinations", "length", gen.Len(), "combinations", gen.NCombs(), "workers", cfg.Workers)
	if err := printer.Print("Generating letter combinations..."); err != nil {
		return err
	}
	genCounter := NewCounter(gen.NCombs())
	genMonitor := NewMonitor(MonitorOptions{
		Counter:  genCounter,
		Display:  t.NewDisplay(),
		Printer:  printer,
		Interval: cfg.Interval,
		Log:      log,
	})
	genMonitor.Start()
	combs := gen.Generate(genCounter)
	genMonitor.Wait()

	if err := printer.Print("Combining is complete, creating text file..."); err != nil {
		return err
	}
	writeCounter := NewCounter(WriteTarget(len(combs), cfg.BatchSize))
	log.V(1).Info("writing combinations", "output", cfg.Output, "batchSize", cfg.BatchSize, "flushes", FlushCount(len(combs), cfg.BatchSize))
	writeMonitor := NewMonitor(MonitorOptions{
		Counter:  writeCounter,
		Display:  t.NewDisplay(),
		Printer:  printer,
		Interval: cfg.Interval,
		Log:      log,
	})
	writeMonitor.Start()
	if err := WriteFile(cfg.Output, combs, cfg.BatchSize, writeCounter); err != nil {
		writeMonitor.Stop()
		writeMonitor.Wait()
		return err
	}
	writeMonitor.Wait()

	if err := printer.Printf("File creation is complete, %s is ready!", cfg.Output); err != nil {
		return err
	}
	distinct := DistinctVariants(input)
	return printer.Printf("%s lines written, %s distinct", humanize.Comma(int64(len(combs))), humanize.Comma(int64(distinct)))
}
