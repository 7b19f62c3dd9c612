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
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultOutput = "combinations.txt"

type Config struct {
	// Output is the file the combinations are written to.
	Output string `yaml:"output"`

	// BatchSize is the number of lines written between two flushes.
	BatchSize int `yaml:"batch_size"`

	// Workers is the number of generator goroutines, 0 means
	// GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Interval between two progress bar refreshes.
	Interval time.Duration `yaml:"interval"`
}

func DefaultConfig() Config {
	return Config{
		Output:    DefaultOutput,
		BatchSize: DefaultBatchSize,
		Workers:   0,
		Interval:  DefaultInterval,
	}
}

// LoadConfig reads a YAML file on top of the defaults. Keys missing from
// the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Output == "" {
		errs = append(errs, errors.New("output file name is empty"))
	}
	if c.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("batch size must be positive, got %d", c.BatchSize))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval must be positive, got %s", c.Interval))
	}
	return errors.Join(errs...)
}
