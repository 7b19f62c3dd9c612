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
	"io"
	"os"

	"github.com/bombsimon/logrusr/v3"
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

var isDbg = os.Getenv("DBG") == "1"

// newLogger returns a logger writing to out. Verbosity 1 enables debug
// messages, 2 and above the per-sample progress traces. DBG=1 in the
// environment implies at least 1.
func newLogger(out io.Writer, verbosity int) logr.Logger {
	if isDbg && verbosity < 1 {
		verbosity = 1
	}
	logrusLog := logrus.New()
	logrusLog.SetOutput(out)
	logrusLog.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	logrusLog.SetLevel(logrus.Level(int(logrus.InfoLevel) + verbosity))
	return logrusr.New(logrusLog)
}
