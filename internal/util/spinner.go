// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

// charset is the spinner.CharSets entry used for the indicator.
const charset = 31

// Spinner is a ~working~ indicator shown while a long computation runs.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a Spinner which writes to the given writer. The
// spinner stays silent when trace logging is enabled, since its output
// would be mangled by the trace logs.
func NewSpinner(w io.Writer, suffix string) *Spinner {
	s := spinner.New(spinner.CharSets[charset], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = suffix
	return &Spinner{s: s}
}

func (spin *Spinner) Start() {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		return
	}

	spin.s.Start()
}

func (spin *Spinner) Stop() {
	spin.s.Stop()
}

// Active reports whether the spinner is currently running. A Spinner
// started with trace logging enabled never becomes active.
func (spin *Spinner) Active() bool {
	return spin.s.Active()
}
