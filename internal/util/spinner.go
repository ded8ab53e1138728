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
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

const SPIN = 14

var (
	spin     *spinner.Spinner
	spinOnce sync.Once
)

// StartSpinner starts the terminal spinner with the given message. The
// spinner is written to stderr so that it never mixes with command output,
// and it stays hidden when trace logging is enabled.
func StartSpinner(message string) {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		return
	}

	spinOnce.Do(func() {
		spin = spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	})

	spin.Suffix = " " + message
	spin.Start()
}

// PauseSpinner stops the terminal spinner if it is running.
func PauseSpinner() {
	if spin != nil {
		spin.Stop()
	}
}
