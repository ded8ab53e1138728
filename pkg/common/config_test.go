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

package common

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("environment", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("PAIRER_HOME", home)
		t.Setenv("PAIRER_LOG_LEVEL", "debug")

		config, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, home, config.Home)
		assert.Equal(t, filepath.Join(home, "tournaments"), config.TournamentDirectory())

		level, err := config.Level()
		require.NoError(t, err)
		assert.Equal(t, logrus.DebugLevel, level)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PAIRER_HOME", "")
		t.Setenv("PAIRER_LOG_LEVEL", "")

		config, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "pairer", filepath.Base(config.Home))
	})

	t.Run("bad level", func(t *testing.T) {
		config := Config{LogLevel: "loud"}
		level, err := config.Level()
		assert.Error(t, err)
		assert.Equal(t, logrus.InfoLevel, level)
	})
}

func TestSetup(t *testing.T) {
	config := Config{Home: filepath.Join(t.TempDir(), "nested", "home")}
	require.NoError(t, config.Setup())
	assert.DirExists(t, config.TournamentDirectory())

	// already existing directories are fine
	require.NoError(t, config.Setup())
}
