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
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Config is the environment configuration of pairer.
type Config struct {
	// Home is the directory pairer keeps its state in. It defaults to a
	// pairer directory inside the XDG data directory.
	Home string `env:"PAIRER_HOME"`

	LogLevel string `env:"PAIRER_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig loads the configuration from the environment.
func LoadConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if config.Home == "" {
		config.Home = filepath.Join(xdg.DataHome, "pairer")
	}

	return config, nil
}

// Level returns the configured log level.
func (config Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("log level: %w", err)
	}

	return level, nil
}

// TournamentDirectory is the directory saved tournaments are kept in.
func (config Config) TournamentDirectory() string {
	return filepath.Join(config.Home, "tournaments")
}
