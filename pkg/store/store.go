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

// Package store keeps tournaments as yaml files in a directory.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/pairer/pkg/common"
	"laptudirm.com/x/pairer/internal/util"
	"laptudirm.com/x/pairer/pkg/tournament"
)

const extension = ".yaml"

var (
	ErrNotFound    = errors.New("tournament not found")
	ErrExists      = errors.New("tournament already exists")
	ErrInvalidName = errors.New("invalid tournament name")
)

// Store is a directory of saved tournaments.
type Store struct {
	dir string
}

// New creates a Store backed by the given directory, creating the
// directory if needed.
func New(dir string) (*Store, error) {
	if err := common.TryMkdir(dir); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Path returns the file the named tournament is saved in.
func (store *Store) Path(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w %q", ErrInvalidName, name)
	}

	return filepath.Join(store.dir, name+extension), nil
}

// Exists reports whether a tournament with the given name is saved.
func (store *Store) Exists(name string) bool {
	path, err := store.Path(name)
	if err != nil {
		return false
	}

	_, err = os.Stat(path)
	return err == nil
}

// Create saves a new tournament, failing if the name is already taken.
func (store *Store) Create(name string, tour *tournament.Tournament) error {
	if store.Exists(name) {
		return fmt.Errorf("create %s: %w", name, ErrExists)
	}

	return store.Save(name, tour)
}

// Save saves the tournament under the given name, replacing any previous
// version. The file is replaced atomically.
func (store *Store) Save(name string, tour *tournament.Tournament) error {
	path, err := store.Path(name)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}

	data, err := yaml.Marshal(tour)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	temp, err := os.CreateTemp(store.dir, "."+name+"-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		return fmt.Errorf("save %s: %w", name, err)
	}

	if err := temp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	if err := os.Rename(temp.Name(), path); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	logrus.WithFields(logrus.Fields{
		"name": name,
		"file": path,
	}).Debug("Saved tournament")
	return nil
}

// Load loads the tournament saved under the given name.
func (store *Store) Load(name string) (*tournament.Tournament, error) {
	path, err := store.Path(name)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", name, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	var tour tournament.Tournament
	if err := yaml.Unmarshal(data, &tour); err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	return &tour, nil
}

// Update loads the named tournament, applies fn to it, and saves it if fn
// succeeds.
func (store *Store) Update(name string, fn func(*tournament.Tournament) error) error {
	tour, err := store.Load(name)
	if err != nil {
		return err
	}

	if err := fn(tour); err != nil {
		return err
	}

	return store.Save(name, tour)
}

// Delete removes the tournament saved under the given name.
func (store *Store) Delete(name string) error {
	path, err := store.Path(name)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", name, ErrNotFound)
	}

	return err
}

// List returns the names of the saved tournaments in natural order.
func (store *Store) List() ([]string, error) {
	entries, err := os.ReadDir(store.dir)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != extension {
			continue
		}

		names = append(names, strings.TrimSuffix(name, extension))
	}

	slices.SortFunc(names, util.AlphanumCompare)
	return names, nil
}
