// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

// Package places resolves free-text place names to fixed coordinates using a
// static lookup table.
package places

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jcodagnone/invitemap/spatial"
	"github.com/jcodagnone/invitemap/utils/textutils"
)

// ErrEmptyTable is returned when a table would have no entries.
var ErrEmptyTable = errors.New("place table is empty")

// Table is an immutable name to coordinate lookup.
type Table struct {
	points map[string]spatial.Point
	folded map[string]string // folded name -> table name
}

// NewTable builds a table from the given entries. Names are trimmed; entries
// that are blank, duplicated after trimming, or out of range are rejected.
func NewTable(entries map[string]spatial.Point) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{
		points: make(map[string]spatial.Point, len(entries)),
		folded: make(map[string]string, len(entries)),
	}

	for name, point := range entries {
		key := strings.TrimSpace(name)
		if key == "" {
			return nil, errors.New("place table has a blank name")
		}

		if !point.Valid() {
			return nil, fmt.Errorf("place %q has invalid coordinates %v", name, point)
		}

		if _, dup := t.points[key]; dup {
			return nil, fmt.Errorf("place %q is defined twice", key)
		}

		t.points[key] = point

		// Ambiguous folds are dropped so Suggest never guesses between two names.
		fold := textutils.FoldKey(key)
		if other, ok := t.folded[fold]; ok && other != key {
			t.folded[fold] = ""
		} else if !ok {
			t.folded[fold] = key
		}
	}

	return t, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := NewTable(builtin)
		if err != nil {
			panic(fmt.Sprintf("places: invalid builtin table: %v", err))
		}

		defaultTable = t
	})

	return defaultTable
}

// LoadTable reads a table from a JSON object of the form
// {"Thane": [19.2183, 72.9781], ...}.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is provided by the operator
	if err != nil {
		return nil, fmt.Errorf("reading place table: %w", err)
	}

	var raw map[string][2]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing place table: %w", err)
	}

	entries := make(map[string]spatial.Point, len(raw))
	for name, pair := range raw {
		entries[name] = spatial.Point{Lat: pair[0], Lng: pair[1]}
	}

	return NewTable(entries)
}

// Resolve returns the coordinate configured for place. The name is trimmed and
// then matched exactly, case included. Unknown names, including the empty
// string, report false.
func (t *Table) Resolve(place string) (spatial.Point, bool) {
	p, ok := t.points[strings.TrimSpace(place)]

	return p, ok
}

// Suggest looks for a table name that matches place once case, accents,
// spaces and punctuation are ignored. It is meant for diagnostics about
// unresolved names; Resolve never uses it.
func (t *Table) Suggest(place string) (string, bool) {
	fold := textutils.FoldKey(place)
	if fold == "" {
		return "", false
	}

	name, ok := t.folded[fold]
	if !ok || name == "" {
		return "", false
	}

	return name, true
}

// Names returns every place name in the table, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.points))
	for name := range t.points {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of places in the table.
func (t *Table) Len() int {
	return len(t.points)
}
