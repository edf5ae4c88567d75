// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package places

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jcodagnone/invitemap/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownPlaces(t *testing.T) {
	table := Default()
	require.Equal(t, len(builtin), table.Len())

	for name, want := range builtin {
		t.Run(name, func(t *testing.T) {
			got, ok := table.Resolve(name)
			require.True(t, ok)
			assert.Equal(t, want, got)
		})
	}
}

func TestResolveUnknownPlaces(t *testing.T) {
	table := Default()

	for _, name := range []string{"", "   ", "Nowhere", "thane", "THANE", "Mira Road", "Thane,", "Dubai"} {
		t.Run(name, func(t *testing.T) {
			_, ok := table.Resolve(name)
			assert.False(t, ok)
		})
	}
}

func TestResolveTrimsWhitespace(t *testing.T) {
	table := Default()

	want, ok := table.Resolve("Thane")
	require.True(t, ok)

	for _, name := range []string{" Thane ", "Thane\n", "\tThane", "  Thane"} {
		got, ok := table.Resolve(name)
		require.True(t, ok, "%q", name)
		assert.Equal(t, want, got)
	}

	assert.Equal(t, spatial.Point{Lat: 19.2183, Lng: 72.9781}, want)
}

func TestResolveIsDeterministic(t *testing.T) {
	table := Default()

	first, _ := table.Resolve("Dammam")
	for range 10 {
		again, ok := table.Resolve("Dammam")
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestSuggest(t *testing.T) {
	table := Default()

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"thane", "Thane", true},
		{"THANE ", "Thane", true},
		{"Mira Road", "MiraRoad", true},
		{"mira-road", "MiraRoad", true},
		{"Pùne", "Pune", true},
		{"Nowhere", "", false},
		{"", "", false},
		{"...", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := table.Suggest(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSuggestSkipsAmbiguousFolds(t *testing.T) {
	table, err := NewTable(map[string]spatial.Point{
		"Port":  {Lat: 1, Lng: 1},
		"PORT":  {Lat: 2, Lng: 2},
		"Other": {Lat: 3, Lng: 3},
	})
	require.NoError(t, err)

	_, ok := table.Suggest("port")
	assert.False(t, ok)

	name, ok := table.Suggest("other")
	assert.True(t, ok)
	assert.Equal(t, "Other", name)
}

func TestNames(t *testing.T) {
	names := Default().Names()

	assert.Len(t, names, len(builtin))
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "Kankavli")
}

func TestNewTableRejectsBadEntries(t *testing.T) {
	_, err := NewTable(nil)
	require.ErrorIs(t, err, ErrEmptyTable)

	_, err = NewTable(map[string]spatial.Point{" ": {Lat: 1, Lng: 1}})
	require.Error(t, err)

	_, err = NewTable(map[string]spatial.Point{"Bad": {Lat: 100, Lng: 1}})
	require.Error(t, err)

	_, err = NewTable(map[string]spatial.Point{"Thane": {Lat: 1, Lng: 1}, " Thane": {Lat: 2, Lng: 2}})
	require.Error(t, err)
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Thane": [19.2183, 72.9781], "Home ": [1.5, 2.5]}`), 0o600))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	p, ok := table.Resolve("Home")
	require.True(t, ok)
	assert.Equal(t, spatial.Point{Lat: 1.5, Lng: 2.5}, p)
}

func TestLoadTableErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTable(filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`["Thane"]`), 0o600))

	_, err = LoadTable(path)
	require.Error(t, err)
}
