// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/jcodagnone/invitemap/ack"
	"github.com/jcodagnone/invitemap/invite"
	"github.com/jcodagnone/invitemap/places"
	"github.com/jcodagnone/invitemap/utils/textutils"
)

// Store kinds accepted by --store.
const (
	storeFile   = "file"
	storeDuckDB = "duckdb"
)

// Options holds the persistent flags shared by every command.
type Options struct {
	// DataSource is the invite list: a JSON file, a spreadsheet or a URL
	DataSource string

	// StatePath is where acknowledgments are kept
	StatePath string

	// StoreKind selects the acknowledgment backend (file or duckdb)
	StoreKind string

	// PlacesPath overrides the built-in place table
	PlacesPath string

	// Enables light tracing of HTTP requests and responses
	EnableHTTPTrace bool
}

var appOptions = &Options{}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}

	return fallback
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&appOptions.DataSource, "data", envOr("INVITEMAP_DATA", "invite.json"), "invite list (JSON file, .xlsx or http(s) URL) [$INVITEMAP_DATA]")
	flags.StringVar(&appOptions.StatePath, "state", envOr("INVITEMAP_STATE", ""), "acknowledgment state path (default checked.json or invitemap.duckdb) [$INVITEMAP_STATE]")
	flags.StringVar(&appOptions.StoreKind, "store", storeFile, "acknowledgment backend: file or duckdb")
	flags.StringVar(&appOptions.PlacesPath, "places", "", "JSON place table replacing the built-in one")
	flags.BoolVar(&appOptions.EnableHTTPTrace, "trace", false, "trace HTTP requests to stderr")
}

func loadTable() (*places.Table, error) {
	if appOptions.PlacesPath == "" {
		return places.Default(), nil
	}

	table, err := places.LoadTable(appOptions.PlacesPath)
	if err != nil {
		return nil, fmt.Errorf("loading place table: %w", err)
	}

	return table, nil
}

// openStore returns the configured acknowledgment store and a function that
// releases it.
func openStore(ctx context.Context) (ack.Store, func(), error) {
	switch appOptions.StoreKind {
	case storeFile:
		path := appOptions.StatePath
		if path == "" {
			path = "checked.json"
		}

		return ack.NewFileStore(path), func() {}, nil
	case storeDuckDB:
		path := appOptions.StatePath
		if path == "" {
			path = "invitemap.duckdb"
		}

		db, err := sql.Open("duckdb", path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}

		store := ack.NewSQLStore(db, ack.DefaultKey)
		if err := store.CreateSchema(ctx); err != nil {
			db.Close()

			return nil, nil, fmt.Errorf("creating schema: %w", err)
		}

		return store, func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want %s or %s)", appOptions.StoreKind, storeFile, storeDuckDB)
	}
}

func sourceOptions() *invite.SourceOptions {
	return &invite.SourceOptions{
		UserAgent:       fmt.Sprintf("invitemap/%s", Version),
		EnableHTTPTrace: appOptions.EnableHTTPTrace,
	}
}

// loadGroups reads the invite list, never failing, and clusters it.
func loadGroups(ctx context.Context, table *places.Table) *invite.Groups {
	records := invite.LoadOrEmpty(ctx, appOptions.DataSource, sourceOptions())
	groups := invite.Aggregate(table, records)

	log.Printf("📍 %s invitees in %s clusters (%s unresolved) from %s",
		textutils.FormatInt(int64(len(records))),
		textutils.FormatInt(int64(groups.Len())),
		textutils.FormatInt(int64(len(groups.Unresolved))),
		appOptions.DataSource)

	return groups
}
