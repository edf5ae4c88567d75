// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package ack

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps the map as a JSON object in a single file.
type FileStore struct {
	Path string
}

// NewFileStore creates a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load implements Store. A missing file is an empty map.
func (s *FileStore) Load(_ context.Context) (Map, error) {
	data, err := os.ReadFile(s.Path) // #nosec G304 - path is provided by the operator
	if errors.Is(err, os.ErrNotExist) {
		return Map{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}

	return decode(data)
}

// Save implements Store. The file is replaced through a rename so a crash
// never leaves a half written map behind.
func (s *FileStore) Save(_ context.Context, m Map) error {
	data, err := encode(m)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.Path, err)
	}

	return nil
}
