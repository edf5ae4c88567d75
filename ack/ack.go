// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

// Package ack tracks which invitees have been marked as visited and persists
// that map between sessions.
package ack

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/jcodagnone/invitemap/invite"
)

// Map records, per invitee name, whether it was acknowledged. A missing name
// is not acknowledged.
type Map map[string]bool

// AllAcknowledged reports whether every name has an explicit true entry in m.
// An empty list is vacuously acknowledged.
func AllAcknowledged(names []string, m Map) bool {
	for _, name := range names {
		if !m[name] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of m, never nil.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// Store loads and saves the whole map.
type Store interface {
	// Load returns the stored map; an empty map when nothing was stored yet.
	Load(ctx context.Context) (Map, error)

	// Save replaces the stored map with m.
	Save(ctx context.Context, m Map) error
}

func decode(data []byte) (Map, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, invite.NewError(invite.ErrorTypePersistenceReadCorrupt, "decoding acknowledgments", err)
	}

	if m == nil {
		m = Map{}
	}

	return m, nil
}

func encode(m Map) ([]byte, error) {
	if m == nil {
		m = Map{}
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding acknowledgments: %w", err)
	}

	return data, nil
}

// State is the session's acknowledgment map together with the store it is
// written back to. Every mutation rewrites the full map.
type State struct {
	mu    sync.Mutex
	store Store
	acks  Map
}

// Open loads the map from store once. Unreadable or corrupt state is logged
// and replaced by an empty map.
func Open(ctx context.Context, store Store) *State {
	acks, err := store.Load(ctx)
	if err != nil {
		if invite.IsPersistenceReadCorrupt(err) {
			log.Printf("⚠️  stored acknowledgments are corrupt, starting empty: %v", err)
		} else {
			log.Printf("⚠️  could not read acknowledgments, starting empty: %v", err)
		}

		acks = nil
	}

	if acks == nil {
		acks = Map{}
	}

	return &State{store: store, acks: acks}
}

// set assigns name and persists, restoring the previous entry if saving fails.
func (s *State) set(ctx context.Context, name string, value bool) error {
	prev, had := s.acks[name]
	s.acks[name] = value

	if err := s.store.Save(ctx, s.acks); err != nil {
		if had {
			s.acks[name] = prev
		} else {
			delete(s.acks, name)
		}

		return fmt.Errorf("saving acknowledgments: %w", err)
	}

	return nil
}

// Toggle flips the acknowledgment of name and returns the new value.
func (s *State) Toggle(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value := !s.acks[name]
	if err := s.set(ctx, name, value); err != nil {
		return !value, err
	}

	return value, nil
}

// Set stores an explicit acknowledgment for name.
func (s *State) Set(ctx context.Context, name string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set(ctx, name, value)
}

// Acknowledged reports whether name is acknowledged.
func (s *State) Acknowledged(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.acks[name]
}

// AllAcknowledged is AllAcknowledged over the current map.
func (s *State) AllAcknowledged(names []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return AllAcknowledged(names, s.acks)
}

// Snapshot returns a copy of the current map.
func (s *State) Snapshot() Map {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.acks.Clone()
}
