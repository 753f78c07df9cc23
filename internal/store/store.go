// Package store keeps the reference backend's records in memory. It
// exists so the client has something faithful to talk to in tests and
// local development; real deployments point the client at the portal
// backend instead.
package store

import (
	"sort"
	"strings"
	"sync"

	"adminclient/entity"
)

// Store holds the records of one entity type, keyed by identity value.
type Store struct {
	cfg entity.TypeConfig

	mu   sync.RWMutex
	recs map[string]entity.Record
}

// New builds an empty store for the entity type.
func New(cfg entity.TypeConfig) *Store {
	return &Store{cfg: cfg, recs: map[string]entity.Record{}}
}

// Config returns the entity type this store holds.
func (s *Store) Config() entity.TypeConfig { return s.cfg }

// Get returns the record for the identity value.
func (s *Store) Get(id string) (entity.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.recs[id]
	if !ok {
		return nil, false
	}
	return clone(rec), true
}

// Put inserts or replaces a record. The identity field must be set.
func (s *Store) Put(rec entity.Record) bool {
	id := rec.String(s.cfg.IdentityKey)
	if entity.Blank(id) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[id] = clone(rec)
	return true
}

// Update merges fields into an existing record.
func (s *Store) Update(id string, fields entity.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok {
		return false
	}
	for k, v := range fields {
		rec[k] = v
	}
	return true
}

// Delete removes a record.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recs[id]; !ok {
		return false
	}
	delete(s.recs, id)
	return true
}

// All returns every record ordered by identity value, the order the
// listing page renders.
func (s *Store) All() []entity.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Record, 0, len(s.recs))
	for _, rec := range s.recs {
		out = append(out, clone(rec))
	}
	sortByIdentity(out, s.cfg.IdentityKey)
	return out
}

// Search returns records whose identity or name-like fields contain the
// term, case-insensitively, mirroring the backend's LIKE filter.
func (s *Store) Search(term string) []entity.Record {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	keys := []string{s.cfg.IdentityKey, "name", "user_name", "bottler_equipment_number", "serial_number"}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.Record
	for _, rec := range s.recs {
		for _, key := range keys {
			if v := rec.String(key); v != "" && strings.Contains(strings.ToLower(v), term) {
				out = append(out, clone(rec))
				break
			}
		}
	}
	sortByIdentity(out, s.cfg.IdentityKey)
	return out
}

func sortByIdentity(recs []entity.Record, key string) {
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].String(key) < recs[j].String(key)
	})
}

func clone(rec entity.Record) entity.Record {
	out := make(entity.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
