// Package store provides in-memory implementations of the cosmossdk.io/core
// store and event services, used by standalone hosts and tests to run the
// vault keeper without a chain app wiring them in.
package store

import (
	"context"
	"sort"
	"sync"

	corestore "cosmossdk.io/core/store"
)

// MemKV is an in-memory KVStoreService. A single flat keyspace backs every
// opened store; collections prefixes keep modules apart the same way they do
// on a real backend.
type MemKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ corestore.KVStoreService = (*MemKV)(nil)

// NewMemKV creates an empty in-memory KV store service.
func NewMemKV() *MemKV {
	return &MemKV{data: map[string][]byte{}}
}

// OpenKVStore implements corestore.KVStoreService.
func (m *MemKV) OpenKVStore(_ context.Context) corestore.KVStore {
	return (*memStore)(nil).bind(m)
}

type memStore struct {
	parent *MemKV
}

func (s *memStore) bind(parent *MemKV) *memStore {
	return &memStore{parent: parent}
}

func (s *memStore) Get(key []byte) ([]byte, error) {
	s.parent.mu.RLock()
	defer s.parent.mu.RUnlock()
	value, ok := s.parent.data[string(key)]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (s *memStore) Has(key []byte) (bool, error) {
	s.parent.mu.RLock()
	defer s.parent.mu.RUnlock()
	_, ok := s.parent.data[string(key)]
	return ok, nil
}

func (s *memStore) Set(key, value []byte) error {
	s.parent.mu.Lock()
	defer s.parent.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	s.parent.data[string(key)] = cp
	return nil
}

func (s *memStore) Delete(key []byte) error {
	s.parent.mu.Lock()
	defer s.parent.mu.Unlock()
	delete(s.parent.data, string(key))
	return nil
}

func (s *memStore) Iterator(start, end []byte) (corestore.Iterator, error) {
	return s.newIterator(start, end, false), nil
}

func (s *memStore) ReverseIterator(start, end []byte) (corestore.Iterator, error) {
	return s.newIterator(start, end, true), nil
}

// newIterator snapshots the keys in [start, end) at creation time, so writes
// during iteration do not disturb the walk.
func (s *memStore) newIterator(start, end []byte, reverse bool) *memIterator {
	s.parent.mu.RLock()
	defer s.parent.mu.RUnlock()

	keys := make([]string, 0, len(s.parent.data))
	for key := range s.parent.data {
		if start != nil && key < string(start) {
			continue
		}
		if end != nil && key >= string(end) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if reverse {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	values := make([][]byte, len(keys))
	for i, key := range keys {
		value := s.parent.data[key]
		cp := make([]byte, len(value))
		copy(cp, value)
		values[i] = cp
	}

	return &memIterator{start: start, end: end, keys: keys, values: values}
}

type memIterator struct {
	start, end []byte
	keys       []string
	values     [][]byte
	pos        int
}

var _ corestore.Iterator = (*memIterator)(nil)

func (it *memIterator) Domain() ([]byte, []byte) { return it.start, it.end }

func (it *memIterator) Valid() bool { return it.pos < len(it.keys) }

func (it *memIterator) Next() { it.pos++ }

func (it *memIterator) Key() []byte { return []byte(it.keys[it.pos]) }

func (it *memIterator) Value() []byte { return it.values[it.pos] }

func (it *memIterator) Error() error { return nil }

func (it *memIterator) Close() error { return nil }
