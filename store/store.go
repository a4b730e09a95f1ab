// Package store persists the pool singleton and participant records in
// BadgerDB. Records are JSON values under prefixed keys; participant reads
// come from an LRU cache when they can.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v3"

	"github.com/begreatfulforreal/ponzimon-program/types"
)

const (
	cacheSize         = 1024
	cacheExpected     = 10000
	cacheFalsePosRate = 0.01
)

type Store struct {
	db    *Database
	cache *participantCache
}

var _ types.Store = (*Store)(nil)

// NewStore opens a store rooted at path.
func NewStore(path string) (*Store, error) {
	db, err := NewDatabase(path)
	if err != nil {
		return nil, err
	}
	cache, err := newParticipantCache(cacheSize, cacheExpected, cacheFalsePosRate)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create participant cache: %v", err)
	}
	return &Store{db: db, cache: cache}, nil
}

func (s *Store) SavePool(pool *types.GlobalPool) error {
	data, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("error marshalling pool: %v", err)
	}
	return s.db.Set([]byte(PoolPrefix+pool.TokenMint), data)
}

func (s *Store) GetPool(tokenMint string) (*types.GlobalPool, error) {
	data, err := s.db.Get([]byte(PoolPrefix + tokenMint))
	if err == badger.ErrKeyNotFound {
		return nil, types.ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving pool %s: %v", tokenMint, err)
	}
	var pool types.GlobalPool
	if err := json.Unmarshal(data, &pool); err != nil {
		return nil, fmt.Errorf("error unmarshalling pool: %v", err)
	}
	return &pool, nil
}

func (s *Store) SaveParticipant(p *types.Participant) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("error marshalling participant: %v", err)
	}
	if err := s.db.Set([]byte(ParticipantPrefix+p.Owner), data); err != nil {
		return err
	}
	s.cache.Add(p)
	return nil
}

func (s *Store) GetParticipant(owner string) (*types.Participant, error) {
	if p, ok := s.cache.Get(owner); ok {
		return p, nil
	}
	data, err := s.db.Get([]byte(ParticipantPrefix + owner))
	if err == badger.ErrKeyNotFound {
		return nil, types.ErrUnknownParticipant
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving participant %s: %v", owner, err)
	}
	var p types.Participant
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("error unmarshalling participant: %v", err)
	}
	s.cache.Add(&p)
	return &p, nil
}

func (s *Store) HasParticipant(owner string) (bool, error) {
	if _, ok := s.cache.Get(owner); ok {
		return true, nil
	}
	return s.db.Has([]byte(ParticipantPrefix + owner))
}

func (s *Store) Close() error {
	return s.db.Close()
}
