package store

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/willf/bloom"

	"github.com/begreatfulforreal/ponzimon-program/types"
)

// participantCache fronts participant reads: every claim, purchase, and
// upgrade loads the caller's record, and the hot set is small. The bloom
// filter short-circuits lookups for owners that were never cached.
type participantCache struct {
	cache       *lru.Cache[string, *types.Participant]
	bloomFilter *bloom.BloomFilter
	mutex       sync.RWMutex
}

func newParticipantCache(size int, expectedItems uint, falsePositiveRate float64) (*participantCache, error) {
	c, err := lru.New[string, *types.Participant](size)
	if err != nil {
		return nil, err
	}
	return &participantCache{
		cache:       c,
		bloomFilter: bloom.NewWithEstimates(expectedItems, falsePositiveRate),
	}, nil
}

func (c *participantCache) Get(owner string) (*types.Participant, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if !c.bloomFilter.TestString(owner) {
		return nil, false
	}
	p, ok := c.cache.Get(owner)
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

func (c *participantCache) Add(p *types.Participant) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.bloomFilter.AddString(p.Owner)
	c.cache.Add(p.Owner, p.Clone())
}
