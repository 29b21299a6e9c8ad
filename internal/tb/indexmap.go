package tb

import (
	"sync"
	"sync/atomic"

	"github.com/freeeve/matetb/internal/chessx"
)

const shardCount = 256

// indexMap assigns dense ids to position keys. Inserts are sharded by a
// hash of the key so concurrent enumeration rarely contends on a lock.
type indexMap struct {
	shards [shardCount]indexShard
	count  atomic.Uint32
}

type indexShard struct {
	mu sync.Mutex
	m  map[chessx.Key]uint32
}

func newIndexMap() *indexMap {
	im := &indexMap{}
	for i := range im.shards {
		im.shards[i].m = make(map[chessx.Key]uint32)
	}
	return im
}

func (im *indexMap) shard(k chessx.Key) *indexShard {
	// FNV-1a over the key bytes.
	h := uint32(2166136261)
	for _, b := range k {
		h ^= uint32(b)
		h *= 16777619
	}
	return &im.shards[h%shardCount]
}

// insertIfAbsent returns the id for k, allocating a fresh one when the key
// is new. The second result reports whether an allocation happened.
func (im *indexMap) insertIfAbsent(k chessx.Key) (uint32, bool) {
	s := im.shard(k)
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.m[k]; ok {
		return id, false
	}
	id := im.count.Add(1) - 1
	s.m[k] = id
	return id, true
}

func (im *indexMap) find(k chessx.Key) (uint32, bool) {
	s := im.shard(k)
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.m[k]
	return id, ok
}

func (im *indexMap) size() int {
	return int(im.count.Load())
}
