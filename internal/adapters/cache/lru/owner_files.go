package lru

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ownerFilesHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "file_processor_owner_files_cache_hits_total",
		Help: "Number of list reads served from the owner file index cache.",
	})
	ownerFilesMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "file_processor_owner_files_cache_misses_total",
		Help: "Number of list reads that missed the owner file index cache.",
	})
)

// OwnerFiles caches the ordered file ids of an owner for a fixed TTL.
// Entries only leave through expiry or LRU eviction.
type OwnerFiles struct {
	cache *expirable.LRU[uuid.UUID, []uuid.UUID]
}

// NewOwnerFiles creates a cache holding at most maxOwners entries, each living ttl
func NewOwnerFiles(maxOwners int, ttl time.Duration) *OwnerFiles {
	return &OwnerFiles{
		cache: expirable.NewLRU[uuid.UUID, []uuid.UUID](maxOwners, nil, ttl),
	}
}

// Get returns a copy of the cached ids of ownerID
func (c *OwnerFiles) Get(ownerID uuid.UUID) ([]uuid.UUID, bool) {
	ids, ok := c.cache.Get(ownerID)
	if !ok {
		ownerFilesMissesTotal.Inc()
		return nil, false
	}
	ownerFilesHitsTotal.Inc()
	return append([]uuid.UUID(nil), ids...), true
}

// Set stores a snapshot of fileIDs for ownerID
func (c *OwnerFiles) Set(ownerID uuid.UUID, fileIDs []uuid.UUID) {
	c.cache.Add(ownerID, append([]uuid.UUID(nil), fileIDs...))
}
