package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/billing/model"
)

// Cluster is the cache cluster backing idempotent request replay
var Cluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// Keyspace stores one entry per (endpoint, idempotency key) pair. Entries
// expire after a day; replays beyond that window are treated as new requests.
var Keyspace = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
