package memcache_fx

import (
	"go.uber.org/fx"
	mem "tripbuddy/pkg/memcache"
)

var Module = fx.Provide(provideFeedCache)

func provideFeedCache() mem.FeedCacheStore {
	return mem.NewFeedCache()
}
