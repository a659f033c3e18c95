package memcache_fx

import (
	"go.uber.org/fx"

	mem "github.com/yifan996/Itinerary/pkg/memcache"
)

var Module = fx.Provide(provideTokenStore)

func provideTokenStore() mem.TokenStore {
	return mem.NewTokenCache()
}
