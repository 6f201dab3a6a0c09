package memcache_fx

import (
	"go.uber.org/fx"

	mem "gotham/pkg/memcache"
)

var Module = fx.Provide(provideLoginTokenStore)

func provideLoginTokenStore() mem.LoginTokenStore {
	return mem.NewLoginTokens()
}
