package auth

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/sober-studio/medtrack/internal/conf"
	"github.com/sober-studio/medtrack/internal/pkg/auth/store"
)

var ProviderSet = wire.NewSet(
	NewTokenService,
	NewRevocationStore,
	NewAdminGate,
	NewPathAccess,
)

func NewTokenService(c *conf.App, store store.RevocationStore, logger log.Logger) (TokenService, error) {
	if c.Auth == nil || c.Auth.Jwt == nil || c.Auth.Jwt.Secret == "" {
		return nil, fmt.Errorf("auth: jwt secret is not configured")
	}
	return NewJWTTokenService(c.Auth.Jwt.Secret, DefaultTTL, store, WithLogger(logger)), nil
}

// NewRevocationStore 撤销表由进程持有，生命周期与进程一致
func NewRevocationStore() store.RevocationStore {
	return store.NewMemoryRevocationStore()
}

func NewAdminGate(c *conf.App) *Gate {
	if c.Auth == nil {
		return NewGate("")
	}
	return NewGate(c.Auth.AdminDomain)
}

func NewPathAccess(c *conf.App) *PathAccessConfig {
	if c.Auth == nil {
		return NewPathAccessConfig(nil, nil)
	}
	return NewPathAccessConfig(c.Auth.PublicPaths, c.Auth.AdminPaths)
}
