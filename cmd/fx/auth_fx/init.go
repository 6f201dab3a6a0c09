package auth_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gotham/internal/config"
	"gotham/internal/repositories"
	"gotham/internal/services"
	mem "gotham/pkg/memcache"
)

var Module = fx.Provide(
	provideUserRepo, provideAuthService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(
	userRepo repositories.UserRepository,
	mailService services.IMailService,
	tokens mem.LoginTokenStore,
	cfg *config.Config,
	log *zap.Logger,
) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, mailService, tokens, cfg.Auth.LinkTTL, log)
}
