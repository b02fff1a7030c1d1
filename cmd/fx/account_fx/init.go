package account_fx

import (
	"fitple/internal/config"
	"fitple/internal/repositories"
	"fitple/internal/services"
	"fitple/pkg/utils"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideTokenProvider,
	provideUserRepo, provideOwnerRepo,
	provideAuthService, provideUserService, provideOwnerService)

func provideTokenProvider(cfg *config.Config) *utils.TokenProvider {
	return utils.NewTokenProvider(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
}

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideOwnerRepo(db *gorm.DB) repositories.OwnerRepository {
	return repositories.NewOwnerRepository(db)
}

func provideAuthService(
	userRepo repositories.UserRepository,
	ownerRepo repositories.OwnerRepository,
	trainerRepo repositories.TrainerRepository,
	tokens *utils.TokenProvider,
	tokenStore services.RefreshTokenStore,
) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, ownerRepo, trainerRepo, tokens, tokenStore)
}

func provideUserService(userRepo repositories.UserRepository, tokenStore services.RefreshTokenStore, cfg *config.Config) services.UserServiceInterface {
	return services.NewUserService(userRepo, tokenStore, cfg.Cleanup.Retention())
}

func provideOwnerService(ownerRepo repositories.OwnerRepository, tokenStore services.RefreshTokenStore, cfg *config.Config) services.OwnerServiceInterface {
	return services.NewOwnerService(ownerRepo, tokenStore, cfg.Cleanup.Retention())
}
