package routes

import (
	"gin-items/config"
	"gin-items/repositories"
	"gin-items/security"
	"gin-items/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services bundles the application services sharing one store.
type Services struct {
	Auth  services.IAuthService
	Users services.IUserService
	Items services.IItemService
}

func NewServices(cfg *config.Config, db *gorm.DB, logger *zap.Logger) *Services {
	store := repositories.NewStore(db)
	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	tokens := security.NewTokenManager(cfg.SecretKey, cfg.TokenIssuer, cfg.AccessTokenTTL)

	return &Services{
		Auth:  services.NewAuthService(store, hasher, tokens, logger.Named("auth")),
		Users: services.NewUserService(store, hasher, logger.Named("users")),
		Items: services.NewItemService(store, logger.Named("items")),
	}
}
