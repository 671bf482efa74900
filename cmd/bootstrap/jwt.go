package bootstrap

import (
	"foodloop-server/internal/pkg/config"
	"foodloop-server/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTManager,
	),
)

func NewJWTManager(cfg config.Config) (*jwt.Manager, error) {
	return jwt.NewManager(cfg.JWT)
}
