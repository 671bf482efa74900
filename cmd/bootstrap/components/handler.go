package components

import (
	"foodloop-server/internal/handler"
	"foodloop-server/internal/handler/api"
	"foodloop-server/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWishHandler,
		api.NewShareHandler,
		api.NewClaimHandler,
		api.NewTradeHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
