package components

import (
	"foodloop-server/internal/pkg/clock"
	"foodloop-server/internal/usecase/commands"
	"foodloop-server/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewWishUseCase,
		commands.NewShareUseCase,
		commands.NewClaimUseCase,
		commands.NewTradeUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMatchQueries,
		queries.NewClaimQueries,
		queries.NewTradeQueries,
	),
)
