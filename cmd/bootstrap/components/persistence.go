package components

import (
	"foodloop-server/internal/infra/db"
	"foodloop-server/internal/infra/readstore"
	"foodloop-server/internal/infra/uow"
	"foodloop-server/internal/pkg/config"
	"foodloop-server/internal/pkg/objecturl"
	"foodloop-server/internal/usecase/queries"
	"foodloop-server/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		NewObjectURLResolver,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		NewMatchViewRepo,
		fx.Annotate(
			readstore.NewClaimReadStore,
			fx.As(new(queries.ClaimViewRepo)),
		),
		fx.Annotate(
			readstore.NewTradeReadStore,
			fx.As(new(queries.TradeViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewObjectURLResolver(cfg config.Config) *objecturl.Resolver {
	return objecturl.NewResolver(cfg.Storage.PublicBaseURL)
}

// Match reads go through the Redis cache; the direct store is the fallback
// inside the cache wrapper, not a separately wired dependency.
func NewMatchViewRepo(dbtx db.DBTX, resolver *objecturl.Resolver, cache *redis.Client, cfg config.Config) queries.MatchViewRepo {
	inner := readstore.NewMatchReadStore(dbtx, resolver)
	return readstore.NewCachedMatchReadStore(inner, cache, cfg.Redis.MatchTTL)
}
