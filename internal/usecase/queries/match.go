package queries

import (
	"context"

	"foodloop-server/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	DefaultMatchPageSize = 10
	MaxMatchPageSize     = 50
	// MaxMatchPage bounds the OFFSET; anything past it reads as an empty page.
	MaxMatchPage = 10000
)

type MatchQueries interface {
	// ListMatches returns candidate shares for a wish, nearest first. Pages are
	// 1-based.
	ListMatches(ctx context.Context, wishID uuid.UUID, page, size int) ([]*MatchItem, error)
}

type MatchViewRepo interface {
	FindForWish(ctx context.Context, wishID uuid.UUID, limit, offset int32) ([]*MatchItem, error)
}

type matchQueriesImpl struct {
	repo  MatchViewRepo
	clock clock.Clock
}

func NewMatchQueries(repo MatchViewRepo, clock clock.Clock) MatchQueries {
	return &matchQueriesImpl{repo: repo, clock: clock}
}

func (q *matchQueriesImpl) ListMatches(ctx context.Context, wishID uuid.UUID, page, size int) ([]*MatchItem, error) {
	if page < 1 {
		page = 1
	}
	if page > MaxMatchPage {
		page = MaxMatchPage
	}
	if size <= 0 {
		size = DefaultMatchPageSize
	}
	if size > MaxMatchPageSize {
		size = MaxMatchPageSize
	}

	items, err := q.repo.FindForWish(ctx, wishID, int32(size), int32((page-1)*size))
	if err != nil {
		return nil, err
	}

	// Recency is computed per request so cached pages stay honest.
	now := q.clock.Now()
	for _, item := range items {
		item.MinutesAgo = int64(now.Sub(item.CreatedAt).Minutes())
		if item.MinutesAgo < 0 {
			item.MinutesAgo = 0
		}
	}
	return items, nil
}
