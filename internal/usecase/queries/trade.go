package queries

import (
	"context"
	"time"

	"foodloop-server/internal/pkg/errs"
	"foodloop-server/internal/pkg/objecturl"

	"github.com/google/uuid"
)

var ErrNotTradeParty = errs.New("member is not a party of this trade")

type TradeQueries interface {
	GetByID(ctx context.Context, memberID, tradeID uuid.UUID) (*TradeView, error)
	// ListGiven returns trades where the member's store is the giver, newest
	// first with keyset pagination.
	ListGiven(ctx context.Context, memberID uuid.UUID, after *Cursor, limit int) ([]*GivenTradeItem, *Cursor, error)
	// ListReceived returns trades where the member's store is the receiver.
	ListReceived(ctx context.Context, memberID uuid.UUID, after *Cursor, limit int) ([]*ReceivedTradeItem, *Cursor, error)
}

type TradeViewRepo interface {
	FindDetailByID(ctx context.Context, tradeID uuid.UUID) (*TradeDetailRow, error)
	FindGivenByOwner(ctx context.Context, ownerID uuid.UUID, afterTime *time.Time, afterID *uuid.UUID, limit int32) ([]*GivenTradeItem, error)
	FindReceivedByOwner(ctx context.Context, ownerID uuid.UUID, afterTime *time.Time, afterID *uuid.UUID, limit int32) ([]*ReceivedTradeItem, error)
}

type tradeQueriesImpl struct {
	repo     TradeViewRepo
	resolver *objecturl.Resolver
}

func NewTradeQueries(repo TradeViewRepo, resolver *objecturl.Resolver) TradeQueries {
	return &tradeQueriesImpl{repo: repo, resolver: resolver}
}

// GetByID folds the two-sided row into the caller's view: the partner is
// whichever store the caller does not own.
func (q *tradeQueriesImpl) GetByID(ctx context.Context, memberID, tradeID uuid.UUID) (*TradeView, error) {
	row, err := q.repo.FindDetailByID(ctx, tradeID)
	if err != nil {
		return nil, err
	}

	var partner StoreInfo
	switch memberID {
	case row.GiverOwnerID:
		partner = row.Receiver
	case row.ReceiverOwnerID:
		partner = row.Giver
	default:
		return nil, ErrNotTradeParty
	}

	return &TradeView{
		TradeID:         row.TradeID,
		ClaimID:         row.ClaimID,
		Status:          row.Status,
		ItemName:        row.ItemName,
		Brand:           row.Brand,
		Quantity:        row.Quantity,
		ExpirationDate:  row.ExpirationDate,
		PrimaryImageKey: row.PrimaryImageKey,
		PrimaryImageURL: q.resolver.ToURL(row.PrimaryImageKey),
		Partner:         partner,
		CompletedAt:     row.CompletedAt,
		CanceledAt:      row.CanceledAt,
		CreatedAt:       row.CreatedAt,
	}, nil
}

func (q *tradeQueriesImpl) ListGiven(ctx context.Context, memberID uuid.UUID, after *Cursor, limit int) ([]*GivenTradeItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	afterTime, afterID, err := decodeCursor(after)
	if err != nil {
		return nil, nil, err
	}

	rows, err := q.repo.FindGivenByOwner(ctx, memberID, afterTime, afterID, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.TradeID)}
	}
	for _, item := range rows {
		item.PrimaryImageURL = q.resolver.ToURL(item.PrimaryImageKey)
	}
	return rows, next, nil
}

func (q *tradeQueriesImpl) ListReceived(ctx context.Context, memberID uuid.UUID, after *Cursor, limit int) ([]*ReceivedTradeItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	afterTime, afterID, err := decodeCursor(after)
	if err != nil {
		return nil, nil, err
	}

	rows, err := q.repo.FindReceivedByOwner(ctx, memberID, afterTime, afterID, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.TradeID)}
	}
	for _, item := range rows {
		item.PrimaryImageURL = q.resolver.ToURL(item.PrimaryImageKey)
	}
	return rows, next, nil
}
