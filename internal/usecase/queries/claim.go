package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ClaimQueries interface {
	// ListSent returns claims the member's store filed against other stores'
	// shares, newest first with keyset pagination.
	ListSent(ctx context.Context, memberID uuid.UUID, after *Cursor, limit int) ([]*SentClaimItem, *Cursor, error)
	// ListReceived returns claims other stores filed against the member's
	// shares.
	ListReceived(ctx context.Context, memberID uuid.UUID, after *Cursor, limit int) ([]*ReceivedClaimItem, *Cursor, error)
}

type ClaimViewRepo interface {
	FindSentByOwner(ctx context.Context, ownerID uuid.UUID, afterTime *time.Time, afterID *uuid.UUID, limit int32) ([]*SentClaimItem, error)
	FindReceivedByOwner(ctx context.Context, ownerID uuid.UUID, afterTime *time.Time, afterID *uuid.UUID, limit int32) ([]*ReceivedClaimItem, error)
}

type claimQueriesImpl struct {
	repo ClaimViewRepo
}

func NewClaimQueries(repo ClaimViewRepo) ClaimQueries {
	return &claimQueriesImpl{repo: repo}
}

func (q *claimQueriesImpl) ListSent(ctx context.Context, memberID uuid.UUID, after *Cursor, limit int) ([]*SentClaimItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	afterTime, afterID, err := decodeCursor(after)
	if err != nil {
		return nil, nil, err
	}

	// Fetch one extra row to detect whether a next page exists
	rows, err := q.repo.FindSentByOwner(ctx, memberID, afterTime, afterID, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ClaimID)}
	}
	return rows, next, nil
}

func (q *claimQueriesImpl) ListReceived(ctx context.Context, memberID uuid.UUID, after *Cursor, limit int) ([]*ReceivedClaimItem, *Cursor, error) {
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
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ClaimID)}
	}
	return rows, next, nil
}

func decodeCursor(after *Cursor) (*time.Time, *uuid.UUID, error) {
	if after == nil || after.After == "" {
		return nil, nil, nil
	}
	t, id, err := DecodeAfterCursor(after.After)
	if err != nil {
		return nil, nil, err
	}
	return &t, &id, nil
}
