package response

import (
	"time"

	"foodloop-server/internal/usecase/commands"
	"foodloop-server/internal/usecase/queries"

	"github.com/google/uuid"
)

type TradeResponse struct {
	TradeID     uuid.UUID  `json:"tradeId"`
	ClaimID     uuid.UUID  `json:"claimId"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CanceledAt  *time.Time `json:"canceledAt,omitempty"`
}

func FromTradeResult(r *commands.TradeResult) *TradeResponse {
	return &TradeResponse{
		TradeID:     r.TradeID,
		ClaimID:     r.ClaimID,
		Status:      r.Status.String(),
		CompletedAt: r.CompletedAt,
		CanceledAt:  r.CanceledAt,
	}
}

type GivenTradeListResponse struct {
	Items      []*queries.GivenTradeItem `json:"items"`
	NextCursor *string                   `json:"nextCursor,omitempty"`
}

type ReceivedTradeListResponse struct {
	Items      []*queries.ReceivedTradeItem `json:"items"`
	NextCursor *string                      `json:"nextCursor,omitempty"`
}
