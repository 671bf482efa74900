package response

import (
	"foodloop-server/internal/usecase/commands"
	"foodloop-server/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClaimResponse struct {
	ClaimID uuid.UUID  `json:"claimId"`
	WishID  uuid.UUID  `json:"wishId"`
	ShareID uuid.UUID  `json:"shareId"`
	Status  string     `json:"status"`
	TradeID *uuid.UUID `json:"tradeId,omitempty"`
}

func FromClaimResult(r *commands.ClaimResult) *ClaimResponse {
	return &ClaimResponse{
		ClaimID: r.ClaimID,
		WishID:  r.WishID,
		ShareID: r.ShareID,
		Status:  r.Status.String(),
		TradeID: r.TradeID,
	}
}

type SentClaimListResponse struct {
	Items      []*queries.SentClaimItem `json:"items"`
	NextCursor *string                  `json:"nextCursor,omitempty"`
}

type ReceivedClaimListResponse struct {
	Items      []*queries.ReceivedClaimItem `json:"items"`
	NextCursor *string                      `json:"nextCursor,omitempty"`
}
