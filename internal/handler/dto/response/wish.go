package response

import (
	"foodloop-server/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateWishResponse struct {
	WishID  uuid.UUID            `json:"wishId"`
	Matches []*queries.MatchItem `json:"matches"`
}

type MatchListResponse struct {
	Items []*queries.MatchItem `json:"items"`
	Page  int                  `json:"page"`
	Size  int                  `json:"size"`
}
