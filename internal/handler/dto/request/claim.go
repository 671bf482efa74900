package request

import (
	"strings"

	"foodloop-server/internal/domain/wish"

	"github.com/google/uuid"
)

// QuickClaimRequest files a claim straight from a listed share. The backing
// wish does not exist yet; the item fields are copied from the share.
type QuickClaimRequest struct {
	ShareID     uuid.UUID `json:"share_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Quantity    int32     `json:"quantity" binding:"required,min=1"`
	Description *string   `json:"description,omitempty"`
	OpenTime    string    `json:"open_time" binding:"required"`
	CloseTime   string    `json:"close_time" binding:"required"`
}

func (r QuickClaimRequest) ToWish(storeID uuid.UUID, itemName string, brand *string) (*wish.Wish, error) {
	window, err := parseWindow(r.OpenTime, r.CloseTime)
	if err != nil {
		return nil, err
	}
	return wish.NewWish(
		storeID,
		strings.TrimSpace(r.Title),
		itemName,
		brand,
		r.Quantity,
		trimPtr(r.Description),
		window,
	)
}
