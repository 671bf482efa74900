package request

import (
	"strings"

	"foodloop-server/internal/domain/shared"
	"foodloop-server/internal/domain/wish"

	"github.com/google/uuid"
)

type CreateWishRequest struct {
	Title       string  `json:"title" binding:"required"`
	ItemName    string  `json:"item_name" binding:"required"`
	Brand       *string `json:"brand,omitempty"`
	Quantity    int32   `json:"quantity" binding:"required,min=1"`
	Description *string `json:"description,omitempty"`
	OpenTime    string  `json:"open_time" binding:"required"`
	CloseTime   string  `json:"close_time" binding:"required"`
}

func (r CreateWishRequest) ToDomain(storeID uuid.UUID) (*wish.Wish, error) {
	window, err := parseWindow(r.OpenTime, r.CloseTime)
	if err != nil {
		return nil, err
	}
	return wish.NewWish(
		storeID,
		strings.TrimSpace(r.Title),
		strings.TrimSpace(r.ItemName),
		trimPtr(r.Brand),
		r.Quantity,
		trimPtr(r.Description),
		window,
	)
}

func parseWindow(open, close string) (shared.TimeWindow, error) {
	openT, err := shared.ParseTimeOfDay(open)
	if err != nil {
		return shared.TimeWindow{}, err
	}
	closeT, err := shared.ParseTimeOfDay(close)
	if err != nil {
		return shared.TimeWindow{}, err
	}
	return shared.NewTimeWindow(openT, closeT)
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
