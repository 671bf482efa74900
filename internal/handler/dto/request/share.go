package request

import (
	"strings"
	"time"

	"foodloop-server/internal/domain/share"

	"github.com/google/uuid"
)

type CreateShareRequest struct {
	ItemName       string   `json:"item_name" binding:"required"`
	Brand          *string  `json:"brand,omitempty"`
	Quantity       int32    `json:"quantity" binding:"required,min=0"`
	Description    *string  `json:"description,omitempty"`
	ExpirationDate string   `json:"expiration_date" binding:"required"`
	StorageType    string   `json:"storage_type" binding:"required"`
	OpenTime       string   `json:"open_time" binding:"required"`
	CloseTime      string   `json:"close_time" binding:"required"`
	ImageKeys      []string `json:"image_keys,omitempty"`
}

func (r CreateShareRequest) ToDomain(storeID uuid.UUID) (*share.Share, error) {
	window, err := parseWindow(r.OpenTime, r.CloseTime)
	if err != nil {
		return nil, err
	}
	expiration, err := time.Parse(time.DateOnly, r.ExpirationDate)
	if err != nil {
		return nil, err
	}
	return share.NewShare(
		storeID,
		strings.TrimSpace(r.ItemName),
		trimPtr(r.Brand),
		r.Quantity,
		trimPtr(r.Description),
		expiration,
		share.StorageType(strings.ToUpper(strings.TrimSpace(r.StorageType))),
		window,
	)
}
