package response

import (
	"github.com/google/uuid"
)

type CreateShareResponse struct {
	ShareID uuid.UUID `json:"shareId"`
}
