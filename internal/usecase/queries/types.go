package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// MatchItem is one candidate share for a wish, ordered by distance. The image
// key is an internal storage reference; only the resolved URL leaves the API.
type MatchItem struct {
	ShareID         uuid.UUID `json:"share_id"`
	StoreID         uuid.UUID `json:"store_id"`
	StoreName       string    `json:"store_name"`
	Dong            string    `json:"dong"`
	DistanceKm      float64   `json:"distance_km"`
	ItemName        string    `json:"item_name"`
	Brand           *string   `json:"brand,omitempty"`
	Quantity        int32     `json:"quantity"`
	ExpirationDate  time.Time `json:"expiration_date"`
	StorageType     string    `json:"storage_type"`
	OpenTime        string    `json:"open_time"`
	CloseTime       string    `json:"close_time"`
	PrimaryImageURL *string   `json:"primary_image_url,omitempty"`
	MinutesAgo      int64     `json:"minutes_ago"`
	CreatedAt       time.Time `json:"created_at"`
}

type SentClaimItem struct {
	ClaimID    uuid.UUID  `json:"claim_id"`
	WishID     uuid.UUID  `json:"wish_id"`
	ShareID    uuid.UUID  `json:"share_id"`
	Status     string     `json:"status"`
	TradeID    *uuid.UUID `json:"trade_id,omitempty"`
	GiverStore string     `json:"giver_store"`
	Dong       string     `json:"dong"`
	ItemName   string     `json:"item_name"`
	Quantity   int32      `json:"quantity"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ReceivedClaimItem struct {
	ClaimID        uuid.UUID  `json:"claim_id"`
	WishID         uuid.UUID  `json:"wish_id"`
	ShareID        uuid.UUID  `json:"share_id"`
	Status         string     `json:"status"`
	TradeID        *uuid.UUID `json:"trade_id,omitempty"`
	RequesterStore string     `json:"requester_store"`
	Dong           string     `json:"dong"`
	ItemName       string     `json:"item_name"`
	Quantity       int32      `json:"quantity"`
	CreatedAt      time.Time  `json:"created_at"`
}

// GivenTradeItem is one row of the store's outgoing history: what it handed
// over and to whom.
type GivenTradeItem struct {
	TradeID         uuid.UUID  `json:"trade_id"`
	ClaimID         uuid.UUID  `json:"claim_id"`
	Status          string     `json:"status"`
	ItemName        string     `json:"item_name"`
	Brand           *string    `json:"brand,omitempty"`
	Quantity        int32      `json:"quantity"`
	ExpirationDate  time.Time  `json:"expiration_date"`
	PrimaryImageKey *string    `json:"-"`
	PrimaryImageURL *string    `json:"primary_image_url,omitempty"`
	ReceiverStore   string     `json:"receiver_store"`
	Dong            string     `json:"dong"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CanceledAt      *time.Time `json:"canceled_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ReceivedTradeItem is the incoming counterpart of GivenTradeItem.
type ReceivedTradeItem struct {
	TradeID         uuid.UUID  `json:"trade_id"`
	ClaimID         uuid.UUID  `json:"claim_id"`
	Status          string     `json:"status"`
	ItemName        string     `json:"item_name"`
	Brand           *string    `json:"brand,omitempty"`
	Quantity        int32      `json:"quantity"`
	ExpirationDate  time.Time  `json:"expiration_date"`
	PrimaryImageKey *string    `json:"-"`
	PrimaryImageURL *string    `json:"primary_image_url,omitempty"`
	GiverStore      string     `json:"giver_store"`
	Dong            string     `json:"dong"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CanceledAt      *time.Time `json:"canceled_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type StoreInfo struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	RoadAddress string    `json:"road_address"`
	Dong        string    `json:"dong"`
	PhoneNumber string    `json:"phone_number"`
	OpenTime    string    `json:"open_time"`
	CloseTime   string    `json:"close_time"`
}

// TradeView is the detail screen of one trade: the item snapshot plus the
// counterparty's store from the caller's point of view.
type TradeView struct {
	TradeID         uuid.UUID  `json:"trade_id"`
	ClaimID         uuid.UUID  `json:"claim_id"`
	Status          string     `json:"status"`
	ItemName        string     `json:"item_name"`
	Brand           *string    `json:"brand,omitempty"`
	Quantity        int32      `json:"quantity"`
	ExpirationDate  time.Time  `json:"expiration_date"`
	PrimaryImageKey *string    `json:"-"`
	PrimaryImageURL *string    `json:"primary_image_url,omitempty"`
	Partner         StoreInfo  `json:"partner"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CanceledAt      *time.Time `json:"canceled_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TradeDetailRow carries both sides of the trade out of the read store; the
// query layer folds it into a TradeView for the calling member.
type TradeDetailRow struct {
	TradeID         uuid.UUID
	ClaimID         uuid.UUID
	Status          string
	ItemName        string
	Brand           *string
	Quantity        int32
	ExpirationDate  time.Time
	PrimaryImageKey *string
	Giver           StoreInfo
	GiverOwnerID    uuid.UUID
	Receiver        StoreInfo
	ReceiverOwnerID uuid.UUID
	CompletedAt     *time.Time
	CanceledAt      *time.Time
	CreatedAt       time.Time
}
