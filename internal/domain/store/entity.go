package store

import (
	"errors"
	"math"
	"time"

	"foodloop-server/internal/domain/shared"

	"github.com/google/uuid"
)

var ErrEmptyStoreName = errors.New("store name cannot be empty")

// Address is the store location. Dong is the neighborhood-level locality used
// for match scoping.
type Address struct {
	RoadAddress string
	Dong        string
	Latitude    float64
	Longitude   float64
}

const earthRadiusKm = 6371.0088

// DistanceKm returns the great-circle distance to another address.
func (a Address) DistanceKm(b Address) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

type Store struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	name          string
	imageKey      *string
	address       Address
	phoneNumber   string
	window        shared.TimeWindow
	giveTimes     int32
	receivedTimes int32
	description   *string
	createdAt     time.Time
}

func NewStore(
	ownerID uuid.UUID,
	name string,
	address Address,
	phoneNumber string,
	window shared.TimeWindow,
	description *string,
) (*Store, error) {
	if name == "" {
		return nil, ErrEmptyStoreName
	}
	return &Store{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		address:     address,
		phoneNumber: phoneNumber,
		window:      window,
		description: description,
	}, nil
}

func ReconstructStore(
	id, ownerID uuid.UUID,
	name string,
	imageKey *string,
	address Address,
	phoneNumber string,
	window shared.TimeWindow,
	giveTimes, receivedTimes int32,
	description *string,
	createdAt time.Time,
) *Store {
	return &Store{
		id:            id,
		ownerID:       ownerID,
		name:          name,
		imageKey:      imageKey,
		address:       address,
		phoneNumber:   phoneNumber,
		window:        window,
		giveTimes:     giveTimes,
		receivedTimes: receivedTimes,
		description:   description,
		createdAt:     createdAt,
	}
}

// Counters move only when a trade completes; the completing transaction owns
// both increments.
func (s *Store) IncrementGiveTimes()     { s.giveTimes++ }
func (s *Store) IncrementReceivedTimes() { s.receivedTimes++ }

func (s *Store) ID() uuid.UUID             { return s.id }
func (s *Store) OwnerID() uuid.UUID        { return s.ownerID }
func (s *Store) Name() string              { return s.name }
func (s *Store) ImageKey() *string         { return s.imageKey }
func (s *Store) Address() Address          { return s.address }
func (s *Store) PhoneNumber() string       { return s.phoneNumber }
func (s *Store) Window() shared.TimeWindow { return s.window }
func (s *Store) GiveTimes() int32          { return s.giveTimes }
func (s *Store) ReceivedTimes() int32      { return s.receivedTimes }
func (s *Store) Description() *string      { return s.description }
func (s *Store) CreatedAt() time.Time      { return s.createdAt }
