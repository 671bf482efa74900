//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"foodloop-server/internal/domain/claim"
	"foodloop-server/internal/domain/share"
	domshared "foodloop-server/internal/domain/shared"
	"foodloop-server/internal/domain/store"
	"foodloop-server/internal/domain/trade"
	"foodloop-server/internal/domain/wish"
	"foodloop-server/internal/infra"
	"foodloop-server/internal/infra/db"
	"foodloop-server/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// In-memory unit of work. Every call shares one state instance, so a test can
// inspect the aftermath directly; transactional rollback is not simulated.
type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	state := &fakeState{
		claims:        map[uuid.UUID]*claim.Claim{},
		shares:        map[uuid.UUID]*share.Share{},
		wishes:        map[uuid.UUID]*wish.Wish{},
		trades:        map[uuid.UUID]*trade.Trade{},
		stores:        map[uuid.UUID]*store.Store{},
		storesByOwner: map[uuid.UUID]*store.Store{},
		imageKeys:     map[uuid.UUID]string{},
		giveCounts:    map[uuid.UUID]int{},
		recvCounts:    map[uuid.UUID]int{},
	}
	return &fakeUoW{tx: &fakeTx{state: state}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeState struct {
	claims        map[uuid.UUID]*claim.Claim
	shares        map[uuid.UUID]*share.Share
	wishes        map[uuid.UUID]*wish.Wish
	trades        map[uuid.UUID]*trade.Trade
	stores        map[uuid.UUID]*store.Store
	storesByOwner map[uuid.UUID]*store.Store
	imageKeys     map[uuid.UUID]string
	giveCounts    map[uuid.UUID]int
	recvCounts    map[uuid.UUID]int
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) Claims() shared.ClaimRepository           { return &fakeClaimRepo{t.state} }
func (t *fakeTx) Shares() shared.ShareRepository           { return &fakeShareRepo{t.state} }
func (t *fakeTx) Wishes() shared.WishRepository            { return &fakeWishRepo{t.state} }
func (t *fakeTx) Trades() shared.TradeRepository           { return &fakeTradeRepo{t.state} }
func (t *fakeTx) Stores() shared.StoreRepository           { return &fakeStoreRepo{t.state} }
func (t *fakeTx) ShareImages() shared.ShareImageRepository { return &fakeShareImageRepo{t.state} }
func (t *fakeTx) DB() db.DBTX                              { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeClaimRepo struct{ state *fakeState }

func (r *fakeClaimRepo) Create(_ context.Context, _ db.DBTX, c *claim.Claim) (uuid.UUID, error) {
	for _, existing := range r.state.claims {
		if existing.WishID() == c.WishID() && existing.ShareID() == c.ShareID() {
			return uuid.Nil, infra.WrapRepoErr("duplicate claim", nil, infra.KindDuplicateKey)
		}
	}
	r.state.claims[c.ID()] = c
	return c.ID(), nil
}

func (r *fakeClaimRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*claim.Claim, error) {
	c, ok := r.state.claims[id]
	if !ok {
		return nil, notFound("claim not found")
	}
	return c, nil
}

func (r *fakeClaimRepo) SaveStatus(_ context.Context, _ db.DBTX, c *claim.Claim) error {
	if _, ok := r.state.claims[c.ID()]; !ok {
		return notFound("claim not found")
	}
	r.state.claims[c.ID()] = c
	return nil
}

type fakeShareRepo struct{ state *fakeState }

func (r *fakeShareRepo) Create(_ context.Context, _ db.DBTX, s *share.Share, imageKeys []string) (uuid.UUID, error) {
	r.state.shares[s.ID()] = s
	if len(imageKeys) > 0 {
		r.state.imageKeys[s.ID()] = imageKeys[0]
	}
	return s.ID(), nil
}

func (r *fakeShareRepo) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*share.Share, error) {
	s, ok := r.state.shares[id]
	if !ok {
		return nil, notFound("share not found")
	}
	return s, nil
}

func (r *fakeShareRepo) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*share.Share, error) {
	return r.FindByID(ctx, dbtx, id)
}

func (r *fakeShareRepo) SaveQuantity(_ context.Context, _ db.DBTX, s *share.Share) error {
	if _, ok := r.state.shares[s.ID()]; !ok {
		return notFound("share not found")
	}
	r.state.shares[s.ID()] = s
	return nil
}

func (r *fakeShareRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.state.shares[id]; !ok {
		return notFound("share not found")
	}
	for _, t := range r.state.trades {
		if t.ShareID() == id {
			return infra.WrapRepoErr("share referenced by trade", nil, infra.KindForeignKeyViolated)
		}
	}
	delete(r.state.shares, id)
	for claimID, c := range r.state.claims {
		if c.ShareID() == id {
			delete(r.state.claims, claimID)
		}
	}
	return nil
}

type fakeWishRepo struct{ state *fakeState }

func (r *fakeWishRepo) Create(_ context.Context, _ db.DBTX, w *wish.Wish) (uuid.UUID, error) {
	r.state.wishes[w.ID()] = w
	return w.ID(), nil
}

func (r *fakeWishRepo) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*wish.Wish, error) {
	w, ok := r.state.wishes[id]
	if !ok {
		return nil, notFound("wish not found")
	}
	return w, nil
}

func (r *fakeWishRepo) Deactivate(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	w, ok := r.state.wishes[id]
	if !ok {
		return notFound("wish not found")
	}
	w.Close()
	return nil
}

type fakeTradeRepo struct{ state *fakeState }

func (r *fakeTradeRepo) Create(_ context.Context, _ db.DBTX, t *trade.Trade) (uuid.UUID, error) {
	for _, existing := range r.state.trades {
		if existing.ClaimID() == t.ClaimID() {
			return uuid.Nil, infra.WrapRepoErr("duplicate trade", nil, infra.KindDuplicateKey)
		}
	}
	r.state.trades[t.ID()] = t
	return t.ID(), nil
}

func (r *fakeTradeRepo) FindByClaimID(_ context.Context, _ db.DBTX, claimID uuid.UUID) (*trade.Trade, error) {
	for _, t := range r.state.trades {
		if t.ClaimID() == claimID {
			return t, nil
		}
	}
	return nil, notFound("trade not found")
}

func (r *fakeTradeRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*trade.Trade, error) {
	t, ok := r.state.trades[id]
	if !ok {
		return nil, notFound("trade not found")
	}
	return t, nil
}

func (r *fakeTradeRepo) SaveStatus(_ context.Context, _ db.DBTX, t *trade.Trade) error {
	if _, ok := r.state.trades[t.ID()]; !ok {
		return notFound("trade not found")
	}
	r.state.trades[t.ID()] = t
	return nil
}

type fakeStoreRepo struct{ state *fakeState }

func (r *fakeStoreRepo) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*store.Store, error) {
	s, ok := r.state.stores[id]
	if !ok {
		return nil, notFound("store not found")
	}
	return s, nil
}

func (r *fakeStoreRepo) FindByOwnerID(_ context.Context, _ db.DBTX, ownerID uuid.UUID) (*store.Store, error) {
	s, ok := r.state.storesByOwner[ownerID]
	if !ok {
		return nil, notFound("store not found")
	}
	return s, nil
}

func (r *fakeStoreRepo) IncrementGiveTimes(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.state.stores[id]; !ok {
		return notFound("store not found")
	}
	r.state.giveCounts[id]++
	return nil
}

func (r *fakeStoreRepo) IncrementReceivedTimes(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.state.stores[id]; !ok {
		return notFound("store not found")
	}
	r.state.recvCounts[id]++
	return nil
}

type fakeShareImageRepo struct{ state *fakeState }

func (r *fakeShareImageRepo) PrimaryKeyByShareID(_ context.Context, _ db.DBTX, shareID uuid.UUID) (*string, error) {
	key, ok := r.state.imageKeys[shareID]
	if !ok {
		return nil, nil
	}
	return &key, nil
}

// Fixture wiring

func fixtureWindow(t *testing.T) domshared.TimeWindow {
	t.Helper()
	open, err := domshared.ParseTimeOfDay("09:00")
	require.NoError(t, err)
	closeT, err := domshared.ParseTimeOfDay("18:00")
	require.NoError(t, err)
	w, err := domshared.NewTimeWindow(open, closeT)
	require.NoError(t, err)
	return w
}

type fixture struct {
	uow *fakeUoW

	giverOwner    uuid.UUID
	receiverOwner uuid.UUID
	giverStore    *store.Store
	receiverStore *store.Store
	wish          *wish.Wish
	share         *share.Share
}

func newFixture(t *testing.T, shareQuantity int32) *fixture {
	t.Helper()

	uow := newFakeUoW()
	state := uow.tx.state

	giverOwner := uuid.New()
	receiverOwner := uuid.New()

	addStore := func(ownerID uuid.UUID, name string) *store.Store {
		s, err := store.NewStore(
			ownerID, name,
			store.Address{RoadAddress: "1 Market St", Dong: "yeonnam", Latitude: 37.56, Longitude: 126.92},
			"02-000-0000", fixtureWindow(t), nil,
		)
		require.NoError(t, err)
		state.stores[s.ID()] = s
		state.storesByOwner[ownerID] = s
		return s
	}

	giverStore := addStore(giverOwner, "giver mart")
	receiverStore := addStore(receiverOwner, "receiver mart")

	w, err := wish.NewWish(receiverStore.ID(), "need tomatoes", "tomato", nil, 3, nil, fixtureWindow(t))
	require.NoError(t, err)
	state.wishes[w.ID()] = w

	s, err := share.NewShare(
		giverStore.ID(), "tomato", nil, shareQuantity, nil,
		time.Now().AddDate(0, 0, 7), share.StorageRoomTemp, fixtureWindow(t),
	)
	require.NoError(t, err)
	state.shares[s.ID()] = s

	return &fixture{
		uow:           uow,
		giverOwner:    giverOwner,
		receiverOwner: receiverOwner,
		giverStore:    giverStore,
		receiverStore: receiverStore,
		wish:          w,
		share:         s,
	}
}

func (f *fixture) state() *fakeState {
	return f.uow.tx.state
}
