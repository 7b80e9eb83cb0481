package order

import (
	"context"
	"database/sql"
	"testing"

	"github.com/IWeppler/el-manantial/internal/apperr"
	"github.com/IWeppler/el-manantial/internal/modules/auth"
	"github.com/IWeppler/el-manantial/internal/modules/schedule"
	"github.com/IWeppler/el-manantial/internal/modules/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo reimplements the repository contract in memory, including the
// stock re-check the postgres transaction performs.
type fakeRepo struct {
	cfg          *PricingConfig
	stockCount   int
	stockMissing bool
	schedules    map[uuid.UUID]*schedule.Schedule
	orders       map[uuid.UUID]*Order
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		cfg: &PricingConfig{
			PricePerMaple:         8000,
			DeliveryFee:           1000,
			FreeDeliveryThreshold: int64p(24000),
			MinimumOrderQuantity:  1,
			Tiers:                 []PriceTier{{MinQuantity: 3, Price: 7000}},
		},
		stockCount: 50,
		schedules:  map[uuid.UUID]*schedule.Schedule{},
		orders:     map[uuid.UUID]*Order{},
	}
}

func (f *fakeRepo) addSchedule(s *schedule.Schedule) *schedule.Schedule {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.schedules[s.ID] = s
	return s
}

func (f *fakeRepo) GetPricingConfig(ctx context.Context) (*PricingConfig, error) {
	if f.cfg == nil {
		return nil, sql.ErrNoRows
	}
	return f.cfg, nil
}

func (f *fakeRepo) GetStockCount(ctx context.Context) (int, error) {
	if f.stockMissing {
		return 0, sql.ErrNoRows
	}
	return f.stockCount, nil
}

func (f *fakeRepo) GetSchedule(ctx context.Context, id uuid.UUID) (*schedule.Schedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return s, nil
}

func (f *fakeRepo) CreateOrder(ctx context.Context, o *Order) error {
	if f.stockMissing {
		return apperr.Conflictf("el registro de stock no está inicializado")
	}
	if f.stockCount < o.MapleQuantity {
		return apperr.Conflictf("no hay stock suficiente")
	}
	f.stockCount -= o.MapleQuantity
	f.orders[o.ID] = o
	return nil
}

func (f *fakeRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return o, nil
}

func (f *fakeRepo) ListOrders(ctx context.Context, filter ListFilter) ([]*Order, error) {
	var out []*Order
	for _, o := range f.orders {
		if filter.UserID != nil && (o.UserID == nil || *o.UserID != *filter.UserID) {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) (*Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, apperr.NotFoundf("orden no encontrada")
	}
	if delta := stockDelta(o.Status, status, o.MapleQuantity); delta != 0 {
		if f.stockCount+delta < 0 {
			return nil, apperr.Conflictf("no hay suficiente stock para reactivar este pedido")
		}
		f.stockCount += delta
	}
	o.Status = status
	return o, nil
}

func customerSession() *auth.Session {
	return &auth.Session{UserID: uuid.New(), Role: user.RoleUser}
}

func adminSession() *auth.Session {
	return &auth.Session{UserID: uuid.New(), Role: user.RoleAdmin}
}

func validRequest(scheduleID uuid.UUID) PlaceOrderRequest {
	return PlaceOrderRequest{
		MapleQuantity: 3,
		ScheduleID:    scheduleID.String(),
		PaymentMethod: "EFECTIVO",
	}
}

func TestPlaceOrderRegisteredCustomer(t *testing.T) {
	repo := newFakeRepo()
	sched := repo.addSchedule(deliverySchedule())
	svc := NewService(repo)
	sess := customerSession()

	o, err := svc.PlaceOrder(context.Background(), sess, validRequest(sched.ID))
	require.NoError(t, err)

	assert.Equal(t, StatusPendiente, o.Status)
	assert.Equal(t, int64(22000), o.TotalPrice) // 3*7000 + 1000 delivery
	require.NotNil(t, o.UserID)
	assert.Equal(t, sess.UserID, *o.UserID)
	assert.Empty(t, o.GuestName)
	assert.Equal(t, 47, repo.stockCount)
	require.NotNil(t, o.Schedule)
	assert.Equal(t, sched.ID, o.Schedule.ID)
}

func TestPlaceOrderGuest(t *testing.T) {
	repo := newFakeRepo()
	sched := repo.addSchedule(pickupSchedule())
	svc := NewService(repo)

	req := validRequest(sched.ID)
	req.MapleQuantity = 1
	req.GuestName = "Juan Pérez"
	req.GuestPhone = "3491123456"

	o, err := svc.PlaceOrder(context.Background(), nil, req)
	require.NoError(t, err)

	assert.Nil(t, o.UserID)
	assert.Equal(t, "Juan Pérez", o.GuestName)
	assert.Equal(t, int64(8000), o.TotalPrice) // base price, pickup, no fee
	assert.Equal(t, 49, repo.stockCount)
}

func TestPlaceOrderGuestRequiresNameAndPhone(t *testing.T) {
	repo := newFakeRepo()
	sched := repo.addSchedule(pickupSchedule())
	svc := NewService(repo)

	_, err := svc.PlaceOrder(context.Background(), nil, validRequest(sched.ID))
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Equal(t, 50, repo.stockCount)
}

func TestPlaceOrderQuantityMustBePositive(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	for _, q := range []int{0, -3} {
		req := PlaceOrderRequest{MapleQuantity: q, PaymentMethod: "EFECTIVO"}
		_, err := svc.PlaceOrder(context.Background(), adminSession(), req)
		require.Error(t, err)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	}
}

func TestPlaceOrderCustomerNeedsSchedule(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	req := PlaceOrderRequest{MapleQuantity: 3, PaymentMethod: "EFECTIVO"}
	_, err := svc.PlaceOrder(context.Background(), customerSession(), req)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestPlaceOrderAdminMayOmitSchedule(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	req := PlaceOrderRequest{
		MapleQuantity: 2,
		PaymentMethod: "TRANSFERENCIA",
		GuestName:     "Cliente Mostrador",
		GuestPhone:    "3491000000",
	}
	o, err := svc.PlaceOrder(context.Background(), adminSession(), req)
	require.NoError(t, err)
	assert.Nil(t, o.ScheduleID)
	assert.Equal(t, int64(16000), o.TotalPrice) // no schedule, no delivery fee
}

func TestPlaceOrderAdminAttributesToClient(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	clientID := uuid.New()

	req := PlaceOrderRequest{
		MapleQuantity: 3,
		PaymentMethod: "EFECTIVO",
		UserID:        clientID.String(),
	}
	o, err := svc.PlaceOrder(context.Background(), adminSession(), req)
	require.NoError(t, err)
	require.NotNil(t, o.UserID)
	assert.Equal(t, clientID, *o.UserID)
	assert.Empty(t, o.GuestName)
}

func TestPlaceOrderBelowMinimum(t *testing.T) {
	repo := newFakeRepo()
	repo.cfg.MinimumOrderQuantity = 3
	sched := repo.addSchedule(pickupSchedule())
	svc := NewService(repo)

	req := validRequest(sched.ID)
	req.MapleQuantity = 2
	_, err := svc.PlaceOrder(context.Background(), customerSession(), req)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	// The minimum does not bind admins.
	req.GuestName = "Cliente"
	req.GuestPhone = "3491000000"
	_, err = svc.PlaceOrder(context.Background(), adminSession(), req)
	assert.NoError(t, err)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	repo := newFakeRepo()
	repo.stockCount = 2
	sched := repo.addSchedule(pickupSchedule())
	svc := NewService(repo)

	req := validRequest(sched.ID)
	req.MapleQuantity = 5
	_, err := svc.PlaceOrder(context.Background(), customerSession(), req)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.Equal(t, 2, repo.stockCount)
	assert.Empty(t, repo.orders)
}

func TestPlaceOrderInactiveSchedule(t *testing.T) {
	repo := newFakeRepo()
	sched := repo.addSchedule(&schedule.Schedule{
		DayOfWeek: "Sábado", StartTime: "13:00", EndTime: "20:00",
		Type: schedule.TypePickup, IsActive: false,
	})
	svc := NewService(repo)

	_, err := svc.PlaceOrder(context.Background(), customerSession(), validRequest(sched.ID))
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestPlaceOrderUnknownSchedule(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.PlaceOrder(context.Background(), customerSession(), validRequest(uuid.New()))
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestPlaceOrderUninitializedConfiguration(t *testing.T) {
	repo := newFakeRepo()
	repo.cfg = nil
	sched := repo.addSchedule(pickupSchedule())
	svc := NewService(repo)

	_, err := svc.PlaceOrder(context.Background(), customerSession(), validRequest(sched.ID))
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	repo = newFakeRepo()
	repo.stockMissing = true
	sched = repo.addSchedule(pickupSchedule())
	svc = NewService(repo)

	_, err = svc.PlaceOrder(context.Background(), customerSession(), validRequest(sched.ID))
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestPlaceOrderInvalidPaymentMethod(t *testing.T) {
	repo := newFakeRepo()
	sched := repo.addSchedule(pickupSchedule())
	svc := NewService(repo)

	req := validRequest(sched.ID)
	req.PaymentMethod = "BITCOIN"
	_, err := svc.PlaceOrder(context.Background(), customerSession(), req)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestUpdateStatusStockReconciliation(t *testing.T) {
	repo := newFakeRepo()
	sched := repo.addSchedule(pickupSchedule())
	svc := NewService(repo)

	o, err := svc.PlaceOrder(context.Background(), customerSession(), validRequest(sched.ID))
	require.NoError(t, err)
	require.Equal(t, 47, repo.stockCount)

	// Cancelling returns the maples.
	o, err = svc.UpdateStatus(context.Background(), o.ID.String(), UpdateStatusRequest{Status: "CANCELADO"})
	require.NoError(t, err)
	assert.Equal(t, StatusCancelado, o.Status)
	assert.Equal(t, 50, repo.stockCount)

	// Re-cancelling must not double-increment.
	o, err = svc.UpdateStatus(context.Background(), o.ID.String(), UpdateStatusRequest{Status: "CANCELADO"})
	require.NoError(t, err)
	assert.Equal(t, 50, repo.stockCount)

	// Reactivating re-reserves.
	o, err = svc.UpdateStatus(context.Background(), o.ID.String(), UpdateStatusRequest{Status: "CONFIRMADO"})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmado, o.Status)
	assert.Equal(t, 47, repo.stockCount)

	// Plain lifecycle transitions leave stock alone.
	_, err = svc.UpdateStatus(context.Background(), o.ID.String(), UpdateStatusRequest{Status: "ENTREGADO"})
	require.NoError(t, err)
	assert.Equal(t, 47, repo.stockCount)
}

func TestUpdateStatusReactivationWithoutStock(t *testing.T) {
	repo := newFakeRepo()
	sched := repo.addSchedule(pickupSchedule())
	svc := NewService(repo)

	o, err := svc.PlaceOrder(context.Background(), customerSession(), validRequest(sched.ID))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), o.ID.String(), UpdateStatusRequest{Status: "CANCELADO"})
	require.NoError(t, err)

	// Someone else bought almost everything in the meantime.
	repo.stockCount = 1

	_, err = svc.UpdateStatus(context.Background(), o.ID.String(), UpdateStatusRequest{Status: "CONFIRMADO"})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.Equal(t, 1, repo.stockCount)

	got, err := svc.GetOrder(context.Background(), o.ID.String())
	require.NoError(t, err)
	assert.Equal(t, StatusCancelado, got.Status)
}

func TestUpdateStatusValidation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.UpdateStatus(context.Background(), uuid.New().String(), UpdateStatusRequest{Status: "ENVIADO"})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = svc.UpdateStatus(context.Background(), uuid.New().String(), UpdateStatusRequest{Status: "CONFIRMADO"})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestListOrdersScoping(t *testing.T) {
	repo := newFakeRepo()
	sched := repo.addSchedule(pickupSchedule())
	svc := NewService(repo)

	alice := customerSession()
	bob := customerSession()

	_, err := svc.PlaceOrder(context.Background(), alice, validRequest(sched.ID))
	require.NoError(t, err)
	_, err = svc.PlaceOrder(context.Background(), bob, validRequest(sched.ID))
	require.NoError(t, err)

	// No session: unauthorized.
	_, err = svc.ListOrders(context.Background(), nil, "")
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	// A customer only sees their own orders.
	mine, err := svc.ListOrders(context.Background(), alice, "")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, alice.UserID, *mine[0].UserID)

	// Admins see everything.
	all, err := svc.ListOrders(context.Background(), adminSession(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestOrderOutlivesItsSchedule(t *testing.T) {
	repo := newFakeRepo()
	sched := repo.addSchedule(deliverySchedule())
	svc := NewService(repo)

	o, err := svc.PlaceOrder(context.Background(), customerSession(), validRequest(sched.ID))
	require.NoError(t, err)
	assert.Equal(t, 47, repo.stockCount)

	// An admin replaces the weekly schedules: the rows are deleted and the
	// order's reference is set to null, while its priced snapshot stays.
	delete(repo.schedules, sched.ID)
	repo.orders[o.ID].ScheduleID = nil
	repo.orders[o.ID].Schedule = nil

	got, err := svc.GetOrder(context.Background(), o.ID.String())
	require.NoError(t, err)
	assert.Nil(t, got.Schedule)
	assert.Equal(t, int64(22000), got.TotalPrice)

	// Stock reconciliation still works without the schedule.
	cancelled, err := svc.UpdateStatus(context.Background(), o.ID.String(),
		UpdateStatusRequest{Status: "CANCELADO"})
	require.NoError(t, err)
	assert.Equal(t, StatusCancelado, cancelled.Status)
	assert.Equal(t, 50, repo.stockCount)
}
