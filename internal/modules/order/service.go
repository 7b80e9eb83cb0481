package order

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/IWeppler/el-manantial/internal/apperr"
	"github.com/IWeppler/el-manantial/internal/modules/auth"
	"github.com/IWeppler/el-manantial/internal/modules/schedule"
	"github.com/google/uuid"
)

// Service defines the order management business logic.
type Service interface {
	// PlaceOrder validates, prices and persists a new order, reserving stock
	// atomically. sess is nil for guest callers.
	PlaceOrder(ctx context.Context, sess *auth.Session, req PlaceOrderRequest) (*Order, error)

	// ListOrders returns all orders for admins and the caller's own orders
	// for registered customers.
	ListOrders(ctx context.Context, sess *auth.Session, status string) ([]*Order, error)

	// GetOrder retrieves one order by id.
	GetOrder(ctx context.Context, id string) (*Order, error)

	// UpdateStatus changes an order's status, reconciling stock on
	// cancellation and reactivation.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error)
}

type service struct {
	repo Repository
}

// NewService creates a new order service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) PlaceOrder(ctx context.Context, sess *auth.Session, req PlaceOrderRequest) (*Order, error) {
	if req.MapleQuantity <= 0 {
		return nil, apperr.Validationf("la cantidad debe ser un entero positivo")
	}

	// End customers must pick a delivery or pickup window; admins entering
	// phone orders may leave it out.
	isAdmin := sess.IsAdmin()
	if !isAdmin && req.ScheduleID == "" {
		return nil, apperr.Validationf("debés seleccionar un horario de entrega")
	}

	author, err := resolveAuthor(sess, req)
	if err != nil {
		return nil, err
	}

	payment, err := parsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	cfg, err := s.repo.GetPricingConfig(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Conflictf("la configuración del negocio no está inicializada")
	}
	if err != nil {
		return nil, apperr.Internalf(err, "read pricing config")
	}

	available, err := s.repo.GetStockCount(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Conflictf("el registro de stock no está inicializado")
	}
	if err != nil {
		return nil, apperr.Internalf(err, "read stock")
	}

	if !isAdmin && req.MapleQuantity < cfg.MinimumOrderQuantity {
		return nil, apperr.Conflictf("el pedido mínimo es de %d maples", cfg.MinimumOrderQuantity)
	}
	if req.MapleQuantity > available {
		return nil, apperr.Conflictf("no hay stock suficiente")
	}

	var sched *schedule.Schedule
	if req.ScheduleID != "" {
		scheduleID, err := uuid.Parse(req.ScheduleID)
		if err != nil {
			return nil, apperr.Validationf("horario inválido")
		}
		sched, err = s.repo.GetSchedule(ctx, scheduleID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Conflictf("el horario seleccionado no está disponible")
		}
		if err != nil {
			return nil, apperr.Internalf(err, "read schedule")
		}
		if !sched.IsActive {
			return nil, apperr.Conflictf("el horario seleccionado no está disponible")
		}
	}

	quote := computeQuote(cfg, sched, req.MapleQuantity)

	o := &Order{
		ID:            uuid.New(),
		MapleQuantity: req.MapleQuantity,
		TotalPrice:    quote.Total,
		PaymentMethod: payment,
		Status:        StatusPendiente,
	}
	if author.Registered != nil {
		o.UserID = author.Registered
	} else {
		o.GuestName = author.Guest.Name
		o.GuestPhone = author.Guest.Phone
		o.GuestAddress = author.Guest.Address
	}
	if sched != nil {
		id := sched.ID
		o.ScheduleID = &id
	}

	// The repository re-checks stock under the row lock; the read above only
	// preserves the validation order for a friendly early failure.
	if err := s.repo.CreateOrder(ctx, o); err != nil {
		if apperr.KindOf(err) == apperr.Internal {
			return nil, apperr.Internalf(err, "create order")
		}
		return nil, err
	}

	o.Schedule = sched
	return o, nil
}

func (s *service) ListOrders(ctx context.Context, sess *auth.Session, status string) ([]*Order, error) {
	if sess == nil {
		return nil, apperr.Unauthorizedf("no autorizado")
	}

	filter := ListFilter{}
	if status != "" {
		st := OrderStatus(strings.ToUpper(status))
		if !ValidStatus(st) {
			return nil, apperr.Validationf("estado inválido")
		}
		filter.Status = st
	}
	if !sess.IsAdmin() {
		id := sess.UserID
		filter.UserID = &id
	}

	orders, err := s.repo.ListOrders(ctx, filter)
	if err != nil {
		return nil, apperr.Internalf(err, "list orders")
	}
	return orders, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFoundf("orden no encontrada")
	}
	o, err := s.repo.GetOrderByID(ctx, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("orden no encontrada")
	}
	if err != nil {
		return nil, apperr.Internalf(err, "get order")
	}
	return o, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFoundf("orden no encontrada")
	}

	status := OrderStatus(strings.ToUpper(req.Status))
	if !ValidStatus(status) {
		return nil, apperr.Validationf("estado inválido")
	}

	o, err := s.repo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		if apperr.KindOf(err) == apperr.Internal {
			return nil, apperr.Internalf(err, "update order status")
		}
		return nil, err
	}
	return o, nil
}

// resolveAuthor decides once who the order belongs to. Registered customers
// order for themselves; admins either attribute the order to an existing
// client or enter guest details; everyone else is a guest.
func resolveAuthor(sess *auth.Session, req PlaceOrderRequest) (Author, error) {
	if sess != nil && !sess.IsAdmin() {
		id := sess.UserID
		return Author{Registered: &id}, nil
	}

	if sess.IsAdmin() && req.UserID != "" {
		clientID, err := uuid.Parse(req.UserID)
		if err != nil {
			return Author{}, apperr.Validationf("cliente inválido")
		}
		return Author{Registered: &clientID}, nil
	}

	if req.GuestName == "" || req.GuestPhone == "" {
		return Author{}, apperr.Validationf("faltan nombre y teléfono para el pedido de invitado")
	}
	return Author{Guest: &Guest{
		Name:    req.GuestName,
		Phone:   req.GuestPhone,
		Address: req.GuestAddress,
	}}, nil
}

func parsePaymentMethod(v string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToUpper(v)) {
	case PaymentEfectivo:
		return PaymentEfectivo, nil
	case PaymentTransferencia:
		return PaymentTransferencia, nil
	default:
		return "", apperr.Validationf("método de pago inválido")
	}
}
