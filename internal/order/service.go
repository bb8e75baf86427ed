package order

import (
	"context"

	"printmill-be/internal/logger"
	"printmill-be/internal/pricing"
	"printmill-be/internal/user"
	"printmill-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Checkout(ctx context.Context, u *user.User, lines []pricing.CartLine, address user.Address) (*Receipt, error)
	ListOrders(ctx context.Context, userID string) ([]*Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
}

type service struct {
	repo          Repository
	engine        *pricing.Engine
	adminWhatsApp string
}

func NewService(repo Repository, engine *pricing.Engine, adminWhatsApp string) Service {
	return &service{
		repo:          repo,
		engine:        engine,
		adminWhatsApp: adminWhatsApp,
	}
}

// Checkout prices the cart, persists the order snapshot, and for carts
// holding office visiting cards attaches the operator deep-link. Pricing
// failures propagate before anything is written.
func (s *service) Checkout(ctx context.Context, u *user.User, lines []pricing.CartLine, address user.Address) (*Receipt, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.String("user_id", u.ID),
		zap.Int("item_count", len(lines)),
	)

	quote, err := s.engine.Compute(ctx, lines)
	if err != nil {
		log.Warn("cart failed pricing", zap.Error(err))
		return nil, err
	}

	o := &Order{
		ID:     uuid.NewString(),
		UserID: u.ID,
		Items:  lines,
		Breakdown: Breakdown{
			Items:       quote.Items,
			Subtotal:    quote.Subtotal,
			PlatformFee: quote.PlatformFee,
			DeliveryFee: quote.DeliveryFee,
		},
		Total:                       quote.Total,
		Status:                      StatusPlaced,
		Address:                     address,
		ContainsOfficeVisitingCards: quote.ContainsOfficeVisitingCards,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	receipt := &Receipt{
		OrderID: o.ID,
		Total:   o.Total,
		Status:  o.Status,
	}

	if quote.ContainsOfficeVisitingCards {
		link := BuildWhatsAppLink(s.adminWhatsApp, o.ID, u.FullName, u.Mobile)
		if err := s.repo.SetWhatsAppLink(ctx, o.ID, link); err != nil {
			// The order exists without its link; the link is reproducible
			// from the stored flag, so surface the write failure.
			log.Error("failed to attach whatsapp link", zap.String("order_id", o.ID), zap.Error(err))
			return nil, err
		}

		receipt.WhatsAppLink = utils.StrPtr(link)
		receipt.Message = utils.StrPtr(ConfirmationMessage)
	}

	log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.Float64("total", o.Total),
		zap.Bool("contains_office_visiting_cards", o.ContainsOfficeVisitingCards),
	)

	return receipt, nil
}

func (s *service) ListOrders(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.FindByUser(ctx, userID)
}

// GetOrder only ever reads the caller's own orders. A malformed order id
// misses the same way a foreign one does.
func (s *service) GetOrder(ctx context.Context, userID, orderID string) (*Order, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, ErrOrderNotFound
	}
	return s.repo.FindByIDForUser(ctx, orderID, userID)
}

func (s *service) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	valid := map[Status]bool{
		StatusPlaced:           true,
		StatusInPrinting:       true,
		StatusReadyForDispatch: true,
		StatusCompleted:        true,
	}
	if !valid[status] {
		return ErrInvalidStatus
	}

	return s.repo.UpdateStatus(ctx, orderID, status)
}
