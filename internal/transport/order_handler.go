package transport

import (
	"encoding/json"
	"net/http"
	"time"

	"printmill-be/internal/order"
	"printmill-be/internal/pricing"
	"printmill-be/internal/session"
	"printmill-be/internal/user"
	"printmill-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orders   order.Service
	sessions session.Service
}

func NewOrderHandler(orders order.Service, sessions session.Service) *OrderHandler {
	return &OrderHandler{orders: orders, sessions: sessions}
}

type CheckoutRequestDTO struct {
	Items         []pricing.CartLine `json:"items"`
	Address       user.Address       `json:"address"`
	PaymentMethod string             `json:"payment_method"`
	Token         string             `json:"token"`
}

type ReceiptDTO struct {
	OrderID      string  `json:"order_id"`
	Total        float64 `json:"total"`
	Status       string  `json:"status"`
	WhatsAppLink *string `json:"whatsapp_link"`
	Message      *string `json:"message,omitempty"`
}

type OrderDTO struct {
	ID                          string             `json:"id"`
	UserID                      string             `json:"user_id"`
	Items                       []pricing.CartLine `json:"items"`
	Breakdown                   order.Breakdown    `json:"pricing_breakdown"`
	Total                       float64            `json:"total"`
	Status                      string             `json:"status"`
	Address                     user.Address       `json:"address"`
	ContainsOfficeVisitingCards bool               `json:"contains_office_visiting_cards"`
	WhatsAppLink                *string            `json:"whatsapp_link"`
	CreatedAt                   time.Time          `json:"created_at"`
}

func toOrderDTO(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                          o.ID,
		UserID:                      o.UserID,
		Items:                       o.Items,
		Breakdown:                   o.Breakdown,
		Total:                       o.Total,
		Status:                      string(o.Status),
		Address:                     o.Address,
		ContainsOfficeVisitingCards: o.ContainsOfficeVisitingCards,
		WhatsAppLink:                o.WhatsAppLink,
		CreatedAt:                   o.CreatedAt,
	}
}

// caller resolves the acting user for checkout. Older storefront builds send
// the session token in the request body instead of the Authorization header,
// so when the auth middleware found nothing we authenticate the body token.
func (h *OrderHandler) caller(r *http.Request, bodyToken string) (*user.User, error) {
	if u, ok := utils.GetUserFromContext(r.Context()); ok {
		return u, nil
	}
	return h.sessions.Authenticate(r.Context(), bodyToken)
}

// POST /orders
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	u, err := h.caller(r, req.Token)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	receipt, err := h.orders.Checkout(r.Context(), u, req.Items, req.Address)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ReceiptDTO{
		OrderID:      receipt.OrderID,
		Total:        receipt.Total,
		Status:       string(receipt.Status),
		WhatsAppLink: receipt.WhatsAppLink,
		Message:      receipt.Message,
	})
}

// GET /orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	u, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	orders, err := h.orders.ListOrders(r.Context(), u.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, toOrderDTO(o))
	}

	respondJSON(w, http.StatusOK, map[string]any{"orders": dtos})
}

// GET /orders/{orderID}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	u, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	o, err := h.orders.GetOrder(r.Context(), u.ID, chi.URLParam(r, "orderID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toOrderDTO(o))
}
