package transport

import (
	"net/http"

	"printmill-be/internal/logger"
	"printmill-be/internal/middleware"
	"printmill-be/internal/order"
	"printmill-be/internal/pricing"
	"printmill-be/internal/session"
	"printmill-be/internal/upload"
	"printmill-be/internal/user"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires every handler behind the shared middleware chain. Auth is
// passive: it resolves the session into the request context when a token is
// present and lets each handler decide whether a caller is required.
func NewRouter(
	users user.Service,
	sessions session.Service,
	orders order.Service,
	engine *pricing.Engine,
	uploads upload.Service,
) http.Handler {
	authHandler := NewAuthHandler(users, sessions)
	pricingHandler := NewPricingHandler(engine)
	orderHandler := NewOrderHandler(orders, sessions)
	uploadHandler := NewUploadHandler(uploads)

	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.CORS)
	r.Use(middleware.AuthMiddleware(sessions))
	r.Use(middleware.RateLimitMiddleware)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"message": "Printing API running"})
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Get("/me", authHandler.Me)

	r.Post("/price/compute", pricingHandler.ComputePrice)

	r.Post("/orders", orderHandler.Checkout)
	r.Get("/orders", orderHandler.ListOrders)
	r.Get("/orders/{orderID}", orderHandler.GetOrder)

	r.Post("/upload", uploadHandler.Upload)
	r.Get("/uploads/{filename}", uploadHandler.Serve)

	return r
}
