package transport

import (
	"encoding/json"
	"net/http"

	"printmill-be/internal/pricing"
)

type PricingHandler struct {
	engine *pricing.Engine
}

func NewPricingHandler(engine *pricing.Engine) *PricingHandler {
	return &PricingHandler{engine: engine}
}

type ComputePriceRequestDTO struct {
	Items []pricing.CartLine `json:"items"`
}

// POST /price/compute
//
// Open to unauthenticated callers so the storefront can show a live
// total while the cart is being built.
func (h *PricingHandler) ComputePrice(w http.ResponseWriter, r *http.Request) {
	var req ComputePriceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	quote, err := h.engine.Compute(r.Context(), req.Items)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, quote)
}
