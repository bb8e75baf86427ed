package order

import (
	"time"

	"printmill-be/internal/pricing"
	"printmill-be/internal/user"
)

type Status string

// Fulfillment owns transitions past Placed; this service only ever creates
// orders in Placed and validates the enum on trusted status updates.
const (
	StatusPlaced           Status = "Placed"
	StatusInPrinting       Status = "In Printing"
	StatusReadyForDispatch Status = "Ready for Dispatch"
	StatusCompleted        Status = "Completed"
)

// Breakdown is the quote snapshot embedded into an order. The order total is
// stored separately rather than duplicated in here.
type Breakdown struct {
	Items       []pricing.PricedLine `json:"items"`
	Subtotal    float64              `json:"subtotal"`
	PlatformFee float64              `json:"platform_fee"`
	DeliveryFee float64              `json:"delivery_fee"`
}

type Order struct {
	ID                          string
	UserID                      string
	Items                       []pricing.CartLine
	Breakdown                   Breakdown
	Total                       float64
	Status                      Status
	Address                     user.Address
	ContainsOfficeVisitingCards bool
	WhatsAppLink                *string
	CreatedAt                   time.Time
}

// Receipt is what the checkout endpoint returns. Link and Message are set
// only when the cart contains office visiting cards.
type Receipt struct {
	OrderID      string
	Total        float64
	Status       Status
	WhatsAppLink *string
	Message      *string
}
