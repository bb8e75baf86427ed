package pricing

import "encoding/json"

type Product string

const (
	ProductDocumentPrinting Product = "document_printing"
	ProductVisitingCards    Product = "visiting_cards"
	ProductLetterheads      Product = "letterheads"
	ProductEnvelopes        Product = "envelopes"
	ProductFlyers           Product = "flyers"
	ProductPosters          Product = "posters"
	ProductCustomMug        Product = "custom_mug"
)

// Order-level fee constants, currency units.
const (
	PlatformFee       = 10.0
	DeliveryFee       = 35.0
	DeliveryThreshold = 300.0
)

type Addons struct {
	SpiralBinding string `json:"spiral_binding,omitempty"`
	Lamination    string `json:"lamination,omitempty"`
}

// CartLine is one product configuration plus quantity. Options stay raw
// until the engine decodes them against the product's own option schema.
// Any client-sent price fields are dropped here and recomputed server-side.
type CartLine struct {
	Product  Product         `json:"product"`
	Options  json.RawMessage `json:"options"`
	Addons   *Addons         `json:"addons,omitempty"`
	Quantity int             `json:"quantity"`
}

type PricedLine struct {
	Product   Product         `json:"product"`
	Options   json.RawMessage `json:"options"`
	Addons    *Addons         `json:"addons,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice float64         `json:"unit_price"`
	AddonCost float64         `json:"addon_cost"`
	LineTotal float64         `json:"line_total"`
}

// Quote is the itemized breakdown for a cart. It is ephemeral: computed for
// preview or embedded into an order at checkout, never stored on its own.
type Quote struct {
	Items                       []PricedLine `json:"items"`
	Subtotal                    float64      `json:"subtotal"`
	PlatformFee                 float64      `json:"platform_fee"`
	DeliveryFee                 float64      `json:"delivery_fee"`
	Total                       float64      `json:"total"`
	ContainsOfficeVisitingCards bool         `json:"contains_office_visiting_cards"`
}
