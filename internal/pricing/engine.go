package pricing

import (
	"context"
	"fmt"

	"printmill-be/internal/logger"

	"go.uber.org/zap"
)

// Engine turns a cart into a Quote. Compute is pure: no persistence, no
// authentication, safe to call for an anonymous price preview and again
// inside checkout with identical results.
type Engine struct {
	catalog *Catalog
}

func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

func (e *Engine) Compute(ctx context.Context, lines []CartLine) (*Quote, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "pricing"),
		zap.Int("line_count", len(lines)),
	)

	quote := &Quote{
		Items:       make([]PricedLine, 0, len(lines)),
		PlatformFee: PlatformFee,
	}

	for i, line := range lines {
		unit, office, err := e.priceLine(line)
		if err != nil {
			log.Warn("cart line failed validation", zap.Int("index", i), zap.Error(err))
			return nil, &ValidationError{Line: i, Err: err}
		}

		qty := line.Quantity
		if qty <= 0 {
			log.Warn("invalid quantity", zap.Int("index", i), zap.Int("quantity", qty))
			return nil, &ValidationError{Line: i, Err: fmt.Errorf("%w: quantity=%d", ErrInvalidOptions, qty)}
		}

		addonCost := e.catalog.AddonCost(line.Addons, line.Product)
		lineTotal := (unit + addonCost) * float64(qty)

		if office {
			quote.ContainsOfficeVisitingCards = true
		}

		quote.Subtotal += lineTotal
		quote.Items = append(quote.Items, PricedLine{
			Product:   line.Product,
			Options:   line.Options,
			Addons:    line.Addons,
			Quantity:  qty,
			UnitPrice: unit,
			AddonCost: addonCost,
			LineTotal: lineTotal,
		})
	}

	if quote.Subtotal > DeliveryThreshold {
		quote.DeliveryFee = 0
	} else {
		quote.DeliveryFee = DeliveryFee
	}
	quote.Total = quote.Subtotal + quote.PlatformFee + quote.DeliveryFee

	log.Debug("quote computed",
		zap.Float64("subtotal", quote.Subtotal),
		zap.Float64("delivery_fee", quote.DeliveryFee),
		zap.Float64("total", quote.Total),
		zap.Bool("contains_office_visiting_cards", quote.ContainsOfficeVisitingCards),
	)

	return quote, nil
}

// priceLine resolves the unit price for one line and reports whether the
// line is an office visiting card needing manual confirmation.
func (e *Engine) priceLine(line CartLine) (float64, bool, error) {
	switch line.Product {
	case ProductDocumentPrinting:
		var o DocumentPrintingOptions
		if err := decodeOptions(line.Options, &o); err != nil {
			return 0, false, err
		}
		price, err := e.catalog.PriceDocumentPrinting(o)
		return price, false, err

	case ProductVisitingCards:
		var o VisitingCardOptions
		if err := decodeOptions(line.Options, &o); err != nil {
			return 0, false, err
		}
		price, err := e.catalog.PriceVisitingCards(o)
		return price, o.CardType == CardTypeOffice, err

	case ProductLetterheads:
		var o LetterheadOptions
		if err := decodeOptions(line.Options, &o); err != nil {
			return 0, false, err
		}
		price, err := e.catalog.PriceLetterheads(o)
		return price, false, err

	case ProductEnvelopes:
		var o EnvelopeOptions
		if err := decodeOptions(line.Options, &o); err != nil {
			return 0, false, err
		}
		price, err := e.catalog.PriceEnvelopes(o)
		return price, false, err

	case ProductFlyers:
		var o FlyerOptions
		if err := decodeOptions(line.Options, &o); err != nil {
			return 0, false, err
		}
		price, err := e.catalog.PriceFlyers(o)
		return price, false, err

	case ProductPosters:
		var o PosterOptions
		if err := decodeOptions(line.Options, &o); err != nil {
			return 0, false, err
		}
		price, err := e.catalog.PricePosters(o)
		return price, false, err

	case ProductCustomMug:
		var o MugOptions
		if err := decodeOptions(line.Options, &o); err != nil {
			return 0, false, err
		}
		price, err := e.catalog.PriceCustomMug(o)
		return price, false, err

	default:
		return 0, false, fmt.Errorf("%w: %q", ErrUnknownProduct, line.Product)
	}
}
