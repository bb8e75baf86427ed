package pricing

import "fmt"

type docKey struct {
	Color string
	Size  string
	GSM   int
}

type tierKey struct {
	Tier     string
	Quantity int
}

type gsmKey struct {
	GSM      int
	Quantity int
}

// Catalog holds the per-product price tables. Built once at startup and
// read-only afterwards: prices resolve by exact table lookup over the
// discrete option values, never by formula.
type Catalog struct {
	documentPrinting map[docKey]float64
	visitingCards    map[tierKey]float64
	letterheads      map[gsmKey]float64
	envelopes        map[tierKey]float64
	flyers           map[tierKey]float64
	mugs             map[int]float64
}

const (
	PaperEconomyMatte = "economy_250_matte"
	PaperPremiumMatte = "premium_300_matte"
	PaperPremiumGloss = "premium_300_gloss"

	CardTypeOffice = "office"
)

func NewCatalog() *Catalog {
	return &Catalog{
		documentPrinting: map[docKey]float64{
			{"bw", "A4", 80}:      3,
			{"bw", "A4", 100}:     4,
			{"bw", "A4", 130}:     5,
			{"bw", "A3", 80}:      8,
			{"bw", "A3", 100}:     10,
			{"bw", "A3", 130}:     12,
			{"colour", "A4", 80}:  10,
			{"colour", "A4", 100}: 12,
			{"colour", "A4", 130}: 15,
			{"colour", "A3", 80}:  25,
			{"colour", "A3", 100}: 30,
			{"colour", "A3", 130}: 35,
		},
		visitingCards: map[tierKey]float64{
			{PaperEconomyMatte, 50}:  150,
			{PaperEconomyMatte, 100}: 250,
			{PaperPremiumMatte, 50}:  250,
			{PaperPremiumMatte, 100}: 400,
			{PaperPremiumGloss, 50}:  250,
			{PaperPremiumGloss, 100}: 400,
		},
		letterheads: map[gsmKey]float64{
			{100, 100}: 200,
			{100, 200}: 350,
			{130, 100}: 260,
			{130, 200}: 450,
		},
		envelopes: map[tierKey]float64{
			{"standard_80", 100}:  200,
			{"standard_80", 200}:  350,
			{"premium_100", 100}:  260,
			{"premium_100", 200}:  450,
		},
		flyers: map[tierKey]float64{
			{"A5", 50}:  250,
			{"A5", 100}: 400,
			{"A4", 50}:  350,
			{"A4", 100}: 600,
		},
		mugs: map[int]float64{
			1: 299,
			2: 550,
			4: 1040,
		},
	}
}

func (c *Catalog) PriceDocumentPrinting(o DocumentPrintingOptions) (float64, error) {
	perPage, ok := c.documentPrinting[docKey{o.Color, o.Size, o.GSM}]
	if !ok {
		return 0, fmt.Errorf("%w: color=%q size=%q gsm=%d", ErrInvalidOptions, o.Color, o.Size, o.GSM)
	}

	pages := o.Pages
	if pages == 0 {
		pages = 1
	}
	if pages < 1 {
		return 0, fmt.Errorf("%w: pages=%d", ErrInvalidOptions, o.Pages)
	}

	return perPage * float64(pages), nil
}

func (c *Catalog) PriceVisitingCards(o VisitingCardOptions) (float64, error) {
	price, ok := c.visitingCards[tierKey{o.Paper, o.Quantity}]
	if !ok {
		return 0, fmt.Errorf("%w: paper=%q quantity=%d", ErrInvalidOptions, o.Paper, o.Quantity)
	}
	return price, nil
}

func (c *Catalog) PriceLetterheads(o LetterheadOptions) (float64, error) {
	price, ok := c.letterheads[gsmKey{o.GSM, o.Quantity}]
	if !ok {
		return 0, fmt.Errorf("%w: gsm=%d quantity=%d", ErrInvalidOptions, o.GSM, o.Quantity)
	}
	return price, nil
}

func (c *Catalog) PriceEnvelopes(o EnvelopeOptions) (float64, error) {
	price, ok := c.envelopes[tierKey{o.Type, o.Quantity}]
	if !ok {
		return 0, fmt.Errorf("%w: type=%q quantity=%d", ErrInvalidOptions, o.Type, o.Quantity)
	}
	return price, nil
}

func (c *Catalog) PriceFlyers(o FlyerOptions) (float64, error) {
	price, ok := c.flyers[tierKey{o.Size, o.Quantity}]
	if !ok {
		return 0, fmt.Errorf("%w: size=%q quantity=%d", ErrInvalidOptions, o.Size, o.Quantity)
	}
	return price, nil
}

// PricePosters keeps the two-tier fallback: exactly one poster prices at the
// single rate, any other quantity resolves to the ten-pack rate.
func (c *Catalog) PricePosters(o PosterOptions) (float64, error) {
	if o.Quantity == 1 {
		return 80, nil
	}
	return 700, nil
}

func (c *Catalog) PriceCustomMug(o MugOptions) (float64, error) {
	price, ok := c.mugs[o.Quantity]
	if !ok {
		return 0, fmt.Errorf("%w: quantity=%d", ErrInvalidOptions, o.Quantity)
	}
	return price, nil
}
