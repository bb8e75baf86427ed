package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_PriceDocumentPrinting(t *testing.T) {
	c := NewCatalog()

	cases := []struct {
		color string
		size  string
		gsm   int
		want  float64
	}{
		{"bw", "A4", 80, 3},
		{"bw", "A4", 100, 4},
		{"bw", "A4", 130, 5},
		{"bw", "A3", 80, 8},
		{"bw", "A3", 100, 10},
		{"bw", "A3", 130, 12},
		{"colour", "A4", 80, 10},
		{"colour", "A4", 100, 12},
		{"colour", "A4", 130, 15},
		{"colour", "A3", 80, 25},
		{"colour", "A3", 100, 30},
		{"colour", "A3", 130, 35},
	}

	for _, tc := range cases {
		got, err := c.PriceDocumentPrinting(DocumentPrintingOptions{
			Color: tc.color, Size: tc.size, GSM: tc.gsm, Pages: 1,
		})
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %s %d", tc.color, tc.size, tc.gsm)
	}

	t.Run("Price multiplies by pages", func(t *testing.T) {
		got, err := c.PriceDocumentPrinting(DocumentPrintingOptions{Color: "bw", Size: "A4", GSM: 80, Pages: 10})
		assert.NoError(t, err)
		assert.Equal(t, 30.0, got)
	})

	t.Run("Pages defaults to one", func(t *testing.T) {
		got, err := c.PriceDocumentPrinting(DocumentPrintingOptions{Color: "colour", Size: "A3", GSM: 130})
		assert.NoError(t, err)
		assert.Equal(t, 35.0, got)
	})

	t.Run("Negative pages rejected", func(t *testing.T) {
		_, err := c.PriceDocumentPrinting(DocumentPrintingOptions{Color: "bw", Size: "A4", GSM: 80, Pages: -2})
		assert.ErrorIs(t, err, ErrInvalidOptions)
	})

	t.Run("Combination off the table rejected", func(t *testing.T) {
		_, err := c.PriceDocumentPrinting(DocumentPrintingOptions{Color: "bw", Size: "A5", GSM: 80, Pages: 1})
		assert.ErrorIs(t, err, ErrInvalidOptions)

		_, err = c.PriceDocumentPrinting(DocumentPrintingOptions{Color: "bw", Size: "A4", GSM: 90, Pages: 1})
		assert.ErrorIs(t, err, ErrInvalidOptions)
	})
}

func TestCatalog_PriceVisitingCards(t *testing.T) {
	c := NewCatalog()

	cases := []struct {
		paper string
		qty   int
		want  float64
	}{
		{PaperEconomyMatte, 50, 150},
		{PaperEconomyMatte, 100, 250},
		{PaperPremiumMatte, 50, 250},
		{PaperPremiumMatte, 100, 400},
		{PaperPremiumGloss, 50, 250},
		{PaperPremiumGloss, 100, 400},
	}

	for _, tc := range cases {
		got, err := c.PriceVisitingCards(VisitingCardOptions{Paper: tc.paper, Quantity: tc.qty})
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s x%d", tc.paper, tc.qty)
	}

	t.Run("Unknown paper rejected", func(t *testing.T) {
		_, err := c.PriceVisitingCards(VisitingCardOptions{Paper: "recycled", Quantity: 50})
		assert.ErrorIs(t, err, ErrInvalidOptions)
	})

	t.Run("Off-tier quantity rejected", func(t *testing.T) {
		_, err := c.PriceVisitingCards(VisitingCardOptions{Paper: PaperEconomyMatte, Quantity: 75})
		assert.ErrorIs(t, err, ErrInvalidOptions)
	})
}

func TestCatalog_PriceLetterheads(t *testing.T) {
	c := NewCatalog()

	cases := []struct {
		gsm  int
		qty  int
		want float64
	}{
		{100, 100, 200},
		{100, 200, 350},
		{130, 100, 260},
		{130, 200, 450},
	}

	for _, tc := range cases {
		got, err := c.PriceLetterheads(LetterheadOptions{GSM: tc.gsm, Quantity: tc.qty})
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "%dgsm x%d", tc.gsm, tc.qty)
	}

	_, err := c.PriceLetterheads(LetterheadOptions{GSM: 80, Quantity: 100})
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestCatalog_PriceEnvelopes(t *testing.T) {
	c := NewCatalog()

	cases := []struct {
		typ  string
		qty  int
		want float64
	}{
		{"standard_80", 100, 200},
		{"standard_80", 200, 350},
		{"premium_100", 100, 260},
		{"premium_100", 200, 450},
	}

	for _, tc := range cases {
		got, err := c.PriceEnvelopes(EnvelopeOptions{Type: tc.typ, Quantity: tc.qty})
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s x%d", tc.typ, tc.qty)
	}

	_, err := c.PriceEnvelopes(EnvelopeOptions{Type: "luxury", Quantity: 100})
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestCatalog_PriceFlyers(t *testing.T) {
	c := NewCatalog()

	cases := []struct {
		size string
		qty  int
		want float64
	}{
		{"A5", 50, 250},
		{"A5", 100, 400},
		{"A4", 50, 350},
		{"A4", 100, 600},
	}

	for _, tc := range cases {
		got, err := c.PriceFlyers(FlyerOptions{Size: tc.size, Quantity: tc.qty})
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s x%d", tc.size, tc.qty)
	}

	_, err := c.PriceFlyers(FlyerOptions{Size: "A3", Quantity: 50})
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestCatalog_PricePosters(t *testing.T) {
	c := NewCatalog()

	t.Run("Single poster", func(t *testing.T) {
		got, err := c.PricePosters(PosterOptions{Quantity: 1})
		assert.NoError(t, err)
		assert.Equal(t, 80.0, got)
	})

	t.Run("Any other quantity takes the ten-pack rate", func(t *testing.T) {
		for _, qty := range []int{2, 5, 10, 50} {
			got, err := c.PricePosters(PosterOptions{Quantity: qty})
			assert.NoError(t, err)
			assert.Equal(t, 700.0, got, "qty %d", qty)
		}
	})
}

func TestCatalog_PriceCustomMug(t *testing.T) {
	c := NewCatalog()

	cases := []struct {
		qty  int
		want float64
	}{
		{1, 299},
		{2, 550},
		{4, 1040},
	}

	for _, tc := range cases {
		got, err := c.PriceCustomMug(MugOptions{Quantity: tc.qty})
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "qty %d", tc.qty)
	}

	t.Run("Unsupported pack size rejected", func(t *testing.T) {
		_, err := c.PriceCustomMug(MugOptions{Quantity: 3})
		assert.ErrorIs(t, err, ErrInvalidOptions)
	})
}
