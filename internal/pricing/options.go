package pricing

import (
	"encoding/json"
	"fmt"

	"printmill-be/internal/upload"
)

// One option struct per product, decoded from the line's raw options at the
// pricing boundary. Enumerated values are checked by table lookup, so a
// combination that decodes but is not in the product's table still fails.

type DocumentPrintingOptions struct {
	Color string           `json:"color"`
	Size  string           `json:"size"`
	GSM   int              `json:"gsm"`
	Pages int              `json:"pages"`
	Sides string           `json:"sides,omitempty"`
	Files []upload.FileRef `json:"files,omitempty"`
}

type VisitingCardOptions struct {
	CardType string           `json:"card_type"`
	Paper    string           `json:"paper"`
	Quantity int              `json:"quantity"`
	Design   string           `json:"design,omitempty"`
	Files    []upload.FileRef `json:"files,omitempty"`
}

type LetterheadOptions struct {
	GSM      int              `json:"gsm"`
	Quantity int              `json:"quantity"`
	Design   string           `json:"design,omitempty"`
	Files    []upload.FileRef `json:"files,omitempty"`
}

type EnvelopeOptions struct {
	Type     string           `json:"type"`
	Size     string           `json:"size,omitempty"`
	Quantity int              `json:"quantity"`
	Files    []upload.FileRef `json:"files,omitempty"`
}

type FlyerOptions struct {
	Size     string           `json:"size"`
	GSM      int              `json:"gsm,omitempty"`
	Quantity int              `json:"quantity"`
	Files    []upload.FileRef `json:"files,omitempty"`
}

type PosterOptions struct {
	Size     string           `json:"size,omitempty"`
	GSM      int              `json:"gsm,omitempty"`
	Quantity int              `json:"quantity"`
	Files    []upload.FileRef `json:"files,omitempty"`
}

type MugOptions struct {
	PrintArea string           `json:"print_area,omitempty"`
	Quantity  int              `json:"quantity"`
	Images    []upload.FileRef `json:"images,omitempty"`
	Text      string           `json:"text,omitempty"`
}

// decodeOptions rejects malformed option payloads, including numeric options
// sent as the wrong JSON type.
func decodeOptions(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: options missing", ErrInvalidOptions)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}
