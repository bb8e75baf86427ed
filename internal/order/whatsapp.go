package order

import (
	"fmt"
	"net/url"
	"strings"
)

// ConfirmationMessage accompanies the deep-link on checkout responses for
// office visiting cards.
const ConfirmationMessage = "We'll confirm your office visiting card design with you on WhatsApp before printing."

// BuildWhatsAppLink composes the pre-filled operator handoff URI. It is
// deterministic for a given order, so regenerating after a crashed
// link-attach produces the same link. Nothing is ever sent.
func BuildWhatsAppLink(operator, orderID, fullName, mobile string) string {
	text := fmt.Sprintf(
		"Order ID: %s\nUser: %s (%s)\nProduct: Office visiting card\nDetails: see admin panel",
		orderID, fullName, mobile,
	)
	return fmt.Sprintf(
		"https://wa.me/%s?text=%s",
		strings.ReplaceAll(operator, "+", ""),
		url.QueryEscape(text),
	)
}
