package billing

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Notifier delivers a receipt message to a customer handle. The real
// messaging provider lives behind this interface; the default
// implementation only builds a wa.me link and logs it.
type Notifier interface {
	SendReceipt(ctx context.Context, phone, message string) error
}

// ReceiptMessage formats the thank-you text sent after payment.
func ReceiptMessage(b *Bill) string {
	return fmt.Sprintf(
		"Thank you for dining with us!\n\nYour bill details:\nOrder #%s\nTotal: ₹%.2f\n\nWe hope you enjoyed your meal! Visit us again soon.",
		b.OrderID,
		b.Total,
	)
}

// WhatsAppLink builds a wa.me URL for the given phone and message.
// Non-digits are stripped from the phone before embedding.
func WhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), url.QueryEscape(message))
}
