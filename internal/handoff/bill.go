// Package handoff formats cart contents into human-readable text and
// prepares the two delivery paths for it: a WhatsApp deep link and a
// downloadable receipt. Both paths consume the same formatting function so
// their content can never diverge.
package handoff

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spiceterra/webapi/internal/domain"
)

const estimatedDelivery = "30-45 minutes"

// Delivery carries the optional delivery block of a bill. Missing fields
// are rendered as "Not provided".
type Delivery struct {
	Name    string
	Phone   string
	Address string
}

// FormatBill renders the order confirmation text. The breakdown derives the
// subtotal as 90% of the tax-inclusive total and labels the remaining 10%
// as tax; the total is taken as passed in, tax is never added on top.
func FormatBill(brand string, items []domain.CartLine, total float64, delivery *Delivery) string {
	divider := strings.Repeat("=", 40)

	var b strings.Builder
	fmt.Fprintf(&b, "*%s - ORDER CONFIRMATION*\n\n", strings.ToUpper(brand))
	b.WriteString("📋 *ORDER DETAILS*\n")
	b.WriteString(divider + "\n\n")
	b.WriteString("*Items Ordered:*\n")

	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s × %d = ₹%s\n", i+1, item.Name, item.Quantity, amount(item.Subtotal()))
	}

	fmt.Fprintf(&b, "\n%s\n", divider)
	fmt.Fprintf(&b, "Subtotal: ₹%.2f\n", total*0.9)
	fmt.Fprintf(&b, "Tax (10%%): ₹%.2f\n", total*0.1)
	fmt.Fprintf(&b, "Total: ₹%.2f\n\n", total)

	if delivery == nil {
		delivery = &Delivery{}
	}
	b.WriteString("*DELIVERY DETAILS*\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Name: %s\n", orFallback(delivery.Name, "Customer"))
	fmt.Fprintf(&b, "Phone: %s\n", orFallback(delivery.Phone, "Not provided"))
	fmt.Fprintf(&b, "Address: %s\n\n", orFallback(delivery.Address, "Not provided"))

	fmt.Fprintf(&b, "*Estimated Delivery:* %s\n", estimatedDelivery)
	b.WriteString("*Order Status:* Pending Confirmation\n\n")

	fmt.Fprintf(&b, "Thank you for ordering from %s! 🙏\n", brand)
	b.WriteString("For support, reply to this message.")

	return b.String()
}

// SupportMessage renders the free-text support path
func SupportMessage(brand, message string) string {
	if strings.TrimSpace(message) == "" {
		message = "I'd like to inquire about your services."
	}
	return fmt.Sprintf("Hi %s,\n\n%s", brand, message)
}

// WhatsAppLink builds the deep link that opens a chat to recipient with the
// text prefilled
func WhatsAppLink(recipient, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", recipient, encodeComponent(text))
}

// encodeComponent percent-encodes text for a URL query component,
// encoding spaces as %20 rather than +
func encodeComponent(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// Receipt is a downloadable plain-text rendering of a bill
type Receipt struct {
	Filename    string
	ContentType string
	Body        string
}

// BillReceipt wraps bill text as a downloadable file named
// <brand-slug>-bill-<epoch millis>.txt
func BillReceipt(brand, body string, now time.Time) Receipt {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(brand), " ", "-"))
	return Receipt{
		Filename:    fmt.Sprintf("%s-bill-%d.txt", slug, now.UnixMilli()),
		ContentType: "text/plain",
		Body:        body,
	}
}

// amount renders a currency value with no trailing zeros, matching the
// itemized line format (₹160, not ₹160.00)
func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
