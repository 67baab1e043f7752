package service

import (
	"fmt"
	"strconv"
	"strings"

	"phoneline/internal/domain"
)

const ticketWidth = 32

var (
	ticketBanner    = strings.Repeat("=", ticketWidth)
	ticketSeparator = strings.Repeat("-", ticketWidth)
)

// FormatTicket renders an order as a fixed-width plain-text kitchen ticket.
// The layout is consumed by raw printer drivers, so it must stay byte-stable:
// same order in, same bytes out.
func FormatTicket(order *domain.Order) string {
	var b strings.Builder

	b.WriteString(ticketBanner + "\n")
	b.WriteString("Order: " + order.OrderNumber + "\n")
	b.WriteString("Time: " + order.CreatedAt.Format("3:04:05 PM") + "\n")
	b.WriteString("Customer: " + order.CustomerName + "\n")
	if order.CustomerPhone != "" {
		b.WriteString("Phone: " + order.CustomerPhone + "\n")
	}
	b.WriteString(ticketSeparator + "\n")

	for _, item := range order.Items {
		b.WriteString(strconv.Itoa(item.Quantity) + "x " + item.Name + "\n")
		for _, mod := range item.Modifications {
			b.WriteString("   - " + mod + "\n")
		}
	}
	b.WriteString(ticketSeparator + "\n")

	if order.SpecialInstructions != "" {
		b.WriteString("Special Instructions:\n")
		b.WriteString(order.SpecialInstructions + "\n")
		b.WriteString(ticketSeparator + "\n")
	}

	b.WriteString(fmt.Sprintf("TOTAL: $%.2f\n", order.Total))
	b.WriteString(ticketBanner + "\n")

	return b.String()
}
