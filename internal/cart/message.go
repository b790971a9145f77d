package cart

import (
	"fmt"
	"strings"
)

// Message renders cart contents into the plain-text order message sent over
// a WhatsApp deep link. The rendering is deterministic: greeting, itemized
// block, separator, item count and a two-decimal total.
func Message(shopName string, items []Item, total float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hello %s, I would like to place an order:\n\n", shopName)

	count := 0
	for i, item := range items {
		unit := ParsePrice(item.Price)
		line := unit * float64(item.CartQuantity)
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, item.Name, item.Quantity)
		fmt.Fprintf(&b, "   %d x %s = ₹%.2f\n", item.CartQuantity, item.Price, line)
		count += item.CartQuantity
	}

	b.WriteString("----------------------------\n")
	fmt.Fprintf(&b, "Items: %d\n", count)
	fmt.Fprintf(&b, "Total: ₹%.2f", total)

	return b.String()
}
