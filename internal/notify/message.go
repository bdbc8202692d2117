package notify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/urbanlaundrydahej/laundry-app/internal/orders"
)

// FormatMessage renders the staff alert for a new order.
func FormatMessage(o orders.Order) string {
	keys := make([]string, 0, len(o.Items))
	for k := range o.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "🧺 New Laundry Order #%d\n\n", o.ID)
	b.WriteString("Items:\n")
	for _, k := range keys {
		it := o.Items[k]
		fmt.Fprintf(&b, "%s x%d\n", it.Name, it.Qty)
	}
	fmt.Fprintf(&b, "\nPickup:\n%s | %s\n", o.PickupDate, o.PickupSlot)
	fmt.Fprintf(&b, "\nAddress:\n%s\n", o.Address)
	fmt.Fprintf(&b, "\nPhone: %s\n", o.Phone)
	if o.IsCashOnDelivery() {
		b.WriteString("\nPayment: COD\n")
	} else {
		fmt.Fprintf(&b, "\nPayment: Online (%s)\n", o.PaymentReference)
	}
	return b.String()
}
