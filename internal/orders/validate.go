package orders

import (
	"fmt"
	"sort"
	"strings"

	"github.com/urbanlaundrydahej/laundry-app/internal/apperr"
)

// ValidateInput reports every missing or malformed field of in.
func ValidateInput(in PlaceOrderInput) error {
	var errs apperr.ValidationErrors

	errs.Required("phone", in.Phone)
	errs.Required("address", in.Address)
	errs.Required("pickup_date", in.PickupDate)
	errs.Required("pickup_slot", in.PickupSlot)

	if len(in.Items) == 0 {
		errs.Add("items", "must contain at least 1 item")
	} else {
		// stable field order in the error message
		keys := make([]string, 0, len(in.Items))
		for k := range in.Items {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			it := in.Items[k]
			if strings.TrimSpace(it.Name) == "" {
				errs.Add(fmt.Sprintf("items[%s].name", k), "required")
			}
			if it.Qty <= 0 {
				errs.Add(fmt.Sprintf("items[%s].qty", k), "must be > 0")
			}
		}
	}

	return errs.OrNil()
}
