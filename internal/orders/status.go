package orders

import "strings"

type Status string

// StatusPlaced is the status of every newly created order. Later states are
// defined by the business from the dashboard and stored verbatim.
const StatusPlaced Status = "PLACED"

// ParseStatus trims s and rejects blank values. Any other value is accepted:
// there is no closed status set and no transition graph.
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return Status(s), true
}
