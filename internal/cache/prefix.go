package cache

import "fmt"

type Prefix string

const (
	// Deliveries caches sent-at timestamps keyed by the ACS message id.
	Deliveries Prefix = "acs_deliveries"
)

func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}
