// Package orderid produces human-facing order numbers for receipt emails.
package orderid

import (
	"fmt"
	"math/rand"
)

const prefix = "W"

// New returns an order number in the storefront style: a fixed prefix
// followed by nine pseudo-random digits, e.g. "W482915037".
//
// This is display-only. The receipt's real identifier is its UUID primary
// key; order numbers may collide and nothing deduplicates on them.
func New() string {
	return fmt.Sprintf("%s%09d", prefix, rand.Intn(1_000_000_000))
}
