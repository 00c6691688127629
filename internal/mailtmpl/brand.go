// Package mailtmpl selects the visual brand for a receipt and renders the
// complete HTML document that goes out by email. The two brand layouts differ
// wholly in markup, but they share one rendering pipeline: a Brand value
// carries the per-brand knobs (display name, logo, image placeholder,
// delivery-date policy) and points at its document template.
package mailtmpl

import (
	"html/template"
	"strings"
	"time"
)

type Brand struct {
	// Name is the stable identifier ("apple", "cartier").
	Name string
	// DisplayName appears in the From header and subject line.
	DisplayName string
	LogoURL     string
	// PlaceholderImage substitutes a missing product image URL.
	PlaceholderImage string
	// DeliveryOffset shifts the displayed delivery date from render time.
	// Zero means the document shows no delivery date.
	DeliveryOffset time.Duration

	doc *template.Template
}

var (
	Apple = Brand{
		Name:             "apple",
		DisplayName:      "Apple Store",
		LogoURL:          "https://email.images.apple.com/rover/aos/moe/apple_icon_2x.png",
		PlaceholderImage: "https://via.placeholder.com/100x100",
		DeliveryOffset:   4 * 24 * time.Hour,
		doc:              template.Must(template.New("apple").Parse(appleDocument)),
	}

	Cartier = Brand{
		Name:             "cartier",
		DisplayName:      "Cartier",
		LogoURL:          "https://media.yoox.biz/ytos/resources/CARTIER/mail/old-images/cartierHead.png",
		PlaceholderImage: "https://via.placeholder.com/135x110/8B0000/ffffff?text=Cartier",
		doc:              template.Must(template.New("cartier").Parse(cartierDocument)),
	}
)

// luxuryKeywords force the Cartier layout regardless of price.
var luxuryKeywords = []string{"cartier", "watch", "bracelet", "ring", "necklace"}

// luxuryPriceThreshold is in cents: $3000.00 and up renders as Cartier.
const luxuryPriceThreshold = 300000

// Select picks the brand for a receipt from the product name and unit price.
//
// Known limitation: this is a substring heuristic, not a user-settable field.
// A $4 item named "key ring" still renders as Cartier.
func Select(productName string, productPriceCents int64) Brand {
	name := strings.ToLower(productName)
	for _, kw := range luxuryKeywords {
		if strings.Contains(name, kw) {
			return Cartier
		}
	}
	if productPriceCents >= luxuryPriceThreshold {
		return Cartier
	}
	return Apple
}
