package mailtmpl

import (
	"fmt"
	"strings"
	"time"

	"receiptpro/internal/model"
	"receiptpro/internal/money"
)

// documentData is the flattened, display-ready view of a receipt handed to a
// brand document. Monetary fields arrive pre-formatted; free-text fields are
// escaped by html/template at execution time.
type documentData struct {
	OrderNumber    string
	OrderDate      string
	DeliveryDate   string
	CustomerName   string
	BillingAddress string
	ProductName    string
	ProductImage   string
	Quantity       int64
	LogoURL        string
	ProductPrice   string
	Subtotal       string
	Tax            string
	Shipping       string
	Total          string
}

// Render produces the full HTML document for a receipt under the given brand.
//
// The order and delivery dates are derived from now, not from the receipt's
// creation time, so re-rendering a stored receipt later shows later dates.
// That mirrors the storefront emails this imitates; callers that need
// reproducible output pass a fixed instant.
func Render(b Brand, r *model.Receipt, now time.Time) (string, error) {
	image := r.ProductImageURL
	if image == "" {
		image = b.PlaceholderImage
	}

	data := documentData{
		OrderNumber:    r.OrderNumber,
		OrderDate:      now.Format("Monday, January 2, 2006"),
		CustomerName:   r.CustomerName,
		BillingAddress: r.BillingAddress,
		ProductName:    r.ProductName,
		ProductImage:   image,
		Quantity:       r.Quantity,
		LogoURL:        b.LogoURL,
		ProductPrice:   money.FormatUSD(r.ProductPrice),
		Subtotal:       money.FormatUSD(r.Subtotal),
		Tax:            money.FormatUSD(r.Tax),
		Shipping:       money.FormatUSD(r.Shipping),
		Total:          money.FormatUSD(r.Total),
	}
	if b.DeliveryOffset > 0 {
		data.DeliveryDate = now.Add(b.DeliveryOffset).Format("Monday, January 2")
	}

	var sb strings.Builder
	if err := b.doc.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s document: %w", b.Name, err)
	}
	return sb.String(), nil
}

// PlainText is the short fallback part attached alongside the HTML body for
// mail clients that refuse HTML.
func PlainText(b Brand, r *model.Receipt) string {
	return fmt.Sprintf(
		"Thank you for your order from %s.\n\nOrder Number: %s\nItem: %s (Qty %d)\nSubtotal: %s\nTax: %s\nShipping: %s\nTotal: %s\n",
		b.DisplayName,
		r.OrderNumber,
		r.ProductName,
		r.Quantity,
		money.FormatUSD(r.Subtotal),
		money.FormatUSD(r.Tax),
		money.FormatUSD(r.Shipping),
		money.FormatUSD(r.Total),
	)
}
