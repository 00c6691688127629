package mailtmpl_test

import (
	"strings"
	"testing"
	"time"

	"receiptpro/internal/mailtmpl"
	"receiptpro/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceipt() *model.Receipt {
	return &model.Receipt{
		ID:             "r-1",
		UserID:         "u-1",
		CustomerName:   "Jamie Doe",
		CustomerEmail:  "jamie@example.com",
		BillingAddress: "1 Infinite Loop, Cupertino CA",
		ProductName:    "iPhone 15",
		ProductPrice:   99900,
		Quantity:       1,
		TaxRate:        825,
		Shipping:       0,
		Subtotal:       99900,
		Tax:            8242,
		Total:          108142,
		OrderNumber:    "W123456789",
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name       string
		product    string
		priceCents int64
		want       string
	}{
		{"cartier by keyword any price", "Cartier Love Bracelet", 500, "cartier"},
		{"tech item below threshold", "iPhone 15", 99900, "apple"},
		{"generic item above threshold", "Generic Widget", 350000, "cartier"},
		{"keyword is case-insensitive", "DIAMOND NECKLACE", 1000, "cartier"},
		{"keyword matches as substring", "key ring", 400, "cartier"},
		{"threshold boundary", "Generic Widget", 300000, "cartier"},
		{"just under threshold", "Generic Widget", 299999, "apple"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mailtmpl.Select(tt.product, tt.priceCents)
			assert.Equal(t, tt.want, b.Name)
		})
	}
}

func TestRender_DeterministicAtFixedInstant(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)
	r := sampleReceipt()

	first, err := mailtmpl.Render(mailtmpl.Apple, r, now)
	require.NoError(t, err)
	second, err := mailtmpl.Render(mailtmpl.Apple, r, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_AppleDates(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC) // a Friday
	html, err := mailtmpl.Render(mailtmpl.Apple, sampleReceipt(), now)
	require.NoError(t, err)

	assert.Contains(t, html, "Friday, March 14, 2025")
	// delivery is render time + 4 days, no year
	assert.Contains(t, html, "Tuesday, March 18")
}

func TestRender_CartierHasNoDeliveryDate(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)
	r := sampleReceipt()
	r.ProductName = "Cartier Tank Watch"

	html, err := mailtmpl.Render(mailtmpl.Cartier, r, now)
	require.NoError(t, err)

	assert.Contains(t, html, "Friday, March 14, 2025")
	assert.NotContains(t, html, "Delivery:")
	assert.NotContains(t, html, "March 18")
}

func TestRender_MoneyFormatting(t *testing.T) {
	now := time.Now()
	html, err := mailtmpl.Render(mailtmpl.Apple, sampleReceipt(), now)
	require.NoError(t, err)

	assert.Contains(t, html, "$999.00")  // unit price
	assert.Contains(t, html, "$82.42")   // tax
	assert.Contains(t, html, "$0.00")    // shipping
	assert.Contains(t, html, "$1081.42") // total
}

func TestRender_EscapesUserControlledFields(t *testing.T) {
	r := sampleReceipt()
	r.CustomerName = `<script>alert("x")</script>`
	r.BillingAddress = `1 Main St <img src=x onerror=alert(1)>`
	r.ProductName = "Widget & <b>Co</b>"

	for _, b := range []mailtmpl.Brand{mailtmpl.Apple, mailtmpl.Cartier} {
		html, err := mailtmpl.Render(b, r, time.Now())
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>alert", "brand %s", b.Name)
		assert.NotContains(t, html, "onerror=alert", "brand %s", b.Name)
		assert.Contains(t, html, "&lt;script&gt;", "brand %s", b.Name)
		assert.NotContains(t, html, "<b>Co</b>", "brand %s", b.Name)
	}
}

func TestRender_PlaceholderImageWhenMissing(t *testing.T) {
	r := sampleReceipt()
	r.ProductImageURL = ""

	html, err := mailtmpl.Render(mailtmpl.Apple, r, time.Now())
	require.NoError(t, err)
	assert.Contains(t, html, mailtmpl.Apple.PlaceholderImage)

	r.ProductImageURL = "https://cdn.example.com/p.png"
	html, err = mailtmpl.Render(mailtmpl.Apple, r, time.Now())
	require.NoError(t, err)
	assert.Contains(t, html, "https://cdn.example.com/p.png")
	assert.NotContains(t, html, mailtmpl.Apple.PlaceholderImage)
}

func TestPlainText(t *testing.T) {
	txt := mailtmpl.PlainText(mailtmpl.Apple, sampleReceipt())
	assert.True(t, strings.Contains(txt, "Apple Store"))
	assert.Contains(t, txt, "W123456789")
	assert.Contains(t, txt, "$1081.42")
	assert.NotContains(t, txt, "<")
}
