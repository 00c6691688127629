package mailer_test

import (
	"testing"
	"time"

	"receiptpro/internal/mailer"
	"receiptpro/internal/mailtmpl"
	"receiptpro/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	r := &model.Receipt{
		ID:            "r-1",
		CustomerName:  "Jamie Doe",
		CustomerEmail: "jamie@example.com",
		ProductName:   "Cartier Love Bracelet",
		ProductPrice:  695000,
		Quantity:      1,
		Subtotal:      695000,
		Tax:           57338,
		Shipping:      0,
		Total:         752338,
		OrderNumber:   "W987654321",
	}
	brand := mailtmpl.Select(r.ProductName, r.ProductPrice)
	require.Equal(t, "cartier", brand.Name)

	msg, err := mailer.BuildMessage(brand, r, "receipts@example.com", time.Now())
	require.NoError(t, err)

	assert.Equal(t, `"Cartier" <receipts@example.com>`, msg.From)
	assert.Equal(t, []string{"jamie@example.com"}, msg.To)
	assert.Equal(t, "Your Cartier Receipt - Order #W987654321", msg.Subject)
	assert.Contains(t, string(msg.HTML), "ORDER Nº W987654321")
	assert.NotEmpty(t, msg.Text, "plaintext fallback part must be present")
}

func TestBuildMessage_AppleBrand(t *testing.T) {
	r := &model.Receipt{
		CustomerName:  "Jamie Doe",
		CustomerEmail: "jamie@example.com",
		ProductName:   "iPhone 15",
		ProductPrice:  99900,
		Quantity:      1,
		Subtotal:      99900,
		Total:         99900,
		OrderNumber:   "W111111111",
	}
	brand := mailtmpl.Select(r.ProductName, r.ProductPrice)
	require.Equal(t, "apple", brand.Name)

	msg, err := mailer.BuildMessage(brand, r, "receipts@example.com", time.Now())
	require.NoError(t, err)

	assert.Equal(t, `"Apple Store" <receipts@example.com>`, msg.From)
	assert.Equal(t, "Your Apple Store Receipt - Order #W111111111", msg.Subject)
}
