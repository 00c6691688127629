package dto_test

import (
	"testing"

	"receiptpro/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valid() dto.CreateReceiptRequest {
	return dto.CreateReceiptRequest{
		CustomerName:   "Jamie Doe",
		CustomerEmail:  "jamie@example.com",
		BillingAddress: "1 Main St",
		ProductName:    "Widget",
		ProductPrice:   9.99,
		Quantity:       1,
		TaxRate:        0,
		Shipping:       0,
	}
}

func TestCreateReceiptRequest_Validate(t *testing.T) {
	req := valid()
	require.NoError(t, req.Validate())

	tests := []struct {
		name   string
		mutate func(*dto.CreateReceiptRequest)
	}{
		{"blank customer name", func(r *dto.CreateReceiptRequest) { r.CustomerName = "   " }},
		{"bad email", func(r *dto.CreateReceiptRequest) { r.CustomerEmail = "jamie@" }},
		{"blank address", func(r *dto.CreateReceiptRequest) { r.BillingAddress = "" }},
		{"blank product", func(r *dto.CreateReceiptRequest) { r.ProductName = "" }},
		{"relative image url", func(r *dto.CreateReceiptRequest) { r.ProductImageURL = "/images/p.png" }},
		{"garbage image url", func(r *dto.CreateReceiptRequest) { r.ProductImageURL = "://x" }},
		{"price too small", func(r *dto.CreateReceiptRequest) { r.ProductPrice = 0.001 }},
		{"zero quantity", func(r *dto.CreateReceiptRequest) { r.Quantity = 0 }},
		{"tax over 100", func(r *dto.CreateReceiptRequest) { r.TaxRate = 100.5 }},
		{"negative shipping", func(r *dto.CreateReceiptRequest) { r.Shipping = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestCreateReceiptRequest_OptionalImageURL(t *testing.T) {
	req := valid()
	req.ProductImageURL = ""
	assert.NoError(t, req.Validate())

	req.ProductImageURL = "https://cdn.example.com/p.png"
	assert.NoError(t, req.Validate())
}

func TestAddCreditsRequest_Validate(t *testing.T) {
	assert.NoError(t, (&dto.AddCreditsRequest{UserID: "u1", Credits: 1}).Validate())
	assert.NoError(t, (&dto.AddCreditsRequest{UserID: "u1", Credits: 1000}).Validate())
	assert.Error(t, (&dto.AddCreditsRequest{UserID: "u1", Credits: 0}).Validate())
	assert.Error(t, (&dto.AddCreditsRequest{UserID: "u1", Credits: 1001}).Validate())
	assert.Error(t, (&dto.AddCreditsRequest{UserID: " ", Credits: 5}).Validate())
}
