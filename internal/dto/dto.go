package dto

import (
	"net/url"
	"regexp"
	"strings"

	"receiptpro/internal/apperr"
	"receiptpro/internal/model"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type CreateReceiptRequest struct {
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	BillingAddress  string  `json:"billingAddress"`
	ProductName     string  `json:"productName"`
	ProductImageURL string  `json:"productImageUrl"`
	ProductPrice    float64 `json:"productPrice"`
	Quantity        int64   `json:"quantity"`
	TaxRate         float64 `json:"taxRate"`
	Shipping        float64 `json:"shipping"`
}

// Validate re-checks the same constraints the browser form enforces. The
// monetary ranges are checked again inside the money calculator; this is the
// trust boundary for everything else.
func (r *CreateReceiptRequest) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return apperr.Validation("customerName", "is required")
	}
	if !emailRegex.MatchString(r.CustomerEmail) {
		return apperr.Validation("customerEmail", "must be a valid email address")
	}
	if strings.TrimSpace(r.BillingAddress) == "" {
		return apperr.Validation("billingAddress", "is required")
	}
	if strings.TrimSpace(r.ProductName) == "" {
		return apperr.Validation("productName", "is required")
	}
	if r.ProductImageURL != "" {
		u, err := url.Parse(r.ProductImageURL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return apperr.Validation("productImageUrl", "must be empty or a valid URL")
		}
	}
	if r.ProductPrice < 0.01 {
		return apperr.Validation("productPrice", "must be at least 0.01")
	}
	if r.Quantity < 1 {
		return apperr.Validation("quantity", "must be at least 1")
	}
	if r.TaxRate < 0 || r.TaxRate > 100 {
		return apperr.Validation("taxRate", "must be between 0 and 100")
	}
	if r.Shipping < 0 {
		return apperr.Validation("shipping", "must not be negative")
	}
	return nil
}

type ReceiptResponse struct {
	Receipt   *model.Receipt `json:"receipt"`
	EmailSent bool           `json:"emailSent"`
	Message   string         `json:"message"`
}

type LoginRequest struct {
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`
}

func (r *LoginRequest) Validate() error {
	if !emailRegex.MatchString(r.Email) {
		return apperr.Validation("email", "must be a valid email address")
	}
	return nil
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddCreditsRequest struct {
	UserID  string `json:"userId"`
	Credits int64  `json:"credits"`
}

func (r *AddCreditsRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return apperr.Validation("userId", "is required")
	}
	// bounded so a typo'd grant cannot mint an absurd balance
	if r.Credits < 1 || r.Credits > 1000 {
		return apperr.Validation("credits", "must be between 1 and 1000")
	}
	return nil
}

type StatsResponse struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalReceipts int64 `json:"totalReceipts"`
}
