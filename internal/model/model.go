package model

import "time"

type User struct {
	ID              string `gorm:"primaryKey;size:64;not null" json:"id"`
	Email           string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FirstName       string `gorm:"size:255" json:"firstName"`
	LastName        string `gorm:"size:255" json:"lastName"`
	ProfileImageURL string `gorm:"size:512" json:"profileImageUrl"`
	// consumable send allowance; spent only on confirmed delivery
	Credits           int64     `gorm:"not null;default:5" json:"credits"`
	TotalReceiptsSent int64     `gorm:"not null;default:0" json:"totalReceiptsSent"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type Receipt struct {
	ID       string `gorm:"primaryKey;size:64;not null" json:"id"`
	// FK → users.id
	UserID          string `gorm:"size:64;index;not null" json:"userId"`
	CustomerName    string `gorm:"size:255;not null" json:"customerName"`
	CustomerEmail   string `gorm:"size:255;not null" json:"customerEmail"`
	BillingAddress  string `gorm:"type:text;not null" json:"billingAddress"`
	ProductName     string `gorm:"size:255;not null" json:"productName"`
	ProductImageURL string `gorm:"size:512" json:"productImageUrl"`
	ProductPrice    int64  `gorm:"not null" json:"productPrice"` // cents
	Quantity        int64  `gorm:"not null" json:"quantity"`
	TaxRate         int64  `gorm:"not null" json:"taxRate"`  // basis points (8.25% = 825)
	Shipping        int64  `gorm:"not null" json:"shipping"` // cents
	Subtotal        int64  `gorm:"not null" json:"subtotal"` // cents
	Tax             int64  `gorm:"not null" json:"tax"`      // cents
	Total           int64  `gorm:"not null" json:"total"`    // cents
	OrderNumber     string `gorm:"size:32;not null" json:"orderNumber"`
	// the only mutable fields after creation
	EmailSent   bool       `gorm:"not null;default:false" json:"emailSent"`
	EmailSentAt *time.Time `json:"emailSentAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type AdminUser struct {
	ID           string    `gorm:"primaryKey;size:64;not null" json:"id"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
