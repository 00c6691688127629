package service_test

import (
	"context"
	"testing"

	"receiptpro/internal/apperr"
	"receiptpro/internal/dto"
	"receiptpro/internal/model"
	"receiptpro/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *dto.CreateReceiptRequest {
	return &dto.CreateReceiptRequest{
		CustomerName:   "Jamie Doe",
		CustomerEmail:  "jamie@example.com",
		BillingAddress: "1 Main St, Springfield",
		ProductName:    "iPhone 15",
		ProductPrice:   19.99,
		Quantity:       3,
		TaxRate:        8.25,
		Shipping:       5.00,
	}
}

func TestCreate_SuccessSpendsOneCredit(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 5)
	dispatcher := &stubDispatcher{result: true}
	svc := service.NewReceiptService(db, userRepo(db), receiptRepo(db), dispatcher)

	resp, err := svc.Create(context.Background(), user.ID, validRequest())
	require.NoError(t, err)

	assert.True(t, resp.EmailSent)
	assert.Equal(t, "Receipt sent successfully", resp.Message)
	require.NotNil(t, resp.Receipt)
	assert.Equal(t, int64(5997), resp.Receipt.Subtotal)
	assert.Equal(t, int64(495), resp.Receipt.Tax)
	assert.Equal(t, int64(500), resp.Receipt.Shipping)
	assert.Equal(t, int64(6992), resp.Receipt.Total)
	assert.True(t, resp.Receipt.EmailSent)
	require.NotNil(t, resp.Receipt.EmailSentAt)
	require.Len(t, dispatcher.sent, 1)

	var stored model.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, int64(4), stored.Credits)
	assert.Equal(t, int64(1), stored.TotalReceiptsSent)

	var storedReceipt model.Receipt
	require.NoError(t, db.First(&storedReceipt, "id = ?", resp.Receipt.ID).Error)
	assert.True(t, storedReceipt.EmailSent)
	require.NotNil(t, storedReceipt.EmailSentAt)
}

func TestCreate_DeliveryFailureKeepsReceiptAndCredits(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 5)
	dispatcher := &stubDispatcher{result: false}
	svc := service.NewReceiptService(db, userRepo(db), receiptRepo(db), dispatcher)

	resp, err := svc.Create(context.Background(), user.ID, validRequest())
	require.NoError(t, err)

	assert.False(t, resp.EmailSent)
	assert.Equal(t, "Receipt created but email failed", resp.Message)

	var stored model.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, int64(5), stored.Credits, "credits are spent only on confirmed delivery")
	assert.Equal(t, int64(0), stored.TotalReceiptsSent)

	var storedReceipt model.Receipt
	require.NoError(t, db.First(&storedReceipt, "id = ?", resp.Receipt.ID).Error)
	assert.False(t, storedReceipt.EmailSent)
	assert.Nil(t, storedReceipt.EmailSentAt)
}

func TestCreate_InsufficientCredits(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 0)
	dispatcher := &stubDispatcher{result: true}
	svc := service.NewReceiptService(db, userRepo(db), receiptRepo(db), dispatcher)

	_, err := svc.Create(context.Background(), user.ID, validRequest())
	require.ErrorIs(t, err, apperr.ErrInsufficientCredits)

	assert.Empty(t, dispatcher.sent, "no email attempt without credits")

	var count int64
	require.NoError(t, db.Model(&model.Receipt{}).Count(&count).Error)
	assert.Zero(t, count, "no receipt row is created on rejection")

	var stored model.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, int64(0), stored.Credits)
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 5)
	dispatcher := &stubDispatcher{result: true}
	svc := service.NewReceiptService(db, userRepo(db), receiptRepo(db), dispatcher)

	req := validRequest()
	req.CustomerEmail = "not-an-email"

	_, err := svc.Create(context.Background(), user.ID, req)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Empty(t, dispatcher.sent)
}

func TestListForUser_NewestFirstAndScoped(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 10)
	other := seedUser(t, db, 10)
	dispatcher := &stubDispatcher{result: true}
	svc := service.NewReceiptService(db, userRepo(db), receiptRepo(db), dispatcher)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), user.ID, validRequest())
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), other.ID, validRequest())
	require.NoError(t, err)

	receipts, err := svc.ListForUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, receipts, 3)
	for _, r := range receipts {
		assert.Equal(t, user.ID, r.UserID)
	}
	for i := 1; i < len(receipts); i++ {
		assert.False(t, receipts[i-1].CreatedAt.Before(receipts[i].CreatedAt), "newest first")
	}
}

func TestResend_NeverTouchesCredits(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 5)

	// create with a failing transport, then resend with a working one
	failing := &stubDispatcher{result: false}
	svc := service.NewReceiptService(db, userRepo(db), receiptRepo(db), failing)
	created, err := svc.Create(context.Background(), user.ID, validRequest())
	require.NoError(t, err)
	require.False(t, created.EmailSent)

	working := &stubDispatcher{result: true}
	svc = service.NewReceiptService(db, userRepo(db), receiptRepo(db), working)

	resp, err := svc.Resend(context.Background(), created.Receipt.ID)
	require.NoError(t, err)
	assert.True(t, resp.EmailSent)
	assert.Equal(t, "Receipt email resent", resp.Message)

	var stored model.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, int64(5), stored.Credits, "resend is free")

	var storedReceipt model.Receipt
	require.NoError(t, db.First(&storedReceipt, "id = ?", created.Receipt.ID).Error)
	assert.True(t, storedReceipt.EmailSent)
}

func TestResend_UnknownReceipt(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewReceiptService(db, userRepo(db), receiptRepo(db), &stubDispatcher{result: true})

	_, err := svc.Resend(context.Background(), "no-such-receipt")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
