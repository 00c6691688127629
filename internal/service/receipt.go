package service

import (
	"context"
	"time"

	"receiptpro/internal/apperr"
	"receiptpro/internal/dto"
	"receiptpro/internal/mailer"
	"receiptpro/internal/model"
	"receiptpro/internal/money"
	"receiptpro/internal/orderid"
	"receiptpro/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	msgSent       = "Receipt sent successfully"
	msgEmailAgain = "Receipt email resent"
	msgEmailFail  = "Receipt created but email failed"
	msgResendFail = "Receipt email could not be resent"
)

type ReceiptService interface {
	// Create runs the full lifecycle for one receipt: validate, check
	// credits, persist, send, finalize. The receipt row survives a failed
	// send; a credit is spent only on confirmed delivery.
	Create(ctx context.Context, userID string, req *dto.CreateReceiptRequest) (*dto.ReceiptResponse, error)
	ListForUser(ctx context.Context, userID string) ([]*model.Receipt, error)
	// Resend pushes an existing receipt's email out again. It never touches
	// the credit ledger, so resending is free and repeatable.
	Resend(ctx context.Context, receiptID string) (*dto.ReceiptResponse, error)
}

type receiptServiceImpl struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	receiptRepo repository.ReceiptRepository
	dispatcher  mailer.Dispatcher
}

func NewReceiptService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	receiptRepo repository.ReceiptRepository,
	dispatcher mailer.Dispatcher,
) ReceiptService {
	return &receiptServiceImpl{
		db:          db,
		userRepo:    userRepo,
		receiptRepo: receiptRepo,
		dispatcher:  dispatcher,
	}
}

func (s *receiptServiceImpl) Create(ctx context.Context, userID string, req *dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Cheap early rejection. The authoritative guard is the conditional
	// decrement in the finalize transaction.
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Credits < 1 {
		return nil, apperr.ErrInsufficientCredits
	}

	amounts, err := money.Compute(req.ProductPrice, req.Quantity, req.TaxRate, req.Shipping)
	if err != nil {
		return nil, err
	}

	receipt := &model.Receipt{
		ID:              uuid.NewString(),
		UserID:          userID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		BillingAddress:  req.BillingAddress,
		ProductName:     req.ProductName,
		ProductImageURL: req.ProductImageURL,
		ProductPrice:    amounts.ProductPrice,
		Quantity:        amounts.Quantity,
		TaxRate:         amounts.TaxRate,
		Shipping:        amounts.Shipping,
		Subtotal:        amounts.Subtotal,
		Tax:             amounts.Tax,
		Total:           amounts.Total,
		OrderNumber:     orderid.New(),
	}
	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}

	// Delivery failure does not undo the receipt row.
	sent := s.dispatcher.Send(ctx, receipt)

	// Status update and credit spend commit together or not at all, so a
	// crash between them cannot leave a sent receipt uncharged.
	if sent {
		sentAt := time.Now()
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := s.receiptRepo.MarkEmailSent(ctx, tx, receipt.ID, sentAt); err != nil {
				return err
			}
			return s.userRepo.SpendCredit(ctx, tx, userID)
		})
		if err != nil {
			// Lost the race for the last credit, or storage failed. The
			// rollback keeps the ledger consistent; report the send as
			// unconfirmed.
			log.WithError(err).WithFields(log.Fields{
				"receipt_id": receipt.ID,
				"user_id":    userID,
			}).Error("Failed to finalize delivered receipt")
			sent = false
		} else {
			receipt.EmailSent = true
			receipt.EmailSentAt = &sentAt
		}
	}

	message := msgEmailFail
	if sent {
		message = msgSent
	}
	return &dto.ReceiptResponse{
		Receipt:   receipt,
		EmailSent: sent,
		Message:   message,
	}, nil
}

func (s *receiptServiceImpl) ListForUser(ctx context.Context, userID string) ([]*model.Receipt, error) {
	return s.receiptRepo.GetByUser(ctx, userID)
}

func (s *receiptServiceImpl) Resend(ctx context.Context, receiptID string) (*dto.ReceiptResponse, error) {
	receipt, err := s.receiptRepo.Get(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	sent := s.dispatcher.Send(ctx, receipt)
	if sent {
		sentAt := time.Now()
		if err := s.receiptRepo.MarkEmailSent(ctx, s.db, receipt.ID, sentAt); err != nil {
			return nil, err
		}
		receipt.EmailSent = true
		receipt.EmailSentAt = &sentAt
	}

	message := msgResendFail
	if sent {
		message = msgEmailAgain
	}
	return &dto.ReceiptResponse{
		Receipt:   receipt,
		EmailSent: sent,
		Message:   message,
	}, nil
}
