package repository

import (
	"context"
	"errors"
	"time"

	"receiptpro/internal/apperr"
	"receiptpro/internal/model"

	"gorm.io/gorm"
)

type ReceiptRepository interface {
	Create(ctx context.Context, receipt *model.Receipt) error
	Get(ctx context.Context, id string) (*model.Receipt, error)
	GetByUser(ctx context.Context, userID string) ([]*model.Receipt, error)
	GetAll(ctx context.Context) ([]*model.Receipt, error)
	// MarkEmailSent records the delivery outcome on the receipt row.
	MarkEmailSent(ctx context.Context, tx *gorm.DB, receiptID string, sentAt time.Time) error
	Count(ctx context.Context) (int64, error)
}

type receiptRepoImpl struct {
	db *gorm.DB
}

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepoImpl{
		db: db,
	}
}

func (r *receiptRepoImpl) Create(ctx context.Context, receipt *model.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepoImpl) Get(ctx context.Context, id string) (*model.Receipt, error) {
	var receipt model.Receipt
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&receipt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	return &receipt, nil
}

func (r *receiptRepoImpl) GetByUser(ctx context.Context, userID string) ([]*model.Receipt, error) {
	var receipts []*model.Receipt
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&receipts).Error
	if err != nil {
		return nil, err
	}

	return receipts, nil
}

func (r *receiptRepoImpl) GetAll(ctx context.Context) ([]*model.Receipt, error) {
	var receipts []*model.Receipt
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&receipts).Error
	if err != nil {
		return nil, err
	}

	return receipts, nil
}

func (r *receiptRepoImpl) MarkEmailSent(ctx context.Context, tx *gorm.DB, receiptID string, sentAt time.Time) error {
	result := tx.WithContext(ctx).
		Model(&model.Receipt{}).
		Where("id = ?", receiptID).
		Updates(map[string]interface{}{
			"email_sent":    true,
			"email_sent_at": sentAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}

	return nil
}

func (r *receiptRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Receipt{}).Count(&count).Error
	return count, err
}
