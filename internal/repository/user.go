package repository

import (
	"context"
	"errors"
	"time"

	"receiptpro/internal/apperr"
	"receiptpro/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Get(ctx context.Context, id string) (*model.User, error)
	GetAll(ctx context.Context) ([]*model.User, error)
	Upsert(ctx context.Context, user *model.User) (*model.User, error)
	// AddCredits grants a positive amount to the user's balance.
	AddCredits(ctx context.Context, userID string, amount int64) (*model.User, error)
	// SpendCredit atomically decrements the balance by one, refusing when it
	// would go below zero. Runs inside tx so it can share a transaction with
	// the receipt status update.
	SpendCredit(ctx context.Context, tx *gorm.DB, userID string) error
	Count(ctx context.Context) (int64, error)
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{
		db: db,
	}
}

func (r *userRepoImpl) Get(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepoImpl) GetAll(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepoImpl) Upsert(ctx context.Context, user *model.User) (*model.User, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"first_name":        user.FirstName,
			"last_name":         user.LastName,
			"profile_image_url": user.ProfileImageURL,
			"updated_at":        time.Now(),
		}),
	}).Create(&user).Error
	if err != nil {
		return nil, err
	}

	var stored model.User
	err = r.db.WithContext(ctx).
		Where("email = ?", user.Email).
		First(&stored).Error
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

func (r *userRepoImpl) AddCredits(ctx context.Context, userID string, amount int64) (*model.User, error) {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"credits":    gorm.Expr("credits + ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}

	return r.Get(ctx, userID)
}

func (r *userRepoImpl) SpendCredit(ctx context.Context, tx *gorm.DB, userID string) error {
	// conditional decrement: the WHERE clause is the guard, so two racing
	// requests cannot both spend the last credit
	result := tx.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ? AND credits > 0", userID).
		Updates(map[string]interface{}{
			"credits":             gorm.Expr("credits - 1"),
			"total_receipts_sent": gorm.Expr("total_receipts_sent + 1"),
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.ErrInsufficientCredits
	}

	return nil
}

func (r *userRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}
