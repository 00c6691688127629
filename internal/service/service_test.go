package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"receiptpro/internal/model"
	"receiptpro/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubDispatcher stands in for the SMTP transport: it records what was asked
// of it and answers with a scripted outcome.
type stubDispatcher struct {
	result bool
	sent   []*model.Receipt
}

func (d *stubDispatcher) Send(_ context.Context, r *model.Receipt) bool {
	d.sent = append(d.sent, r)
	return d.result
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Receipt{}, &model.AdminUser{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, credits int64) *model.User {
	t.Helper()

	user := &model.User{
		ID:      uuid.NewString(),
		Email:   uuid.NewString() + "@example.com",
		Credits: credits,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func userRepo(db *gorm.DB) repository.UserRepository {
	return repository.NewUserRepository(db)
}

func receiptRepo(db *gorm.DB) repository.ReceiptRepository {
	return repository.NewReceiptRepository(db)
}
