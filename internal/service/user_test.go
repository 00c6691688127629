package service_test

import (
	"context"
	"testing"

	"receiptpro/internal/dto"
	"receiptpro/internal/repository"
	"receiptpro/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLogin_UpsertByEmail(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	first, err := svc.Login(ctx, &dto.LoginRequest{Email: "jamie@example.com", FirstName: "Jamie"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), first.Credits, "new accounts start with the default allowance")

	// logging in again keeps the account and its balance, refreshes profile
	again, err := svc.Login(ctx, &dto.LoginRequest{Email: "jamie@example.com", FirstName: "Jay"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "Jay", again.FirstName)
	assert.Equal(t, first.Credits, again.Credits)
}

func TestUserLogin_RejectsBadEmail(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(repository.NewUserRepository(db))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nope"})
	require.Error(t, err)
}
