package service

import (
	"context"
	"errors"
	"fmt"

	"receiptpro/internal/apperr"
	"receiptpro/internal/dto"
	"receiptpro/internal/model"
	"receiptpro/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrBootstrapPasswordMissing means no admin account exists and no
// ADMIN_BOOTSTRAP_PASSWORD was supplied to provision one.
var ErrBootstrapPasswordMissing = errors.New("no admin account exists and no bootstrap password is configured")

type AdminService interface {
	// Login verifies operator credentials against the stored bcrypt hash.
	Login(ctx context.Context, username, password string) (*model.AdminUser, error)
	AddCredits(ctx context.Context, req *dto.AddCreditsRequest) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	ListReceipts(ctx context.Context) ([]*model.Receipt, error)
	Stats(ctx context.Context) (*dto.StatsResponse, error)
	// EnsureBootstrapAdmin provisions the first operator account at startup.
	// The password comes from the environment; nothing is hardcoded. When an
	// account already exists this is a no-op and the password is ignored.
	EnsureBootstrapAdmin(ctx context.Context, username, password string) error
}

type adminServiceImpl struct {
	adminRepo   repository.AdminRepository
	userRepo    repository.UserRepository
	receiptRepo repository.ReceiptRepository
}

func NewAdminService(
	adminRepo repository.AdminRepository,
	userRepo repository.UserRepository,
	receiptRepo repository.ReceiptRepository,
) AdminService {
	return &adminServiceImpl{
		adminRepo:   adminRepo,
		userRepo:    userRepo,
		receiptRepo: receiptRepo,
	}
}

func (s *adminServiceImpl) Login(ctx context.Context, username, password string) (*model.AdminUser, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.ErrUnauthorized
	}

	return admin, nil
}

func (s *adminServiceImpl) AddCredits(ctx context.Context, req *dto.AddCreditsRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.userRepo.AddCredits(ctx, req.UserID, req.Credits)
}

func (s *adminServiceImpl) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *adminServiceImpl) ListReceipts(ctx context.Context) ([]*model.Receipt, error) {
	return s.receiptRepo.GetAll(ctx)
}

func (s *adminServiceImpl) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalReceipts, err := s.receiptRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		TotalUsers:    totalUsers,
		TotalReceipts: totalReceipts,
	}, nil
}

func (s *adminServiceImpl) EnsureBootstrapAdmin(ctx context.Context, username, password string) error {
	_, err := s.adminRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return fmt.Errorf("look up bootstrap admin: %w", err)
	}

	if password == "" {
		return ErrBootstrapPasswordMissing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash bootstrap admin password: %w", err)
	}

	if err := s.adminRepo.Create(ctx, &model.AdminUser{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}); err != nil {
		return fmt.Errorf("create bootstrap admin: %w", err)
	}

	log.WithField("username", username).Info("Provisioned bootstrap admin account")
	return nil
}
