package service

import (
	"context"

	"receiptpro/internal/dto"
	"receiptpro/internal/model"
	"receiptpro/internal/repository"

	"github.com/google/uuid"
)

// defaultCredits is the free allowance every new account starts with.
const defaultCredits = 5

type UserService interface {
	// Login upserts the account for the externally authenticated identity
	// and returns the stored user. New accounts start with the default
	// credit allowance.
	Login(ctx context.Context, req *dto.LoginRequest) (*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.userRepo.Upsert(ctx, &model.User{
		ID:              uuid.NewString(),
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageURL: req.ProfileImageURL,
		Credits:         defaultCredits,
	})
}

func (s *userServiceImpl) Get(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.Get(ctx, id)
}
