package user

import (
	"context"
	"database/sql"
	"errors"

	"printmill-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, identifier, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	log := logger.FromCtx(ctx)

	exists, err := s.repo.ExistsByEmailOrMobile(ctx, input.Email, input.Mobile)
	if err != nil {
		log.Error("failed to check existing account", zap.String("email", input.Email), zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrAccountExists
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u := &User{
		ID:           uuid.NewString(),
		FullName:     input.FullName,
		Mobile:       input.Mobile,
		Email:        input.Email,
		PasswordHash: hashed,
		Addresses: []Address{{
			Label:       "Default",
			AddressLine: input.AddressLine,
			City:        input.City,
			Pincode:     input.Pincode,
			IsDefault:   true,
		}},
	}

	if err := s.repo.Create(ctx, u); err != nil {
		log.Error("failed to create user", zap.String("email", input.Email), zap.Error(err))
		return nil, err
	}

	log.Info("user registered",
		zap.String("user_id", u.ID),
		zap.String("email", u.Email),
	)

	return u, nil
}

func (s *service) Login(ctx context.Context, identifier, password string) (*User, error) {
	u, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
