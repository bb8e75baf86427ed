package session

import (
	"context"

	"printmill-be/internal/logger"
	"printmill-be/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the authorization gate: every authenticated operation resolves
// its caller through Authenticate.
type Service interface {
	Issue(ctx context.Context, userID string) (*Session, error)
	Authenticate(ctx context.Context, token string) (*user.User, error)
}

type service struct {
	repo  Repository
	users user.Repository
}

func NewService(repo Repository, users user.Repository) Service {
	return &service{repo: repo, users: users}
}

func (s *service) Issue(ctx context.Context, userID string) (*Session, error) {
	sess := &Session{
		ID:     uuid.NewString(),
		UserID: userID,
		Token:  GenerateToken(),
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("session issued", zap.String("user_id", userID))
	return sess, nil
}

// Authenticate is read-only: no session mutation, no sliding expiry. A
// missing token, an unknown token, and a session whose user is gone are all
// the same failure to the caller.
func (s *service) Authenticate(ctx context.Context, token string) (*user.User, error) {
	log := logger.FromCtx(ctx)

	if token == "" {
		return nil, ErrUnauthenticated
	}

	sess, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		log.Warn("token not found among active sessions", zap.Error(err))
		return nil, ErrUnauthenticated
	}

	u, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		log.Warn("session points at missing user",
			zap.String("user_id", sess.UserID),
			zap.Error(err),
		)
		return nil, ErrUnauthenticated
	}

	return u, nil
}
