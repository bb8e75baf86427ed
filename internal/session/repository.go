package session

import (
	"context"
	"database/sql"

	"printmill-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, s *Session) error
	FindByToken(ctx context.Context, token string) (*Session, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Session) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO sessions (id, user_id, token, expires_at) VALUES ($1, $2, $3, $4)",
		s.ID, s.UserID, s.Token, s.ExpiresAt,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert session",
			zap.String("user_id", s.UserID),
			zap.Error(err),
		)
	}
	return err
}

func (r *repository) FindByToken(ctx context.Context, token string) (*Session, error) {
	var s Session
	err := r.db.QueryRowContext(ctx,
		"SELECT id, user_id, token, expires_at, created_at FROM sessions WHERE token = $1",
		token,
	).Scan(&s.ID, &s.UserID, &s.Token, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
