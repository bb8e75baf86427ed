package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"printmill-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByIdentifier(ctx context.Context, identifier string) (*User, error)
	ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	log := logger.FromCtx(ctx)

	addresses, err := json.Marshal(u.Addresses)
	if err != nil {
		return fmt.Errorf("failed to encode addresses: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO users (id, full_name, mobile, email, password_hash, addresses) VALUES ($1, $2, $3, $4, $5, $6)",
		u.ID, u.FullName, u.Mobile, u.Email, u.PasswordHash, addresses,
	)
	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", u.Email),
			zap.Error(err),
		)
	}

	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx,
		"SELECT id, full_name, mobile, email, password_hash, addresses, created_at FROM users WHERE id = $1",
		id,
	)
}

// FindByIdentifier matches either email or mobile, mirroring the login form.
func (r *repository) FindByIdentifier(ctx context.Context, identifier string) (*User, error) {
	return r.findOne(ctx,
		"SELECT id, full_name, mobile, email, password_hash, addresses, created_at FROM users WHERE email = $1 OR mobile = $1",
		identifier,
	)
}

func (r *repository) ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR mobile = $2)",
		email, mobile,
	).Scan(&exists)
	return exists, err
}

func (r *repository) findOne(ctx context.Context, query string, arg any) (*User, error) {
	var (
		u         User
		addresses []byte
	)

	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.FullName, &u.Mobile, &u.Email, &u.PasswordHash, &addresses, &u.CreatedAt)
	if err != nil {
		return nil, err
	}

	if len(addresses) > 0 {
		if err := json.Unmarshal(addresses, &u.Addresses); err != nil {
			return nil, fmt.Errorf("failed to decode addresses: %w", err)
		}
	}

	return &u, nil
}
