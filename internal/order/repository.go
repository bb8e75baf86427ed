package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"printmill-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	SetWhatsAppLink(ctx context.Context, orderID, link string) error
	FindByUser(ctx context.Context, userID string) ([]*Order, error)
	FindByIDForUser(ctx context.Context, orderID, userID string) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = "id, user_id, items, pricing_breakdown, total, status, address, contains_office_visiting_cards, whatsapp_link, created_at"

func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx)

	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	breakdown, err := json.Marshal(o.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to encode pricing breakdown: %w", err)
	}
	address, err := json.Marshal(o.Address)
	if err != nil {
		return fmt.Errorf("failed to encode address: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO orders (
			id, user_id, items, pricing_breakdown,
			total, status, address, contains_office_visiting_cards
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		o.ID, o.UserID, items, breakdown,
		o.Total, o.Status, address, o.ContainsOfficeVisitingCards,
	)
	if err != nil {
		log.Error("db: failed to insert order",
			zap.String("order_id", o.ID),
			zap.String("user_id", o.UserID),
			zap.Error(err),
		)
	}

	return err
}

// SetWhatsAppLink is the follow-up write after insert. Keyed by order id and
// safe to repeat: re-running it writes the same link again.
func (r *repository) SetWhatsAppLink(ctx context.Context, orderID, link string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET whatsapp_link = $1 WHERE id = $2",
		link, orderID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// FindByIDForUser filters by owner inside the query, so a foreign order id
// misses exactly like a nonexistent one.
func (r *repository) FindByIDForUser(ctx context.Context, orderID, userID string) (*Order, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1 AND user_id = $2",
		orderID, userID,
	)

	o, err := scanOrder(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *repository) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = $1 WHERE id = $2",
		status, orderID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func scanOrder(scan func(dest ...any) error) (*Order, error) {
	var (
		o         Order
		items     []byte
		breakdown []byte
		address   []byte
		link      sql.NullString
	)

	err := scan(
		&o.ID, &o.UserID, &items, &breakdown,
		&o.Total, &o.Status, &address, &o.ContainsOfficeVisitingCards,
		&link, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	if err := json.Unmarshal(breakdown, &o.Breakdown); err != nil {
		return nil, fmt.Errorf("failed to decode pricing breakdown: %w", err)
	}
	if err := json.Unmarshal(address, &o.Address); err != nil {
		return nil, fmt.Errorf("failed to decode address: %w", err)
	}
	if link.Valid {
		o.WhatsAppLink = &link.String
	}

	return &o, nil
}
