package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"printmill-be/internal/pricing"
	"printmill-be/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *Order {
	return &Order{
		ID:     "33333333-3333-3333-3333-333333333333",
		UserID: "user-1",
		Items: []pricing.CartLine{{
			Product:  pricing.ProductPosters,
			Options:  json.RawMessage(`{"quantity":1}`),
			Quantity: 1,
		}},
		Breakdown: Breakdown{
			Items:       []pricing.PricedLine{{Product: pricing.ProductPosters, Quantity: 1, UnitPrice: 80, LineTotal: 80}},
			Subtotal:    80,
			PlatformFee: 10,
			DeliveryFee: 35,
		},
		Total:   125,
		Status:  StatusPlaced,
		Address: user.Address{AddressLine: "12 MG Road", City: "Pune", Pincode: "411001"},
	}
}

func orderRows(t *testing.T, o *Order) *sqlmock.Rows {
	t.Helper()

	items, err := json.Marshal(o.Items)
	require.NoError(t, err)
	breakdown, err := json.Marshal(o.Breakdown)
	require.NoError(t, err)
	address, err := json.Marshal(o.Address)
	require.NoError(t, err)

	var link any
	if o.WhatsAppLink != nil {
		link = *o.WhatsAppLink
	}

	return sqlmock.NewRows([]string{
		"id", "user_id", "items", "pricing_breakdown",
		"total", "status", "address", "contains_office_visiting_cards",
		"whatsapp_link", "created_at",
	}).AddRow(o.ID, o.UserID, items, breakdown, o.Total, string(o.Status), address, o.ContainsOfficeVisitingCards, link, time.Now())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	o := sampleOrder()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO orders`).
			WithArgs(o.ID, o.UserID, sqlmock.AnyArg(), sqlmock.AnyArg(), o.Total, string(o.Status), sqlmock.AnyArg(), o.ContainsOfficeVisitingCards).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, o))
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO orders`).
			WillReturnError(errors.New("db error"))

		assert.Error(t, repo.Create(ctx, o))
	})
}

func TestRepository_SetWhatsAppLink(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET whatsapp_link = \$1 WHERE id = \$2`).
			WithArgs("https://wa.me/911234567890?text=hi", "order-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SetWhatsAppLink(ctx, "order-1", "https://wa.me/911234567890?text=hi"))
	})

	t.Run("Missing order", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET whatsapp_link`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetWhatsAppLink(ctx, "nope", "link")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestRepository_FindByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	o := sampleOrder()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM orders WHERE user_id = \$1 ORDER BY created_at DESC`).
			WithArgs("user-1").
			WillReturnRows(orderRows(t, o))

		orders, err := repo.FindByUser(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, o.ID, orders[0].ID)
		assert.Equal(t, 80.0, orders[0].Breakdown.Subtotal)
		assert.Nil(t, orders[0].WhatsAppLink)
	})

	t.Run("No orders yields empty slice", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM orders WHERE user_id`).
			WithArgs("user-2").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "user_id", "items", "pricing_breakdown",
				"total", "status", "address", "contains_office_visiting_cards",
				"whatsapp_link", "created_at",
			}))

		orders, err := repo.FindByUser(ctx, "user-2")
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestRepository_FindByIDForUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	o := sampleOrder()

	t.Run("Success with link", func(t *testing.T) {
		link := "https://wa.me/911234567890?text=hi"
		o.WhatsAppLink = &link

		mock.ExpectQuery(`SELECT .* FROM orders WHERE id = \$1 AND user_id = \$2`).
			WithArgs(o.ID, "user-1").
			WillReturnRows(orderRows(t, o))

		got, err := repo.FindByIDForUser(ctx, o.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, o.ID, got.ID)
		require.NotNil(t, got.WhatsAppLink)
		assert.Equal(t, link, *got.WhatsAppLink)
	})

	t.Run("Foreign order maps to not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM orders WHERE id = \$1 AND user_id = \$2`).
			WithArgs(o.ID, "someone-else").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByIDForUser(ctx, o.ID, "someone-else")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status = \$1 WHERE id = \$2`).
			WithArgs(string(StatusInPrinting), "order-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(ctx, "order-1", StatusInPrinting))
	})

	t.Run("Missing order", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, "nope", StatusCompleted)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
