package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	u := &User{
		ID:           "11111111-1111-1111-1111-111111111111",
		FullName:     "Asha Rao",
		Mobile:       "9876543210",
		Email:        "asha@example.com",
		PasswordHash: "hashed",
		Addresses:    []Address{{Label: "Default", AddressLine: "12 MG Road", City: "Pune", Pincode: "411001", IsDefault: true}},
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO users \(id, full_name, mobile, email, password_hash, addresses\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\)`).
			WithArgs(u.ID, u.FullName, u.Mobile, u.Email, u.PasswordHash, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, u)
		assert.NoError(t, err)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO users`).
			WillReturnError(errors.New("db error"))

		err := repo.Create(ctx, u)
		assert.Error(t, err)
	})
}

func TestRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	id := "11111111-1111-1111-1111-111111111111"

	t.Run("Success", func(t *testing.T) {
		addresses, _ := json.Marshal([]Address{{AddressLine: "12 MG Road", City: "Pune", Pincode: "411001", IsDefault: true}})
		rows := sqlmock.NewRows([]string{"id", "full_name", "mobile", "email", "password_hash", "addresses", "created_at"}).
			AddRow(id, "Asha Rao", "9876543210", "asha@example.com", "hashed", addresses, time.Now())

		mock.ExpectQuery(`SELECT id, full_name, mobile, email, password_hash, addresses, created_at FROM users WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(rows)

		u, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", u.FullName)
		require.Len(t, u.Addresses, 1)
		assert.Equal(t, "Pune", u.Addresses[0].City)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE id`).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByID(ctx, id)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestRepository_FindByIdentifier(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Matches email or mobile with one query", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "full_name", "mobile", "email", "password_hash", "addresses", "created_at"}).
			AddRow("id-1", "Asha Rao", "9876543210", "asha@example.com", "hashed", []byte(`[]`), time.Now())

		mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1 OR mobile = \$1`).
			WithArgs("9876543210").
			WillReturnRows(rows)

		u, err := repo.FindByIdentifier(ctx, "9876543210")
		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", u.Email)
	})
}

func TestRepository_ExistsByEmailOrMobile(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM users WHERE email = \$1 OR mobile = \$2\)`).
			WithArgs("asha@example.com", "9876543210").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.ExistsByEmailOrMobile(ctx, "asha@example.com", "9876543210")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Does not exist", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := repo.ExistsByEmailOrMobile(ctx, "new@example.com", "1112223334")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}
