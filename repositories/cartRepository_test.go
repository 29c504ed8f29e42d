package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopcart/shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

func TestCartRepositoryGetBySessionIDNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCartRepository(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `carts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "created_at", "updated_at"}))

	cart, err := repo.GetBySessionID("missing-session")
	require.NoError(t, err)
	assert.Nil(t, cart)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepositoryUpdateTouchesUpdatedAt(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCartRepository(gdb)

	created := time.Now().UTC().Add(-time.Hour)
	cart := &models.Cart{ID: "cart-1", SessionID: "s1", CreatedAt: created, UpdatedAt: created}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `carts` SET `updated_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT (.+) FROM `carts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "created_at", "updated_at"}).
			AddRow("cart-1", "s1", created, time.Now().UTC()))
	mock.ExpectQuery("SELECT (.+) FROM `cart_items`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "quantity", "added_at"}))

	updated, err := repo.Update(cart)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.UpdatedAt.After(created))
	assert.Empty(t, updated.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartItemRepositoryDeleteAllByCart(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCartItemRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `cart_items`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	deleted, err := repo.DeleteAllByCart("cart-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartItemRepositoryDeleteByIDMissing(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCartItemRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `cart_items`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	removed, err := repo.DeleteByID("missing-item")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
