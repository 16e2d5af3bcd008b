package postgres

import (
	"context"
	"testing"

	"shop-service/app/domain"
	"shop-service/app/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a test basket repository with mocked database
func createTestBasketRepository(t *testing.T) (*BasketRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewBasketRepository(mockDB, testLogger).(*BasketRepository)

	return repo, mockDB
}

func TestBasketRepository_GetLine(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()
	lineID := uuid.New()

	t.Run("line found", func(t *testing.T) {
		repo, mockDB := createTestBasketRepository(t)
		defer mockDB.Close()

		rows := pgxmock.NewRows([]string{"id", "user_id", "item_id", "quantity"}).
			AddRow(lineID, userID, itemID, 2)
		mockDB.ExpectQuery("SELECT (.+) FROM basket_items").
			WithArgs(userID, itemID).
			WillReturnRows(rows)

		line, err := repo.GetLine(context.Background(), userID, itemID)

		require.NoError(t, err)
		assert.Equal(t, lineID, line.ID)
		assert.Equal(t, 2, line.Quantity)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("missing line maps to ErrBasketLineNotFound", func(t *testing.T) {
		repo, mockDB := createTestBasketRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT (.+) FROM basket_items").
			WithArgs(userID, itemID).
			WillReturnError(pgx.ErrNoRows)

		line, err := repo.GetLine(context.Background(), userID, itemID)

		assert.ErrorIs(t, err, domain.ErrBasketLineNotFound)
		assert.Nil(t, line)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestBasketRepository_Insert(t *testing.T) {
	repo, mockDB := createTestBasketRepository(t)
	defer mockDB.Close()

	line := &domain.BasketLine{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		ItemID:   uuid.New(),
		Quantity: 3,
	}

	mockDB.ExpectExec("INSERT INTO basket_items").
		WithArgs(line.ID, line.UserID, line.ItemID, line.Quantity).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Insert(context.Background(), line))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestBasketRepository_UpdateQuantity(t *testing.T) {
	lineID := uuid.New()

	t.Run("successful update", func(t *testing.T) {
		repo, mockDB := createTestBasketRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE basket_items").
			WithArgs(lineID, 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.UpdateQuantity(context.Background(), lineID, 5))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("updating unknown line maps to ErrBasketLineNotFound", func(t *testing.T) {
		repo, mockDB := createTestBasketRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE basket_items").
			WithArgs(lineID, 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.UpdateQuantity(context.Background(), lineID, 5), domain.ErrBasketLineNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestBasketRepository_Delete(t *testing.T) {
	lineID := uuid.New()

	t.Run("deleting a line succeeds", func(t *testing.T) {
		repo, mockDB := createTestBasketRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("DELETE FROM basket_items").
			WithArgs(lineID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), lineID))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("deleting an absent line is not an error", func(t *testing.T) {
		repo, mockDB := createTestBasketRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("DELETE FROM basket_items").
			WithArgs(lineID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.NoError(t, repo.Delete(context.Background(), lineID))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestBasketRepository_DeleteByUserID(t *testing.T) {
	repo, mockDB := createTestBasketRepository(t)
	defer mockDB.Close()

	userID := uuid.New()
	mockDB.ExpectExec("DELETE FROM basket_items").
		WithArgs(userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	assert.NoError(t, repo.DeleteByUserID(context.Background(), userID))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestBasketRepository_ListByUserID(t *testing.T) {
	repo, mockDB := createTestBasketRepository(t)
	defer mockDB.Close()

	userID := uuid.New()
	rows := pgxmock.NewRows([]string{"id", "user_id", "item_id", "name", "description", "price", "image_url", "quantity"}).
		AddRow(uuid.New(), userID, uuid.New(), "Camera", "Mirrorless camera", 899.99, nil, 1).
		AddRow(uuid.New(), userID, uuid.New(), "Laptop", "High-performance laptop", 999.99, nil, 2)
	mockDB.ExpectQuery("SELECT (.+) FROM basket_items").
		WithArgs(userID).
		WillReturnRows(rows)

	items, err := repo.ListByUserID(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Camera", items[0].Name)
	assert.Equal(t, 899.99, items[0].Price)
	assert.Equal(t, 1999.98, items[1].Subtotal())
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestBasketRepository_Total(t *testing.T) {
	t.Run("sums live prices", func(t *testing.T) {
		repo, mockDB := createTestBasketRepository(t)
		defer mockDB.Close()

		userID := uuid.New()
		rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(2899.97)
		mockDB.ExpectQuery("SELECT COALESCE").
			WithArgs(userID).
			WillReturnRows(rows)

		total, err := repo.Total(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, 2899.97, total)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("empty basket totals zero", func(t *testing.T) {
		repo, mockDB := createTestBasketRepository(t)
		defer mockDB.Close()

		userID := uuid.New()
		rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(0.0)
		mockDB.ExpectQuery("SELECT COALESCE").
			WithArgs(userID).
			WillReturnRows(rows)

		total, err := repo.Total(context.Background(), userID)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
