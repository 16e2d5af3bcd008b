package postgres

import (
	"context"
	"errors"
	"testing"

	"shop-service/app/domain"
	"shop-service/app/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a test item repository with mocked database
func createTestItemRepository(t *testing.T) (*ItemRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewItemRepository(mockDB, testLogger).(*ItemRepository)

	return repo, mockDB
}

func itemColumns() []string {
	return []string{"id", "name", "description", "price", "image_url"}
}

func TestItemRepository_List(t *testing.T) {
	t.Run("returns all items ordered by name", func(t *testing.T) {
		repo, mockDB := createTestItemRepository(t)
		defer mockDB.Close()

		rows := pgxmock.NewRows(itemColumns()).
			AddRow(uuid.New(), "Camera", "Mirrorless camera", 899.99, nil).
			AddRow(uuid.New(), "Laptop", "High-performance laptop", 999.99, nil)
		mockDB.ExpectQuery("SELECT (.+) FROM items").
			WillReturnRows(rows)

		items, err := repo.List(context.Background())

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Camera", items[0].Name)
		assert.Equal(t, "Laptop", items[1].Name)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("empty catalog yields empty slice", func(t *testing.T) {
		repo, mockDB := createTestItemRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT (.+) FROM items").
			WillReturnRows(pgxmock.NewRows(itemColumns()))

		items, err := repo.List(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestItemRepository_GetByID(t *testing.T) {
	itemID := uuid.New()

	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "item found",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(itemColumns()).
					AddRow(itemID, "Laptop", "High-performance laptop", 999.99, nil)
				mockDB.ExpectQuery("SELECT (.+) FROM items").
					WithArgs(itemID).
					WillReturnRows(rows)
			},
			wantErr: nil,
		},
		{
			name: "unknown item maps to ErrItemNotFound",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT (.+) FROM items").
					WithArgs(itemID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestItemRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			item, err := repo.GetByID(context.Background(), itemID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, item)
			} else {
				require.NoError(t, err)
				assert.Equal(t, itemID, item.ID)
				assert.Equal(t, 999.99, item.Price)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestItemRepository_Search(t *testing.T) {
	repo, mockDB := createTestItemRepository(t)
	defer mockDB.Close()

	rows := pgxmock.NewRows(itemColumns()).
		AddRow(uuid.New(), "Laptop", "High-performance laptop", 999.99, nil)
	mockDB.ExpectQuery("SELECT (.+) FROM items").
		WithArgs("lap").
		WillReturnRows(rows)

	items, err := repo.Search(context.Background(), "lap")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Laptop", items[0].Name)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestItemRepository_Create(t *testing.T) {
	repo, mockDB := createTestItemRepository(t)
	defer mockDB.Close()

	item, err := domain.NewItem("Laptop", "High-performance laptop", 999.99, nil)
	require.NoError(t, err)

	mockDB.ExpectExec("INSERT INTO items").
		WithArgs(item.ID, item.Name, item.Description, item.Price, item.ImageURL).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), item))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestItemRepository_Update(t *testing.T) {
	item, err := domain.NewItem("Laptop", "High-performance laptop", 999.99, nil)
	require.NoError(t, err)

	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "successful update",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("UPDATE items").
					WithArgs(item.ID, item.Name, item.Description, item.Price, item.ImageURL).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			wantErr: nil,
		},
		{
			name: "updating unknown item maps to ErrItemNotFound",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("UPDATE items").
					WithArgs(item.ID, item.Name, item.Description, item.Price, item.ImageURL).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: domain.ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestItemRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			err := repo.Update(context.Background(), item)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestItemRepository_Delete(t *testing.T) {
	itemID := uuid.New()

	t.Run("successful delete", func(t *testing.T) {
		repo, mockDB := createTestItemRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("DELETE FROM items").
			WithArgs(itemID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), itemID))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("deleting unknown item maps to ErrItemNotFound", func(t *testing.T) {
		repo, mockDB := createTestItemRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("DELETE FROM items").
			WithArgs(itemID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), itemID), domain.ErrItemNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("database error is wrapped", func(t *testing.T) {
		repo, mockDB := createTestItemRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("DELETE FROM items").
			WithArgs(itemID).
			WillReturnError(errors.New("connection refused"))

		err := repo.Delete(context.Background(), itemID)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete item")
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
