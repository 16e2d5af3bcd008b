package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"shop-service/app/domain"
	"shop-service/app/port"
)

// ItemRepository implements port.ItemRepository for PostgreSQL
type ItemRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewItemRepository creates a new PostgreSQL item repository
func NewItemRepository(db DatabaseIface, logger *slog.Logger) port.ItemRepository {
	return &ItemRepository{
		db:     db,
		logger: logger.With("component", "item_repository"),
	}
}

// List returns all catalog items ordered by name
func (r *ItemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	query := `
		SELECT id, name, description, price, image_url
		FROM items
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list items", "error", err)
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// GetByID retrieves a single catalog item
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := `
		SELECT id, name, description, price, image_url
		FROM items
		WHERE id = $1`

	item := &domain.Item{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		r.logger.Error("Failed to get item", "item_id", id, "error", err)
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// Search returns items whose name or description matches the query,
// case-insensitively, ordered by name
func (r *ItemRepository) Search(ctx context.Context, q string) ([]*domain.Item, error) {
	query := `
		SELECT id, name, description, price, image_url
		FROM items
		WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY name`

	rows, err := r.db.Query(ctx, query, q)
	if err != nil {
		r.logger.Error("Failed to search items", "error", err)
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// Create inserts a new catalog item
func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `
		INSERT INTO items (
			id, name, description, price, image_url
		) VALUES (
			$1, $2, $3, $4, $5
		)`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.ImageURL,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrItemAlreadyExists
		}
		r.logger.Error("Failed to create item", "name", item.Name, "error", err)
		return fmt.Errorf("failed to create item: %w", err)
	}

	r.logger.Info("Item created", "item_id", item.ID, "name", item.Name)
	return nil
}

// Update replaces the mutable fields of an existing item
func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	query := `
		UPDATE items
		SET name = $2, description = $3, price = $4, image_url = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.ImageURL,
	)
	if err != nil {
		r.logger.Error("Failed to update item", "item_id", item.ID, "error", err)
		return fmt.Errorf("failed to update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}

	r.logger.Info("Item updated", "item_id", item.ID)
	return nil
}

// Delete removes a catalog item
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM items WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete item", "item_id", id, "error", err)
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}

	r.logger.Info("Item deleted", "item_id", id)
	return nil
}

func scanItems(rows pgx.Rows) ([]*domain.Item, error) {
	items := make([]*domain.Item, 0)
	for rows.Next() {
		item := &domain.Item{}
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}
