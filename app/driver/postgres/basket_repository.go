package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"shop-service/app/domain"
	"shop-service/app/port"
)

// BasketRepository implements port.BasketRepository for PostgreSQL
type BasketRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewBasketRepository creates a new PostgreSQL basket repository
func NewBasketRepository(db DatabaseIface, logger *slog.Logger) port.BasketRepository {
	return &BasketRepository{
		db:     db,
		logger: logger.With("component", "basket_repository"),
	}
}

// GetLine retrieves the basket line for a user/item pair
func (r *BasketRepository) GetLine(ctx context.Context, userID, itemID uuid.UUID) (*domain.BasketLine, error) {
	query := `
		SELECT id, user_id, item_id, quantity
		FROM basket_items
		WHERE user_id = $1 AND item_id = $2`

	line := &domain.BasketLine{}
	err := r.db.QueryRow(ctx, query, userID, itemID).Scan(
		&line.ID,
		&line.UserID,
		&line.ItemID,
		&line.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBasketLineNotFound
		}
		r.logger.Error("Failed to get basket line", "user_id", userID, "item_id", itemID, "error", err)
		return nil, fmt.Errorf("failed to get basket line: %w", err)
	}

	return line, nil
}

// Insert adds a new basket line
func (r *BasketRepository) Insert(ctx context.Context, line *domain.BasketLine) error {
	query := `
		INSERT INTO basket_items (
			id, user_id, item_id, quantity
		) VALUES (
			$1, $2, $3, $4
		)`

	_, err := r.db.Exec(ctx, query,
		line.ID,
		line.UserID,
		line.ItemID,
		line.Quantity,
	)
	if err != nil {
		r.logger.Error("Failed to insert basket line", "user_id", line.UserID, "item_id", line.ItemID, "error", err)
		return fmt.Errorf("failed to insert basket line: %w", err)
	}

	r.logger.Info("Basket line inserted", "user_id", line.UserID, "item_id", line.ItemID, "quantity", line.Quantity)
	return nil
}

// UpdateQuantity sets the quantity of an existing basket line
func (r *BasketRepository) UpdateQuantity(ctx context.Context, lineID uuid.UUID, quantity int) error {
	query := `
		UPDATE basket_items
		SET quantity = $2
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, lineID, quantity)
	if err != nil {
		r.logger.Error("Failed to update basket quantity", "line_id", lineID, "error", err)
		return fmt.Errorf("failed to update basket quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBasketLineNotFound
	}

	return nil
}

// Delete removes a single basket line. Missing lines are not an error.
func (r *BasketRepository) Delete(ctx context.Context, lineID uuid.UUID) error {
	query := `DELETE FROM basket_items WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, lineID); err != nil {
		r.logger.Error("Failed to delete basket line", "line_id", lineID, "error", err)
		return fmt.Errorf("failed to delete basket line: %w", err)
	}

	return nil
}

// DeleteByUserID empties a user's basket
func (r *BasketRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM basket_items WHERE user_id = $1`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		r.logger.Error("Failed to clear basket", "user_id", userID, "error", err)
		return fmt.Errorf("failed to clear basket: %w", err)
	}

	r.logger.Info("Basket cleared", "user_id", userID)
	return nil
}

// ListByUserID returns the user's basket joined with current catalog data
func (r *BasketRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.BasketItem, error) {
	query := `
		SELECT b.id, b.user_id, b.item_id, i.name, i.description, i.price, i.image_url, b.quantity
		FROM basket_items b
		JOIN items i ON i.id = b.item_id
		WHERE b.user_id = $1
		ORDER BY i.name`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list basket", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list basket: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.BasketItem, 0)
	for rows.Next() {
		item := &domain.BasketItem{}
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ItemID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.ImageURL,
			&item.Quantity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan basket item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read basket items: %w", err)
	}

	return items, nil
}

// Total computes the basket total against current catalog prices
func (r *BasketRepository) Total(ctx context.Context, userID uuid.UUID) (float64, error) {
	query := `
		SELECT COALESCE(SUM(i.price * b.quantity), 0)
		FROM basket_items b
		JOIN items i ON i.id = b.item_id
		WHERE b.user_id = $1`

	var total float64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		r.logger.Error("Failed to compute basket total", "user_id", userID, "error", err)
		return 0, fmt.Errorf("failed to compute basket total: %w", err)
	}

	return total, nil
}
