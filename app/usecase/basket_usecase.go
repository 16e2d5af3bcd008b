package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"shop-service/app/domain"
	"shop-service/app/port"
	apperrors "shop-service/app/utils/errors"
)

// BasketUseCase implements basket mutation and read logic
type BasketUseCase struct {
	basketRepo port.BasketRepository
	itemRepo   port.ItemRepository
	logger     *slog.Logger
}

// NewBasketUseCase creates a new BasketUseCase instance
func NewBasketUseCase(basketRepo port.BasketRepository, itemRepo port.ItemRepository, logger *slog.Logger) *BasketUseCase {
	return &BasketUseCase{
		basketRepo: basketRepo,
		itemRepo:   itemRepo,
		logger:     logger,
	}
}

// Add puts an item in the user's basket. Adding an item already present
// merges quantities onto the existing line rather than creating a second
// one. Non-positive quantities are not rejected here; only UpdateQuantity
// interprets them as deletion.
func (u *BasketUseCase) Add(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	if _, err := u.itemRepo.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return apperrors.New(apperrors.ErrCodeItemNotFound, domain.ErrItemNotFound.Error())
		}
		return apperrors.NewDatabaseError(err)
	}

	line, err := u.basketRepo.GetLine(ctx, userID, itemID)
	switch {
	case err == nil:
		if err := u.basketRepo.UpdateQuantity(ctx, line.ID, line.Quantity+quantity); err != nil {
			return apperrors.NewDatabaseError(err)
		}
	case errors.Is(err, domain.ErrBasketLineNotFound):
		newLine := &domain.BasketLine{
			ID:       uuid.New(),
			UserID:   userID,
			ItemID:   itemID,
			Quantity: quantity,
		}
		if err := u.basketRepo.Insert(ctx, newLine); err != nil {
			return apperrors.NewDatabaseError(err)
		}
	default:
		return apperrors.NewDatabaseError(err)
	}

	u.logger.Info("item added to basket", "user_id", userID, "item_id", itemID, "quantity", quantity)
	return nil
}

// UpdateQuantity sets a basket line's quantity. A quantity of zero or
// less removes the line instead.
func (u *BasketUseCase) UpdateQuantity(ctx context.Context, lineID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		if err := u.basketRepo.Delete(ctx, lineID); err != nil {
			return apperrors.NewDatabaseError(err)
		}
		return nil
	}

	if err := u.basketRepo.UpdateQuantity(ctx, lineID, quantity); err != nil {
		if errors.Is(err, domain.ErrBasketLineNotFound) {
			return apperrors.New(apperrors.ErrCodeBasketLineNotFound, domain.ErrBasketLineNotFound.Error())
		}
		return apperrors.NewDatabaseError(err)
	}

	return nil
}

// Remove deletes a basket line. Removing an already-removed line is a
// no-op success, not an error.
func (u *BasketUseCase) Remove(ctx context.Context, lineID uuid.UUID) error {
	if err := u.basketRepo.Delete(ctx, lineID); err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// Clear empties the user's basket
func (u *BasketUseCase) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := u.basketRepo.DeleteByUserID(ctx, userID); err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// List returns the user's basket joined with current catalog details
func (u *BasketUseCase) List(ctx context.Context, userID uuid.UUID) ([]*domain.BasketItem, error) {
	items, err := u.basketRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return items, nil
}

// Total computes the basket total against current catalog prices. Price
// changes retroactively affect the total; an empty basket totals zero.
func (u *BasketUseCase) Total(ctx context.Context, userID uuid.UUID) (float64, error) {
	total, err := u.basketRepo.Total(ctx, userID)
	if err != nil {
		return 0, apperrors.NewDatabaseError(err)
	}
	return total, nil
}
