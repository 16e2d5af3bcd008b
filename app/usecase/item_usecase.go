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

// ItemUseCase implements catalog business logic
type ItemUseCase struct {
	itemRepo port.ItemRepository
	logger   *slog.Logger
}

// NewItemUseCase creates a new ItemUseCase instance
func NewItemUseCase(itemRepo port.ItemRepository, logger *slog.Logger) *ItemUseCase {
	return &ItemUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// List returns the full catalog
func (u *ItemUseCase) List(ctx context.Context) ([]*domain.Item, error) {
	items, err := u.itemRepo.List(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return items, nil
}

// GetByID returns a single catalog item
func (u *ItemUseCase) GetByID(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	item, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeItemNotFound, domain.ErrItemNotFound.Error())
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return item, nil
}

// Search returns items matching the query by name or description
func (u *ItemUseCase) Search(ctx context.Context, query string) ([]*domain.Item, error) {
	items, err := u.itemRepo.Search(ctx, query)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return items, nil
}

// Create adds a new item to the catalog
func (u *ItemUseCase) Create(ctx context.Context, name, description string, price float64, imageURL *string) (*domain.Item, error) {
	item, err := domain.NewItem(name, description, price, imageURL)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, err.Error())
	}

	if err := u.itemRepo.Create(ctx, item); err != nil {
		if errors.Is(err, domain.ErrItemAlreadyExists) {
			return nil, apperrors.New(apperrors.ErrCodeConflict, domain.ErrItemAlreadyExists.Error())
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	u.logger.Info("catalog item created", "item_id", item.ID, "name", item.Name)
	return item, nil
}

// Update replaces the mutable fields of an existing item
func (u *ItemUseCase) Update(ctx context.Context, item *domain.Item) error {
	if err := u.itemRepo.Update(ctx, item); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return apperrors.New(apperrors.ErrCodeItemNotFound, domain.ErrItemNotFound.Error())
		}
		return apperrors.NewDatabaseError(err)
	}

	u.logger.Info("catalog item updated", "item_id", item.ID)
	return nil
}

// Delete removes an item from the catalog
func (u *ItemUseCase) Delete(ctx context.Context, itemID uuid.UUID) error {
	if err := u.itemRepo.Delete(ctx, itemID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return apperrors.New(apperrors.ErrCodeItemNotFound, domain.ErrItemNotFound.Error())
		}
		return apperrors.NewDatabaseError(err)
	}

	u.logger.Info("catalog item deleted", "item_id", itemID)
	return nil
}

// sampleItems is the demo catalog inserted by Seed
var sampleItems = []struct {
	name        string
	description string
	price       float64
}{
	{"Laptop", "High-performance laptop with 16GB RAM and 512GB SSD.", 999.99},
	{"Smartphone", "Latest smartphone with 6.5\" screen and 128GB storage.", 699.99},
	{"Headphones", "Noise-cancelling wireless headphones with 20-hour battery life.", 199.99},
	{"Tablet", "10.2\" tablet with 64GB storage and long battery life.", 329.99},
	{"Smart Watch", "Fitness tracking smart watch with heart rate monitor.", 249.99},
	{"Wireless Earbuds", "True wireless earbuds with charging case.", 129.99},
	{"Desktop Computer", "Powerful desktop computer for gaming and productivity.", 1299.99},
	{"Keyboard", "Mechanical keyboard with RGB lighting.", 89.99},
	{"Mouse", "Ergonomic wireless mouse with adjustable DPI.", 49.99},
	{"Monitor", "27\" 4K monitor with HDR support.", 349.99},
}

// Seed inserts the demo catalog. Items that already exist are skipped;
// the return value is the number of items actually inserted.
func (u *ItemUseCase) Seed(ctx context.Context) (int, error) {
	placeholder := "https://via.placeholder.com/150"
	inserted := 0

	for _, s := range sampleItems {
		item, err := domain.NewItem(s.name, s.description, s.price, &placeholder)
		if err != nil {
			return inserted, apperrors.NewInternalError(err)
		}

		if err := u.itemRepo.Create(ctx, item); err != nil {
			if errors.Is(err, domain.ErrItemAlreadyExists) {
				continue
			}
			return inserted, apperrors.NewDatabaseError(err)
		}
		inserted++
	}

	u.logger.Info("sample catalog seeded", "inserted", inserted, "total", len(sampleItems))
	return inserted, nil
}
