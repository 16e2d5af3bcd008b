package port

//go:generate mockgen -source=item_port.go -destination=../mocks/mock_item_port.go

import (
	"context"

	"shop-service/app/domain"
	"github.com/google/uuid"
)

// ItemUsecase defines catalog business logic interface
type ItemUsecase interface {
	List(ctx context.Context) ([]*domain.Item, error)
	GetByID(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	Search(ctx context.Context, query string) ([]*domain.Item, error)
	Create(ctx context.Context, name, description string, price float64, imageURL *string) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, itemID uuid.UUID) error
	Seed(ctx context.Context) (int, error)
}

// ItemRepository defines catalog data access interface
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	List(ctx context.Context) ([]*domain.Item, error)
	Search(ctx context.Context, query string) ([]*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, itemID uuid.UUID) error
}
