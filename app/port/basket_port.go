package port

//go:generate mockgen -source=basket_port.go -destination=../mocks/mock_basket_port.go

import (
	"context"

	"shop-service/app/domain"
	"github.com/google/uuid"
)

// BasketUsecase defines basket business logic interface
type BasketUsecase interface {
	Add(ctx context.Context, userID, itemID uuid.UUID, quantity int) error
	UpdateQuantity(ctx context.Context, lineID uuid.UUID, quantity int) error
	Remove(ctx context.Context, lineID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*domain.BasketItem, error)
	Total(ctx context.Context, userID uuid.UUID) (float64, error)
}

// BasketRepository defines basket data access interface
type BasketRepository interface {
	GetLine(ctx context.Context, userID, itemID uuid.UUID) (*domain.BasketLine, error)
	Insert(ctx context.Context, line *domain.BasketLine) error
	UpdateQuantity(ctx context.Context, lineID uuid.UUID, quantity int) error
	Delete(ctx context.Context, lineID uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.BasketItem, error)
	Total(ctx context.Context, userID uuid.UUID) (float64, error)
}
