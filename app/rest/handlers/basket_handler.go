package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shop-service/app/domain"
	"shop-service/app/port"
	"shop-service/app/rest/middleware"
	apperrors "shop-service/app/utils/errors"
)

// BasketHandler handles basket HTTP requests. All routes require an
// authenticated identity resolved by the auth middleware.
type BasketHandler struct {
	basketUsecase port.BasketUsecase
	logger        *slog.Logger
}

// NewBasketHandler creates a new basket handler
func NewBasketHandler(basketUsecase port.BasketUsecase, logger *slog.Logger) *BasketHandler {
	return &BasketHandler{
		basketUsecase: basketUsecase,
		logger:        logger,
	}
}

// AddRequest is the add-to-basket payload. Quantity defaults to 1 when
// absent, matching the storefront's add button.
type AddRequest struct {
	ItemID   string `json:"item_id"`
	Quantity *int   `json:"quantity,omitempty"`
}

// UpdateRequest is the change-quantity payload
type UpdateRequest struct {
	Quantity int `json:"quantity"`
}

// BasketResponse is the basket read model: lines plus the live total
type BasketResponse struct {
	Items []*domain.BasketItem `json:"items"`
	Total float64              `json:"total"`
}

// List returns the caller's basket with its current total
// @Summary View basket
// @Tags basket
// @Produce json
// @Success 200 {object} BasketResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/shop/basket [get]
func (h *BasketHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return respondError(c, apperrors.NewUnauthorized("no authenticated user"))
	}

	ctx := c.Request().Context()
	items, err := h.basketUsecase.List(ctx, user.ID)
	if err != nil {
		return respondError(c, err)
	}
	total, err := h.basketUsecase.Total(ctx, user.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, BasketResponse{Items: items, Total: total})
}

// Add puts an item in the basket, merging onto an existing line
// @Summary Add an item to the basket
// @Tags basket
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/shop/basket [post]
func (h *BasketHandler) Add(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return respondError(c, apperrors.NewUnauthorized("no authenticated user"))
	}

	var req AddRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if err := h.basketUsecase.Add(c.Request().Context(), user.ID, itemID, quantity); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Item added to basket"})
}

// UpdateQuantity sets a line's quantity; zero or less removes the line
// @Summary Update a basket line
// @Tags basket
// @Accept json
// @Produce json
// @Param lineId path string true "Basket line ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/shop/basket/{lineId} [put]
func (h *BasketHandler) UpdateQuantity(c echo.Context) error {
	if user := middleware.CurrentUser(c); user == nil {
		return respondError(c, apperrors.NewUnauthorized("no authenticated user"))
	}

	lineID, err := uuid.Parse(c.Param("lineId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid basket line id"})
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if err := h.basketUsecase.UpdateQuantity(c.Request().Context(), lineID, req.Quantity); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Basket updated"})
}

// Remove deletes a basket line; removing an absent line succeeds
// @Summary Remove a basket line
// @Tags basket
// @Produce json
// @Param lineId path string true "Basket line ID"
// @Success 200 {object} MessageResponse
// @Router /v1/shop/basket/{lineId} [delete]
func (h *BasketHandler) Remove(c echo.Context) error {
	if user := middleware.CurrentUser(c); user == nil {
		return respondError(c, apperrors.NewUnauthorized("no authenticated user"))
	}

	lineID, err := uuid.Parse(c.Param("lineId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid basket line id"})
	}

	if err := h.basketUsecase.Remove(c.Request().Context(), lineID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Item removed from basket"})
}

// Clear empties the caller's basket
// @Summary Clear the basket
// @Tags basket
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /v1/shop/basket [delete]
func (h *BasketHandler) Clear(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return respondError(c, apperrors.NewUnauthorized("no authenticated user"))
	}

	if err := h.basketUsecase.Clear(c.Request().Context(), user.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Basket cleared"})
}
