package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shop-service/app/domain"
	"shop-service/app/port"
)

// ItemHandler handles catalog HTTP requests
type ItemHandler struct {
	itemUsecase port.ItemUsecase
	logger      *slog.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemUsecase port.ItemUsecase, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		itemUsecase: itemUsecase,
		logger:      logger,
	}
}

// ItemRequest is the create/update payload for a catalog item
type ItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// SeedResponse reports the outcome of seeding the sample catalog
type SeedResponse struct {
	Inserted int    `json:"inserted"`
	Message  string `json:"message"`
}

// List returns the full catalog
// @Summary List catalog items
// @Tags shop
// @Produce json
// @Success 200 {array} domain.Item
// @Router /v1/shop/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.itemUsecase.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get returns a single catalog item
// @Summary Get a catalog item
// @Tags shop
// @Produce json
// @Param itemId path string true "Item ID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /v1/shop/items/{itemId} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
	}

	item, err := h.itemUsecase.GetByID(c.Request().Context(), itemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Search returns items matching the query parameter
// @Summary Search the catalog
// @Tags shop
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} domain.Item
// @Router /v1/shop/search [get]
func (h *ItemHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return h.List(c)
	}

	items, err := h.itemUsecase.Search(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Create adds a new catalog item
// @Summary Create a catalog item
// @Tags shop
// @Accept json
// @Produce json
// @Success 201 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Router /v1/shop/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	item, err := h.itemUsecase.Create(c.Request().Context(), req.Name, req.Description, req.Price, req.ImageURL)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// Update replaces an existing catalog item's fields
// @Summary Update a catalog item
// @Tags shop
// @Accept json
// @Produce json
// @Param itemId path string true "Item ID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /v1/shop/items/{itemId} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
	}

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	item := &domain.Item{
		ID:          itemID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	if err := h.itemUsecase.Update(c.Request().Context(), item); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete removes a catalog item
// @Summary Delete a catalog item
// @Tags shop
// @Produce json
// @Param itemId path string true "Item ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/shop/items/{itemId} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
	}

	if err := h.itemUsecase.Delete(c.Request().Context(), itemID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Item deleted"})
}

// Seed inserts the sample catalog
// @Summary Seed sample items
// @Tags shop
// @Produce json
// @Success 200 {object} SeedResponse
// @Router /v1/shop/items/seed [post]
func (h *ItemHandler) Seed(c echo.Context) error {
	inserted, err := h.itemUsecase.Seed(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, SeedResponse{
		Inserted: inserted,
		Message:  "Sample items added",
	})
}
