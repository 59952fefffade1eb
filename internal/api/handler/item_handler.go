package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/catalog-api/internal/api/metrics"
	"github.com/mercadito/catalog-api/internal/core/domain"
	"github.com/mercadito/catalog-api/internal/core/ports"
)

// ItemHandler handles HTTP requests for item operations.
type ItemHandler struct {
	service ports.ItemService
}

func NewItemHandler(service ports.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// Get handles GET /item/:name.
//
// @Summary      Get an item by name
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Item name"
// @Success      200   {object}  domain.Item
// @Failure      404   {object}  errorResponse
// @Router       /item/{name} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "item not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// List handles GET /items.
//
// @Summary      List all items
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listItemsResponse
// @Router       /items [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listItemsResponse{Items: items})
}

// Create handles POST /item/:name.
//
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string       true  "Item name"
// @Param        body  body      itemRequest  true  "Price and owning store id"
// @Success      201   {object}  domain.Item
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /item/{name} [post]
func (h *ItemHandler) Create(c echo.Context) error {
	name := c.Param("name")
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	item, err := h.service.Create(c.Request().Context(), ports.ItemInput{
		Name:    name,
		Price:   *req.Price,
		StoreID: req.StoreID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemExists):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "an item with name '" + name + "' already exists"})
		case errors.Is(err, domain.ErrStoreNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "store not found"})
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("item", "create").Inc()
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /item/:name — updates the price of an existing item
// or creates the item when the name is unknown.
//
// @Summary      Create or update an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string       true  "Item name"
// @Param        body  body      itemRequest  true  "Price and owning store id"
// @Success      200   {object}  domain.Item
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /item/{name} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	item, err := h.service.Upsert(c.Request().Context(), ports.ItemInput{
		Name:    c.Param("name"),
		Price:   *req.Price,
		StoreID: req.StoreID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "store not found"})
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("item", "update").Inc()
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /item/:name. Missing items delete as a no-op.
//
// @Summary      Delete an item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Item name"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Router       /item/{name} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("item", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "item deleted"})
}
