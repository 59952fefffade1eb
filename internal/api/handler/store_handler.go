package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/catalog-api/internal/api/metrics"
	"github.com/mercadito/catalog-api/internal/core/domain"
	"github.com/mercadito/catalog-api/internal/core/ports"
)

// StoreHandler handles HTTP requests for store operations.
type StoreHandler struct {
	service ports.StoreService
}

func NewStoreHandler(service ports.StoreService) *StoreHandler {
	return &StoreHandler{service: service}
}

type listStoresResponse struct {
	Stores []*domain.Store `json:"stores"`
}

// Get handles GET /store/:name.
//
// @Summary      Get a store by name
// @Tags         stores
// @Produce      json
// @Param        name  path      string  true  "Store name"
// @Success      200   {object}  domain.Store
// @Failure      404   {object}  errorResponse
// @Router       /store/{name} [get]
func (h *StoreHandler) Get(c echo.Context) error {
	store, err := h.service.Get(c.Request().Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "store not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, store)
}

// List handles GET /stores.
//
// @Summary      List all stores with their items
// @Tags         stores
// @Produce      json
// @Success      200  {object}  listStoresResponse
// @Router       /stores [get]
func (h *StoreHandler) List(c echo.Context) error {
	stores, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if stores == nil {
		stores = []*domain.Store{}
	}
	return c.JSON(http.StatusOK, listStoresResponse{Stores: stores})
}

// Create handles POST /store/:name.
//
// @Summary      Create a store
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Store name"
// @Success      201   {object}  domain.Store
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /store/{name} [post]
func (h *StoreHandler) Create(c echo.Context) error {
	name := c.Param("name")
	store, err := h.service.Create(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrStoreExists) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "a store with name '" + name + "' already exists"})
		}
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("store", "create").Inc()
	return c.JSON(http.StatusCreated, store)
}

// Delete handles DELETE /store/:name. Missing stores delete as a no-op.
//
// @Summary      Delete a store
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Store name"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Router       /store/{name} [delete]
func (h *StoreHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("store", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "store deleted"})
}
