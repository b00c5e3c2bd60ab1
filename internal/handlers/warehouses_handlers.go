package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"instock/internal/models"
	"instock/internal/services"
)

// WarehouseHandlers handles warehouse-related HTTP requests
type WarehouseHandlers struct {
	warehouseService services.WarehouseService
}

// NewWarehouseHandlers creates a new warehouse handlers instance
func NewWarehouseHandlers(warehouseService services.WarehouseService) *WarehouseHandlers {
	return &WarehouseHandlers{warehouseService: warehouseService}
}

// WarehouseRequest represents the warehouse create/update payload. Every
// field is required; updates are full-record replaces.
type WarehouseRequest struct {
	WarehouseName   string `json:"warehouse_name"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Country         string `json:"country"`
	ContactName     string `json:"contact_name"`
	ContactPosition string `json:"contact_position"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
}

func (req *WarehouseRequest) toModel() *models.Warehouse {
	return &models.Warehouse{
		WarehouseName:   req.WarehouseName,
		Address:         req.Address,
		City:            req.City,
		Country:         req.Country,
		ContactName:     req.ContactName,
		ContactPosition: req.ContactPosition,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
	}
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid id format")
	}
	return id, nil
}

// ListWarehouses handles getting all warehouses
func (h *WarehouseHandlers) ListWarehouses(c echo.Context) error {
	warehouses, err := h.warehouseService.List(c.Request().Context())
	if err != nil {
		return httpError(err, "")
	}
	if warehouses == nil {
		warehouses = []*models.Warehouse{}
	}
	return c.JSON(http.StatusOK, warehouses)
}

// SearchWarehouses handles keyword search across warehouse columns
func (h *WarehouseHandlers) SearchWarehouses(c echo.Context) error {
	warehouses, err := h.warehouseService.Search(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return httpError(err, "")
	}
	if warehouses == nil {
		warehouses = []*models.Warehouse{}
	}
	return c.JSON(http.StatusOK, warehouses)
}

// GetWarehouse handles getting warehouse details by ID
func (h *WarehouseHandlers) GetWarehouse(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	warehouse, err := h.warehouseService.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err, "Warehouse not found")
	}
	return c.JSON(http.StatusOK, warehouse)
}

// CreateWarehouse handles creating a new warehouse
func (h *WarehouseHandlers) CreateWarehouse(c echo.Context) error {
	var req WarehouseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	created, err := h.warehouseService.Create(c.Request().Context(), req.toModel())
	if err != nil {
		return httpError(err, "")
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateWarehouse handles a full-record warehouse update
func (h *WarehouseHandlers) UpdateWarehouse(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req WarehouseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	updated, err := h.warehouseService.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		return httpError(err, "Warehouse not found")
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteWarehouse handles deleting a warehouse. Dependent inventory rows are
// removed by the schema's cascade rule.
func (h *WarehouseHandlers) DeleteWarehouse(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.warehouseService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err, "Warehouse not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// ListWarehouseInventories handles getting the inventory rows of one warehouse
func (h *WarehouseHandlers) ListWarehouseInventories(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	inventories, err := h.warehouseService.ListInventories(c.Request().Context(), id)
	if err != nil {
		return httpError(err, "Warehouse not found")
	}
	if inventories == nil {
		inventories = []*models.Inventory{}
	}
	return c.JSON(http.StatusOK, inventories)
}
