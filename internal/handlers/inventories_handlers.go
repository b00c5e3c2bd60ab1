package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"instock/internal/models"
	"instock/internal/services"
)

// InventoryHandlers handles inventory-related HTTP requests
type InventoryHandlers struct {
	inventoryService services.InventoryService
}

// NewInventoryHandlers creates a new inventory handlers instance
func NewInventoryHandlers(inventoryService services.InventoryService) *InventoryHandlers {
	return &InventoryHandlers{inventoryService: inventoryService}
}

// InventoryRequest represents the inventory create/update payload. Quantity
// arrives as a string and is validated digits-only before conversion.
type InventoryRequest struct {
	WarehouseID int    `json:"warehouse_id"`
	ItemName    string `json:"item_name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Quantity    string `json:"quantity"`
}

func (req *InventoryRequest) toInput() *services.InventoryInput {
	return &services.InventoryInput{
		WarehouseID: req.WarehouseID,
		ItemName:    req.ItemName,
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
		Quantity:    req.Quantity,
	}
}

// ListInventories handles getting all inventory rows joined with their
// warehouse
func (h *InventoryHandlers) ListInventories(c echo.Context) error {
	inventories, err := h.inventoryService.List(c.Request().Context())
	if err != nil {
		return httpError(err, "")
	}
	if inventories == nil {
		inventories = []*models.InventoryDetail{}
	}
	return c.JSON(http.StatusOK, inventories)
}

// SearchInventories handles keyword search across the joined projection
func (h *InventoryHandlers) SearchInventories(c echo.Context) error {
	inventories, err := h.inventoryService.Search(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return httpError(err, "")
	}
	if inventories == nil {
		inventories = []*models.InventoryDetail{}
	}
	return c.JSON(http.StatusOK, inventories)
}

// GetInventory handles getting a joined inventory record by ID
func (h *InventoryHandlers) GetInventory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	inventory, err := h.inventoryService.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err, "Inventory item not found")
	}
	return c.JSON(http.StatusOK, inventory)
}

// CreateInventory handles creating a new inventory item
func (h *InventoryHandlers) CreateInventory(c echo.Context) error {
	var req InventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	created, err := h.inventoryService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return httpError(err, "")
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateInventory handles a full-record inventory update
func (h *InventoryHandlers) UpdateInventory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req InventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	updated, err := h.inventoryService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return httpError(err, "Inventory item not found")
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteInventory handles deleting an inventory item
func (h *InventoryHandlers) DeleteInventory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.inventoryService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err, "Inventory item not found")
	}
	return c.NoContent(http.StatusNoContent)
}
