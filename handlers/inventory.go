package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"food-order-api/config"
	"food-order-api/models"
)

type CreateInventoryRequest struct {
	Image       string          `json:"image" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price"`
}

// ListInventories returns every inventory in the render projection.
func ListInventories(c *gin.Context) {
	var inventories []models.Inventory
	config.DB.Preload("Categories").Preload("OrderItems").Find(&inventories)

	views := make([]models.InventoryRender, 0, len(inventories))
	for i := range inventories {
		views = append(views, inventories[i].ForRender())
	}
	c.JSON(http.StatusOK, gin.H{"inventories": views})
}

// ListInventoriesFull returns every inventory with its nested categories,
// menus and order items.
func ListInventoriesFull(c *gin.Context) {
	var inventories []models.Inventory
	config.DB.Preload("Categories").Preload("Menus").Preload("OrderItems").Find(&inventories)
	c.JSON(http.StatusOK, gin.H{"inventories": inventories})
}

// CreateInventory adds a new item to the catalog.
func CreateInventory(c *gin.Context) {
	var req CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price cannot be negative"})
		return
	}

	inventory := models.Inventory{
		Image:       req.Image,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := config.DB.Create(&inventory).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory"})
		return
	}
	c.JSON(http.StatusCreated, inventory.ForRender())
}

// GetInventory returns a single inventory in the render projection.
func GetInventory(c *gin.Context) {
	var inventory models.Inventory
	if err := config.DB.Preload("Categories").Preload("OrderItems").
		First(&inventory, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory not found"})
		return
	}
	c.JSON(http.StatusOK, inventory.ForRender())
}
