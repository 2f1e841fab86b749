package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-order-api/assets"
	"food-order-api/config"
	"food-order-api/models"
)

// Registrar stores menu images; wired up in main.
var Registrar *assets.Registrar

type CreateMenuRequest struct {
	ImageData   string `json:"image_data"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Instruction string `json:"instruction"`
}

// withInventories keeps the inventories field a JSON list even for menus
// with nothing attached.
func withInventories(menu *models.Menu) *models.Menu {
	if menu.Inventories == nil {
		menu.Inventories = []models.Inventory{}
	}
	return menu
}

// ListMenus returns all menus with their inventories and image.
func ListMenus(c *gin.Context) {
	var menus []models.Menu
	config.DB.Preload("Inventories").Preload("Image").Find(&menus)
	for i := range menus {
		withInventories(&menus[i])
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

// CreateMenu registers the supplied image and persists a menu referencing
// it. A failed image registration aborts the whole operation: no menu row
// ever points at a broken asset.
func CreateMenu(c *gin.Context) {
	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := Registrar.Create(c.Request.Context(), req.ImageData)
	if err != nil {
		if assets.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		}
		return
	}

	menu := models.Menu{
		Name:        req.Name,
		Description: req.Description,
		Instruction: req.Instruction,
		ImageID:     asset.ID,
	}
	if err := config.DB.Create(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu"})
		return
	}

	config.DB.Preload("Inventories").Preload("Image").First(&menu, menu.ID)
	c.JSON(http.StatusCreated, withInventories(&menu))
}

// GetMenu returns one menu.
func GetMenu(c *gin.Context) {
	var menu models.Menu
	if err := config.DB.Preload("Inventories").Preload("Image").
		First(&menu, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}
	c.JSON(http.StatusOK, withInventories(&menu))
}

// DeleteMenu removes the menu row only; inventories and the stored image
// outlive it.
func DeleteMenu(c *gin.Context) {
	var menu models.Menu
	if err := config.DB.Preload("Inventories").Preload("Image").
		First(&menu, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}
	if err := config.DB.Delete(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu"})
		return
	}
	c.JSON(http.StatusOK, withInventories(&menu))
}
