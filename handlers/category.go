package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food-order-api/config"
	"food-order-api/models"
)

type AssignCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// AssignCategory attaches a category to an inventory by name, creating the
// category first when no row with that name exists. Attaching an
// already-attached category is a no-op: the join append upserts with
// ON CONFLICT DO NOTHING.
func AssignCategory(c *gin.Context) {
	var inventory models.Inventory
	if err := config.DB.First(&inventory, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory not found"})
		return
	}

	var req AssignCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category models.Category
	err := config.DB.Where("name = ?", req.Name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		category = models.Category{Name: req.Name, Description: req.Description}
		err = config.DB.Create(&category).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve category"})
		return
	}

	if err := config.DB.Model(&inventory).Association("Categories").Append(&category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign category"})
		return
	}

	config.DB.Preload("Inventories").First(&category, category.ID)
	c.JSON(http.StatusOK, category)
}

// ListCategories returns all categories with their inventories.
func ListCategories(c *gin.Context) {
	var categories []models.Category
	config.DB.Preload("Inventories").Find(&categories)
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategory returns one category with its inventories.
func GetCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.Preload("Inventories").First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// BatchCategories fetches several categories at once by positional query
// params c0, c1, ... cN-1; any missing id fails the whole batch.
func BatchCategories(c *gin.Context) {
	categories := []models.Category{}
	for i := 0; ; i++ {
		id := c.Query(fmt.Sprintf("c%d", i))
		if id == "" {
			break
		}
		var category models.Category
		if err := config.DB.Preload("Inventories").First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		categories = append(categories, category)
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
