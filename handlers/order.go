package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-order-api/config"
	"food-order-api/engine"
	"food-order-api/models"
)

type CreateOrderRequest struct {
	Inventories []engine.ItemSelection `json:"inventories" binding:"required,min=1,dive"`
}

type AddOrderItemRequest struct {
	InventoryID uint `json:"inventory_id" binding:"required"`
	NumSel      int  `json:"num_sel" binding:"required"`
}

type SubmitOrderRequest struct {
	UserName string `json:"user_name" binding:"required"`
}

// ListOrders returns all orders in the simple projection.
func ListOrders(c *gin.Context) {
	orders, err := engine.New(config.DB).ListOrders()
	if err != nil {
		engineError(c, err)
		return
	}
	views := make([]models.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, orders[i].View())
	}
	c.JSON(http.StatusOK, gin.H{"orders": views})
}

// CreateOrder builds a new order from a list of inventory selections.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := engine.New(config.DB).CreateOrder(req.Inventories)
	if err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order.View())
}

// GetOrder returns one order in the simple projection.
func GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := engine.New(config.DB).GetOrder(id)
	if err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, order.View())
}

// AddOrderItem adds one new line item to an existing order.
func AddOrderItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := engine.New(config.DB).AddOrderItem(id, req.InventoryID, req.NumSel)
	if err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// SubmitOrder stamps the pickup deadline and submitting user on an order.
func SubmitOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := engine.New(config.DB).SubmitOrder(id, req.UserName)
	if err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes an order and its line items, returning the order as
// it stood before deletion.
func DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := engine.New(config.DB).DeleteOrder(id)
	if err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
