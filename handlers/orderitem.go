package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-order-api/config"
	"food-order-api/engine"
)

// ListOrderItems returns every live line item across all orders.
func ListOrderItems(c *gin.Context) {
	items, err := engine.New(config.DB).ListOrderItems()
	if err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orderitems": items})
}

// IncreaseOrderItem bumps a line item's quantity by one.
func IncreaseOrderItem(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	inventoryID, ok := pathID(c, "inventoryId")
	if !ok {
		return
	}
	order, err := engine.New(config.DB).IncreaseOrderItem(orderID, inventoryID)
	if err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DecreaseOrderItem drops a line item's quantity by one, removing the item
// (and an emptied order) when it reaches zero.
func DecreaseOrderItem(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	inventoryID, ok := pathID(c, "inventoryId")
	if !ok {
		return
	}
	order, err := engine.New(config.DB).DecreaseOrderItem(orderID, inventoryID)
	if err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrderItem removes a line item whose quantity has reached zero.
func DeleteOrderItem(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	inventoryID, ok := pathID(c, "inventoryId")
	if !ok {
		return
	}
	order, err := engine.New(config.DB).DeleteOrderItem(orderID, inventoryID)
	if err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
