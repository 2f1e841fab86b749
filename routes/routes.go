package routes

import (
	"github.com/gin-gonic/gin"

	"food-order-api/handlers"
)

func SetupRoutes(r *gin.Engine) {
	// ── Catalog ────────────────────────────────────────────────────
	inventories := r.Group("/inventories")
	{
		inventories.GET("/", handlers.ListInventories)
		inventories.POST("/", handlers.CreateInventory)
		inventories.GET("/full/", handlers.ListInventoriesFull)
		inventories.GET("/:id/", handlers.GetInventory)
		inventories.POST("/:id/category/", handlers.AssignCategory)
	}

	categories := r.Group("/categories")
	{
		categories.GET("/", handlers.ListCategories)
		categories.GET("/m/", handlers.BatchCategories)
		categories.GET("/:id/", handlers.GetCategory)
	}

	// ── Menus ──────────────────────────────────────────────────────
	menus := r.Group("/menus")
	{
		menus.GET("/", handlers.ListMenus)
		menus.POST("/", handlers.CreateMenu)
		menus.GET("/:id/", handlers.GetMenu)
		menus.DELETE("/:id/", handlers.DeleteMenu)
	}

	// ── Orders ─────────────────────────────────────────────────────
	orders := r.Group("/orders")
	{
		orders.GET("/", handlers.ListOrders)
		orders.POST("/", handlers.CreateOrder)
		orders.POST("/submit/:id/", handlers.SubmitOrder)
		orders.GET("/:id/", handlers.GetOrder)
		orders.POST("/:id/", handlers.AddOrderItem)
		orders.DELETE("/:id/", handlers.DeleteOrder)
	}

	// ── Order items ────────────────────────────────────────────────
	orderitems := r.Group("/orderitems")
	{
		orderitems.GET("/", handlers.ListOrderItems)
		orderitems.POST("/:orderId/:inventoryId/increase/", handlers.IncreaseOrderItem)
		orderitems.POST("/:orderId/:inventoryId/decrease/", handlers.DecreaseOrderItem)
		orderitems.DELETE("/:orderId/:inventoryId/", handlers.DeleteOrderItem)
	}
}
