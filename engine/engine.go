// Package engine owns the order lifecycle: line items, the running total,
// pick-up deadlines and the cascade rules between orders, order items and
// inventories. Every mutation runs as one all-or-nothing transaction.
// Quantity deltas are applied with guarded in-database integer arithmetic;
// totals are computed as exact decimals from rows read in the same
// transaction.
package engine

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"food-order-api/models"
	"food-order-api/pickup"
)

// ItemSelection pairs an inventory id with a selected quantity.
type ItemSelection struct {
	InventoryID uint `json:"inventory_id" binding:"required"`
	NumSel      int  `json:"num_sel" binding:"required"`
}

type Engine struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// CreateOrder creates a draft order, adds every selection to it, then
// stamps the pick-up deadline and marks the order valid. Any bad selection
// rolls the whole thing back: no order row survives a failed create.
func (e *Engine) CreateOrder(items []ItemSelection) (*models.Order, error) {
	now := time.Now()
	var orderID uint
	err := e.db.Transaction(func(tx *gorm.DB) error {
		order := models.Order{TotalPrice: decimal.Zero}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, sel := range items {
			if err := addItem(tx, order.ID, sel.InventoryID, sel.NumSel); err != nil {
				return err
			}
		}
		pickUpBy := pickup.By(now)
		if err := tx.Model(&order).Updates(map[string]any{
			"time_created": now,
			"pick_up_by":   pickUpBy,
			"valid":        true,
		}).Error; err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e.GetOrder(orderID)
}

// AddOrderItem adds an inventory to an existing order as a fresh line item.
func (e *Engine) AddOrderItem(orderID, inventoryID uint, numSel int) (*models.OrderItem, error) {
	var item models.OrderItem
	err := e.db.Transaction(func(tx *gorm.DB) error {
		if err := addItem(tx, orderID, inventoryID, numSel); err != nil {
			return err
		}
		return tx.Where("order_id = ? AND inventory_id = ?", orderID, inventoryID).First(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// addItem creates the order item and applies its price to the order total
// inside the caller's transaction. The total is adjusted with in-database
// arithmetic: the item row, the new total and both collection memberships
// land together or not at all.
func addItem(tx *gorm.DB, orderID, inventoryID uint, numSel int) error {
	if numSel <= 0 {
		return ErrQuantityNotPositive
	}
	var order models.Order
	if err := tx.First(&order, orderID).Error; err != nil {
		return notFound(err, ErrOrderNotFound)
	}
	var inventory models.Inventory
	if err := tx.First(&inventory, inventoryID).Error; err != nil {
		return notFound(err, ErrInventoryNotFound)
	}

	var existing models.OrderItem
	err := tx.Where("order_id = ? AND inventory_id = ?", orderID, inventoryID).First(&existing).Error
	if err == nil {
		return ErrOrderItemExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	item := models.OrderItem{OrderID: orderID, InventoryID: inventoryID, NumSel: numSel}
	if err := tx.Create(&item).Error; err != nil {
		return err
	}

	// totals are decimal arithmetic in Go, never database floats; the
	// order row was read in this same transaction
	price := inventory.Price.Mul(decimal.NewFromInt(int64(numSel)))
	return tx.Model(&order).Update("total_price", order.TotalPrice.Add(price)).Error
}

// IncreaseOrderItem bumps a line item's quantity by one.
func (e *Engine) IncreaseOrderItem(orderID, inventoryID uint) (*models.Order, error) {
	return e.UpdateOrderItem(orderID, inventoryID, 1)
}

// DecreaseOrderItem drops a line item's quantity by one.
func (e *Engine) DecreaseOrderItem(orderID, inventoryID uint) (*models.Order, error) {
	return e.UpdateOrderItem(orderID, inventoryID, -1)
}

// UpdateOrderItem applies a quantity delta and the matching price delta in
// one transaction. A delta that would push the quantity below zero is
// rejected; a delta that lands it exactly on zero removes the line item and,
// when it was the last one, the order itself. The returned order is the
// state after the update, or the last-known state when the order was
// removed by the cleanup.
func (e *Engine) UpdateOrderItem(orderID, inventoryID uint, delta int) (*models.Order, error) {
	var snapshot models.Order
	err := e.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return notFound(err, ErrOrderNotFound)
		}
		var inventory models.Inventory
		if err := tx.First(&inventory, inventoryID).Error; err != nil {
			return notFound(err, ErrInventoryNotFound)
		}
		var item models.OrderItem
		if err := tx.Where("order_id = ? AND inventory_id = ?", orderID, inventoryID).
			First(&item).Error; err != nil {
			return notFound(err, ErrOrderItemNotFound)
		}

		// the quantity delta is applied in-database, guarded against going
		// negative, so a racing update can never resurrect a stale num_sel
		res := tx.Model(&models.OrderItem{}).
			Where("id = ? AND num_sel + ? >= 0", item.ID, delta).
			Update("num_sel", gorm.Expr("num_sel + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrQuantityBelowZero
		}
		if err := tx.First(&item, item.ID).Error; err != nil {
			return err
		}

		diff := inventory.Price.Mul(decimal.NewFromInt(int64(delta)))
		newTotal := order.TotalPrice.Add(diff)
		if err := tx.Model(&order).Update("total_price", newTotal).Error; err != nil {
			return err
		}

		if item.NumSel == 0 {
			orderGone, err := removeItem(tx, orderID, &item)
			if err != nil {
				return err
			}
			if orderGone {
				snapshot = order
				snapshot.TotalPrice = newTotal
				snapshot.OrderItems = []models.OrderItem{}
				return nil
			}
		}
		return tx.Preload("OrderItems.Inventory").First(&snapshot, orderID).Error
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// DeleteOrderItem removes a line item whose quantity has reached zero.
// Deleting the last item fans out to the order itself.
func (e *Engine) DeleteOrderItem(orderID, inventoryID uint) (*models.Order, error) {
	var snapshot models.Order
	err := e.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return notFound(err, ErrOrderNotFound)
		}
		var item models.OrderItem
		if err := tx.Where("order_id = ? AND inventory_id = ?", orderID, inventoryID).
			First(&item).Error; err != nil {
			return notFound(err, ErrOrderItemNotFound)
		}
		if item.NumSel > 0 {
			return ErrItemStillSelected
		}

		orderGone, err := removeItem(tx, orderID, &item)
		if err != nil {
			return err
		}
		if orderGone {
			snapshot = order
			snapshot.OrderItems = []models.OrderItem{}
			return nil
		}
		return tx.Preload("OrderItems.Inventory").First(&snapshot, orderID).Error
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// removeItem is the explicit cascade fan-out: it deletes the order item
// and, when the order has no items left, the order row too. Both parents'
// deletion paths funnel through the same rule.
func removeItem(tx *gorm.DB, orderID uint, item *models.OrderItem) (orderGone bool, err error) {
	if err := tx.Delete(item).Error; err != nil {
		return false, err
	}
	var remaining int64
	if err := tx.Model(&models.OrderItem{}).Where("order_id = ?", orderID).Count(&remaining).Error; err != nil {
		return false, err
	}
	if remaining > 0 {
		return false, nil
	}
	if err := tx.Delete(&models.Order{}, orderID).Error; err != nil {
		return false, err
	}
	return true, nil
}

// SubmitOrder records who the order is for, restamps the creation time and
// pick-up deadline, and marks the order valid. It does not re-check that
// the order still has items.
func (e *Engine) SubmitOrder(orderID uint, userName string) (*models.Order, error) {
	now := time.Now()
	err := e.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return notFound(err, ErrOrderNotFound)
		}
		return tx.Model(&order).Updates(map[string]any{
			"user_name":    userName,
			"time_created": now,
			"pick_up_by":   pickup.By(now),
			"valid":        true,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return e.GetOrder(orderID)
}

// DeleteOrder removes an order and all of its line items, returning the
// order as it stood just before deletion.
func (e *Engine) DeleteOrder(orderID uint) (*models.Order, error) {
	var snapshot models.Order
	err := e.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("OrderItems.Inventory").First(&snapshot, orderID).Error; err != nil {
			return notFound(err, ErrOrderNotFound)
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, orderID).Error
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetOrder fetches one order with its line items and their inventories.
func (e *Engine) GetOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := e.db.Preload("OrderItems.Inventory").First(&order, orderID).Error; err != nil {
		return nil, notFound(err, ErrOrderNotFound)
	}
	return &order, nil
}

// ListOrders returns every order with its line items and their inventories.
func (e *Engine) ListOrders() ([]models.Order, error) {
	orders := []models.Order{}
	if err := e.db.Preload("OrderItems.Inventory").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListOrderItems returns every live line item.
func (e *Engine) ListOrderItems() ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	if err := e.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
