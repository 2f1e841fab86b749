package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order accumulates line items and tracks their combined price. An order
// starts as an invalid draft (Valid=false, TotalPrice=0) and becomes valid
// once placed or submitted. TotalPrice always equals the sum of
// price*num_sel over the live order items; every quantity change carries
// its price delta in the same transaction.
type Order struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserName    string          `json:"user_name,omitempty"`
	TimeCreated *time.Time      `json:"time_created"`
	PickUpBy    *time.Time      `json:"pick_up_by"`
	TotalPrice  decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	Valid       bool            `json:"valid" gorm:"not null"`
	OrderItems  []OrderItem     `json:"order_items" gorm:"constraint:OnDelete:CASCADE"`
}

// OrderItem ties one inventory to one order with a selected quantity.
// The row dies when its quantity reaches zero, and its death may take the
// parent order with it. Either parent's deletion destroys the row.
type OrderItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	NumSel      int       `json:"num_sel" gorm:"not null"`
	InventoryID uint      `json:"inventory_id" gorm:"not null"`
	Inventory   Inventory `json:"-" gorm:"foreignKey:InventoryID;constraint:OnDelete:CASCADE"`
	OrderID     uint      `json:"-" gorm:"not null"`
}

// OrderItemView is the line-item shape inside the simple order projection:
// just what a pickup screen needs to render.
type OrderItemView struct {
	Image       string `json:"image"`
	Name        string `json:"name"`
	SelectedNum int    `json:"selectedNum"`
}

// OrderView is the simple order projection used by listings and creation.
type OrderView struct {
	ID          uint            `json:"id"`
	UserName    string          `json:"user_name,omitempty"`
	TimeCreated *time.Time      `json:"time_created"`
	PickUpBy    *time.Time      `json:"pick_up_by"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Valid       bool            `json:"valid"`
	OrderItems  []OrderItemView `json:"order_items"`
}

// View builds the simple projection. OrderItems.Inventory must be
// preloaded.
func (o *Order) View() OrderView {
	items := make([]OrderItemView, 0, len(o.OrderItems))
	for _, oi := range o.OrderItems {
		items = append(items, OrderItemView{
			Image:       oi.Inventory.Image,
			Name:        oi.Inventory.Name,
			SelectedNum: oi.NumSel,
		})
	}
	return OrderView{
		ID:          o.ID,
		UserName:    o.UserName,
		TimeCreated: o.TimeCreated,
		PickUpBy:    o.PickUpBy,
		TotalPrice:  o.TotalPrice,
		Valid:       o.Valid,
		OrderItems:  items,
	}
}
