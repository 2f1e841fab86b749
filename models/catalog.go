package models

import "github.com/shopspring/decimal"

// Inventory is a purchasable item in the catalog. It sits in the middle of
// the entity graph: categorized via a join table, grouped into menus via a
// second join table, and referenced by order items. Deleting an inventory
// removes its order items through the FK cascade.
type Inventory struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Image       string          `json:"image" gorm:"not null"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Categories  []Category      `json:"categories,omitempty" gorm:"many2many:association_category"`
	Menus       []Menu          `json:"menus,omitempty" gorm:"many2many:association_menu"`
	OrderItems  []OrderItem     `json:"order_items,omitempty"`
}

type Category struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"uniqueIndex;not null"`
	Description string      `json:"description" gorm:"not null"`
	Inventories []Inventory `json:"inventories,omitempty" gorm:"many2many:association_category"`
}

// InventoryRender is the shallow projection the storefront renders: the
// first category id and the first live order item's quantity, zero when
// there is none.
type InventoryRender struct {
	ID          uint            `json:"id"`
	Image       string          `json:"image"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    uint            `json:"category"`
	SelectedNum int             `json:"selectedNum"`
}

// ForRender builds the render projection. Categories and OrderItems must be
// preloaded for the category/selectedNum fields to be populated.
func (i *Inventory) ForRender() InventoryRender {
	v := InventoryRender{
		ID:          i.ID,
		Image:       i.Image,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
	}
	if len(i.Categories) > 0 {
		v.Category = i.Categories[0].ID
	}
	if len(i.OrderItems) > 0 {
		v.SelectedNum = i.OrderItems[0].NumSel
	}
	return v
}
