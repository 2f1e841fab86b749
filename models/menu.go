package models

import (
	"encoding/json"
	"time"
)

// Menu is a curated group of inventory items with preparation instructions
// and a mandatory image. Deleting a menu removes the menu row only, never
// its inventories or the asset.
type Menu struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"not null"`
	Description string      `json:"description" gorm:"not null"`
	Instruction string      `json:"instruction" gorm:"not null"`
	ImageID     uint        `json:"-" gorm:"not null"`
	Image       Asset       `json:"image" gorm:"foreignKey:ImageID"`
	Inventories []Inventory `json:"inventories" gorm:"many2many:association_menu"`
}

// Asset is an image stored in remote object storage. Rows are immutable:
// creation (which uploads the bytes) is the only mutation path.
type Asset struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	BaseURL   string    `json:"-" gorm:"not null"`
	Salt      string    `json:"-" gorm:"not null"`
	Extension string    `json:"-" gorm:"not null"`
	Width     int       `json:"-" gorm:"not null"`
	Height    int       `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"-" gorm:"not null"`
}

// URL is the public address of the stored object.
func (a Asset) URL() string {
	return a.BaseURL + "/" + a.Salt + "." + a.Extension
}

// MarshalJSON exposes only the public URL and creation time; salt, bucket
// and dimensions stay internal.
func (a Asset) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"url":        a.URL(),
		"created_at": a.CreatedAt,
	})
}
