package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DishVarietySection is a named option group on a dish, e.g. "Size" or
// "Spice level". Section names are unique per dish.
type DishVarietySection struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	DishID      uint                `gorm:"not null;uniqueIndex:idx_dish_section_name" json:"dish_id"`
	Dish        Dish                `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE" json:"-"`
	Name        string              `gorm:"type:varchar(255);not null;uniqueIndex:idx_dish_section_name" json:"name"`
	Description string              `gorm:"type:text" json:"description"`
	IsRequired  bool                `gorm:"not null;default:false" json:"is_required"`
	Options     []DishVarietyOption `gorm:"foreignKey:SectionID" json:"options,omitempty"`
	CreatedAt   time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"not null" json:"updated_at"`
}

// DishVarietyOption is one choice inside a section. The price adjustment may
// be negative. Option names are unique per section.
type DishVarietyOption struct {
	ID              uint               `gorm:"primaryKey" json:"id"`
	SectionID       uint               `gorm:"not null;uniqueIndex:idx_section_option_name" json:"section_id"`
	Section         DishVarietySection `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"-"`
	Name            string             `gorm:"type:varchar(255);not null;uniqueIndex:idx_section_option_name" json:"name"`
	PriceAdjustment decimal.Decimal    `gorm:"type:decimal(10,2);not null;default:0" json:"price_adjustment"`
	IsAvailable     bool               `gorm:"not null;default:true" json:"is_available"`
	CreatedAt       time.Time          `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time          `gorm:"not null" json:"updated_at"`
}
