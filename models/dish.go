package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dish is a chef's catalog entry. Dish names are unique per chef, not
// globally.
type Dish struct {
	ID              uint                 `gorm:"primaryKey" json:"id"`
	ChefID          uint                 `gorm:"not null;uniqueIndex:idx_chef_dish_name" json:"chef_id"`
	Chef            User                 `gorm:"foreignKey:ChefID;constraint:OnDelete:CASCADE" json:"-"`
	Name            string               `gorm:"type:varchar(255);not null;uniqueIndex:idx_chef_dish_name" json:"name"`
	Description     string               `gorm:"type:text;not null" json:"description"`
	CategoryID      uint                 `gorm:"index;not null" json:"category_id"`
	Category        Category             `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Price           decimal.Decimal      `gorm:"type:decimal(10,2);not null" json:"price"`
	IsAvailable     bool                 `gorm:"not null;default:true" json:"is_available"`
	PreparationTime int                  `gorm:"not null" json:"preparation_time"`
	Images          []DishImage          `gorm:"foreignKey:DishID" json:"images,omitempty"`
	Reviews         []DishReview         `gorm:"foreignKey:DishID" json:"reviews,omitempty"`
	VarietySections []DishVarietySection `gorm:"foreignKey:DishID" json:"variety_sections,omitempty"`
	CreatedAt       time.Time            `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time            `gorm:"not null" json:"updated_at"`
}

// AverageRating is the mean of the loaded reviews, 0 when there are none.
func (d *Dish) AverageRating() float64 {
	if len(d.Reviews) == 0 {
		return 0
	}
	sum := 0
	for i := range d.Reviews {
		sum += d.Reviews[i].Rating
	}
	return float64(sum) / float64(len(d.Reviews))
}

// DishImage is one gallery entry; at most one should be primary.
type DishImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DishID    uint      `gorm:"index;not null" json:"dish_id"`
	Dish      Dish      `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE" json:"-"`
	ImageURL  string    `gorm:"type:varchar(500);not null" json:"image_url"`
	IsPrimary bool      `gorm:"not null;default:false" json:"is_primary"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
