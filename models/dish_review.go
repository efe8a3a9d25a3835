package models

import "time"

// DishReview is one customer's rating of a dish. A customer reviews a given
// dish at most once.
type DishReview struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DishID     uint      `gorm:"not null;uniqueIndex:idx_dish_customer_review" json:"dish_id"`
	Dish       Dish      `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE" json:"-"`
	CustomerID uint      `gorm:"not null;uniqueIndex:idx_dish_customer_review" json:"customer_id"`
	Customer   User      `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	Rating     int       `gorm:"not null" json:"rating"`
	ReviewText string    `gorm:"type:text" json:"review_text"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
