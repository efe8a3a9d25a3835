package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order. UnitPrice is the dish price captured at
// order time; later dish price changes never touch it. A dish appears at most
// once per order.
type OrderItem struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderPK         uint            `gorm:"not null;uniqueIndex:idx_order_dish" json:"-"`
	Order           Order           `gorm:"foreignKey:OrderPK;constraint:OnDelete:CASCADE" json:"-"`
	DishID          uint            `gorm:"not null;uniqueIndex:idx_order_dish" json:"dish_id"`
	Dish            Dish            `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE" json:"dish"`
	Quantity        int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	SpecialRequests string          `gorm:"type:text" json:"special_requests"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

// Subtotal is quantity times the snapshotted unit price.
func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
