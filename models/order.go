package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus enumerates the order workflow states.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Order connects a consumer to a chef. OrderID is the public identifier;
// the numeric primary key never leaves the API.
type Order struct {
	ID                    uint            `gorm:"primaryKey" json:"-"`
	OrderID               uuid.UUID       `gorm:"type:varchar(36);uniqueIndex;not null" json:"order_id"`
	CustomerID            uint            `gorm:"index;not null" json:"customer_id"`
	Customer              User            `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	ChefID                uint            `gorm:"index;not null" json:"chef_id"`
	Chef                  User            `gorm:"foreignKey:ChefID;constraint:OnDelete:CASCADE" json:"-"`
	Status                OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	DeliveryAddress       string          `gorm:"type:text;not null" json:"delivery_address"`
	DeliveryLongitude     *float64        `gorm:"type:decimal(9,6)" json:"delivery_longitude"`
	DeliveryLatitude      *float64        `gorm:"type:decimal(9,6)" json:"delivery_latitude"`
	EstimatedDeliveryTime *time.Time      `json:"estimated_delivery_time"`
	SpecialInstructions   string          `gorm:"type:text" json:"special_instructions"`
	Items                 []OrderItem     `gorm:"foreignKey:OrderPK" json:"items,omitempty"`
	CreatedAt             time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"not null" json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderID == uuid.Nil {
		o.OrderID = uuid.New()
	}
	return nil
}
