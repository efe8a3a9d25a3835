package models

import "time"

// PaymentCard stores only the last four digits of the card number. The
// presence of at least one card is what marks an account active.
type PaymentCard struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	User           User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CardLast4      string    `gorm:"type:varchar(4);not null" json:"card_last4"`
	CardholderName string    `gorm:"type:varchar(255);not null" json:"cardholder_name"`
	ExpMonth       int       `gorm:"not null" json:"exp_month"`
	ExpYear        int       `gorm:"not null" json:"exp_year"`
	IsDefault      bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
