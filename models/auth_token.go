package models

import "time"

// AuthToken is the opaque bearer token backing authenticated requests. One
// row per user; deleting the row logs the user out everywhere at once.
type AuthToken struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)" json:"key"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
