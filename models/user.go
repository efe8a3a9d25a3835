package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	UserTypeChef     = "chef"
	UserTypeConsumer = "consumer"
)

// User is the shared account record. Exactly one of Chef or Consumer exists
// per user; which one it is decides the user's role everywhere else.
type User struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	FirstName         string        `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName          string        `gorm:"type:varchar(100);not null" json:"last_name"`
	Email             string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PhoneNumber       string        `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone_number"`
	Password          string        `gorm:"type:varchar(255);not null" json:"-"`
	ProfilePictureURL *string       `gorm:"type:varchar(500)" json:"profile_picture_url"`
	AddressLongitude  *float64      `gorm:"type:decimal(9,6)" json:"address_longitude"`
	AddressLatitude   *float64      `gorm:"type:decimal(9,6)" json:"address_latitude"`
	IsActive          bool          `gorm:"not null;default:false" json:"is_active"`
	IsStaff           bool          `gorm:"not null;default:false" json:"-"`
	Chef              *Chef         `gorm:"foreignKey:UserID" json:"chef,omitempty"`
	Consumer          *Consumer     `gorm:"foreignKey:UserID" json:"consumer,omitempty"`
	PaymentCards      []PaymentCard `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt         time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time     `gorm:"not null" json:"updated_at"`
}

// UserType reports which role profile the user carries. Chef and Consumer
// must be preloaded; an empty string means neither is present.
func (u *User) UserType() string {
	if u.Chef != nil {
		return UserTypeChef
	}
	if u.Consumer != nil {
		return UserTypeConsumer
	}
	return ""
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Chef is the seller-side profile.
type Chef struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	UserID             uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	Bio                string          `gorm:"type:text" json:"bio"`
	CuisineSpecialties string          `gorm:"type:text" json:"cuisine_specialties"`
	Rating             decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0" json:"rating"`
	TotalReviews       int             `gorm:"not null;default:0" json:"total_reviews"`
	IsVerified         bool            `gorm:"not null;default:false" json:"is_verified"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`
}

// Consumer is the buyer-side profile.
type Consumer struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	DietaryPreferences string    `gorm:"type:text" json:"dietary_preferences"`
	Allergies          string    `gorm:"type:text" json:"allergies"`
	TotalOrders        int       `gorm:"not null;default:0" json:"total_orders"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
}
