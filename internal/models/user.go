package models

import "time"

const (
	RoleClient = "client"
	RoleStaff  = "staff"
)

type User struct {
	ID string `gorm:"primaryKey;size:36" bson:"_id" json:"id"`

	Name         string `gorm:"size:100;not null" bson:"name" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" bson:"email" json:"email"`
	PasswordHash string `gorm:"size:255;not null" bson:"passwordHash" json:"-"`
	Phone        string `gorm:"size:20" bson:"phone" json:"phone"`
	Role         string `gorm:"size:20;default:'client'" bson:"role" json:"role"`

	// Points only moves through the completion award and reward redemption.
	Points int `gorm:"not null;default:0" bson:"points" json:"points"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}
