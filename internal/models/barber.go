package models

import "time"

type Barber struct {
	ID         string `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	LocationID string `gorm:"size:36;index;not null" bson:"locationId" json:"location_id"`

	Name     string `gorm:"size:100;not null" bson:"name" json:"name"`
	Photo    string `gorm:"size:255" bson:"photo" json:"photo"`
	IsActive bool   `gorm:"default:true" bson:"isActive" json:"is_active"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}
