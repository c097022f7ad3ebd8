package models

import "time"

type Location struct {
	ID      string `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	Name    string `gorm:"size:100;not null" bson:"name" json:"name"`
	Address string `gorm:"size:255" bson:"address" json:"address"`
	Phone   string `gorm:"size:20" bson:"phone" json:"phone"`
	Photo   string `gorm:"size:255" bson:"photo" json:"photo"`
	IsOpen  bool   `gorm:"default:true" bson:"isOpen" json:"is_open"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}
