package models

import "time"

type Reward struct {
	ID string `gorm:"primaryKey;size:36" bson:"_id" json:"id"`

	Title           string `gorm:"size:100;not null" bson:"title" json:"title"`
	Description     string `gorm:"size:255" bson:"description" json:"description"`
	PointsCost      int    `gorm:"not null" bson:"pointsCost" json:"points_cost"`
	DiscountPercent int    `bson:"discountPercent" json:"discount_percent"`
	IsActive        bool   `gorm:"default:true" bson:"isActive" json:"is_active"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}
