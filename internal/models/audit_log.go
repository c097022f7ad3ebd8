package models

import "time"

type AuditLog struct {
	ID string `gorm:"primaryKey;size:36" bson:"_id" json:"id"`

	UserID string `gorm:"size:36" bson:"userId,omitempty" json:"user_id"`
	Action string `gorm:"size:50;not null" bson:"action" json:"action"`

	Entity   string `gorm:"size:50" bson:"entity" json:"entity"`
	EntityID string `gorm:"size:36" bson:"entityId,omitempty" json:"entity_id"`
	Metadata string `gorm:"type:text" bson:"metadata,omitempty" json:"metadata"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
