package models

import "time"

const (
	PointsServiceCompleted = "service_completed"
	PointsRewardRedeemed   = "reward_redeemed"
)

// PointsHistory is append-only.
type PointsHistory struct {
	ID string `gorm:"primaryKey;size:36" bson:"_id" json:"id"`

	UserID        string `gorm:"size:36;index;not null" bson:"userId" json:"user_id"`
	Points        int    `gorm:"not null" bson:"points" json:"points"`
	Type          string `gorm:"size:30;not null" bson:"type" json:"type"`
	Description   string `gorm:"size:255" bson:"description" json:"description"`
	AppointmentID string `gorm:"size:36" bson:"appointmentId,omitempty" json:"appointment_id,omitempty"`
	RewardID      string `gorm:"size:36" bson:"rewardId,omitempty" json:"reward_id,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

func (PointsHistory) TableName() string {
	return "points_history"
}
