package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" bson:"_id" json:"id"`

	UserID       string `gorm:"size:36;index;not null" bson:"userId" json:"user_id"`
	BarberID     string `gorm:"size:36;not null" bson:"barberId" json:"barber_id"`
	BarberName   string `gorm:"size:100" bson:"barberName,omitempty" json:"barber_name,omitempty"`
	LocationID   string `gorm:"size:36;not null" bson:"locationId" json:"location_id"`
	LocationName string `gorm:"size:100" bson:"locationName,omitempty" json:"location_name,omitempty"`

	Date     string `gorm:"size:10;not null" bson:"date" json:"date"`
	Time     string `gorm:"size:5;not null" bson:"time" json:"time"`
	Duration int    `gorm:"not null;default:40" bson:"duration" json:"duration"`
	Amount   int64  `gorm:"not null" bson:"amount" json:"amount"`

	Status           string `gorm:"size:20;default:'confirmed'" bson:"status" json:"status"`
	ServiceCompleted bool   `gorm:"default:false" bson:"serviceCompleted" json:"service_completed"`
	PointsAwarded    bool   `gorm:"default:false" bson:"pointsAwarded" json:"points_awarded"`

	PaymentID     string `gorm:"size:100;not null" bson:"paymentId" json:"payment_id"`
	PaymentStatus string `gorm:"size:20" bson:"paymentStatus,omitempty" json:"payment_status,omitempty"`

	CancelledAt *time.Time `bson:"cancelledAt,omitempty" json:"cancelled_at"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completed_at"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}
