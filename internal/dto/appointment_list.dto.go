package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type AppointmentListDTO struct {
	ID               string     `json:"id"`
	Date             string     `json:"date"`
	Time             string     `json:"time"`
	EndTime          string     `json:"end_time"`
	Duration         int        `json:"duration"`
	Status           string     `json:"status"`
	BarberID         string     `json:"barber_id"`
	BarberName       string     `json:"barber_name"`
	LocationID       string     `json:"location_id"`
	LocationName     string     `json:"location_name"`
	Amount           int64      `json:"amount"`
	PaymentID        string     `json:"payment_id"`
	ServiceCompleted bool       `json:"service_completed"`
	PointsAwarded    bool       `json:"points_awarded"`
	CanCancel        bool       `json:"can_cancel"`
	CreatedAt        time.Time  `json:"created_at"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

func FromAppointment(ap models.Appointment, canCancel bool) AppointmentListDTO {
	end := ap.Time
	if t, err := time.Parse("15:04", ap.Time); err == nil {
		end = t.Add(time.Duration(ap.Duration) * time.Minute).Format("15:04")
	}

	return AppointmentListDTO{
		ID:               ap.ID,
		Date:             ap.Date,
		Time:             ap.Time,
		EndTime:          end,
		Duration:         ap.Duration,
		Status:           ap.Status,
		BarberID:         ap.BarberID,
		BarberName:       ap.BarberName,
		LocationID:       ap.LocationID,
		LocationName:     ap.LocationName,
		Amount:           ap.Amount,
		PaymentID:        ap.PaymentID,
		ServiceCompleted: ap.ServiceCompleted,
		PointsAwarded:    ap.PointsAwarded,
		CanCancel:        canCancel,
		CreatedAt:        ap.CreatedAt,
		CancelledAt:      ap.CancelledAt,
		CompletedAt:      ap.CompletedAt,
	}
}
