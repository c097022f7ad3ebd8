package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// PointsPerService is credited once per completed appointment.
const PointsPerService = 20

// PointsAward is applied by the store as one conditional unit: the
// appointment's pointsAwarded flag flips false->true, the user balance
// grows and History is appended, or nothing happens.
type PointsAward struct {
	AppointmentID string
	UserID        string
	Points        int
	History       models.PointsHistory
}

func NewPointsAward(ap *models.Appointment, now time.Time) PointsAward {
	return PointsAward{
		AppointmentID: ap.ID,
		UserID:        ap.UserID,
		Points:        PointsPerService,
		History: models.PointsHistory{
			ID:            models.NewID(),
			UserID:        ap.UserID,
			Points:        PointsPerService,
			Type:          models.PointsServiceCompleted,
			Description:   "Service completed",
			AppointmentID: ap.ID,
			CreatedAt:     now,
		},
	}
}
