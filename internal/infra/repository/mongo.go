package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/loyalty"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// MongoRepository stores each aggregate in its own collection with
// camelCase field names, matching the mobile client's documents.
type MongoRepository struct {
	db *mongo.Database

	appointments *mongo.Collection
	users        *mongo.Collection
	history      *mongo.Collection
	locations    *mongo.Collection
	barbers      *mongo.Collection
	rewards      *mongo.Collection
	auditLogs    *mongo.Collection

	now func() time.Time
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		db:           db,
		appointments: db.Collection("appointments"),
		users:        db.Collection("users"),
		history:      db.Collection("pointsHistory"),
		locations:    db.Collection("locations"),
		barbers:      db.Collection("barbers"),
		rewards:      db.Collection("rewards"),
		auditLogs:    db.Collection("auditLogs"),
		now:          time.Now,
	}
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, notFound string) (*T, error) {
	var out T
	if err := coll.FindOne(ctx, filter).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httperr.ErrBusiness(notFound)
		}
		return nil, err
	}
	return &out, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *MongoRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if ap.ID == "" {
		ap.ID = models.NewID()
	}
	now := r.now()
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = now
	}
	ap.UpdatedAt = now

	if _, err := r.appointments.InsertOne(ctx, ap); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}
	return nil
}

func (r *MongoRepository) ExistsActiveAppointment(
	ctx context.Context,
	barberID string,
	date string,
	hhmm string,
) (bool, error) {

	n, err := r.appointments.CountDocuments(ctx, bson.M{
		"barberId": barberID,
		"date":     date,
		"time":     hhmm,
		"status":   bson.M{"$in": activeStatusValues()},
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *MongoRepository) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return findOne[models.Appointment](ctx, r.appointments, bson.M{"_id": id}, "appointment_not_found")
}

func (r *MongoRepository) UpdateAppointment(
	ctx context.Context,
	id string,
	patch domain.AppointmentPatch,
) error {

	set := bson.M{}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.ServiceCompleted != nil {
		set["serviceCompleted"] = *patch.ServiceCompleted
	}
	if patch.CompletedAt != nil {
		set["completedAt"] = *patch.CompletedAt
	}
	if patch.CancelledAt != nil {
		set["cancelledAt"] = *patch.CancelledAt
	}
	if len(set) == 0 {
		return nil
	}
	set["updatedAt"] = r.now()

	res, err := r.appointments.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return nil
}

func (r *MongoRepository) ListAppointmentsByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	return findAll[models.Appointment](ctx, r.appointments,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}}),
	)
}

// AwardPoints runs in a multi-document transaction, which needs a replica
// set deployment.
func (r *MongoRepository) AwardPoints(ctx context.Context, award domain.PointsAward) (bool, error) {
	sess, err := r.db.Client().StartSession()
	if err != nil {
		return false, err
	}
	defer sess.EndSession(ctx)

	res, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		upd, err := r.appointments.UpdateOne(sc,
			bson.M{"_id": award.AppointmentID, "pointsAwarded": false},
			bson.M{"$set": bson.M{"pointsAwarded": true, "updatedAt": r.now()}},
		)
		if err != nil {
			return false, err
		}
		if upd.MatchedCount == 0 {
			return false, nil
		}

		usr, err := r.users.UpdateByID(sc, award.UserID, bson.M{"$inc": bson.M{"points": award.Points}})
		if err != nil {
			return false, err
		}
		if usr.MatchedCount == 0 {
			return false, httperr.ErrBusiness("user_not_found")
		}

		if _, err := r.history.InsertOne(sc, award.History); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}

	awarded, _ := res.(bool)
	return awarded, nil
}

// --------------------------------------------------
// Loyalty
// --------------------------------------------------

func (r *MongoRepository) ListPointsHistory(ctx context.Context, userID string) ([]models.PointsHistory, error) {
	return findAll[models.PointsHistory](ctx, r.history,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
}

func (r *MongoRepository) ListActiveRewards(ctx context.Context) ([]models.Reward, error) {
	return findAll[models.Reward](ctx, r.rewards,
		bson.M{"isActive": true},
		options.Find().SetSort(bson.D{{Key: "pointsCost", Value: 1}}),
	)
}

func (r *MongoRepository) GetReward(ctx context.Context, id string) (*models.Reward, error) {
	return findOne[models.Reward](ctx, r.rewards, bson.M{"_id": id}, "reward_not_found")
}

func (r *MongoRepository) RedeemPoints(ctx context.Context, red loyalty.Redemption) (bool, error) {
	sess, err := r.db.Client().StartSession()
	if err != nil {
		return false, err
	}
	defer sess.EndSession(ctx)

	res, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		upd, err := r.users.UpdateOne(sc,
			bson.M{"_id": red.UserID, "points": bson.M{"$gte": red.Cost}},
			bson.M{"$inc": bson.M{"points": -red.Cost}},
		)
		if err != nil {
			return false, err
		}
		if upd.MatchedCount == 0 {
			return false, nil
		}
		if _, err := r.history.InsertOne(sc, red.History); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}

	redeemed, _ := res.(bool)
	return redeemed, nil
}

// --------------------------------------------------
// Accounts
// --------------------------------------------------

func (r *MongoRepository) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = models.NewID()
	}
	now := r.now()
	u.CreatedAt, u.UpdatedAt = now, now

	if _, err := r.users.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return httperr.ErrBusiness("email_taken")
		}
		return err
	}
	return nil
}

func (r *MongoRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	return findOne[models.User](ctx, r.users, bson.M{"_id": id}, "user_not_found")
}

func (r *MongoRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, r.users, bson.M{"email": email}, "user_not_found")
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *MongoRepository) ListLocations(ctx context.Context) ([]models.Location, error) {
	return findAll[models.Location](ctx, r.locations, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (r *MongoRepository) GetLocation(ctx context.Context, id string) (*models.Location, error) {
	return findOne[models.Location](ctx, r.locations, bson.M{"_id": id}, "location_not_found")
}

func (r *MongoRepository) ListActiveBarbersByLocation(ctx context.Context, locationID string) ([]models.Barber, error) {
	return findAll[models.Barber](ctx, r.barbers,
		bson.M{"locationId": locationID, "isActive": true},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
}

func (r *MongoRepository) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	return findOne[models.Barber](ctx, r.barbers, bson.M{"_id": id}, "barber_not_found")
}

func (r *MongoRepository) CreateLocation(ctx context.Context, l *models.Location) error {
	if l.ID == "" {
		l.ID = models.NewID()
	}
	_, err := r.locations.InsertOne(ctx, l)
	return err
}

func (r *MongoRepository) CreateBarber(ctx context.Context, b *models.Barber) error {
	if b.ID == "" {
		b.ID = models.NewID()
	}
	_, err := r.barbers.InsertOne(ctx, b)
	return err
}

func (r *MongoRepository) CreateReward(ctx context.Context, rw *models.Reward) error {
	if rw.ID == "" {
		rw.ID = models.NewID()
	}
	_, err := r.rewards.InsertOne(ctx, rw)
	return err
}

func (r *MongoRepository) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	if entry.ID == "" {
		entry.ID = models.NewID()
	}
	_, err := r.auditLogs.InsertOne(ctx, entry)
	return err
}

var _ Store = (*MongoRepository)(nil)
