package database

import (
	"context"
	"errors"

	"github.com/creativeclicks/studio-backend/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type registrationRepository struct {
	coll *mongo.Collection
}

func NewRegistrationRepository(db *mongo.Database) RegistrationRepository {
	return &registrationRepository{coll: db.Collection(collRegistrations)}
}

func (r *registrationRepository) Create(ctx context.Context, registration *entity.WorkshopRegistration) error {
	_, err := r.coll.InsertOne(ctx, registration)
	return err
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*entity.WorkshopRegistration, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *registrationRepository) GetBySessionID(ctx context.Context, sessionID string) (*entity.WorkshopRegistration, error) {
	return r.findOne(ctx, bson.M{"payment_session_id": sessionID})
}

func (r *registrationRepository) Update(ctx context.Context, id string, patch entity.RegistrationPatch) error {
	return r.updateOne(ctx, bson.M{"_id": id}, patch)
}

func (r *registrationRepository) UpdateBySessionID(ctx context.Context, sessionID string, patch entity.RegistrationPatch) error {
	return r.updateOne(ctx, bson.M{"payment_session_id": sessionID}, patch)
}

func (r *registrationRepository) findOne(ctx context.Context, filter bson.M) (*entity.WorkshopRegistration, error) {
	var registration entity.WorkshopRegistration
	err := r.coll.FindOne(ctx, filter).Decode(&registration)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrRegistrationNotFound
		}
		return nil, err
	}
	return &registration, nil
}

func (r *registrationRepository) updateOne(ctx context.Context, filter bson.M, patch entity.RegistrationPatch) error {
	set := bson.M{}
	if patch.PaymentSessionID != nil {
		set["payment_session_id"] = *patch.PaymentSessionID
	}
	if patch.PaymentStatus != nil {
		set["payment_status"] = *patch.PaymentStatus
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return entity.ErrRegistrationNotFound
	}
	return nil
}
