package database

import (
	"context"
	"errors"

	"github.com/creativeclicks/studio-backend/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type workshopRepository struct {
	coll *mongo.Collection
}

func NewWorkshopRepository(db *mongo.Database) WorkshopRepository {
	return &workshopRepository{coll: db.Collection(collWorkshops)}
}

func (r *workshopRepository) Create(ctx context.Context, workshop *entity.Workshop) error {
	_, err := r.coll.InsertOne(ctx, workshop)
	return err
}

func (r *workshopRepository) GetByID(ctx context.Context, id string) (*entity.Workshop, error) {
	var workshop entity.Workshop
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&workshop)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrWorkshopNotFound
		}
		return nil, err
	}
	return &workshop, nil
}

func (r *workshopRepository) GetAll(ctx context.Context, activeOnly bool) ([]*entity.Workshop, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "start_date", Value: 1}}).
		SetLimit(listLimit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workshops []*entity.Workshop
	if err := cursor.All(ctx, &workshops); err != nil {
		return nil, err
	}
	return workshops, nil
}
