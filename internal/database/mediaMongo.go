package database

import (
	"context"
	"errors"

	"github.com/creativeclicks/studio-backend/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mediaRepository struct {
	coll *mongo.Collection
}

func NewMediaRepository(db *mongo.Database) MediaRepository {
	return &mediaRepository{coll: db.Collection(collMediaItems)}
}

func (r *mediaRepository) Create(ctx context.Context, item *entity.MediaItem) error {
	_, err := r.coll.InsertOne(ctx, item)
	return err
}

func (r *mediaRepository) GetByID(ctx context.Context, id string) (*entity.MediaItem, error) {
	var item entity.MediaItem
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrMediaNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *mediaRepository) GetAll(ctx context.Context, category entity.MediaCategory) ([]*entity.MediaItem, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "uploaded_at", Value: -1}}).
		SetLimit(listLimit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*entity.MediaItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mediaRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrMediaNotFound
	}
	return nil
}
