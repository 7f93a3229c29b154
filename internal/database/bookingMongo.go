package database

import (
	"context"

	"github.com/creativeclicks/studio-backend/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &bookingRepository{coll: db.Collection(collBookings)}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.EventBooking) error {
	_, err := r.coll.InsertOne(ctx, booking)
	return err
}

func (r *bookingRepository) GetAll(ctx context.Context, status entity.BookingStatus) ([]*entity.EventBooking, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "booking_date", Value: -1}}).
		SetLimit(listLimit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []*entity.EventBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
