package database

import (
	"context"
	"fmt"
	"time"

	"github.com/creativeclicks/studio-backend/config"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collMediaItems    = "media_items"
	collWorkshops     = "workshops"
	collRegistrations = "workshop_registrations"
	collBookings      = "event_bookings"
	collTransactions  = "payment_transactions"
	collContacts      = "contact_messages"
)

// listLimit caps every listing query; the public site never pages past it.
const listLimit = 100

func NewMongoDB(cfg *config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logrus.Info("Successfully connected to MongoDB")
	return client, client.Database(cfg.DBName), nil
}

func Disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logrus.Errorf("error disconnecting from mongodb: %s", err.Error())
	}
}
