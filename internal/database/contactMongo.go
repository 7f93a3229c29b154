package database

import (
	"context"

	"github.com/creativeclicks/studio-backend/internal/entity"
	"go.mongodb.org/mongo-driver/mongo"
)

type contactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) ContactRepository {
	return &contactRepository{coll: db.Collection(collContacts)}
}

func (r *contactRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	_, err := r.coll.InsertOne(ctx, message)
	return err
}
