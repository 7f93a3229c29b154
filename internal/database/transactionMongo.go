package database

import (
	"context"
	"errors"

	"github.com/creativeclicks/studio-backend/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type transactionRepository struct {
	coll *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) TransactionRepository {
	return &transactionRepository{coll: db.Collection(collTransactions)}
}

func (r *transactionRepository) Create(ctx context.Context, tx *entity.PaymentTransaction) error {
	_, err := r.coll.InsertOne(ctx, tx)
	return err
}

func (r *transactionRepository) GetBySessionID(ctx context.Context, sessionID string) (*entity.PaymentTransaction, error) {
	var tx entity.PaymentTransaction
	err := r.coll.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&tx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepository) UpdateStatusBySessionID(ctx context.Context, sessionID string, patch entity.TransactionStatusPatch) error {
	set := bson.M{
		"payment_status": patch.PaymentStatus,
		"updated_at":     patch.UpdatedAt,
	}
	if patch.PaymentID != "" {
		set["payment_id"] = patch.PaymentID
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"session_id": sessionID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return entity.ErrTransactionNotFound
	}
	return nil
}
