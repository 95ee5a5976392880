package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"easyappointment/database"
)

// MongoSlotRepo implements SlotRepository using MongoDB. It holds a handle
// to the bookings collection as well because claim and release span both
// collections inside one transaction.
type MongoSlotRepo struct {
	slotColl    *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoSlotRepo creates a new instance of SlotRepository using MongoDB.
func NewMongoSlotRepo() SlotRepository {
	repo := &MongoSlotRepo{
		slotColl:    database.Collection("slots"),
		bookingColl: database.Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("slot repo: %v", err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for frequently used fields in queries.
func (r *MongoSlotRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "startTime", Value: 1}}},
		{Keys: bson.D{{Key: "bookingId", Value: 1}}},
	}
	if _, err := r.slotColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create slot indexes: %w", err)
	}
	return nil
}
