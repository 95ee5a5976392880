package slotRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"easyappointment/models"
)

// FindByProviderAndRange returns the provider's slots whose start time lies
// in [from, to), ordered by start time.
func (r *MongoSlotRepo) FindByProviderAndRange(providerID string, from, to time.Time) ([]models.Slot, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"startTime":  bson.M{"$gte": from, "$lt": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})

	cursor, err := r.slotColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query slots for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots for provider %s: %w", providerID, err)
	}
	return slots, nil
}
