package slotRepo

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"easyappointment/models"
)

// BulkInsert persists a generated slot set in one write.
func (r *MongoSlotRepo) BulkInsert(slots []models.Slot) error {
	if len(slots) == 0 {
		return nil
	}
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(slots))
	for i := range slots {
		docs = append(docs, slots[i])
	}
	if _, err := r.slotColl.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to bulk insert %d slots: %w", len(slots), err)
	}
	return nil
}

func (r *MongoSlotRepo) GetByID(id string) (*models.Slot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var slot models.Slot
	if err := r.slotColl.FindOne(ctx, bson.M{"id": id}).Decode(&slot); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch slot with id %s: %w", id, err)
	}
	return &slot, nil
}

// GetByIDs fetches the slots for the given ids. The result may be shorter
// than ids when some do not resolve; callers decide whether that is an error.
func (r *MongoSlotRepo) GetByIDs(ids []string) ([]models.Slot, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.slotColl.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %d slots by id: %w", len(ids), err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}
	return slots, nil
}

// DeleteByProvider removes every slot owned by the provider. Used by the
// cascading provider delete.
func (r *MongoSlotRepo) DeleteByProvider(providerID string) error {
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	if _, err := r.slotColl.DeleteMany(ctx, bson.M{"providerId": providerID}); err != nil {
		return fmt.Errorf("failed to delete slots for provider %s: %w", providerID, err)
	}
	return nil
}

// DeleteByProviderFrom removes the provider's slots starting at from. The
// generator clears from today before inserting so a retried task replaces
// rather than appends.
func (r *MongoSlotRepo) DeleteByProviderFrom(providerID string, from time.Time) error {
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"startTime":  bson.M{"$gte": from},
	}
	if _, err := r.slotColl.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete future slots for provider %s: %w", providerID, err)
	}
	return nil
}
