package slotRepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"easyappointment/models"
)

// ErrWriteConflict is returned when a claim or release loses a concurrent
// write race: a slot was taken between read and commit, or the booking left
// the Confirmed state. The whole transaction is rolled back.
var ErrWriteConflict = errors.New("slot write conflict")

// ClaimForBooking inserts the booking document and claims every slot by
// conditionally linking it, all inside one mongo transaction. The condition
// matches the slot only while it is still unclaimed at the version the
// caller observed, so a racing claim makes MatchedCount zero and aborts.
func (r *MongoSlotRepo) ClaimForBooking(ctx context.Context, booking *models.Booking, slots []models.Slot) error {
	client := r.slotColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		for _, slot := range slots {
			filter := bson.M{
				"id":        slot.ID,
				"bookingId": "",
				"version":   slot.Version,
			}
			update := bson.M{
				"$set": bson.M{"bookingId": booking.ID},
				"$inc": bson.M{"version": 1},
			}
			res, err := r.slotColl.UpdateOne(sc, filter, update)
			if err != nil {
				return fmt.Errorf("claim slot %s failed: %w", slot.ID, err)
			}
			if res.MatchedCount == 0 {
				return fmt.Errorf("slot %s: %w", slot.ID, ErrWriteConflict)
			}
		}
		return nil
	}

	return r.runTransaction(ctx, sess, txnFn)
}

// ReleaseBooking moves the booking out of Confirmed and clears the booking
// link on all of its slots in one transaction.
func (r *MongoSlotRepo) ReleaseBooking(ctx context.Context, bookingID, status string, slotIDs []string) error {
	client := r.slotColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{"id": bookingID, "status": models.BookingStatusConfirmed}
		update := bson.M{"$set": bson.M{"status": status}}
		res, err := r.bookingColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("update booking %s failed: %w", bookingID, err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking %s not cancellable: %w", bookingID, ErrWriteConflict)
		}

		slotFilter := bson.M{"id": bson.M{"$in": slotIDs}, "bookingId": bookingID}
		slotUpdate := bson.M{
			"$set": bson.M{"bookingId": ""},
			"$inc": bson.M{"version": 1},
		}
		if _, err := r.slotColl.UpdateMany(sc, slotFilter, slotUpdate); err != nil {
			return fmt.Errorf("release slots for booking %s failed: %w", bookingID, err)
		}
		return nil
	}

	return r.runTransaction(ctx, sess, txnFn)
}

func (r *MongoSlotRepo) runTransaction(ctx context.Context, sess mongo.Session, txnFn func(mongo.SessionContext) error) error {
	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrWriteConflict) {
			return err
		}
		return fmt.Errorf("slot transaction failed: %w", err)
	}
	return nil
}
