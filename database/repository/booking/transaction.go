package bookingRepo

import (
	"context"
	"fmt"

	"github.com/blue9kamrul/SkillBridge-backend/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfFree re-runs the overlap check and inserts the booking inside a
// single multi-document transaction. Two concurrent creations for the same
// tutor can both pass the service-level pre-check; the transaction makes the
// second committer observe the first insert and fail with ErrSlotTaken.
func (r *MongoBookingRepo) CreateIfFree(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		n, err := r.coll.CountDocuments(sc,
			overlapFilter(booking.TutorID, booking.StartTime, booking.EndTime))
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}
		if n > 0 {
			return ErrSlotTaken
		}
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

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
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
