package bookingsRepo

import (
	"context"
	"errors"
	"time"

	"stayhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a finalized booking record and returns its ID.
func (r *mongoBookingRecordRepo) Create(ctx context.Context, record models.BookingRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetByID returns a booking record by its ID.
func (r *mongoBookingRecordRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	var record models.BookingRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByReference returns a booking record by its booking reference id.
func (r *mongoBookingRecordRepo) GetByReference(ctx context.Context, bookingReferenceID string) (*models.BookingRecord, error) {
	var record models.BookingRecord
	err := r.coll.FindOne(ctx, bson.M{"booking_reference_id": bookingReferenceID}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByCustomerID fetches all booking records belonging to a customer.
func (r *mongoBookingRecordRepo) GetByCustomerID(ctx context.Context, customerID string) ([]models.BookingRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"customer_id": customerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// MarkCancelled flips the cancellation status of a booking record. No other
// field of a persisted record is ever updated.
func (r *mongoBookingRecordRepo) MarkCancelled(ctx context.Context, confirmationNumber string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"confirmation_number": confirmationNumber},
		bson.M{"$set": bson.M{"cancelled": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("booking record not found")
	}
	return nil
}
