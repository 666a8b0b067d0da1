package bookingsRepo

import (
	"context"

	"stayhub/database"
	"stayhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRecordRepository persists finalized booking records. Records are
// immutable after creation except for their cancellation status.
type BookingRecordRepository interface {
	Create(ctx context.Context, record models.BookingRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	GetByReference(ctx context.Context, bookingReferenceID string) (*models.BookingRecord, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]models.BookingRecord, error)
	MarkCancelled(ctx context.Context, confirmationNumber string) error
}

type mongoBookingRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRecordRepo returns a new BookingRecordRepository instance using MongoDB.
func NewMongoBookingRecordRepo() BookingRecordRepository {
	db := database.MongoClient.Database("stayhub")
	return &mongoBookingRecordRepo{
		coll: db.Collection("booking_records"),
	}
}
