// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Immortal-romantic/hotel-booking-api/database"
	"github.com/Immortal-romantic/hotel-booking-api/models"
)

type mongoBookingRepo struct {
	db   *mongo.Database
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &mongoBookingRepo{
		db:   db,
		coll: db.Collection("bookings"),
	}
}

type bookingDoc struct {
	ID        int64       `bson:"id"`
	RoomID    int64       `bson:"room_id"`
	DateStart models.Date `bson:"date_start"`
	DateEnd   models.Date `bson:"date_end"`
	CreatedAt time.Time   `bson:"created_at"`
}

func (d bookingDoc) toModel() models.Booking {
	return models.Booking{
		ID:        d.ID,
		RoomID:    d.RoomID,
		DateStart: d.DateStart,
		DateEnd:   d.DateEnd,
		CreatedAt: d.CreatedAt,
	}
}

func (r *mongoBookingRepo) Create(ctx context.Context, roomID int64, dateStart, dateEnd models.Date) (*models.Booking, error) {
	id, err := database.NextSequence(ctx, r.db, "bookings")
	if err != nil {
		return nil, err
	}

	doc := bookingDoc{
		ID:        id,
		RoomID:    roomID,
		DateStart: dateStart,
		DateEnd:   dateEnd,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}
	booking := doc.toModel()
	return &booking, nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	var doc bookingDoc
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %d: %w", id, err)
	}
	booking := doc.toModel()
	return &booking, nil
}

func (r *mongoBookingRepo) ListByRoom(ctx context.Context, roomID int64) ([]models.Booking, error) {
	// Dates are stored as "YYYY-MM-DD" strings, so a lexicographic sort
	// is also chronological.
	cursor, err := r.coll.Find(ctx, bson.M{"room_id": roomID},
		options.Find().SetSort(bson.D{{Key: "date_start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for room %d: %w", roomID, err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	bookings := make([]models.Booking, 0, len(docs))
	for _, doc := range docs {
		bookings = append(bookings, doc.toModel())
	}
	return bookings, nil
}

func (r *mongoBookingRepo) CountByRoom(ctx context.Context, roomID int64) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"room_id": roomID})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings for room %d: %w", roomID, err)
	}
	return count, nil
}

func (r *mongoBookingRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete booking %d: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoBookingRepo) DeleteByRoom(ctx context.Context, roomID int64) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"room_id": roomID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete bookings for room %d: %w", roomID, err)
	}
	return res.DeletedCount, nil
}
