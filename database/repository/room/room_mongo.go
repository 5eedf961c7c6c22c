// File: database/repository/room/room_mongo.go
package roomRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Immortal-romantic/hotel-booking-api/database"
	"github.com/Immortal-romantic/hotel-booking-api/models"
)

type mongoRoomRepo struct {
	db   *mongo.Database
	coll *mongo.Collection
}

// NewMongoRoomRepo constructs a RoomRepository backed by MongoDB.
func NewMongoRoomRepo() RoomRepository {
	db := database.DB()
	return &mongoRoomRepo{
		db:   db,
		coll: db.Collection("rooms"),
	}
}

// roomDoc is the stored shape. Price is kept as Decimal128 so monetary
// values stay exact and sort numerically.
type roomDoc struct {
	ID          int64                `bson:"id"`
	Description string               `bson:"description"`
	Price       primitive.Decimal128 `bson:"price"`
	CreatedAt   time.Time            `bson:"created_at"`
}

func (d roomDoc) toModel() (*models.Room, error) {
	price, err := decimal.NewFromString(d.Price.String())
	if err != nil {
		return nil, fmt.Errorf("stored price for room %d is not decimal: %w", d.ID, err)
	}
	return &models.Room{
		ID:          d.ID,
		Description: d.Description,
		Price:       price,
		CreatedAt:   d.CreatedAt,
	}, nil
}

func (r *mongoRoomRepo) Create(ctx context.Context, description string, price decimal.Decimal) (*models.Room, error) {
	id, err := database.NextSequence(ctx, r.db, "rooms")
	if err != nil {
		return nil, err
	}

	priceDec, err := primitive.ParseDecimal128(price.String())
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", price.String(), err)
	}

	doc := roomDoc{
		ID:          id,
		Description: description,
		Price:       priceDec,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to insert room: %w", err)
	}
	return doc.toModel()
}

func (r *mongoRoomRepo) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	var doc roomDoc
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room %d: %w", id, err)
	}
	return doc.toModel()
}

func (r *mongoRoomRepo) List(ctx context.Context, sortBy, order string) ([]models.Room, error) {
	direction := 1
	if order == models.OrderDesc {
		direction = -1
	}
	field := "created_at"
	if sortBy == models.SortByPrice {
		field = "price"
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: field, Value: direction}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []roomDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}

	rooms := make([]models.Room, 0, len(docs))
	for _, doc := range docs {
		room, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *room)
	}
	return rooms, nil
}

func (r *mongoRoomRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete room %d: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
