package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/staynest/staynest/internal/core/domain"
)

const roomsCollection = "rooms"

// RoomRepository persists rooms in MongoDB.
type RoomRepository struct {
	coll *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{coll: db.Collection(roomsCollection)}
}

type roomDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	RoomNumber string             `bson:"room_number"`
	Capacity   int                `bson:"capacity"`
	Rent       float64            `bson:"rent"`
	Amenities  []string           `bson:"amenities,omitempty"`
	Occupied   bool               `bson:"occupied"`
	TenantID   string             `bson:"tenant_id,omitempty"`
	TenantName string             `bson:"tenant_name,omitempty"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d roomDoc) toDomain() *domain.Room {
	return &domain.Room{
		ID:         d.ID.Hex(),
		RoomNumber: d.RoomNumber,
		Capacity:   d.Capacity,
		Rent:       d.Rent,
		Amenities:  d.Amenities,
		Occupied:   d.Occupied,
		TenantID:   d.TenantID,
		TenantName: d.TenantName,
		Status:     domain.RoomStatus(d.Status),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	doc := roomDoc{
		RoomNumber: room.RoomNumber,
		Capacity:   room.Capacity,
		Rent:       room.Rent,
		Amenities:  room.Amenities,
		Occupied:   room.Occupied,
		TenantID:   room.TenantID,
		TenantName: room.TenantName,
		Status:     string(room.Status),
		CreatedAt:  room.CreatedAt,
		UpdatedAt:  room.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoomExists
		}
		return nil, fmt.Errorf("insert room: %w", err)
	}

	created := *room
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoomNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *RoomRepository) FindByNumber(ctx context.Context, roomNumber string) (*domain.Room, error) {
	return r.findOne(ctx, bson.M{"room_number": roomNumber})
}

func (r *RoomRepository) FindByTenant(ctx context.Context, tenantID string) (*domain.Room, error) {
	return r.findOne(ctx, bson.M{"tenant_id": tenantID})
}

func (r *RoomRepository) findOne(ctx context.Context, filter bson.M) (*domain.Room, error) {
	var doc roomDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "room_number", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer cur.Close(ctx)

	var rooms []*domain.Room
	for cur.Next(ctx) {
		var doc roomDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode room: %w", err)
		}
		rooms = append(rooms, doc.toDomain())
	}
	return rooms, cur.Err()
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	oid, err := primitive.ObjectIDFromHex(room.ID)
	if err != nil {
		return domain.ErrRoomNotFound
	}

	update := bson.M{"$set": bson.M{
		"capacity":    room.Capacity,
		"rent":        room.Rent,
		"amenities":   room.Amenities,
		"occupied":    room.Occupied,
		"tenant_id":   room.TenantID,
		"tenant_name": room.TenantName,
		"status":      string(room.Status),
		"updated_at":  room.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRoomNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

// EnsureIndexes creates the unique room number index and the tenant lookup index.
func (r *RoomRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "room_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tenant_id", Value: 1}}},
	})
	return err
}
