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

const requestsCollection = "service_requests"

// RequestRepository persists service requests in MongoDB.
type RequestRepository struct {
	coll *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{coll: db.Collection(requestsCollection)}
}

type requestDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	TenantID    string             `bson:"tenant_id"`
	TenantName  string             `bson:"tenant_name"`
	RoomNumber  string             `bson:"room_number,omitempty"`
	Type        string             `bson:"type"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Priority    string             `bson:"priority"`
	Status      string             `bson:"status"`
	AdminNotes  string             `bson:"admin_notes,omitempty"`
	ResolvedAt  time.Time          `bson:"resolved_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d requestDoc) toDomain() *domain.ServiceRequest {
	return &domain.ServiceRequest{
		ID:          d.ID.Hex(),
		TenantID:    d.TenantID,
		TenantName:  d.TenantName,
		RoomNumber:  d.RoomNumber,
		Type:        domain.RequestType(d.Type),
		Title:       d.Title,
		Description: d.Description,
		Priority:    domain.RequestPriority(d.Priority),
		Status:      domain.RequestStatus(d.Status),
		AdminNotes:  d.AdminNotes,
		ResolvedAt:  d.ResolvedAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	doc := requestDoc{
		TenantID:    req.TenantID,
		TenantName:  req.TenantName,
		RoomNumber:  req.RoomNumber,
		Type:        string(req.Type),
		Title:       req.Title,
		Description: req.Description,
		Priority:    string(req.Priority),
		Status:      string(req.Status),
		AdminNotes:  req.AdminNotes,
		ResolvedAt:  req.ResolvedAt,
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}

	created := *req
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	var doc requestDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find request: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RequestRepository) List(ctx context.Context) ([]*domain.ServiceRequest, error) {
	return r.list(ctx, bson.M{})
}

func (r *RequestRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.ServiceRequest, error) {
	return r.list(ctx, bson.M{"tenant_id": tenantID})
}

func (r *RequestRepository) list(ctx context.Context, filter bson.M) ([]*domain.ServiceRequest, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer cur.Close(ctx)

	var requests []*domain.ServiceRequest
	for cur.Next(ctx) {
		var doc requestDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode request: %w", err)
		}
		requests = append(requests, doc.toDomain())
	}
	return requests, cur.Err()
}

func (r *RequestRepository) Update(ctx context.Context, req *domain.ServiceRequest) error {
	oid, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		return domain.ErrRequestNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":      string(req.Status),
		"admin_notes": req.AdminNotes,
		"resolved_at": req.ResolvedAt,
		"updated_at":  req.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRequestNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}
