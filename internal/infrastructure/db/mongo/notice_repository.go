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

const noticesCollection = "notices"

// NoticeRepository persists notices in MongoDB.
type NoticeRepository struct {
	coll *mongo.Collection
}

func NewNoticeRepository(db *mongo.Database) *NoticeRepository {
	return &NoticeRepository{coll: db.Collection(noticesCollection)}
}

type noticeDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	Content    string             `bson:"content"`
	Type       string             `bson:"type"`
	Priority   string             `bson:"priority"`
	Active     bool               `bson:"active"`
	ValidUntil time.Time          `bson:"valid_until,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d noticeDoc) toDomain() *domain.Notice {
	return &domain.Notice{
		ID:         d.ID.Hex(),
		Title:      d.Title,
		Content:    d.Content,
		Type:       domain.NoticeType(d.Type),
		Priority:   domain.NoticePriority(d.Priority),
		Active:     d.Active,
		ValidUntil: d.ValidUntil,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *NoticeRepository) Create(ctx context.Context, n *domain.Notice) (*domain.Notice, error) {
	doc := noticeDoc{
		Title:      n.Title,
		Content:    n.Content,
		Type:       string(n.Type),
		Priority:   string(n.Priority),
		Active:     n.Active,
		ValidUntil: n.ValidUntil,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert notice: %w", err)
	}

	created := *n
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *NoticeRepository) FindByID(ctx context.Context, id string) (*domain.Notice, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNoticeNotFound
	}

	var doc noticeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("find notice: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *NoticeRepository) List(ctx context.Context) ([]*domain.Notice, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	defer cur.Close(ctx)

	var notices []*domain.Notice
	for cur.Next(ctx) {
		var doc noticeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode notice: %w", err)
		}
		notices = append(notices, doc.toDomain())
	}
	return notices, cur.Err()
}

func (r *NoticeRepository) Update(ctx context.Context, n *domain.Notice) error {
	oid, err := primitive.ObjectIDFromHex(n.ID)
	if err != nil {
		return domain.ErrNoticeNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":       n.Title,
		"content":     n.Content,
		"type":        string(n.Type),
		"priority":    string(n.Priority),
		"active":      n.Active,
		"valid_until": n.ValidUntil,
		"updated_at":  n.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update notice: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNoticeNotFound
	}
	return nil
}

func (r *NoticeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNoticeNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete notice: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNoticeNotFound
	}
	return nil
}
