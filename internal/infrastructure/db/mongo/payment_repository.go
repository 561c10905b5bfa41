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

const paymentsCollection = "payments"

// PaymentRepository persists rent payments in MongoDB.
type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(paymentsCollection)}
}

type paymentDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	TenantID      string             `bson:"tenant_id"`
	TenantName    string             `bson:"tenant_name"`
	Amount        float64            `bson:"amount"`
	Month         string             `bson:"month"`
	Year          int                `bson:"year"`
	Status        string             `bson:"status"`
	Method        string             `bson:"method,omitempty"`
	ReceiptNumber string             `bson:"receipt_number,omitempty"`
	PaidAt        time.Time          `bson:"paid_at,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (d paymentDoc) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:            d.ID.Hex(),
		TenantID:      d.TenantID,
		TenantName:    d.TenantName,
		Amount:        d.Amount,
		Month:         d.Month,
		Year:          d.Year,
		Status:        domain.PaymentStatus(d.Status),
		Method:        domain.PaymentMethod(d.Method),
		ReceiptNumber: d.ReceiptNumber,
		PaidAt:        d.PaidAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	doc := paymentDoc{
		TenantID:      p.TenantID,
		TenantName:    p.TenantName,
		Amount:        p.Amount,
		Month:         p.Month,
		Year:          p.Year,
		Status:        string(p.Status),
		Method:        string(p.Method),
		ReceiptNumber: p.ReceiptNumber,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPaymentNotFound
	}

	var doc paymentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("find payment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]*domain.Payment, error) {
	return r.list(ctx, bson.M{})
}

func (r *PaymentRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.Payment, error) {
	return r.list(ctx, bson.M{"tenant_id": tenantID})
}

func (r *PaymentRepository) list(ctx context.Context, filter bson.M) ([]*domain.Payment, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cur.Close(ctx)

	var payments []*domain.Payment
	for cur.Next(ctx) {
		var doc paymentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode payment: %w", err)
		}
		payments = append(payments, doc.toDomain())
	}
	return payments, cur.Err()
}

func (r *PaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return domain.ErrPaymentNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":     string(p.Status),
		"method":     string(p.Method),
		"paid_at":    p.PaidAt,
		"updated_at": p.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

// EnsureIndexes creates the tenant lookup index.
func (r *PaymentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "tenant_id", Value: 1}}},
		{Keys: bson.D{{Key: "year", Value: 1}, {Key: "month", Value: 1}}},
	})
	return err
}
