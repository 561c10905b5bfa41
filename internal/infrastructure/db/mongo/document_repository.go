package mongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/staynest/staynest/internal/core/domain"
)

const documentsCollection = "documents"

// DocumentRepository persists document metadata in MongoDB.
type DocumentRepository struct {
	coll *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{coll: db.Collection(documentsCollection)}
}

type documentDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	TenantID     string             `bson:"tenant_id"`
	OriginalName string             `bson:"original_name"`
	StoredName   string             `bson:"stored_name"`
	ContentType  string             `bson:"content_type"`
	Size         int64              `bson:"size"`
	Type         string             `bson:"type"`
	Verified     bool               `bson:"verified"`
	UploadedAt   time.Time          `bson:"uploaded_at"`
}

func (d documentDoc) toDomain() *domain.Document {
	return &domain.Document{
		ID:           d.ID.Hex(),
		TenantID:     d.TenantID,
		OriginalName: d.OriginalName,
		StoredName:   d.StoredName,
		ContentType:  d.ContentType,
		Size:         d.Size,
		Type:         domain.DocumentType(d.Type),
		Verified:     d.Verified,
		UploadedAt:   d.UploadedAt,
	}
}

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	doc := documentDoc{
		TenantID:     d.TenantID,
		OriginalName: d.OriginalName,
		StoredName:   d.StoredName,
		ContentType:  d.ContentType,
		Size:         d.Size,
		Type:         string(d.Type),
		Verified:     d.Verified,
		UploadedAt:   d.UploadedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}

	created := *d
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*domain.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDocumentNotFound
	}

	var doc documentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("find document: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *DocumentRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.Document, error) {
	cur, err := r.coll.Find(ctx, bson.M{"tenant_id": tenantID}, options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer cur.Close(ctx)

	var docs []*domain.Document
	for cur.Next(ctx) {
		var doc documentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		docs = append(docs, doc.toDomain())
	}
	return docs, cur.Err()
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDocumentNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

// GridFSBlobStore stores uploaded file content in a GridFS bucket.
type GridFSBlobStore struct {
	bucket *gridfs.Bucket
}

func NewGridFSBlobStore(db *mongo.Database) (*GridFSBlobStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName("document_files"))
	if err != nil {
		return nil, fmt.Errorf("gridfs bucket: %w", err)
	}
	return &GridFSBlobStore{bucket: bucket}, nil
}

func (s *GridFSBlobStore) Put(ctx context.Context, name string, r io.Reader) error {
	if _, err := s.bucket.UploadFromStream(name, r); err != nil {
		return fmt.Errorf("gridfs upload: %w", err)
	}
	return nil
}

func (s *GridFSBlobStore) Get(ctx context.Context, name string) ([]byte, error) {
	stream, err := s.bucket.OpenDownloadStreamByName(name)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("gridfs open: %w", err)
	}
	defer stream.Close()

	content, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("gridfs read: %w", err)
	}
	return content, nil
}

func (s *GridFSBlobStore) Delete(ctx context.Context, name string) error {
	cur, err := s.bucket.Find(bson.M{"filename": name})
	if err != nil {
		return fmt.Errorf("gridfs find: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var f struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&f); err != nil {
			return fmt.Errorf("gridfs decode: %w", err)
		}
		if err := s.bucket.Delete(f.ID); err != nil {
			return fmt.Errorf("gridfs delete: %w", err)
		}
	}
	return cur.Err()
}
