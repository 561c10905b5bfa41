package ports

import (
	"context"
	"io"

	"github.com/staynest/staynest/internal/core/domain"
)

// DocumentRepository defines persistence for document metadata.
type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	FindByID(ctx context.Context, id string) (*domain.Document, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Document, error)
	Delete(ctx context.Context, id string) error
}

// BlobStore holds uploaded file content keyed by stored name.
// Backed by a GridFS bucket in production.
type BlobStore interface {
	Put(ctx context.Context, name string, r io.Reader) error
	Get(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
}

// UploadDocumentInput carries an upload: metadata plus the file stream.
type UploadDocumentInput struct {
	TenantID    string
	Filename    string
	ContentType string
	Size        int64
	Type        domain.DocumentType
	Content     io.Reader
}

// DocumentService defines tenant document management. Download and Delete
// enforce ownership: a tenant only reaches their own documents, an admin any.
type DocumentService interface {
	Upload(ctx context.Context, input UploadDocumentInput) (*domain.Document, error)
	ListForTenant(ctx context.Context, tenantID string) ([]*domain.Document, error)
	Download(ctx context.Context, id, requesterID string, requesterRole domain.Role) (*domain.Document, []byte, error)
	Delete(ctx context.Context, id, requesterID string, requesterRole domain.Role) error
}
