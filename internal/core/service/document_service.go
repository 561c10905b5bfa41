package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/staynest/staynest/internal/api/metrics"
	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

// DocumentService implements tenant document storage: metadata in the
// repository, content in the blob store.
type DocumentService struct {
	docs   ports.DocumentRepository
	blobs  ports.BlobStore
	logger zerolog.Logger
}

func NewDocumentService(docs ports.DocumentRepository, blobs ports.BlobStore, logger zerolog.Logger) *DocumentService {
	return &DocumentService{docs: docs, blobs: blobs, logger: logger}
}

// Upload validates and stores a document. The size and extension checks here
// are authoritative; the client-side ones only save round-trips.
func (s *DocumentService) Upload(ctx context.Context, input ports.UploadDocumentInput) (*domain.Document, error) {
	if input.Size > domain.MaxDocumentSize {
		metrics.UploadsRejectedTotal.WithLabelValues("too_large").Inc()
		return nil, domain.ErrFileTooLarge
	}
	if !domain.AllowedDocumentExt(input.Filename) {
		metrics.UploadsRejectedTotal.WithLabelValues("bad_type").Inc()
		return nil, domain.ErrFileType
	}
	if !input.Type.Valid() {
		input.Type = domain.DocOther
	}

	stored := fmt.Sprintf("%s%s", uuid.NewString(), strings.ToLower(filepath.Ext(input.Filename)))
	if err := s.blobs.Put(ctx, stored, input.Content); err != nil {
		return nil, err
	}

	doc := &domain.Document{
		TenantID:     input.TenantID,
		OriginalName: input.Filename,
		StoredName:   stored,
		ContentType:  input.ContentType,
		Size:         input.Size,
		Type:         input.Type,
		UploadedAt:   time.Now().UTC(),
	}

	created, err := s.docs.Create(ctx, doc)
	if err != nil {
		// metadata write failed; drop the orphaned blob
		if derr := s.blobs.Delete(ctx, stored); derr != nil {
			s.logger.Error().Err(derr).Str("stored_name", stored).Msg("failed to clean up orphaned blob")
		}
		return nil, err
	}

	s.logger.Info().
		Str("document_id", created.ID).
		Str("tenant_id", input.TenantID).
		Int64("size", input.Size).
		Msg("document uploaded")
	return created, nil
}

func (s *DocumentService) ListForTenant(ctx context.Context, tenantID string) ([]*domain.Document, error) {
	return s.docs.ListByTenant(ctx, tenantID)
}

// Download returns a document's metadata and content. Tenants only reach
// their own documents.
func (s *DocumentService) Download(ctx context.Context, id, requesterID string, requesterRole domain.Role) (*domain.Document, []byte, error) {
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if requesterRole != domain.RoleAdmin && doc.TenantID != requesterID {
		return nil, nil, domain.ErrForbidden
	}

	content, err := s.blobs.Get(ctx, doc.StoredName)
	if err != nil {
		return nil, nil, err
	}
	return doc, content, nil
}

// Delete removes a document's metadata and content, with the same ownership
// rule as Download.
func (s *DocumentService) Delete(ctx context.Context, id, requesterID string, requesterRole domain.Role) error {
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if requesterRole != domain.RoleAdmin && doc.TenantID != requesterID {
		return domain.ErrForbidden
	}

	if err := s.docs.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, doc.StoredName); err != nil {
		s.logger.Error().Err(err).Str("stored_name", doc.StoredName).Msg("failed to delete blob content")
	}
	return nil
}
