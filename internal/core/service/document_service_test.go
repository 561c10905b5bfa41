package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

func uploadInput(tenantID, filename string, size int64) ports.UploadDocumentInput {
	return ports.UploadDocumentInput{
		TenantID:    tenantID,
		Filename:    filename,
		ContentType: "application/pdf",
		Size:        size,
		Type:        domain.DocIDProof,
		Content:     bytes.NewReader([]byte("file-bytes")),
	}
}

func TestDocumentService_Upload(t *testing.T) {
	docs := newStubDocRepo()
	blobs := newStubBlobStore()
	svc := NewDocumentService(docs, blobs, testLogger())

	doc, err := svc.Upload(context.Background(), uploadInput("t1", "Aadhaar.PDF", 1024))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if doc.OriginalName != "Aadhaar.PDF" {
		t.Fatalf("original name lost: %q", doc.OriginalName)
	}
	if !strings.HasSuffix(doc.StoredName, ".pdf") {
		t.Fatalf("stored name should keep a lowercased extension: %q", doc.StoredName)
	}
	if doc.StoredName == doc.OriginalName {
		t.Fatalf("stored name should be opaque, got the original")
	}
	if _, ok := blobs.blobs[doc.StoredName]; !ok {
		t.Fatalf("content not written to blob store")
	}
}

func TestDocumentService_Upload_TooLarge(t *testing.T) {
	svc := NewDocumentService(newStubDocRepo(), newStubBlobStore(), testLogger())

	_, err := svc.Upload(context.Background(), uploadInput("t1", "big.pdf", domain.MaxDocumentSize+1))
	if err != domain.ErrFileTooLarge {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestDocumentService_Upload_BadExtension(t *testing.T) {
	svc := NewDocumentService(newStubDocRepo(), newStubBlobStore(), testLogger())

	_, err := svc.Upload(context.Background(), uploadInput("t1", "script.exe", 100))
	if err != domain.ErrFileType {
		t.Fatalf("expected ErrFileType, got %v", err)
	}
}

func TestDocumentService_Upload_MetadataFailureCleansBlob(t *testing.T) {
	docs := newStubDocRepo()
	docs.failCreate = true
	blobs := newStubBlobStore()
	svc := NewDocumentService(docs, blobs, testLogger())

	if _, err := svc.Upload(context.Background(), uploadInput("t1", "photo.jpg", 100)); err == nil {
		t.Fatalf("expected an error when metadata insert fails")
	}
	if len(blobs.blobs) != 0 {
		t.Fatalf("orphaned blob left behind: %v", len(blobs.blobs))
	}
}

func TestDocumentService_Download_Ownership(t *testing.T) {
	docs := newStubDocRepo()
	blobs := newStubBlobStore()
	svc := NewDocumentService(docs, blobs, testLogger())

	doc, err := svc.Upload(context.Background(), uploadInput("t1", "lease.pdf", 256))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	got, content, err := svc.Download(context.Background(), doc.ID, "t1", domain.RoleTenant)
	if err != nil {
		t.Fatalf("owner download returned error: %v", err)
	}
	if got.ID != doc.ID || string(content) != "file-bytes" {
		t.Fatalf("wrong document or content")
	}

	if _, _, err := svc.Download(context.Background(), doc.ID, "t2", domain.RoleTenant); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for another tenant, got %v", err)
	}
	if _, _, err := svc.Download(context.Background(), doc.ID, "any-admin", domain.RoleAdmin); err != nil {
		t.Fatalf("admin download returned error: %v", err)
	}
}

func TestDocumentService_Delete(t *testing.T) {
	docs := newStubDocRepo()
	blobs := newStubBlobStore()
	svc := NewDocumentService(docs, blobs, testLogger())

	doc, err := svc.Upload(context.Background(), uploadInput("t1", "id.png", 64))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), doc.ID, "t2", domain.RoleTenant); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), doc.ID, "t1", domain.RoleTenant); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(blobs.blobs) != 0 {
		t.Fatalf("blob content not deleted")
	}
}
