package client

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
)

// MaxUploadSize is the largest accepted document, checked locally
// before any bytes go on the wire. Matches the server limit.
const MaxUploadSize = 5 << 20

var allowedUploadExts = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// ListMyDocuments returns the caller's own uploaded documents.
func (c *Client) ListMyDocuments(ctx context.Context) ([]Document, error) {
	var out []Document
	if err := c.do(ctx, "GET", "/documents/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTenantDocuments returns a tenant's documents. Admin only.
func (c *Client) ListTenantDocuments(ctx context.Context, tenantID string) ([]Document, error) {
	var out []Document
	if err := c.do(ctx, "GET", "/documents/tenant/"+url.PathEscape(tenantID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadDocument sends a file for the caller's document locker. Size
// and extension are validated here first; a rejected file never
// triggers a network call.
func (c *Client) UploadDocument(ctx context.Context, filename, docType string, size int64, content io.Reader) (*Document, error) {
	if size > MaxUploadSize {
		return nil, &APIError{
			Kind:    KindValidation,
			Message: fmt.Sprintf("file exceeds the %d MB limit", MaxUploadSize>>20),
		}
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedUploadExts[ext] {
		return nil, &APIError{
			Kind:    KindValidation,
			Message: fmt.Sprintf("file type %q is not accepted", ext),
		}
	}

	var out Document
	fields := map[string]string{"document_type": docType}
	if err := c.upload(ctx, "/documents/upload", "document", filename, content, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadDocument fetches a document's bytes.
func (c *Client) DownloadDocument(ctx context.Context, id string) ([]byte, error) {
	return c.download(ctx, "/documents/"+url.PathEscape(id)+"/download")
}

// DeleteDocument removes a document. Tenants may delete their own;
// admins may delete any.
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/documents/"+url.PathEscape(id), nil, nil)
}
