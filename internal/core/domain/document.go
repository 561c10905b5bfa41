package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// DocumentType categorises an uploaded tenant document.
type DocumentType string

const (
	DocIDProof      DocumentType = "id_proof"
	DocAddressProof DocumentType = "address_proof"
	DocAgreement    DocumentType = "agreement"
	DocPhoto        DocumentType = "photo"
	DocOther        DocumentType = "other"
)

// Valid reports whether t is a known document type.
func (t DocumentType) Valid() bool {
	switch t {
	case DocIDProof, DocAddressProof, DocAgreement, DocPhoto, DocOther:
		return true
	}
	return false
}

// MaxDocumentSize is the upload ceiling. Checked on both sides of the wire;
// the server check is authoritative, the client check just saves a round-trip.
const MaxDocumentSize = 5 << 20 // 5 MiB

// allowedDocumentExts is the accepted upload extension set.
var allowedDocumentExts = map[string]struct{}{
	".pdf":  {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
}

// AllowedDocumentExt reports whether filename carries an accepted extension.
func AllowedDocumentExt(filename string) bool {
	_, ok := allowedDocumentExts[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Document is the metadata record for an uploaded file. The file content
// itself lives in blob storage keyed by StoredName.
type Document struct {
	ID           string       `json:"id"`
	TenantID     string       `json:"tenant_id"`
	OriginalName string       `json:"original_name"`
	StoredName   string       `json:"stored_name"`
	ContentType  string       `json:"content_type"`
	Size         int64        `json:"size"`
	Type         DocumentType `json:"type"`
	Verified     bool         `json:"verified"`
	UploadedAt   time.Time    `json:"uploaded_at"`
}
