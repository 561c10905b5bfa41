package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

// DocumentHandler handles tenant document uploads and downloads.
type DocumentHandler struct {
	documents ports.DocumentService
}

func NewDocumentHandler(documents ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// ListMine returns the caller's documents.
//
// @Summary      List own documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Document
// @Router       /documents/my [get]
func (h *DocumentHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	docs, err := h.documents.ListForTenant(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// ListForTenant returns a tenant's documents for the admin view.
//
// @Summary      List a tenant's documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        tenantID  path     string  true  "Tenant ID"
// @Success      200       {array}  domain.Document
// @Router       /documents/tenant/{tenantID} [get]
func (h *DocumentHandler) ListForTenant(c echo.Context) error {
	docs, err := h.documents.ListForTenant(c.Request().Context(), c.Param("tenantID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Upload stores a multipart document for the calling tenant. Files over the
// size ceiling or with a disallowed extension are rejected before storage.
//
// @Summary      Upload a document
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        document       formData  file    true   "File (max 5 MB)"
// @Param        document_type  formData  string  false  "id_proof | address_proof | agreement | photo | other"
// @Success      201  {object}  domain.Document
// @Failure      400  {object}  map[string]string
// @Router       /documents/upload [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "document file is required")
	}
	if fileHeader.Size > domain.MaxDocumentSize {
		return domain.ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	doc, err := h.documents.Upload(c.Request().Context(), ports.UploadDocumentInput{
		TenantID:    userID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Type:        domain.DocumentType(c.FormValue("document_type")),
		Content:     file,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, doc)
}

// Download streams a document's content.
//
// @Summary      Download a document
// @Tags         documents
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        id  path  string  true  "Document ID"
// @Success      200 {file} file
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /documents/{id}/download [get]
func (h *DocumentHandler) Download(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	doc, content, err := h.documents.Download(c.Request().Context(), c.Param("id"), userID, role)
	if err != nil {
		return err
	}

	contentType := doc.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+doc.OriginalName+`"`)
	return c.Blob(http.StatusOK, contentType, content)
}

// Delete removes a document.
//
// @Summary      Delete a document
// @Tags         documents
// @Security     BearerAuth
// @Param        id  path  string  true  "Document ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /documents/{id} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.documents.Delete(c.Request().Context(), c.Param("id"), userID, role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
