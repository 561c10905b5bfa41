package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

// RequestHandler handles the /requests family.
type RequestHandler struct {
	requests ports.RequestService
}

func NewRequestHandler(requests ports.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

type createRequestRequest struct {
	Type        string `json:"type"        validate:"required,oneof=maintenance cleaning wifi electrical plumbing other"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority"    validate:"required,oneof=low medium high urgent"`
}

type updateRequestRequest struct {
	Status     string `json:"status"      validate:"required,oneof=pending in_progress resolved cancelled"`
	AdminNotes string `json:"admin_notes"`
}

// ListAll returns every request for the admin queue.
//
// @Summary      List all service requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ServiceRequest
// @Router       /requests [get]
func (h *RequestHandler) ListAll(c echo.Context) error {
	requests, err := h.requests.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// ListMine returns the caller's own requests.
//
// @Summary      List own service requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ServiceRequest
// @Router       /requests/my [get]
func (h *RequestHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	requests, err := h.requests.ListForTenant(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Get returns one request. Tenants only see their own.
//
// @Summary      Get a service request
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  domain.ServiceRequest
// @Failure      404  {object}  map[string]string
// @Router       /requests/{id} [get]
func (h *RequestHandler) Get(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	req, err := h.requests.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin && req.TenantID != userID {
		return domain.ErrForbidden
	}
	return c.JSON(http.StatusOK, req)
}

// Create opens a new request for the calling tenant.
//
// @Summary      Open a service request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRequestRequest  true  "Request details"
// @Success      201   {object}  domain.ServiceRequest
// @Router       /requests [post]
func (h *RequestHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.requests.Create(c.Request().Context(), ports.CreateRequestInput{
		TenantID:    userID,
		Type:        domain.RequestType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.RequestPriority(req.Priority),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update applies an admin status change with optional notes.
//
// @Summary      Update a service request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Request ID"
// @Param        body  body      updateRequestRequest  true  "Status and notes"
// @Success      200   {object}  domain.ServiceRequest
// @Failure      422   {object}  map[string]string
// @Router       /requests/{id} [put]
func (h *RequestHandler) Update(c echo.Context) error {
	var req updateRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.requests.UpdateStatus(c.Request().Context(), c.Param("id"), ports.UpdateRequestInput{
		Status:     domain.RequestStatus(req.Status),
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a request. Tenants may only delete their own.
//
// @Summary      Delete a service request
// @Tags         requests
// @Security     BearerAuth
// @Param        id  path  string  true  "Request ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /requests/{id} [delete]
func (h *RequestHandler) Delete(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.requests.Delete(c.Request().Context(), c.Param("id"), userID, role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
