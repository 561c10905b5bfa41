package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

// NoticeHandler handles the notice board.
type NoticeHandler struct {
	notices ports.NoticeService
}

func NewNoticeHandler(notices ports.NoticeService) *NoticeHandler {
	return &NoticeHandler{notices: notices}
}

type noticeRequest struct {
	Title      string `json:"title"       validate:"required"`
	Content    string `json:"content"     validate:"required"`
	Type       string `json:"type"        validate:"required,oneof=general maintenance payment event urgent"`
	Priority   string `json:"priority"    validate:"required,oneof=low medium high"`
	Active     *bool  `json:"active,omitempty"`
	ValidUntil string `json:"valid_until" validate:"omitempty"`
}

func (r noticeRequest) toInput() (ports.NoticeInput, error) {
	input := ports.NoticeInput{
		Title:    r.Title,
		Content:  r.Content,
		Type:     domain.NoticeType(r.Type),
		Priority: domain.NoticePriority(r.Priority),
		Active:   r.Active,
	}
	if r.ValidUntil != "" {
		t, err := time.Parse(time.RFC3339, r.ValidUntil)
		if err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, "valid_until must be RFC 3339")
		}
		input.ValidUntil = t
	}
	return input, nil
}

// List returns the board. Admins see every notice; tenants only the active,
// unexpired ones.
//
// @Summary      List notices
// @Tags         notices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Notice
// @Router       /notices [get]
func (h *NoticeHandler) List(c echo.Context) error {
	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var notices []*domain.Notice
	if role == domain.RoleAdmin {
		notices, err = h.notices.ListAll(c.Request().Context())
	} else {
		notices, err = h.notices.ListVisible(c.Request().Context())
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notices)
}

// Get returns one notice by ID.
//
// @Summary      Get a notice
// @Tags         notices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notice ID"
// @Success      200  {object}  domain.Notice
// @Failure      404  {object}  map[string]string
// @Router       /notices/{id} [get]
func (h *NoticeHandler) Get(c echo.Context) error {
	notice, err := h.notices.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notice)
}

// Create posts a new notice.
//
// @Summary      Post a notice
// @Tags         notices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      noticeRequest  true  "Notice details"
// @Success      201   {object}  domain.Notice
// @Router       /notices [post]
func (h *NoticeHandler) Create(c echo.Context) error {
	var req noticeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}

	notice, err := h.notices.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, notice)
}

// Update rewrites a notice.
//
// @Summary      Update a notice
// @Tags         notices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Notice ID"
// @Param        body  body      noticeRequest  true  "Notice details"
// @Success      200   {object}  domain.Notice
// @Failure      404   {object}  map[string]string
// @Router       /notices/{id} [put]
func (h *NoticeHandler) Update(c echo.Context) error {
	var req noticeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}

	notice, err := h.notices.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notice)
}

// Delete removes a notice.
//
// @Summary      Delete a notice
// @Tags         notices
// @Security     BearerAuth
// @Param        id  path  string  true  "Notice ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /notices/{id} [delete]
func (h *NoticeHandler) Delete(c echo.Context) error {
	if err := h.notices.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
