package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

// TenantHandler handles the /users family: admin user management plus
// tenant self-service under /users/me.
type TenantHandler struct {
	tenants ports.TenantService
	rooms   ports.RoomService
}

func NewTenantHandler(tenants ports.TenantService, rooms ports.RoomService) *TenantHandler {
	return &TenantHandler{tenants: tenants, rooms: rooms}
}

type updateTenantRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive pending"`
}

type updateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type assignRoomRequest struct {
	RoomID string `json:"room_id" validate:"required"`
}

// List returns all users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *TenantHandler) List(c echo.Context) error {
	users, err := h.tenants.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Me returns the caller's own profile.
//
// @Summary      Own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Router       /users/me [get]
func (h *TenantHandler) Me(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.tenants.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe edits the caller's own name and phone. Role and status are not
// self-editable.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Router       /users/me [put]
func (h *TenantHandler) UpdateMe(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.tenants.UpdateProfile(c.Request().Context(), userID, req.Name, req.Phone)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Get returns one user by ID.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *TenantHandler) Get(c echo.Context) error {
	user, err := h.tenants.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update applies an admin edit to a user. The role field is absent from the
// request shape: roles are immutable.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "User ID"
// @Param        body  body      updateTenantRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *TenantHandler) Update(c echo.Context) error {
	var req updateTenantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateTenantInput{Name: req.Name, Phone: req.Phone}
	if req.Status != nil {
		status := domain.TenantStatus(*req.Status)
		input.Status = &status
	}

	user, err := h.tenants.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes a user.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *TenantHandler) Delete(c echo.Context) error {
	if err := h.tenants.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignRoom assigns a room to the user, driving the same two-sided flow as
// the room-side endpoint.
//
// @Summary      Assign a room to a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      assignRoomRequest  true  "Room to assign"
// @Success      200   {object}  domain.Room
// @Failure      422   {object}  map[string]string
// @Router       /users/{id}/room [patch]
func (h *TenantHandler) AssignRoom(c echo.Context) error {
	var req assignRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room, err := h.rooms.AssignTenant(c.Request().Context(), req.RoomID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}
