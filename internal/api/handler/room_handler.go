package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

// RoomHandler handles room CRUD and the assign/unassign actions.
type RoomHandler struct {
	rooms ports.RoomService
}

func NewRoomHandler(rooms ports.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

type createRoomRequest struct {
	RoomNumber string   `json:"room_number" validate:"required"`
	Capacity   int      `json:"capacity"    validate:"required,gt=0"`
	Rent       float64  `json:"rent"        validate:"required,gt=0"`
	Amenities  []string `json:"amenities"`
}

type updateRoomRequest struct {
	Capacity  *int     `json:"capacity,omitempty"  validate:"omitempty,gt=0"`
	Rent      *float64 `json:"rent,omitempty"      validate:"omitempty,gt=0"`
	Amenities []string `json:"amenities,omitempty"`
	Status    *string  `json:"status,omitempty"    validate:"omitempty,oneof=available occupied maintenance"`
}

type assignTenantRequest struct {
	TenantID string `json:"tenant_id" validate:"required"`
}

// List returns all rooms.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Room
// @Router       /rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.rooms.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// Get returns one room by ID.
//
// @Summary      Get a room
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Room ID"
// @Success      200  {object}  domain.Room
// @Failure      404  {object}  map[string]string
// @Router       /rooms/{id} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.rooms.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Create adds a new room.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoomRequest  true  "Room details"
// @Success      201   {object}  domain.Room
// @Failure      409   {object}  map[string]string
// @Router       /rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room, err := h.rooms.Create(c.Request().Context(), ports.CreateRoomInput{
		RoomNumber: req.RoomNumber,
		Capacity:   req.Capacity,
		Rent:       req.Rent,
		Amenities:  req.Amenities,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, room)
}

// Update applies a partial room update.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Room ID"
// @Param        body  body      updateRoomRequest  true  "Fields to change"
// @Success      200   {object}  domain.Room
// @Failure      404   {object}  map[string]string
// @Router       /rooms/{id} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateRoomInput{
		Capacity:  req.Capacity,
		Rent:      req.Rent,
		Amenities: req.Amenities,
	}
	if req.Status != nil {
		status := domain.RoomStatus(*req.Status)
		input.Status = &status
	}

	room, err := h.rooms.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Delete removes an unoccupied room.
//
// @Summary      Delete a room
// @Tags         rooms
// @Security     BearerAuth
// @Param        id  path  string  true  "Room ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /rooms/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.rooms.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Assign places a tenant into the room.
//
// @Summary      Assign a tenant to a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Room ID"
// @Param        body  body      assignTenantRequest  true  "Tenant to assign"
// @Success      200   {object}  domain.Room
// @Failure      422   {object}  map[string]string
// @Router       /rooms/{id}/assign [patch]
func (h *RoomHandler) Assign(c echo.Context) error {
	var req assignTenantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room, err := h.rooms.AssignTenant(c.Request().Context(), c.Param("id"), req.TenantID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Unassign vacates the room. Vacating an already-vacant room is a no-op.
//
// @Summary      Vacate a room
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Room ID"
// @Success      200  {object}  domain.Room
// @Failure      404  {object}  map[string]string
// @Router       /rooms/{id}/unassign [patch]
func (h *RoomHandler) Unassign(c echo.Context) error {
	room, err := h.rooms.UnassignTenant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// TenantRoom returns the room assigned to a tenant. Tenants may only look up
// their own room; admins any.
//
// @Summary      Get a tenant's room
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        tenantID  path      string  true  "Tenant ID"
// @Success      200       {object}  domain.Room
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /rooms/tenant/{tenantID} [get]
func (h *RoomHandler) TenantRoom(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	tenantID := c.Param("tenantID")
	if role != domain.RoleAdmin && tenantID != userID {
		return domain.ErrForbidden
	}

	room, err := h.rooms.TenantRoom(c.Request().Context(), tenantID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}
