package ports

import (
	"context"

	"github.com/staynest/staynest/internal/core/domain"
)

// RoomRepository defines persistence for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	FindByNumber(ctx context.Context, roomNumber string) (*domain.Room, error)
	FindByTenant(ctx context.Context, tenantID string) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id string) error
}

// CreateRoomInput carries the fields an admin sets when adding a room.
type CreateRoomInput struct {
	RoomNumber string
	Capacity   int
	Rent       float64
	Amenities  []string
}

// UpdateRoomInput carries a partial room update; nil fields are untouched.
type UpdateRoomInput struct {
	Capacity  *int
	Rent      *float64
	Amenities []string
	Status    *domain.RoomStatus
}

// RoomService defines use-case operations on rooms, including the two-sided
// assign/unassign flow that keeps room and tenant records consistent.
type RoomService interface {
	Create(ctx context.Context, input CreateRoomInput) (*domain.Room, error)
	Get(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
	Update(ctx context.Context, id string, input UpdateRoomInput) (*domain.Room, error)
	Delete(ctx context.Context, id string) error
	AssignTenant(ctx context.Context, roomID, tenantID string) (*domain.Room, error)
	UnassignTenant(ctx context.Context, roomID string) (*domain.Room, error)
	TenantRoom(ctx context.Context, tenantID string) (*domain.Room, error)
}
