package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

// RoomService implements room management and the assign/unassign flow that
// keeps the room record and the tenant record consistent.
type RoomService struct {
	rooms  ports.RoomRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewRoomService(rooms ports.RoomRepository, users ports.UserRepository, logger zerolog.Logger) *RoomService {
	return &RoomService{rooms: rooms, users: users, logger: logger}
}

func (s *RoomService) Create(ctx context.Context, input ports.CreateRoomInput) (*domain.Room, error) {
	if existing, err := s.rooms.FindByNumber(ctx, input.RoomNumber); err == nil && existing != nil {
		return nil, domain.ErrRoomExists
	}

	now := time.Now().UTC()
	room := &domain.Room{
		RoomNumber: input.RoomNumber,
		Capacity:   input.Capacity,
		Rent:       input.Rent,
		Amenities:  input.Amenities,
		Status:     domain.RoomAvailable,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.rooms.Create(ctx, room)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("room_number", created.RoomNumber).Msg("room created")
	return created, nil
}

func (s *RoomService) Get(ctx context.Context, id string) (*domain.Room, error) {
	return s.rooms.FindByID(ctx, id)
}

func (s *RoomService) List(ctx context.Context) ([]*domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *RoomService) Update(ctx context.Context, id string, input ports.UpdateRoomInput) (*domain.Room, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Capacity != nil {
		room.Capacity = *input.Capacity
	}
	if input.Rent != nil {
		room.Rent = *input.Rent
	}
	if input.Amenities != nil {
		room.Amenities = input.Amenities
	}
	if input.Status != nil {
		room.Status = *input.Status
	}
	room.UpdatedAt = time.Now().UTC()

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if room.Occupied {
		return domain.ErrRoomOccupied
	}
	return s.rooms.Delete(ctx, id)
}

// AssignTenant places a tenant into an available room and writes the
// back-reference on the user record. The room must be available and the
// tenant must not already hold a room.
func (s *RoomService) AssignTenant(ctx context.Context, roomID, tenantID string) (*domain.Room, error) {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.Status != domain.RoomAvailable || room.Occupied {
		return nil, domain.ErrRoomOccupied
	}

	tenant, err := s.users.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant.Role != domain.RoleTenant {
		return nil, domain.ErrInvalidRole
	}
	if tenant.RoomID != "" {
		return nil, domain.ErrTenantAssigned
	}

	now := time.Now().UTC()
	room.Occupied = true
	room.TenantID = tenant.ID
	room.TenantName = tenant.Name
	room.Status = domain.RoomOccupied
	room.UpdatedAt = now

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}

	tenant.RoomID = room.ID
	tenant.UpdatedAt = now
	if err := s.users.Update(ctx, tenant); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("room_number", room.RoomNumber).
		Str("tenant_id", tenant.ID).
		Msg("tenant assigned to room")
	return room, nil
}

// UnassignTenant vacates a room. Unassigning an already-vacant room is a no-op.
func (s *RoomService) UnassignTenant(ctx context.Context, roomID string) (*domain.Room, error) {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.Occupied {
		return room, nil
	}

	now := time.Now().UTC()
	tenantID := room.TenantID

	room.Occupied = false
	room.TenantID = ""
	room.TenantName = ""
	room.Status = domain.RoomAvailable
	room.UpdatedAt = now

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}

	if tenantID != "" {
		tenant, err := s.users.FindByID(ctx, tenantID)
		if err == nil {
			tenant.RoomID = ""
			tenant.UpdatedAt = now
			if err := s.users.Update(ctx, tenant); err != nil {
				s.logger.Error().Err(err).Str("tenant_id", tenantID).Msg("failed to clear tenant room reference")
			}
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	s.logger.Info().Str("room_number", room.RoomNumber).Msg("room vacated")
	return room, nil
}

// TenantRoom returns the room currently assigned to the given tenant.
func (s *RoomService) TenantRoom(ctx context.Context, tenantID string) (*domain.Room, error) {
	return s.rooms.FindByTenant(ctx, tenantID)
}
