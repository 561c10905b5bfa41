package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

// TenantService implements admin user management and tenant self-service.
// No path through this service can change a user's role.
type TenantService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewTenantService(users ports.UserRepository, logger zerolog.Logger) *TenantService {
	return &TenantService{users: users, logger: logger}
}

func (s *TenantService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *TenantService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *TenantService) Update(ctx context.Context, id string, input ports.UpdateTenantInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Status != nil {
		user.Status = *input.Status
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user account. A tenant still holding a room must be
// unassigned first.
func (s *TenantService) Delete(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.RoomID != "" {
		return domain.ErrTenantAssigned
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return s.users.Delete(ctx, id)
}

// UpdateProfile lets a user edit their own name and phone, nothing else.
func (s *TenantService) UpdateProfile(ctx context.Context, userID string, name, phone *string) (*domain.User, error) {
	return s.Update(ctx, userID, ports.UpdateTenantInput{Name: name, Phone: phone})
}
