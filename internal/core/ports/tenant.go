package ports

import (
	"context"

	"github.com/staynest/staynest/internal/core/domain"
)

// UpdateTenantInput carries a partial user update. Role is deliberately
// absent: a user's role is immutable after registration.
type UpdateTenantInput struct {
	Name   *string
	Phone  *string
	Status *domain.TenantStatus
}

// TenantService defines admin user management plus tenant self-service.
type TenantService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateTenantInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// UpdateProfile is the self-service variant: it never touches Status.
	UpdateProfile(ctx context.Context, userID string, name, phone *string) (*domain.User, error)
}
