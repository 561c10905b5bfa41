package ports

import (
	"context"

	"github.com/staynest/staynest/internal/core/domain"
)

// RequestRepository defines persistence for service requests.
type RequestRepository interface {
	Create(ctx context.Context, r *domain.ServiceRequest) (*domain.ServiceRequest, error)
	FindByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	List(ctx context.Context) ([]*domain.ServiceRequest, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.ServiceRequest, error)
	Update(ctx context.Context, r *domain.ServiceRequest) error
	Delete(ctx context.Context, id string) error
}

// CreateRequestInput carries the fields a tenant submits with a new request.
type CreateRequestInput struct {
	TenantID    string
	Type        domain.RequestType
	Title       string
	Description string
	Priority    domain.RequestPriority
}

// UpdateRequestInput carries an admin status update with optional notes.
type UpdateRequestInput struct {
	Status     domain.RequestStatus
	AdminNotes string
}

// RequestService defines the service-request lifecycle. UpdateStatus enforces
// the transition table; Delete is permitted to the owning tenant or an admin.
type RequestService interface {
	Create(ctx context.Context, input CreateRequestInput) (*domain.ServiceRequest, error)
	Get(ctx context.Context, id string) (*domain.ServiceRequest, error)
	ListAll(ctx context.Context) ([]*domain.ServiceRequest, error)
	ListForTenant(ctx context.Context, tenantID string) ([]*domain.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id string, input UpdateRequestInput) (*domain.ServiceRequest, error)
	Delete(ctx context.Context, id, requesterID string, requesterRole domain.Role) error
}
