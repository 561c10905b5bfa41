package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/staynest/staynest/internal/api/metrics"
	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

// RequestService implements the service-request lifecycle.
type RequestService struct {
	requests ports.RequestRepository
	users    ports.UserRepository
	rooms    ports.RoomRepository
	logger   zerolog.Logger
}

func NewRequestService(requests ports.RequestRepository, users ports.UserRepository, rooms ports.RoomRepository, logger zerolog.Logger) *RequestService {
	return &RequestService{requests: requests, users: users, rooms: rooms, logger: logger}
}

// Create opens a new request on behalf of a tenant. TenantName and RoomNumber
// are denormalised at creation so the admin queue needs no joins.
func (s *RequestService) Create(ctx context.Context, input ports.CreateRequestInput) (*domain.ServiceRequest, error) {
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidRequestType
	}

	tenant, err := s.users.FindByID(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}

	roomNumber := ""
	if room, err := s.rooms.FindByTenant(ctx, tenant.ID); err == nil {
		roomNumber = room.RoomNumber
	} else if !errors.Is(err, domain.ErrRoomNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	req := &domain.ServiceRequest{
		TenantID:    tenant.ID,
		TenantName:  tenant.Name,
		RoomNumber:  roomNumber,
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      domain.RequestPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.requests.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	metrics.RequestsOpenedTotal.WithLabelValues(string(input.Type), string(input.Priority)).Inc()
	s.logger.Info().
		Str("request_id", created.ID).
		Str("tenant_id", tenant.ID).
		Str("type", string(input.Type)).
		Msg("service request opened")
	return created, nil
}

func (s *RequestService) Get(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	return s.requests.FindByID(ctx, id)
}

func (s *RequestService) ListAll(ctx context.Context) ([]*domain.ServiceRequest, error) {
	return s.requests.List(ctx)
}

func (s *RequestService) ListForTenant(ctx context.Context, tenantID string) ([]*domain.ServiceRequest, error) {
	return s.requests.ListByTenant(ctx, tenantID)
}

// UpdateStatus applies an admin status change, enforcing the lifecycle
// transition table.
func (s *RequestService) UpdateStatus(ctx context.Context, id string, input ports.UpdateRequestInput) (*domain.ServiceRequest, error) {
	req, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != req.Status {
		if !req.Status.CanTransitionTo(input.Status) {
			return nil, domain.ErrInvalidTransition
		}
		req.Status = input.Status
		if input.Status == domain.RequestResolved {
			req.ResolvedAt = time.Now().UTC()
		}
	}
	if input.AdminNotes != "" {
		req.AdminNotes = input.AdminNotes
	}
	req.UpdatedAt = time.Now().UTC()

	if err := s.requests.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// Delete removes a request. Tenants may only delete their own.
func (s *RequestService) Delete(ctx context.Context, id, requesterID string, requesterRole domain.Role) error {
	req, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if requesterRole != domain.RoleAdmin && req.TenantID != requesterID {
		return domain.ErrForbidden
	}
	return s.requests.Delete(ctx, id)
}
