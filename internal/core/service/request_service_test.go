package service

import (
	"context"
	"testing"

	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

func newRequestFixture(t *testing.T) (*RequestService, *stubRequestRepo, *domain.User) {
	t.Helper()
	requests := newStubRequestRepo()
	users := newStubUserRepo()
	rooms := newStubRoomRepo()
	svc := NewRequestService(requests, users, rooms, testLogger())
	tenant := seedTenant(t, users, "reporter@example.com")
	return svc, requests, tenant
}

func TestRequestService_Create(t *testing.T) {
	requests := newStubRequestRepo()
	users := newStubUserRepo()
	rooms := newStubRoomRepo()
	svc := NewRequestService(requests, users, rooms, testLogger())

	tenant := seedTenant(t, users, "leaky@example.com")
	_, _ = rooms.Create(context.Background(), &domain.Room{
		RoomNumber: "204",
		TenantID:   tenant.ID,
		Occupied:   true,
		Status:     domain.RoomOccupied,
	})

	req, err := svc.Create(context.Background(), ports.CreateRequestInput{
		TenantID:    tenant.ID,
		Type:        domain.RequestPlumbing,
		Title:       "Leaking tap",
		Description: "Bathroom tap drips all night",
		Priority:    domain.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if req.Status != domain.RequestPending {
		t.Fatalf("new request should start pending, got %s", req.Status)
	}
	if req.TenantName != tenant.Name {
		t.Fatalf("tenant name not denormalised: %q", req.TenantName)
	}
	if req.RoomNumber != "204" {
		t.Fatalf("room number not denormalised: %q", req.RoomNumber)
	}
}

func TestRequestService_Create_InvalidType(t *testing.T) {
	svc, _, tenant := newRequestFixture(t)

	_, err := svc.Create(context.Background(), ports.CreateRequestInput{
		TenantID: tenant.ID,
		Type:     "carpentry",
		Title:    "x",
	})
	if err != domain.ErrInvalidRequestType {
		t.Fatalf("expected ErrInvalidRequestType, got %v", err)
	}
}

func TestRequestService_Create_NoRoom(t *testing.T) {
	svc, _, tenant := newRequestFixture(t)

	// A tenant without a room can still open a request.
	req, err := svc.Create(context.Background(), ports.CreateRequestInput{
		TenantID: tenant.ID,
		Type:     domain.RequestWifi,
		Title:    "Slow wifi",
		Priority: domain.PriorityLow,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if req.RoomNumber != "" {
		t.Fatalf("expected empty room number, got %q", req.RoomNumber)
	}
}

func TestRequestService_UpdateStatus_Lifecycle(t *testing.T) {
	svc, _, tenant := newRequestFixture(t)

	req, err := svc.Create(context.Background(), ports.CreateRequestInput{
		TenantID: tenant.ID,
		Type:     domain.RequestMaintenance,
		Title:    "Broken fan",
		Priority: domain.PriorityMedium,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	started, err := svc.UpdateStatus(context.Background(), req.ID, ports.UpdateRequestInput{
		Status:     domain.RequestInProgress,
		AdminNotes: "electrician booked",
	})
	if err != nil {
		t.Fatalf("pending -> in_progress failed: %v", err)
	}
	if started.AdminNotes != "electrician booked" {
		t.Fatalf("admin notes not recorded: %q", started.AdminNotes)
	}

	resolved, err := svc.UpdateStatus(context.Background(), req.ID, ports.UpdateRequestInput{Status: domain.RequestResolved})
	if err != nil {
		t.Fatalf("in_progress -> resolved failed: %v", err)
	}
	if resolved.ResolvedAt.IsZero() {
		t.Fatalf("resolved_at not set")
	}

	// Terminal states accept no further transitions.
	if _, err := svc.UpdateStatus(context.Background(), req.ID, ports.UpdateRequestInput{Status: domain.RequestPending}); err != domain.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestRequestService_Delete_Ownership(t *testing.T) {
	svc, _, tenant := newRequestFixture(t)

	req, err := svc.Create(context.Background(), ports.CreateRequestInput{
		TenantID: tenant.ID,
		Type:     domain.RequestCleaning,
		Title:    "Room cleaning",
		Priority: domain.PriorityLow,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), req.ID, "someone-else", domain.RoleTenant); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for foreign tenant, got %v", err)
	}
	if err := svc.Delete(context.Background(), req.ID, tenant.ID, domain.RoleTenant); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), req.ID); err != domain.ErrRequestNotFound {
		t.Fatalf("request should be gone, got %v", err)
	}
}

func TestRequestService_Delete_AdminOverride(t *testing.T) {
	svc, _, tenant := newRequestFixture(t)

	req, err := svc.Create(context.Background(), ports.CreateRequestInput{
		TenantID: tenant.ID,
		Type:     domain.RequestOther,
		Title:    "Misc",
		Priority: domain.PriorityLow,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), req.ID, "any-admin", domain.RoleAdmin); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
}
