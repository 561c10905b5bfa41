package service

import (
	"context"
	"testing"
	"time"

	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

func seedTenant(t *testing.T, users *stubUserRepo, email string) *domain.User {
	t.Helper()
	u, err := users.Create(context.Background(), &domain.User{
		Name:  "Tenant " + email,
		Email: email,
		Role:  domain.RoleTenant,
	})
	if err != nil {
		t.Fatalf("seed tenant: %v", err)
	}
	return u
}

func seedRoom(t *testing.T, svc *RoomService, number string) *domain.Room {
	t.Helper()
	room, err := svc.Create(context.Background(), ports.CreateRoomInput{
		RoomNumber: number,
		Capacity:   2,
		Rent:       8500,
		Amenities:  []string{"wifi", "ac"},
	})
	if err != nil {
		t.Fatalf("seed room: %v", err)
	}
	return room
}

func TestRoomService_Create_DuplicateNumber(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo(), newStubUserRepo(), testLogger())
	seedRoom(t, svc, "101")

	if _, err := svc.Create(context.Background(), ports.CreateRoomInput{RoomNumber: "101"}); err != domain.ErrRoomExists {
		t.Fatalf("expected ErrRoomExists, got %v", err)
	}
}

func TestRoomService_AssignTenant(t *testing.T) {
	rooms := newStubRoomRepo()
	users := newStubUserRepo()
	svc := NewRoomService(rooms, users, testLogger())

	room := seedRoom(t, svc, "102")
	tenant := seedTenant(t, users, "a@example.com")

	assigned, err := svc.AssignTenant(context.Background(), room.ID, tenant.ID)
	if err != nil {
		t.Fatalf("AssignTenant returned error: %v", err)
	}
	if !assigned.Occupied || assigned.Status != domain.RoomOccupied {
		t.Fatalf("room not marked occupied: %+v", assigned)
	}
	if assigned.TenantID != tenant.ID || assigned.TenantName != tenant.Name {
		t.Fatalf("tenant reference not set on room: %+v", assigned)
	}

	stored, _ := users.FindByID(context.Background(), tenant.ID)
	if stored.RoomID != room.ID {
		t.Fatalf("tenant back-reference not set, got %q", stored.RoomID)
	}
}

func TestRoomService_AssignTenant_OccupiedRoom(t *testing.T) {
	rooms := newStubRoomRepo()
	users := newStubUserRepo()
	svc := NewRoomService(rooms, users, testLogger())

	room := seedRoom(t, svc, "103")
	first := seedTenant(t, users, "first@example.com")
	second := seedTenant(t, users, "second@example.com")

	if _, err := svc.AssignTenant(context.Background(), room.ID, first.ID); err != nil {
		t.Fatalf("first assign failed: %v", err)
	}
	if _, err := svc.AssignTenant(context.Background(), room.ID, second.ID); err != domain.ErrRoomOccupied {
		t.Fatalf("expected ErrRoomOccupied, got %v", err)
	}
}

func TestRoomService_AssignTenant_AlreadyHousedTenant(t *testing.T) {
	rooms := newStubRoomRepo()
	users := newStubUserRepo()
	svc := NewRoomService(rooms, users, testLogger())

	roomA := seedRoom(t, svc, "104")
	roomB := seedRoom(t, svc, "105")
	tenant := seedTenant(t, users, "housed@example.com")

	if _, err := svc.AssignTenant(context.Background(), roomA.ID, tenant.ID); err != nil {
		t.Fatalf("first assign failed: %v", err)
	}
	if _, err := svc.AssignTenant(context.Background(), roomB.ID, tenant.ID); err != domain.ErrTenantAssigned {
		t.Fatalf("expected ErrTenantAssigned, got %v", err)
	}
}

func TestRoomService_AssignTenant_AdminRejected(t *testing.T) {
	rooms := newStubRoomRepo()
	users := newStubUserRepo()
	svc := NewRoomService(rooms, users, testLogger())

	room := seedRoom(t, svc, "106")
	admin, err := users.Create(context.Background(), &domain.User{
		Name:  "Admin",
		Email: "admin@example.com",
		Role:  domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	if _, err := svc.AssignTenant(context.Background(), room.ID, admin.ID); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRoomService_UnassignTenant(t *testing.T) {
	rooms := newStubRoomRepo()
	users := newStubUserRepo()
	svc := NewRoomService(rooms, users, testLogger())

	room := seedRoom(t, svc, "107")
	tenant := seedTenant(t, users, "leaving@example.com")
	if _, err := svc.AssignTenant(context.Background(), room.ID, tenant.ID); err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	vacated, err := svc.UnassignTenant(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("UnassignTenant returned error: %v", err)
	}
	if vacated.Occupied || vacated.TenantID != "" || vacated.Status != domain.RoomAvailable {
		t.Fatalf("room not vacated: %+v", vacated)
	}

	stored, _ := users.FindByID(context.Background(), tenant.ID)
	if stored.RoomID != "" {
		t.Fatalf("tenant back-reference not cleared, got %q", stored.RoomID)
	}

	// A second unassign of the same room is a no-op.
	if _, err := svc.UnassignTenant(context.Background(), room.ID); err != nil {
		t.Fatalf("repeat unassign returned error: %v", err)
	}
}

func TestRoomService_Delete_OccupiedRoom(t *testing.T) {
	rooms := newStubRoomRepo()
	users := newStubUserRepo()
	svc := NewRoomService(rooms, users, testLogger())

	room := seedRoom(t, svc, "108")
	tenant := seedTenant(t, users, "stay@example.com")
	if _, err := svc.AssignTenant(context.Background(), room.ID, tenant.ID); err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	if err := svc.Delete(context.Background(), room.ID); err != domain.ErrRoomOccupied {
		t.Fatalf("expected ErrRoomOccupied, got %v", err)
	}
}

func TestRoomService_Update_Partial(t *testing.T) {
	rooms := newStubRoomRepo()
	svc := NewRoomService(rooms, newStubUserRepo(), testLogger())

	room := seedRoom(t, svc, "109")
	newRent := 9500.0
	updated, err := svc.Update(context.Background(), room.ID, ports.UpdateRoomInput{Rent: &newRent})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Rent != 9500 {
		t.Fatalf("rent not updated: %v", updated.Rent)
	}
	if updated.Capacity != room.Capacity {
		t.Fatalf("capacity should be untouched, got %d", updated.Capacity)
	}
	if updated.UpdatedAt.Before(room.UpdatedAt) || updated.UpdatedAt.Equal(time.Time{}) {
		t.Fatalf("updated_at not refreshed")
	}
}

func TestRoomService_TenantRoom(t *testing.T) {
	rooms := newStubRoomRepo()
	users := newStubUserRepo()
	svc := NewRoomService(rooms, users, testLogger())

	room := seedRoom(t, svc, "110")
	tenant := seedTenant(t, users, "mine@example.com")
	if _, err := svc.AssignTenant(context.Background(), room.ID, tenant.ID); err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	found, err := svc.TenantRoom(context.Background(), tenant.ID)
	if err != nil {
		t.Fatalf("TenantRoom returned error: %v", err)
	}
	if found.ID != room.ID {
		t.Fatalf("wrong room: %s", found.ID)
	}

	if _, err := svc.TenantRoom(context.Background(), "nobody"); err != domain.ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}
