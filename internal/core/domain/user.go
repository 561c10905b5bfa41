package domain

import "time"

// Role is the closed set of actor roles. A user's role is fixed at
// registration and never changes afterwards.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleTenant Role = "tenant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTenant
}

// TenantStatus is the lifecycle state of a tenant account.
type TenantStatus string

const (
	TenantActive   TenantStatus = "active"
	TenantInactive TenantStatus = "inactive"
	TenantPending  TenantStatus = "pending"
)

// User models an authenticated actor: a property admin or a tenant.
// RoomID is only meaningful for tenants; empty means unassigned.
type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone,omitempty"`
	PasswordHash string       `json:"-"`
	Role         Role         `json:"role"`
	RoomID       string       `json:"room_id,omitempty"`
	RentPaid     bool         `json:"rent_paid"`
	Status       TenantStatus `json:"status,omitempty"`
	JoinedAt     time.Time    `json:"joined_at"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
