package client

import (
	"context"
	"net/url"
)

// ProfilePatch carries a user's own profile edits.
type ProfilePatch struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// TenantPatch carries admin-side tenant edits. Role is not a field;
// roles do not change after registration.
type TenantPatch struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Status *string `json:"status,omitempty"`
}

// ListTenants returns every tenant account. Admin only.
func (c *Client) ListTenants(ctx context.Context) ([]Tenant, error) {
	var out []Tenant
	if err := c.do(ctx, "GET", "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTenant returns one tenant by id. Admin only.
func (c *Client) GetTenant(ctx context.Context, id string) (*Tenant, error) {
	var out Tenant
	if err := c.do(ctx, "GET", "/users/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the caller's own profile.
func (c *Client) Me(ctx context.Context) (*Identity, error) {
	var out Identity
	if err := c.do(ctx, "GET", "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile edits the caller's own profile.
func (c *Client) UpdateProfile(ctx context.Context, patch ProfilePatch) (*Tenant, error) {
	var out Tenant
	if err := c.do(ctx, "PUT", "/users/me", patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTenant edits a tenant account. Admin only.
func (c *Client) UpdateTenant(ctx context.Context, id string, patch TenantPatch) (*Tenant, error) {
	var out Tenant
	if err := c.do(ctx, "PUT", "/users/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTenant removes a tenant account. Admin only; fails while the
// tenant still holds a room.
func (c *Client) DeleteTenant(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/users/"+url.PathEscape(id), nil, nil)
}

// AssignTenantRoom places a tenant in a room from the tenant side.
// Admin only.
func (c *Client) AssignTenantRoom(ctx context.Context, tenantID, roomID string) (*Room, error) {
	var out Room
	body := map[string]string{"room_id": roomID}
	if err := c.do(ctx, "PATCH", "/users/"+url.PathEscape(tenantID)+"/room", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
