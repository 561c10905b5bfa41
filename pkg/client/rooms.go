package client

import (
	"context"
	"net/url"
)

// RoomDraft is the payload for creating or updating a room. Zero-value
// fields are still sent on create; updates send only what changed via
// RoomPatch.
type RoomDraft struct {
	RoomNumber string   `json:"room_number"`
	Capacity   int      `json:"capacity"`
	Rent       float64  `json:"rent"`
	Amenities  []string `json:"amenities,omitempty"`
	Status     string   `json:"status,omitempty"`
}

// RoomPatch carries partial room updates. Nil fields are omitted.
// The room number is fixed at creation.
type RoomPatch struct {
	Capacity  *int     `json:"capacity,omitempty"`
	Rent      *float64 `json:"rent,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
	Status    *string  `json:"status,omitempty"`
}

// ListRooms returns every room. Admin only.
func (c *Client) ListRooms(ctx context.Context) ([]Room, error) {
	var out []Room
	if err := c.do(ctx, "GET", "/rooms", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRoom returns a single room by id.
func (c *Client) GetRoom(ctx context.Context, id string) (*Room, error) {
	var out Room
	if err := c.do(ctx, "GET", "/rooms/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRoom adds a room. Admin only.
func (c *Client) CreateRoom(ctx context.Context, draft RoomDraft) (*Room, error) {
	var out Room
	if err := c.do(ctx, "POST", "/rooms", draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRoom applies a partial update. Admin only.
func (c *Client) UpdateRoom(ctx context.Context, id string, patch RoomPatch) (*Room, error) {
	var out Room
	if err := c.do(ctx, "PUT", "/rooms/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRoom removes a vacant room. Admin only.
func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/rooms/"+url.PathEscape(id), nil, nil)
}

// AssignRoom places a tenant in a room. Admin only.
func (c *Client) AssignRoom(ctx context.Context, roomID, tenantID string) (*Room, error) {
	var out Room
	body := map[string]string{"tenant_id": tenantID}
	if err := c.do(ctx, "PATCH", "/rooms/"+url.PathEscape(roomID)+"/assign", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnassignRoom vacates a room. Admin only.
func (c *Client) UnassignRoom(ctx context.Context, roomID string) (*Room, error) {
	var out Room
	if err := c.do(ctx, "PATCH", "/rooms/"+url.PathEscape(roomID)+"/unassign", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyRoom returns the room assigned to a tenant. NotFound when the
// tenant has no room.
func (c *Client) MyRoom(ctx context.Context, tenantID string) (*Room, error) {
	var out Room
	if err := c.do(ctx, "GET", "/rooms/tenant/"+url.PathEscape(tenantID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
