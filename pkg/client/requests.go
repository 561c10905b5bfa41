package client

import (
	"context"
	"net/url"
)

// RequestDraft is the payload for opening a service request.
type RequestDraft struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// RequestPatch carries an admin status change with optional notes.
type RequestPatch struct {
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes,omitempty"`
}

// ListAllRequests returns every service request. Admin only.
func (c *Client) ListAllRequests(ctx context.Context) ([]ServiceRequest, error) {
	var out []ServiceRequest
	if err := c.do(ctx, "GET", "/requests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMyRequests returns the caller's own service requests.
func (c *Client) ListMyRequests(ctx context.Context) ([]ServiceRequest, error) {
	var out []ServiceRequest
	if err := c.do(ctx, "GET", "/requests/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRequest returns one service request by id.
func (c *Client) GetRequest(ctx context.Context, id string) (*ServiceRequest, error) {
	var out ServiceRequest
	if err := c.do(ctx, "GET", "/requests/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRequest opens a new service request for the caller. Tenant only.
func (c *Client) CreateRequest(ctx context.Context, draft RequestDraft) (*ServiceRequest, error) {
	var out ServiceRequest
	if err := c.do(ctx, "POST", "/requests", draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRequest applies a status change with optional notes. Admin only.
func (c *Client) UpdateRequest(ctx context.Context, id string, patch RequestPatch) (*ServiceRequest, error) {
	var out ServiceRequest
	if err := c.do(ctx, "PUT", "/requests/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRequest removes a service request. Tenants may delete their
// own; admins may delete any.
func (c *Client) DeleteRequest(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/requests/"+url.PathEscape(id), nil, nil)
}
