package client

import (
	"context"
	"net/url"
	"time"
)

// NoticeDraft is the payload for posting or editing a notice. A nil
// Active leaves the flag alone; new notices start active.
type NoticeDraft struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Type       string     `json:"type"`
	Priority   string     `json:"priority"`
	Active     *bool      `json:"active,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
}

// ListNotices returns the notice board. Admins see everything;
// tenants see only active, unexpired notices.
func (c *Client) ListNotices(ctx context.Context) ([]Notice, error) {
	var out []Notice
	if err := c.do(ctx, "GET", "/notices", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetNotice returns one notice by id.
func (c *Client) GetNotice(ctx context.Context, id string) (*Notice, error) {
	var out Notice
	if err := c.do(ctx, "GET", "/notices/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateNotice posts a notice. Admin only.
func (c *Client) CreateNotice(ctx context.Context, draft NoticeDraft) (*Notice, error) {
	var out Notice
	if err := c.do(ctx, "POST", "/notices", draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateNotice edits a notice. Admin only.
func (c *Client) UpdateNotice(ctx context.Context, id string, draft NoticeDraft) (*Notice, error) {
	var out Notice
	if err := c.do(ctx, "PUT", "/notices/"+url.PathEscape(id), draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteNotice removes a notice. Admin only.
func (c *Client) DeleteNotice(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/notices/"+url.PathEscape(id), nil, nil)
}
