package client

import (
	"context"
	"net/url"
)

// PaymentDraft is the payload for recording a payment.
type PaymentDraft struct {
	TenantID string  `json:"tenant_id"`
	Amount   float64 `json:"amount"`
	Month    string  `json:"month"`
	Year     int     `json:"year"`
	Method   string  `json:"method"`
}

// ListMyPayments returns the caller's own payment history.
func (c *Client) ListMyPayments(ctx context.Context) ([]Payment, error) {
	var out []Payment
	if err := c.do(ctx, "GET", "/payments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllPayments returns every payment. Admin only.
func (c *Client) ListAllPayments(ctx context.Context) ([]Payment, error) {
	var out []Payment
	if err := c.do(ctx, "GET", "/payments/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PaymentTotals returns the collected/pending/overdue aggregate for
// the admin dashboard.
func (c *Client) PaymentTotals(ctx context.Context) (*PaymentSummary, error) {
	var out PaymentSummary
	if err := c.do(ctx, "GET", "/payments/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordPayment records a received payment. Admin only.
func (c *Client) RecordPayment(ctx context.Context, draft PaymentDraft) (*Payment, error) {
	var out Payment
	if err := c.do(ctx, "POST", "/payments", draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePaymentStatus sets a payment's status. Admin only.
func (c *Client) UpdatePaymentStatus(ctx context.Context, id, status string) (*Payment, error) {
	var out Payment
	body := map[string]string{"status": status}
	if err := c.do(ctx, "PUT", "/payments/"+url.PathEscape(id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkPaymentPaid flips a pending or overdue payment to paid.
// Idempotent on an already-paid payment. Admin only.
func (c *Client) MarkPaymentPaid(ctx context.Context, id string) (*Payment, error) {
	var out Payment
	if err := c.do(ctx, "PATCH", "/payments/"+url.PathEscape(id)+"/mark-paid", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PaymentReceipt downloads the rendered receipt for a paid payment.
func (c *Client) PaymentReceipt(ctx context.Context, id string) ([]byte, error) {
	return c.download(ctx, "/payments/"+url.PathEscape(id)+"/receipt")
}
