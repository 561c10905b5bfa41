package domain

import "time"

// PaymentStatus is the settlement state of a rent payment.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentOverdue PaymentStatus = "overdue"
)

// PaymentMethod is how a payment was (or will be) settled.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodOnline       PaymentMethod = "online"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// Payment records one month of rent for one tenant.
// ReceiptNumber is assigned when the payment is recorded and is the handle
// used for the downloadable receipt.
type Payment struct {
	ID            string        `json:"id"`
	TenantID      string        `json:"tenant_id"`
	TenantName    string        `json:"tenant_name"`
	Amount        float64       `json:"amount"`
	Month         string        `json:"month"`
	Year          int           `json:"year"`
	Status        PaymentStatus `json:"status"`
	Method        PaymentMethod `json:"method,omitempty"`
	ReceiptNumber string        `json:"receipt_number,omitempty"`
	PaidAt        time.Time     `json:"paid_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PaymentSummary aggregates a set of payments for dashboard views.
type PaymentSummary struct {
	TotalCollected float64 `json:"total_collected"`
	TotalPending   float64 `json:"total_pending"`
	TotalOverdue   float64 `json:"total_overdue"`
	CountPaid      int     `json:"count_paid"`
	CountPending   int     `json:"count_pending"`
	CountOverdue   int     `json:"count_overdue"`
}
