package ports

import (
	"context"

	"github.com/staynest/staynest/internal/core/domain"
)

// PaymentRepository defines persistence for rent payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context) ([]*domain.Payment, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
}

// RecordPaymentInput carries the fields for recording a rent payment.
type RecordPaymentInput struct {
	TenantID string
	Amount   float64
	Month    string
	Year     int
	Method   domain.PaymentMethod
}

// PaymentService defines rent bookkeeping operations.
// Receipt returns the rendered receipt bytes and their content type; only the
// owning tenant or an admin may fetch it.
type PaymentService interface {
	Record(ctx context.Context, input RecordPaymentInput) (*domain.Payment, error)
	ListAll(ctx context.Context) ([]*domain.Payment, error)
	ListForTenant(ctx context.Context, tenantID string) ([]*domain.Payment, error)
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error)
	MarkPaid(ctx context.Context, id string) (*domain.Payment, error)
	Summary(ctx context.Context) (*domain.PaymentSummary, error)
	Receipt(ctx context.Context, id, requesterID string, requesterRole domain.Role) ([]byte, string, error)
}
