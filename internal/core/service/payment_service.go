package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/staynest/staynest/internal/api/metrics"
	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

// PaymentService implements rent bookkeeping.
type PaymentService struct {
	payments ports.PaymentRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewPaymentService(payments ports.PaymentRepository, users ports.UserRepository, logger zerolog.Logger) *PaymentService {
	return &PaymentService{payments: payments, users: users, logger: logger}
}

// Record books a rent payment for a tenant. The receipt number is assigned
// here and never changes.
func (s *PaymentService) Record(ctx context.Context, input ports.RecordPaymentInput) (*domain.Payment, error) {
	tenant, err := s.users.FindByID(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		TenantID:      tenant.ID,
		TenantName:    tenant.Name,
		Amount:        input.Amount,
		Month:         input.Month,
		Year:          input.Year,
		Status:        domain.PaymentPaid,
		Method:        input.Method,
		ReceiptNumber: generateReceiptNumber(),
		PaidAt:        now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.payments.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	tenant.RentPaid = true
	tenant.UpdatedAt = now
	if err := s.users.Update(ctx, tenant); err != nil {
		s.logger.Error().Err(err).Str("tenant_id", tenant.ID).Msg("failed to flag tenant rent status")
	}

	metrics.PaymentsRecordedTotal.WithLabelValues(string(input.Method)).Inc()
	s.logger.Info().
		Str("receipt", created.ReceiptNumber).
		Str("tenant_id", tenant.ID).
		Float64("amount", input.Amount).
		Msg("payment recorded")
	return created, nil
}

func (s *PaymentService) ListAll(ctx context.Context) ([]*domain.Payment, error) {
	return s.payments.List(ctx)
}

func (s *PaymentService) ListForTenant(ctx context.Context, tenantID string) ([]*domain.Payment, error) {
	return s.payments.ListByTenant(ctx, tenantID)
}

func (s *PaymentService) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payment.Status = status
	payment.UpdatedAt = time.Now().UTC()
	if status == domain.PaymentPaid && payment.PaidAt.IsZero() {
		payment.PaidAt = payment.UpdatedAt
	}

	if err := s.payments.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// MarkPaid settles a pending or overdue payment. Marking an already-paid
// payment paid again is a no-op.
func (s *PaymentService) MarkPaid(ctx context.Context, id string) (*domain.Payment, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.Status == domain.PaymentPaid {
		return payment, nil
	}
	return s.UpdateStatus(ctx, id, domain.PaymentPaid)
}

// Summary aggregates all payments into the dashboard totals.
func (s *PaymentService) Summary(ctx context.Context) (*domain.PaymentSummary, error) {
	all, err := s.payments.List(ctx)
	if err != nil {
		return nil, err
	}

	sum := &domain.PaymentSummary{}
	for _, p := range all {
		switch p.Status {
		case domain.PaymentPaid:
			sum.TotalCollected += p.Amount
			sum.CountPaid++
		case domain.PaymentPending:
			sum.TotalPending += p.Amount
			sum.CountPending++
		case domain.PaymentOverdue:
			sum.TotalOverdue += p.Amount
			sum.CountOverdue++
		}
	}
	return sum, nil
}

// Receipt renders the receipt for a payment. Tenants only reach their own
// receipts; admins reach any.
func (s *PaymentService) Receipt(ctx context.Context, id, requesterID string, requesterRole domain.Role) ([]byte, string, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if requesterRole != domain.RoleAdmin && payment.TenantID != requesterID {
		return nil, "", domain.ErrForbidden
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "StayNest Rent Receipt\n")
	fmt.Fprintf(&buf, "=====================\n\n")
	fmt.Fprintf(&buf, "Receipt no : %s\n", payment.ReceiptNumber)
	fmt.Fprintf(&buf, "Tenant     : %s\n", payment.TenantName)
	fmt.Fprintf(&buf, "Period     : %s %d\n", payment.Month, payment.Year)
	fmt.Fprintf(&buf, "Amount     : %.2f\n", payment.Amount)
	fmt.Fprintf(&buf, "Method     : %s\n", payment.Method)
	fmt.Fprintf(&buf, "Status     : %s\n", payment.Status)
	if !payment.PaidAt.IsZero() {
		fmt.Fprintf(&buf, "Paid at    : %s\n", payment.PaidAt.Format(time.RFC3339))
	}
	return buf.Bytes(), "text/plain; charset=utf-8", nil
}

// generateReceiptNumber returns a receipt handle in the format SN-XXXXXXXX.
func generateReceiptNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("SN-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("SN-%08X", b)
}
