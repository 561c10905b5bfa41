package service

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

var receiptPattern = regexp.MustCompile(`^SN-[0-9A-F]{8}$`)

func TestPaymentService_Record(t *testing.T) {
	payments := newStubPaymentRepo()
	users := newStubUserRepo()
	svc := NewPaymentService(payments, users, testLogger())

	tenant := seedTenant(t, users, "payer@example.com")

	p, err := svc.Record(context.Background(), ports.RecordPaymentInput{
		TenantID: tenant.ID,
		Amount:   8500,
		Month:    "January",
		Year:     2026,
		Method:   domain.MethodOnline,
	})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if p.Status != domain.PaymentPaid {
		t.Fatalf("expected paid status, got %s", p.Status)
	}
	if p.TenantName != tenant.Name {
		t.Fatalf("tenant name not denormalised: %q", p.TenantName)
	}
	if !receiptPattern.MatchString(p.ReceiptNumber) {
		t.Fatalf("unexpected receipt number format: %q", p.ReceiptNumber)
	}
	if p.PaidAt.IsZero() {
		t.Fatalf("paid_at not set")
	}

	stored, _ := users.FindByID(context.Background(), tenant.ID)
	if !stored.RentPaid {
		t.Fatalf("tenant rent_paid flag not set")
	}
}

func TestPaymentService_Record_UnknownTenant(t *testing.T) {
	svc := NewPaymentService(newStubPaymentRepo(), newStubUserRepo(), testLogger())

	if _, err := svc.Record(context.Background(), ports.RecordPaymentInput{TenantID: "nobody"}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestPaymentService_MarkPaid(t *testing.T) {
	payments := newStubPaymentRepo()
	svc := NewPaymentService(payments, newStubUserRepo(), testLogger())

	pending, _ := payments.Create(context.Background(), &domain.Payment{
		TenantID: "t1",
		Amount:   8000,
		Status:   domain.PaymentPending,
	})

	paid, err := svc.MarkPaid(context.Background(), pending.ID)
	if err != nil {
		t.Fatalf("MarkPaid returned error: %v", err)
	}
	if paid.Status != domain.PaymentPaid {
		t.Fatalf("expected paid, got %s", paid.Status)
	}
	if paid.PaidAt.IsZero() {
		t.Fatalf("paid_at not set on settle")
	}

	// Marking an already-paid payment is a no-op and keeps PaidAt.
	again, err := svc.MarkPaid(context.Background(), pending.ID)
	if err != nil {
		t.Fatalf("repeat MarkPaid returned error: %v", err)
	}
	if !again.PaidAt.Equal(paid.PaidAt) {
		t.Fatalf("paid_at changed on repeat: %v vs %v", again.PaidAt, paid.PaidAt)
	}
}

func TestPaymentService_Summary(t *testing.T) {
	payments := newStubPaymentRepo()
	svc := NewPaymentService(payments, newStubUserRepo(), testLogger())

	_, _ = payments.Create(context.Background(), &domain.Payment{Amount: 100, Status: domain.PaymentPaid})
	_, _ = payments.Create(context.Background(), &domain.Payment{Amount: 200, Status: domain.PaymentPaid})
	_, _ = payments.Create(context.Background(), &domain.Payment{Amount: 50, Status: domain.PaymentPending})
	_, _ = payments.Create(context.Background(), &domain.Payment{Amount: 75, Status: domain.PaymentOverdue})

	sum, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if sum.TotalCollected != 300 || sum.CountPaid != 2 {
		t.Fatalf("collected totals wrong: %+v", sum)
	}
	if sum.TotalPending != 50 || sum.CountPending != 1 {
		t.Fatalf("pending totals wrong: %+v", sum)
	}
	if sum.TotalOverdue != 75 || sum.CountOverdue != 1 {
		t.Fatalf("overdue totals wrong: %+v", sum)
	}
}

func TestPaymentService_Receipt_Ownership(t *testing.T) {
	payments := newStubPaymentRepo()
	svc := NewPaymentService(payments, newStubUserRepo(), testLogger())

	p, _ := payments.Create(context.Background(), &domain.Payment{
		TenantID:      "t1",
		TenantName:    "Asha Rao",
		Amount:        8500,
		Month:         "March",
		Year:          2026,
		Status:        domain.PaymentPaid,
		ReceiptNumber: "SN-DEADBEEF",
	})

	body, contentType, err := svc.Receipt(context.Background(), p.ID, "t1", domain.RoleTenant)
	if err != nil {
		t.Fatalf("owner receipt returned error: %v", err)
	}
	if !strings.HasPrefix(contentType, "text/plain") {
		t.Fatalf("unexpected content type %q", contentType)
	}
	if !strings.Contains(string(body), "SN-DEADBEEF") || !strings.Contains(string(body), "Asha Rao") {
		t.Fatalf("receipt body missing fields:\n%s", body)
	}

	if _, _, err := svc.Receipt(context.Background(), p.ID, "t2", domain.RoleTenant); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for another tenant, got %v", err)
	}
	if _, _, err := svc.Receipt(context.Background(), p.ID, "any-admin", domain.RoleAdmin); err != nil {
		t.Fatalf("admin receipt returned error: %v", err)
	}
}
