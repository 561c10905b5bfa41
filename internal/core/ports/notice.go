package ports

import (
	"context"
	"time"

	"github.com/staynest/staynest/internal/core/domain"
)

// NoticeRepository defines persistence for notices.
type NoticeRepository interface {
	Create(ctx context.Context, n *domain.Notice) (*domain.Notice, error)
	FindByID(ctx context.Context, id string) (*domain.Notice, error)
	List(ctx context.Context) ([]*domain.Notice, error)
	Update(ctx context.Context, n *domain.Notice) error
	Delete(ctx context.Context, id string) error
}

// NoticeInput carries the admin-editable notice fields. A nil Active is
// left untouched on update and defaults to true on create.
type NoticeInput struct {
	Title      string
	Content    string
	Type       domain.NoticeType
	Priority   domain.NoticePriority
	Active     *bool
	ValidUntil time.Time
}

// NoticeService defines the notice board. ListVisible applies the tenant
// view: inactive and expired notices are filtered out.
type NoticeService interface {
	Create(ctx context.Context, input NoticeInput) (*domain.Notice, error)
	Get(ctx context.Context, id string) (*domain.Notice, error)
	ListAll(ctx context.Context) ([]*domain.Notice, error)
	ListVisible(ctx context.Context) ([]*domain.Notice, error)
	Update(ctx context.Context, id string, input NoticeInput) (*domain.Notice, error)
	Delete(ctx context.Context, id string) error
}
