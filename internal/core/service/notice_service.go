package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/ports"
)

// NoticeService implements the notice board.
type NoticeService struct {
	notices ports.NoticeRepository
	logger  zerolog.Logger
	now     func() time.Time
}

func NewNoticeService(notices ports.NoticeRepository, logger zerolog.Logger) *NoticeService {
	return &NoticeService{notices: notices, logger: logger, now: time.Now}
}

func (s *NoticeService) Create(ctx context.Context, input ports.NoticeInput) (*domain.Notice, error) {
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	now := s.now().UTC()
	notice := &domain.Notice{
		Title:      input.Title,
		Content:    input.Content,
		Type:       input.Type,
		Priority:   input.Priority,
		Active:     active,
		ValidUntil: input.ValidUntil,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.notices.Create(ctx, notice)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("notice_id", created.ID).Str("type", string(input.Type)).Msg("notice posted")
	return created, nil
}

func (s *NoticeService) Get(ctx context.Context, id string) (*domain.Notice, error) {
	return s.notices.FindByID(ctx, id)
}

func (s *NoticeService) ListAll(ctx context.Context) ([]*domain.Notice, error) {
	return s.notices.List(ctx)
}

// ListVisible returns the tenant view of the board: active notices whose
// validity window has not passed.
func (s *NoticeService) ListVisible(ctx context.Context) ([]*domain.Notice, error) {
	all, err := s.notices.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	visible := make([]*domain.Notice, 0, len(all))
	for _, n := range all {
		if n.VisibleAt(now) {
			visible = append(visible, n)
		}
	}
	return visible, nil
}

func (s *NoticeService) Update(ctx context.Context, id string, input ports.NoticeInput) (*domain.Notice, error) {
	notice, err := s.notices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	notice.Title = input.Title
	notice.Content = input.Content
	notice.Type = input.Type
	notice.Priority = input.Priority
	if input.Active != nil {
		notice.Active = *input.Active
	}
	notice.ValidUntil = input.ValidUntil
	notice.UpdatedAt = s.now().UTC()

	if err := s.notices.Update(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (s *NoticeService) Delete(ctx context.Context, id string) error {
	if _, err := s.notices.FindByID(ctx, id); err != nil {
		return err
	}
	return s.notices.Delete(ctx, id)
}
