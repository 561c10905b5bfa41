package domain

import "time"

// NoticeType categorises a notice for display grouping.
type NoticeType string

const (
	NoticeGeneral     NoticeType = "general"
	NoticeMaintenance NoticeType = "maintenance"
	NoticePayment     NoticeType = "payment"
	NoticeEvent       NoticeType = "event"
	NoticeUrgent      NoticeType = "urgent"
)

// NoticePriority orders notices on the board.
type NoticePriority string

const (
	NoticeLow    NoticePriority = "low"
	NoticeMedium NoticePriority = "medium"
	NoticeHigh   NoticePriority = "high"
)

// Notice is an announcement posted by the admin to all tenants.
// A zero ValidUntil means the notice never expires.
type Notice struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Type       NoticeType     `json:"type"`
	Priority   NoticePriority `json:"priority"`
	Active     bool           `json:"active"`
	ValidUntil time.Time      `json:"valid_until,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// VisibleAt reports whether the notice should be shown to tenants at t.
func (n Notice) VisibleAt(t time.Time) bool {
	if !n.Active {
		return false
	}
	if !n.ValidUntil.IsZero() && n.ValidUntil.Before(t) {
		return false
	}
	return true
}
