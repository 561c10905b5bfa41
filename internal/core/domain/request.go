package domain

import "time"

// RequestType categorises a service request.
type RequestType string

const (
	RequestMaintenance RequestType = "maintenance"
	RequestCleaning    RequestType = "cleaning"
	RequestWifi        RequestType = "wifi"
	RequestElectrical  RequestType = "electrical"
	RequestPlumbing    RequestType = "plumbing"
	RequestOther       RequestType = "other"
)

// Valid reports whether t is a known request type.
func (t RequestType) Valid() bool {
	switch t {
	case RequestMaintenance, RequestCleaning, RequestWifi, RequestElectrical, RequestPlumbing, RequestOther:
		return true
	}
	return false
}

// RequestPriority orders requests for the admin queue.
type RequestPriority string

const (
	PriorityLow    RequestPriority = "low"
	PriorityMedium RequestPriority = "medium"
	PriorityHigh   RequestPriority = "high"
	PriorityUrgent RequestPriority = "urgent"
)

// RequestStatus is the lifecycle state of a service request.
type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestInProgress RequestStatus = "in_progress"
	RequestResolved   RequestStatus = "resolved"
	RequestCancelled  RequestStatus = "cancelled"
)

// requestTransitions defines the allowed lifecycle transitions.
// Resolved and cancelled are terminal.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:    {RequestInProgress, RequestResolved, RequestCancelled},
	RequestInProgress: {RequestResolved, RequestCancelled},
}

// CanTransitionTo reports whether moving from s to next is a valid lifecycle step.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ServiceRequest is a tenant-raised issue (maintenance, cleaning, ...) worked
// by the admin. RoomNumber is denormalised at creation for the admin queue view.
type ServiceRequest struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	TenantName  string          `json:"tenant_name"`
	RoomNumber  string          `json:"room_number,omitempty"`
	Type        RequestType     `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    RequestPriority `json:"priority"`
	Status      RequestStatus   `json:"status"`
	AdminNotes  string          `json:"admin_notes,omitempty"`
	ResolvedAt  time.Time       `json:"resolved_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
