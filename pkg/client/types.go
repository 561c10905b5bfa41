package client

import "time"

// Role is the closed set of UI roles, mirroring the backend's.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleTenant Role = "tenant"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTenant
}

// Identity is the authenticated subject's profile as the UI sees it.
type Identity struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Contact string `json:"phone,omitempty"`
	RoomID  string `json:"room_id,omitempty"`
}

// RegisterDraft is the payload for creating a new account.
type RegisterDraft struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role"`
}

// Room mirrors the backend room resource.
type Room struct {
	ID         string   `json:"id"`
	RoomNumber string   `json:"room_number"`
	Capacity   int      `json:"capacity"`
	Rent       float64  `json:"rent"`
	Amenities  []string `json:"amenities"`
	Occupied   bool     `json:"occupied"`
	TenantID   string   `json:"tenant_id,omitempty"`
	TenantName string   `json:"tenant_name,omitempty"`
	Status     string   `json:"status"`
}

// Tenant mirrors the backend user resource in list/detail views.
type Tenant struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
	Role     Role      `json:"role"`
	RoomID   string    `json:"room_id,omitempty"`
	RentPaid bool      `json:"rent_paid"`
	Status   string    `json:"status,omitempty"`
	JoinedAt time.Time `json:"joined_at"`
}

// Payment mirrors the backend payment resource.
type Payment struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenant_id"`
	TenantName    string    `json:"tenant_name"`
	Amount        float64   `json:"amount"`
	Month         string    `json:"month"`
	Year          int       `json:"year"`
	Status        string    `json:"status"`
	Method        string    `json:"method,omitempty"`
	ReceiptNumber string    `json:"receipt_number,omitempty"`
	PaidAt        time.Time `json:"paid_at,omitempty"`
}

// PaymentSummary mirrors the backend dashboard aggregate.
type PaymentSummary struct {
	TotalCollected float64 `json:"total_collected"`
	TotalPending   float64 `json:"total_pending"`
	TotalOverdue   float64 `json:"total_overdue"`
	CountPaid      int     `json:"count_paid"`
	CountPending   int     `json:"count_pending"`
	CountOverdue   int     `json:"count_overdue"`
}

// ServiceRequest mirrors the backend service-request resource.
type ServiceRequest struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	TenantName  string    `json:"tenant_name"`
	RoomNumber  string    `json:"room_number,omitempty"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	AdminNotes  string    `json:"admin_notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notice mirrors the backend notice resource.
type Notice struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Type       string    `json:"type"`
	Priority   string    `json:"priority"`
	Active     bool      `json:"active"`
	ValidUntil time.Time `json:"valid_until,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Document mirrors the backend document metadata resource.
type Document struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	Type         string    `json:"type"`
	Verified     bool      `json:"verified"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
