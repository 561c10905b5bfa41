package domain

import "time"

// RoomStatus is the occupancy state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// Room is a rentable unit in the property.
// TenantID and TenantName are set only while the room is occupied.
type Room struct {
	ID         string     `json:"id"`
	RoomNumber string     `json:"room_number"`
	Capacity   int        `json:"capacity"`
	Rent       float64    `json:"rent"`
	Amenities  []string   `json:"amenities"`
	Occupied   bool       `json:"occupied"`
	TenantID   string     `json:"tenant_id,omitempty"`
	TenantName string     `json:"tenant_name,omitempty"`
	Status     RoomStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
