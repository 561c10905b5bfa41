package domain

import "errors"

// Sentinel errors shared across services. The HTTP layer maps these to
// status codes in one place (internal/api error handler).
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrForbidden          = errors.New("access forbidden")

	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomExists     = errors.New("room number already exists")
	ErrRoomOccupied   = errors.New("room is not available")
	ErrTenantAssigned = errors.New("tenant already has a room")

	ErrPaymentNotFound  = errors.New("payment not found")
	ErrRequestNotFound  = errors.New("service request not found")
	ErrNoticeNotFound   = errors.New("notice not found")
	ErrDocumentNotFound = errors.New("document not found")

	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidRequestType = errors.New("invalid request type")
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrFileType           = errors.New("file type not allowed")
)
