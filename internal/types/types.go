package types

import (
	uuid "github.com/gofrs/uuid"
)

// HTTP Header Constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "
)

// Common role values
const (
	UserRole  = "USER"
	AdminRole = "ADMIN"
)

// UserCtxName is the fiber Locals key where the authenticated user context is stored.
const UserCtxName = "user"

// UserContext carries the acting identity resolved by the auth middleware.
// Every service operation receives it explicitly; there is no ambient
// security context anywhere in the codebase.
type UserContext struct {
	UserID      uuid.UUID `json:"uid"`
	Username    string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Avatar      string    `json:"avatar"`
	SystemRole  string    `json:"role"`
}
