package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/lib/pq"
)

// User represents a registered account. The interaction services treat
// users as read-only; they only need existence checks and display names
// for notification text.
type User struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Email       string         `db:"email" json:"email"`
	Name        string         `db:"name" json:"name"`
	Bio         string         `db:"bio" json:"bio"`
	Specialties pq.StringArray `db:"specialties" json:"specialties"`
	Private     bool           `db:"private" json:"private"`
	Role        string         `db:"role" json:"role"`
	Avatar      string         `db:"avatar" json:"avatar"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`
}

// CreateProfileRequest represents the request payload for creating a
// profile. Identity fields (id, email, role) come from the verified
// token, never from the body; the body only seeds optional profile data.
type CreateProfileRequest struct {
	Name        *string  `json:"name,omitempty"`
	Bio         *string  `json:"bio,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Private     *bool    `json:"private,omitempty"`
	Avatar      *string  `json:"avatar,omitempty"`
}

// UpdateProfileRequest represents the request payload for updating a profile
type UpdateProfileRequest struct {
	Name        *string  `json:"name,omitempty"`
	Bio         *string  `json:"bio,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Private     *bool    `json:"private,omitempty"`
	Avatar      *string  `json:"avatar,omitempty"`
}

// UserResponse represents the public view of a user
type UserResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Bio         string   `json:"bio"`
	Specialties []string `json:"specialties"`
	Private     bool     `json:"private"`
	Avatar      string   `json:"avatar"`
}

// ToResponse converts a User to its public representation
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Bio:         u.Bio,
		Specialties: u.Specialties,
		Private:     u.Private,
		Avatar:      u.Avatar,
	}
}
