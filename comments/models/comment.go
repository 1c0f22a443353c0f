package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
)

// Comment is a user-authored remark on a post. The author display name
// is denormalized at write time so listings render without a join.
type Comment struct {
	ID                uuid.UUID `json:"id" db:"id"`
	PostID            uuid.UUID `json:"postId" db:"post_id"`
	AuthorUserID      uuid.UUID `json:"authorUserId" db:"author_user_id"`
	AuthorDisplayName string    `json:"authorDisplayName" db:"author_display_name"`
	Content           string    `json:"content" db:"content"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// AddCommentRequest is the payload for creating a comment
type AddCommentRequest struct {
	Content string `json:"content"`
}

// UpdateCommentRequest is the payload for editing a comment's content
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// CommentsListResponse wraps a comment listing
type CommentsListResponse struct {
	Comments []Comment `json:"comments"`
	Count    int       `json:"count"`
}
