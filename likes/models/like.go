package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
)

// Like records that a user likes a post. A user holds at most one like
// per post; the (post_id, user_id) pair is unique at the schema level.
type Like struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PostID    uuid.UUID `json:"postId" db:"post_id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// LikeStatus is the result of a toggle: the caller's new like state and
// the post's resulting like count.
type LikeStatus struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}
