package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/lib/pq"
)

// Post represents a recipe post. LikeCount and CommentCount are
// denormalized caches of the live like/comment records; they are
// mutated only through the atomic counter methods on PostRepository.
type Post struct {
	ID               uuid.UUID      `db:"id" json:"id"`
	OwnerUserID      uuid.UUID      `db:"owner_user_id" json:"ownerUserId"`
	OwnerDisplayName string         `db:"owner_display_name" json:"ownerDisplayName"`
	Title            string         `db:"title" json:"title"`
	Description      string         `db:"description" json:"description"`
	Content          string         `db:"content" json:"content"`
	MediaURLs        pq.StringArray `db:"media_urls" json:"mediaUrls"`
	MediaType        string         `db:"media_type" json:"mediaType"`
	Ingredients      pq.StringArray `db:"ingredients" json:"ingredients"`
	Amounts          pq.StringArray `db:"amounts" json:"amounts"`
	Instructions     pq.StringArray `db:"instructions" json:"instructions"`
	CookingTime      int            `db:"cooking_time" json:"cookingTime"`
	Servings         int            `db:"servings" json:"servings"`
	Category         string         `db:"category" json:"category"`
	LikeCount        int            `db:"like_count" json:"likeCount"`
	CommentCount     int            `db:"comment_count" json:"commentCount"`
	CreatedAt        time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updatedAt"`
}

// CreatePostRequest represents the request payload for creating a post
type CreatePostRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Content      string   `json:"content"`
	MediaURLs    []string `json:"mediaUrls"`
	MediaType    string   `json:"mediaType"`
	Ingredients  []string `json:"ingredients"`
	Amounts      []string `json:"amounts"`
	Instructions []string `json:"instructions"`
	CookingTime  int      `json:"cookingTime"`
	Servings     int      `json:"servings"`
	Category     string   `json:"category"`
}

// UpdatePostRequest represents the request payload for updating a post
type UpdatePostRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Content      *string  `json:"content,omitempty"`
	MediaURLs    []string `json:"mediaUrls,omitempty"`
	MediaType    *string  `json:"mediaType,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Amounts      []string `json:"amounts,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
	CookingTime  *int     `json:"cookingTime,omitempty"`
	Servings     *int     `json:"servings,omitempty"`
	Category     *string  `json:"category,omitempty"`
}

// PostsListResponse represents the response for listing posts
type PostsListResponse struct {
	Posts []Post `json:"posts"`
	Count int    `json:"count"`
}
