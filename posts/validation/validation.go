package validation

import (
	"fmt"
	"strings"

	"github.com/Vnuja/YumScroll/posts/models"
)

const (
	maxTitleLength   = 200
	maxContentLength = 10000
)

// ValidateCreatePostRequest validates the create post request
func ValidateCreatePostRequest(req *models.CreatePostRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}

	if len(req.Title) > maxTitleLength {
		return fmt.Errorf("title must be less than %d characters", maxTitleLength)
	}

	if len(req.Content) > maxContentLength {
		return fmt.Errorf("content must be less than %d characters", maxContentLength)
	}

	if req.MediaType != "" && req.MediaType != "image" && req.MediaType != "video" {
		return fmt.Errorf("mediaType must be image or video")
	}

	if len(req.Amounts) > 0 && len(req.Amounts) != len(req.Ingredients) {
		return fmt.Errorf("amounts must match ingredients")
	}

	if req.CookingTime < 0 {
		return fmt.Errorf("cookingTime cannot be negative")
	}

	if req.Servings < 0 {
		return fmt.Errorf("servings cannot be negative")
	}

	return nil
}

// ValidateUpdatePostRequest validates the update post request
func ValidateUpdatePostRequest(req *models.UpdatePostRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return fmt.Errorf("title cannot be empty")
		}
		if len(*req.Title) > maxTitleLength {
			return fmt.Errorf("title must be less than %d characters", maxTitleLength)
		}
	}

	if req.Content != nil && len(*req.Content) > maxContentLength {
		return fmt.Errorf("content must be less than %d characters", maxContentLength)
	}

	if req.MediaType != nil && *req.MediaType != "image" && *req.MediaType != "video" {
		return fmt.Errorf("mediaType must be image or video")
	}

	if req.CookingTime != nil && *req.CookingTime < 0 {
		return fmt.Errorf("cookingTime cannot be negative")
	}

	if req.Servings != nil && *req.Servings < 0 {
		return fmt.Errorf("servings cannot be negative")
	}

	return nil
}
