package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vnuja/YumScroll/posts/models"
)

func TestValidateCreatePostRequest(t *testing.T) {
	valid := func() *models.CreatePostRequest {
		return &models.CreatePostRequest{
			Title:       "Pol Sambol",
			Content:     "Grate the coconut...",
			Ingredients: []string{"coconut", "chili"},
			Amounts:     []string{"1", "2 tsp"},
			MediaType:   "image",
			CookingTime: 10,
			Servings:    4,
		}
	}

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, ValidateCreatePostRequest(valid()))
	})

	t.Run("nil request", func(t *testing.T) {
		assert.Error(t, ValidateCreatePostRequest(nil))
	})

	t.Run("blank title", func(t *testing.T) {
		req := valid()
		req.Title = "   "
		assert.Error(t, ValidateCreatePostRequest(req))
	})

	t.Run("title too long", func(t *testing.T) {
		req := valid()
		req.Title = strings.Repeat("x", 201)
		assert.Error(t, ValidateCreatePostRequest(req))
	})

	t.Run("bad media type", func(t *testing.T) {
		req := valid()
		req.MediaType = "audio"
		assert.Error(t, ValidateCreatePostRequest(req))
	})

	t.Run("amounts mismatch", func(t *testing.T) {
		req := valid()
		req.Amounts = []string{"1"}
		assert.Error(t, ValidateCreatePostRequest(req))
	})

	t.Run("negative cooking time", func(t *testing.T) {
		req := valid()
		req.CookingTime = -5
		assert.Error(t, ValidateCreatePostRequest(req))
	})
}

func TestValidateUpdatePostRequest(t *testing.T) {
	t.Run("empty patch is valid", func(t *testing.T) {
		assert.NoError(t, ValidateUpdatePostRequest(&models.UpdatePostRequest{}))
	})

	t.Run("blank title rejected", func(t *testing.T) {
		title := "  "
		assert.Error(t, ValidateUpdatePostRequest(&models.UpdatePostRequest{Title: &title}))
	})

	t.Run("negative servings rejected", func(t *testing.T) {
		servings := -1
		assert.Error(t, ValidateUpdatePostRequest(&models.UpdatePostRequest{Servings: &servings}))
	})
}
