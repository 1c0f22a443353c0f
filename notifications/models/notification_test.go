package models

import (
	"testing"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

func TestShouldNotify(t *testing.T) {
	actor := uuid.Must(uuid.NewV4())
	other := uuid.Must(uuid.NewV4())

	assert.True(t, ShouldNotify(actor, other))
	assert.False(t, ShouldNotify(actor, actor))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "Amara liked your post", LikeMessage("Amara"))
	assert.Equal(t, "Amara commented on your post", CommentMessage("Amara"))
}
