package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost_LikedBy(t *testing.T) {
	liker := uuid.New()
	post := &Post{Likes: []Like{{ID: uuid.New(), UserID: liker}}}

	assert.True(t, post.LikedBy(liker))
	assert.False(t, post.LikedBy(uuid.New()))
	assert.False(t, (&Post{}).LikedBy(liker))
}

func TestPost_FindComment(t *testing.T) {
	author := uuid.New()
	first := Comment{ID: uuid.New(), UserID: author, Text: "first"}
	second := Comment{ID: uuid.New(), UserID: author, Text: "second"}
	post := &Post{Comments: []Comment{first, second}}

	got, ok := post.FindComment(second.ID)
	require.True(t, ok)
	assert.Equal(t, "second", got.Text, "lookup is by comment id, not by author")

	_, ok = post.FindComment(uuid.New())
	assert.False(t, ok)
}
