package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a feed entry owned by UserID. Name and Avatar are a snapshot of the
// author taken when the post was created.
type Post struct {
	ID        uuid.UUID `json:"_id"`
	UserID    uuid.UUID `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"date"`
}

// Like records that UserID liked a post. A post holds at most one like per user.
type Like struct {
	ID     uuid.UUID `json:"_id"`
	UserID uuid.UUID `json:"user"`
}

// Comment is a reply on a post with a snapshot of its author.
type Comment struct {
	ID        uuid.UUID `json:"_id"`
	UserID    uuid.UUID `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// LikedBy reports whether userID already liked the post.
func (p *Post) LikedBy(userID uuid.UUID) bool {
	for _, like := range p.Likes {
		if like.UserID == userID {
			return true
		}
	}

	return false
}

// FindComment returns the comment with the given id.
func (p *Post) FindComment(commentID uuid.UUID) (*Comment, bool) {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i], true
		}
	}

	return nil, false
}
