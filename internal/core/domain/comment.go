package domain

import (
	"strings"
	"time"
)

const localCommentPrefix = "temp-"

type Comment struct {
	ID                    string
	Text                  string
	AuthorDisplayName     string
	AuthorProfileImageURL string
	LikeCount             int64
	PublishedAt           time.Time
	Replies               []Comment
}

// IsLocal reports whether the comment was created on this machine and never sent upstream.
func (c Comment) IsLocal() bool {
	return strings.HasPrefix(c.ID, localCommentPrefix)
}

// LocalCommentID builds the temporary id of an optimistic comment.
func LocalCommentID(token string) string {
	return localCommentPrefix + token
}
