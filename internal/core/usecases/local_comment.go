package usecases

import (
	"TUI_video_browser/internal/core/domain"
	"errors"
	"strings"
)

var ErrEmptyComment = errors.New("comment cannot be empty")

const localAuthorName = "Current User"

// NewLocalComment builds a comment that only lives in this session. It is
// never sent upstream.
func (uc *catalogUseCase) NewLocalComment(text string) (domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Comment{}, ErrEmptyComment
	}

	comment := domain.Comment{
		ID:                domain.LocalCommentID(uc.newID()),
		Text:              text,
		AuthorDisplayName: localAuthorName,
		LikeCount:         0,
		PublishedAt:       uc.now(),
		Replies:           []domain.Comment{},
	}

	uc.log.Info("Local comment created: " + comment.ID)

	return comment, nil
}

// PrependComment returns a new list with c first, leaving comments untouched.
func PrependComment(comments []domain.Comment, c domain.Comment) []domain.Comment {
	out := make([]domain.Comment, 0, len(comments)+1)
	out = append(out, c)
	return append(out, comments...)
}
