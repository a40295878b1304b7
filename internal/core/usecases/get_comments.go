package usecases

import (
	"TUI_video_browser/internal/core/domain"
	"context"
	"fmt"
)

func (uc *catalogUseCase) GetComments(ctx context.Context, videoID string) []domain.Comment {
	uc.log.Info(fmt.Sprintf("Init Get Comments (videoID=%s)", videoID))

	comments, err := uc.service.ListComments(ctx, videoID, uc.limits.CommentsPageSize)
	if err != nil {
		uc.log.Error("Failed to get comments", err)
		return []domain.Comment{}
	}

	if comments == nil {
		comments = []domain.Comment{}
	}

	// replies are never requested upstream
	for i := range comments {
		comments[i].Replies = []domain.Comment{}
	}

	uc.log.Info(fmt.Sprintf("Get Comments completed: %d comments", len(comments)))

	return comments
}
