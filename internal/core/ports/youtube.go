package ports

import (
	"TUI_video_browser/internal/core/domain"
	"context"
)

type VideoCatalogPort interface {
	SearchVideoIDs(ctx context.Context, query, pageToken string, maxResults int64) (domain.SearchHits, error)
	SearchCategoryVideoIDs(ctx context.Context, categoryID string, maxResults int64) ([]string, error)
	GetVideos(ctx context.Context, ids []string) ([]domain.VideoRecord, error)
	GetChannel(ctx context.Context, channelID string) (domain.ChannelRecord, error)
	ListComments(ctx context.Context, videoID string, maxResults int64) ([]domain.Comment, error)
}
