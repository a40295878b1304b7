package usecases

import (
	"TUI_video_browser/internal/core/domain"
	"TUI_video_browser/internal/core/ports"
	"context"
	"time"

	"github.com/google/uuid"
)

// Limits bounds the page sizes requested upstream.
type Limits struct {
	SearchPageSize   int64
	RelatedLimit     int64
	CommentsPageSize int64
}

func DefaultLimits() Limits {
	return Limits{SearchPageSize: 20, RelatedLimit: 5, CommentsPageSize: 20}
}

type catalogUseCase struct {
	service ports.VideoCatalogPort
	log     ports.LoggerPort
	limits  Limits

	now   func() time.Time
	newID func() string
}

// CatalogUseCase is the application's only way to reach the video catalog.
// Everything except FetchVideos is fail-soft: failures come back as empty values.
type CatalogUseCase interface {
	FetchVideos(ctx context.Context, query, pageToken string) (domain.VideoPage, error)
	SearchVideos(ctx context.Context, query, pageToken string) domain.VideoPage
	GetVideoDetail(ctx context.Context, id string) *domain.VideoSummary
	GetRelatedVideos(ctx context.Context, id string) []domain.VideoSummary
	GetComments(ctx context.Context, videoID string) []domain.Comment
	LoadWatchPage(ctx context.Context, id string) domain.WatchPage
	NewLocalComment(text string) (domain.Comment, error)
}

func NewCatalogUseCase(service ports.VideoCatalogPort, logger ports.LoggerPort, limits Limits) CatalogUseCase {
	defaults := DefaultLimits()
	if limits.SearchPageSize <= 0 {
		limits.SearchPageSize = defaults.SearchPageSize
	}
	if limits.RelatedLimit <= 0 {
		limits.RelatedLimit = defaults.RelatedLimit
	}
	if limits.CommentsPageSize <= 0 {
		limits.CommentsPageSize = defaults.CommentsPageSize
	}

	return &catalogUseCase{
		service: service,
		log:     logger.With("catalog"),
		limits:  limits,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// summarize builds summaries in the given mode, dropping records without an id.
func summarize(records []domain.VideoRecord, mode domain.FormatMode) []domain.VideoSummary {
	out := make([]domain.VideoSummary, 0, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			continue
		}
		out = append(out, domain.NewVideoSummary(rec, mode))
	}
	return out
}

// uniqueIDs keeps the first occurrence of every non-empty id, in order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
