package usecases

import (
	"TUI_video_browser/internal/core/domain"
	"context"
	"fmt"
)

// GetRelatedVideos lists other videos from the seed video's category.
// Any failure or missing piece along the way yields an empty list.
func (uc *catalogUseCase) GetRelatedVideos(ctx context.Context, id string) []domain.VideoSummary {
	uc.log.Info(fmt.Sprintf("Init Get Related Videos (id=%s)", id))

	seed, ok := uc.lookupVideo(ctx, id)
	if !ok {
		return []domain.VideoSummary{}
	}

	related := uc.relatedFromSeed(ctx, seed)

	uc.log.Info(fmt.Sprintf("Get Related Videos completed: %d videos", len(related)))

	return related
}

func (uc *catalogUseCase) relatedFromSeed(ctx context.Context, seed domain.VideoRecord) []domain.VideoSummary {
	empty := []domain.VideoSummary{}

	if seed.CategoryID == "" {
		uc.log.Warning(fmt.Sprintf("No category for video %s", seed.ID))
		return empty
	}

	ids, err := uc.service.SearchCategoryVideoIDs(ctx, seed.CategoryID, uc.limits.RelatedLimit)
	if err != nil {
		uc.log.Error("Failed to search category videos", err)
		return empty
	}

	others := make([]string, 0, len(ids))
	for _, candidate := range uniqueIDs(ids) {
		if candidate != seed.ID {
			others = append(others, candidate)
		}
	}
	if len(others) == 0 {
		uc.log.Warning(fmt.Sprintf("No related videos in category %s", seed.CategoryID))
		return empty
	}

	records, err := uc.service.GetVideos(ctx, others)
	if err != nil {
		uc.log.Error("Failed to get related video details", err)
		return empty
	}

	return summarize(records, domain.FormatDisplay)
}
