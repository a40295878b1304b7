package usecases

import (
	"TUI_video_browser/internal/core/domain"
	"context"
	"fmt"
)

// FetchVideos runs a keyword search and then one batch detail lookup for the
// returned ids. Duration and counts stay in their raw upstream form.
func (uc *catalogUseCase) FetchVideos(ctx context.Context, query, pageToken string) (domain.VideoPage, error) {
	uc.log.Info(fmt.Sprintf("Init Fetch Videos (query=%q, pageToken=%q)", query, pageToken))

	hits, err := uc.service.SearchVideoIDs(ctx, query, pageToken, uc.limits.SearchPageSize)
	if err != nil {
		uc.log.Error("Failed to search videos", err)
		return domain.VideoPage{}, fmt.Errorf("failed to fetch videos: %w", err)
	}

	ids := uniqueIDs(hits.IDs)
	if len(ids) == 0 {
		uc.log.Warning("Search returned no videos")
		return domain.VideoPage{Results: []domain.VideoSummary{}, NextPageToken: hits.NextPageToken}, nil
	}

	records, err := uc.service.GetVideos(ctx, ids)
	if err != nil {
		uc.log.Error("Failed to get video details", err)
		return domain.VideoPage{}, fmt.Errorf("failed to fetch video details: %w", err)
	}

	page := domain.VideoPage{
		Results:       summarize(records, domain.FormatRaw),
		NextPageToken: hits.NextPageToken,
	}

	uc.log.Info(fmt.Sprintf("Fetch Videos completed: %d videos", len(page.Results)))

	return page, nil
}

// SearchVideos is FetchVideos without an error: any failure becomes an empty
// page with no continuation token.
func (uc *catalogUseCase) SearchVideos(ctx context.Context, query, pageToken string) domain.VideoPage {
	page, err := uc.FetchVideos(ctx, query, pageToken)
	if err != nil {
		return domain.EmptyPage()
	}
	return page
}
