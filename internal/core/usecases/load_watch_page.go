package usecases

import (
	"TUI_video_browser/internal/core/domain"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// LoadWatchPage loads detail, related videos and comments concurrently. The
// seed video is fetched once and shared by the detail and related lookups.
func (uc *catalogUseCase) LoadWatchPage(ctx context.Context, id string) domain.WatchPage {
	uc.log.Info(fmt.Sprintf("Init Load Watch Page (id=%s)", id))

	page := domain.WatchPage{Related: []domain.VideoSummary{}}

	// every part degrades on its own, so no goroutine returns an error
	var g errgroup.Group

	g.Go(func() error {
		page.Comments = uc.GetComments(ctx, id)
		return nil
	})
	g.Go(func() error {
		seed, ok := uc.lookupVideo(ctx, id)
		if !ok {
			return nil
		}

		var seedGroup errgroup.Group
		seedGroup.Go(func() error {
			page.Video = uc.detailFromRecord(ctx, seed)
			return nil
		})
		seedGroup.Go(func() error {
			page.Related = uc.relatedFromSeed(ctx, seed)
			return nil
		})
		return seedGroup.Wait()
	})

	_ = g.Wait()

	uc.log.Info("Load Watch Page completed")

	return page
}
