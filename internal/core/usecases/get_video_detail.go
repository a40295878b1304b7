package usecases

import (
	"TUI_video_browser/internal/core/domain"
	"context"
	"fmt"
)

func (uc *catalogUseCase) GetVideoDetail(ctx context.Context, id string) *domain.VideoSummary {
	uc.log.Info(fmt.Sprintf("Init Get Video Detail (id=%s)", id))

	rec, ok := uc.lookupVideo(ctx, id)
	if !ok {
		return nil
	}

	video := uc.detailFromRecord(ctx, rec)

	uc.log.Info("Get Video Detail completed")

	return video
}

// lookupVideo fetches a single video record. Failures are logged and reported
// as not found.
func (uc *catalogUseCase) lookupVideo(ctx context.Context, id string) (domain.VideoRecord, bool) {
	if id == "" {
		uc.log.Warning("Video lookup called without id")
		return domain.VideoRecord{}, false
	}

	records, err := uc.service.GetVideos(ctx, []string{id})
	if err != nil {
		uc.log.Error("Failed to get video", err)
		return domain.VideoRecord{}, false
	}
	if len(records) == 0 {
		uc.log.Warning(fmt.Sprintf("Video %s not found", id))
		return domain.VideoRecord{}, false
	}

	return records[0], true
}

func (uc *catalogUseCase) detailFromRecord(ctx context.Context, rec domain.VideoRecord) *domain.VideoSummary {
	video := domain.NewVideoSummary(rec, domain.FormatDisplay)

	// channel data only decorates the detail; losing it is not a failure
	if video.ChannelID != "" {
		channel, err := uc.service.GetChannel(ctx, video.ChannelID)
		if err != nil {
			uc.log.Error("Failed to get channel, showing video without it", err)
		} else {
			video = video.WithChannel(channel, domain.FormatDisplay)
		}
	}

	return &video
}
