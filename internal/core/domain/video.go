package domain

import "time"

// VideoRecord is a video as the catalog returns it, before any formatting.
type VideoRecord struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	ChannelID    string
	ChannelTitle string
	CategoryID   string
	PublishedAt  string
	Duration     string // ISO-8601, e.g. PT5M30S
	ViewCount    string
	LikeCount    string
}

// ChannelRecord holds the channel fields used to enrich a single video.
type ChannelRecord struct {
	ID              string
	Title           string
	ThumbnailURL    string
	SubscriberCount string
}

// SearchHits is one page of keyword search ids.
type SearchHits struct {
	IDs           []string
	NextPageToken string
}

type VideoSummary struct {
	ID                  string
	Title               string
	Description         string
	ThumbnailURL        string
	ChannelID           string
	ChannelTitle        string
	ChannelThumbnailURL string
	PublishedAt         time.Time
	Duration            string
	ViewCount           string
	LikeCount           string
	SubscriberCount     string
}

// NewVideoSummary builds a summary from a raw record. The mode decides how
// duration and counts are rendered.
func NewVideoSummary(rec VideoRecord, mode FormatMode) VideoSummary {
	published, _ := time.Parse(time.RFC3339, rec.PublishedAt)

	v := VideoSummary{
		ID:           rec.ID,
		Title:        rec.Title,
		Description:  rec.Description,
		ThumbnailURL: rec.ThumbnailURL,
		ChannelID:    rec.ChannelID,
		ChannelTitle: rec.ChannelTitle,
		PublishedAt:  published,
	}

	switch mode {
	case FormatDisplay:
		v.Duration = FormatDuration(rec.Duration)
		v.ViewCount = FormatCountString(rec.ViewCount)
		v.LikeCount = FormatCountString(rec.LikeCount)
	default:
		v.Duration = rec.Duration
		v.ViewCount = rec.ViewCount
		v.LikeCount = rec.LikeCount
	}

	return v
}

// WithChannel returns a copy of v carrying the channel thumbnail and subscriber count.
func (v VideoSummary) WithChannel(ch ChannelRecord, mode FormatMode) VideoSummary {
	v.ChannelThumbnailURL = ch.ThumbnailURL
	if mode == FormatDisplay {
		v.SubscriberCount = FormatCountString(ch.SubscriberCount)
	} else {
		v.SubscriberCount = ch.SubscriberCount
	}
	return v
}

// WatchURL is the public page for the video.
func (v VideoSummary) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// VideoPage is one page of search results.
type VideoPage struct {
	Results       []VideoSummary
	NextPageToken string
}

// EmptyPage is what a failed search degrades to.
func EmptyPage() VideoPage {
	return VideoPage{Results: []VideoSummary{}}
}

// WatchPage groups everything the watch screen shows for one video.
type WatchPage struct {
	Video    *VideoSummary
	Related  []VideoSummary
	Comments []Comment
}
