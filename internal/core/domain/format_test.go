package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"PT5M30S", "5:30"},
		{"PT1H2M3S", "1:02:03"},
		{"PT45S", "0:45"},
		{"PT1H", "1:00:00"},
		{"PT10M", "10:00"},
		{"PT0S", "0:00"},
		{"P1DT1H", "25:00:00"},
		{"", "0:00"},
		{"   ", "0:00"},
		{"garbage", "0:00"},
		{"5:30", "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{999_999, "1000.0K"},
		{1_000_000, "1.0M"},
		{2_300_000, "2.3M"},
		{1_250_000_000, "1250.0M"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCount(tt.in), "FormatCount(%d)", tt.in)
	}
}

func TestFormatCountString(t *testing.T) {
	assert.Equal(t, "1.5K", FormatCountString("1500"))
	assert.Equal(t, "999", FormatCountString(" 999 "))
	assert.Equal(t, "0", FormatCountString(""))
	assert.Equal(t, "0", FormatCountString("n/a"))
}

func TestNewVideoSummary_Modes(t *testing.T) {
	rec := VideoRecord{
		ID:           "a1",
		Title:        "Cats",
		ThumbnailURL: "https://img/a1.jpg",
		ChannelID:    "UC1",
		ChannelTitle: "Cats Inc",
		PublishedAt:  "2024-01-01T00:00:00Z",
		Duration:     "PT5M30S",
		ViewCount:    "2300000",
		LikeCount:    "1500",
	}

	raw := NewVideoSummary(rec, FormatRaw)
	assert.Equal(t, "PT5M30S", raw.Duration)
	assert.Equal(t, "2300000", raw.ViewCount)
	assert.Equal(t, "1500", raw.LikeCount)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), raw.PublishedAt)
	assert.Empty(t, raw.ChannelThumbnailURL)
	assert.Empty(t, raw.SubscriberCount)

	display := NewVideoSummary(rec, FormatDisplay)
	assert.Equal(t, "5:30", display.Duration)
	assert.Equal(t, "2.3M", display.ViewCount)
	assert.Equal(t, "1.5K", display.LikeCount)
	assert.Equal(t, raw.Title, display.Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=a1", display.WatchURL())
}

func TestNewVideoSummary_BadTimestamp(t *testing.T) {
	v := NewVideoSummary(VideoRecord{ID: "a", PublishedAt: "yesterday"}, FormatDisplay)
	assert.True(t, v.PublishedAt.IsZero())
	assert.Equal(t, "0:00", v.Duration)
	assert.Equal(t, "0", v.ViewCount)
}

func TestWithChannel(t *testing.T) {
	v := VideoSummary{ID: "a"}
	ch := ChannelRecord{ThumbnailURL: "https://img/ch.jpg", SubscriberCount: "1500"}

	assert.Equal(t, "1.5K", v.WithChannel(ch, FormatDisplay).SubscriberCount)
	assert.Equal(t, "1500", v.WithChannel(ch, FormatRaw).SubscriberCount)
	assert.Equal(t, "https://img/ch.jpg", v.WithChannel(ch, FormatRaw).ChannelThumbnailURL)
	assert.Empty(t, v.SubscriberCount)
}

func TestFormatModeString(t *testing.T) {
	assert.Equal(t, "raw", FormatRaw.String())
	assert.Equal(t, "display", FormatDisplay.String())
	assert.Equal(t, "FormatMode(9)", FormatMode(9).String())
}

func TestSearchPageState(t *testing.T) {
	st := SearchPageState{Results: []VideoSummary{{ID: "a"}}, NextPageToken: "T"}
	assert.True(t, st.HasMore())

	clone := st.Clone()
	clone.Results[0].ID = "b"
	assert.Equal(t, "a", st.Results[0].ID)

	assert.False(t, SearchPageState{}.HasMore())
	assert.NotNil(t, SearchPageState{}.Clone().Results)
}

func TestComment_IsLocal(t *testing.T) {
	assert.True(t, Comment{ID: LocalCommentID("x")}.IsLocal())
	assert.False(t, Comment{ID: "UgxAbc"}.IsLocal())
}
