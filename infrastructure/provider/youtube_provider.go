package provider

import (
	"TUI_video_browser/infrastructure/config"
	"TUI_video_browser/internal/core/domain"
	"TUI_video_browser/internal/core/ports"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

var ErrChannelNotFound = errors.New("channel not found")

var (
	videoParts   = []string{"snippet", "contentDetails", "statistics"}
	channelParts = []string{"snippet", "statistics"}
	snippetPart  = []string{"snippet"}
)

type Options struct {
	APIKey      string
	Endpoint    string // empty means the public API
	HTTPTimeout time.Duration
	MaxQPS      float64
}

// OptionsFromConfig maps the application config onto provider options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		APIKey:      cfg.YouTubeAPIKey,
		Endpoint:    cfg.YouTubeEndpoint,
		HTTPTimeout: cfg.HTTPTimeout,
		MaxQPS:      cfg.MaxQPS,
	}
}

type youtubeProvider struct {
	opts    Options
	log     ports.LoggerPort
	limiter *rate.Limiter
	service *youtube.Service
	mu      sync.Mutex
}

func NewYoutubeProvider(opts Options, logger ports.LoggerPort) ports.VideoCatalogPort {
	if opts.HTTPTimeout <= 0 {
		opts.HTTPTimeout = 15 * time.Second
	}
	limit := rate.Inf
	if opts.MaxQPS > 0 {
		limit = rate.Limit(opts.MaxQPS)
	}
	return &youtubeProvider{
		opts:    opts,
		log:     logger.With("provider"),
		limiter: rate.NewLimiter(limit, 1),
	}
}

// apiKeyTransport puts the API key on every request as the "key" query parameter.
type apiKeyTransport struct {
	key  string
	base http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	q := r.URL.Query()
	q.Set("key", t.key)
	r.URL.RawQuery = q.Encode()
	return t.base.RoundTrip(r)
}

func (s *youtubeProvider) getYoutubeService(ctx context.Context) (*youtube.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.service != nil {
		return s.service, nil
	}

	if s.opts.APIKey == "" {
		return nil, config.ErrMissingAPIKey
	}

	httpClient := &http.Client{
		Timeout:   s.opts.HTTPTimeout,
		Transport: &apiKeyTransport{key: s.opts.APIKey, base: http.DefaultTransport},
	}

	clientOpts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if s.opts.Endpoint != "" {
		endpoint := s.opts.Endpoint
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		clientOpts = append(clientOpts, option.WithEndpoint(endpoint))
	}

	service, err := youtube.NewService(ctx, clientOpts...)
	if err != nil {
		s.log.Error("error while create youtube service", err)
		return nil, fmt.Errorf("error while create youtube service: %w", err)
	}

	s.service = service
	s.log.Info("Create youtube service completed")

	return service, nil
}

// prepare returns the service once the rate limiter lets the call through.
func (s *youtubeProvider) prepare(ctx context.Context) (*youtube.Service, error) {
	service, err := s.getYoutubeService(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	return service, nil
}

func (s *youtubeProvider) SearchVideoIDs(ctx context.Context, query, pageToken string, maxResults int64) (domain.SearchHits, error) {
	service, err := s.prepare(ctx)
	if err != nil {
		return domain.SearchHits{}, err
	}

	call := service.Search.List(snippetPart).Q(query).Type("video").MaxResults(maxResults).Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		return domain.SearchHits{}, fmt.Errorf("error in call youtube search: %w", err)
	}

	return domain.SearchHits{
		IDs:           searchResultIDs(response.Items),
		NextPageToken: response.NextPageToken,
	}, nil
}

func (s *youtubeProvider) SearchCategoryVideoIDs(ctx context.Context, categoryID string, maxResults int64) ([]string, error) {
	service, err := s.prepare(ctx)
	if err != nil {
		return nil, err
	}

	response, err := service.Search.List(snippetPart).
		Type("video").
		VideoCategoryId(categoryID).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error in call youtube category search: %w", err)
	}

	return searchResultIDs(response.Items), nil
}

func (s *youtubeProvider) GetVideos(ctx context.Context, ids []string) ([]domain.VideoRecord, error) {
	if len(ids) == 0 {
		return []domain.VideoRecord{}, nil
	}

	service, err := s.prepare(ctx)
	if err != nil {
		return nil, err
	}

	response, err := service.Videos.List(videoParts).Id(ids...).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("error in call youtube videos: %w", err)
	}

	records := make([]domain.VideoRecord, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil || item.Id == "" {
			continue
		}
		records = append(records, toVideoRecord(item))
	}

	return records, nil
}

func (s *youtubeProvider) GetChannel(ctx context.Context, channelID string) (domain.ChannelRecord, error) {
	service, err := s.prepare(ctx)
	if err != nil {
		return domain.ChannelRecord{}, err
	}

	response, err := service.Channels.List(channelParts).Id(channelID).Context(ctx).Do()
	if err != nil {
		return domain.ChannelRecord{}, fmt.Errorf("error in call youtube channels: %w", err)
	}

	if len(response.Items) == 0 || response.Items[0] == nil {
		return domain.ChannelRecord{}, fmt.Errorf("%w: %s", ErrChannelNotFound, channelID)
	}

	item := response.Items[0]
	channel := domain.ChannelRecord{ID: item.Id}
	if item.Snippet != nil {
		channel.Title = item.Snippet.Title
		channel.ThumbnailURL = thumbnailURL(item.Snippet.Thumbnails)
	}
	if item.Statistics != nil && !item.Statistics.HiddenSubscriberCount {
		channel.SubscriberCount = strconv.FormatUint(item.Statistics.SubscriberCount, 10)
	}

	return channel, nil
}

func (s *youtubeProvider) ListComments(ctx context.Context, videoID string, maxResults int64) ([]domain.Comment, error) {
	service, err := s.prepare(ctx)
	if err != nil {
		return nil, err
	}

	response, err := service.CommentThreads.List(snippetPart).
		VideoId(videoID).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error in call youtube comment threads: %w", err)
	}

	comments := make([]domain.Comment, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil || item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
			continue
		}
		top := item.Snippet.TopLevelComment.Snippet
		published, _ := time.Parse(time.RFC3339, top.PublishedAt)

		comments = append(comments, domain.Comment{
			ID:                    item.Id,
			Text:                  top.TextDisplay,
			AuthorDisplayName:     top.AuthorDisplayName,
			AuthorProfileImageURL: top.AuthorProfileImageUrl,
			LikeCount:             top.LikeCount,
			PublishedAt:           published,
			Replies:               []domain.Comment{},
		})
	}

	return comments, nil
}

func searchResultIDs(items []*youtube.SearchResult) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil || item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		ids = append(ids, item.Id.VideoId)
	}
	return ids
}

func toVideoRecord(item *youtube.Video) domain.VideoRecord {
	rec := domain.VideoRecord{ID: item.Id}

	if sn := item.Snippet; sn != nil {
		rec.Title = sn.Title
		rec.Description = sn.Description
		rec.ThumbnailURL = thumbnailURL(sn.Thumbnails)
		rec.ChannelID = sn.ChannelId
		rec.ChannelTitle = sn.ChannelTitle
		rec.CategoryID = sn.CategoryId
		rec.PublishedAt = sn.PublishedAt
	}
	if item.ContentDetails != nil {
		rec.Duration = item.ContentDetails.Duration
	}
	if st := item.Statistics; st != nil {
		rec.ViewCount = strconv.FormatUint(st.ViewCount, 10)
		rec.LikeCount = strconv.FormatUint(st.LikeCount, 10)
	}

	return rec
}

// thumbnailURL prefers the medium rendition and falls back to whatever exists.
func thumbnailURL(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*youtube.Thumbnail{t.Medium, t.High, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}
