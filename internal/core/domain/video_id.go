package domain

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var ErrInvalidVideoURL = errors.New("not a YouTube video URL or id")

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ParseVideoID accepts a bare video id or any of the usual YouTube links
// (watch?v=, youtu.be/, /shorts/, /embed/, /live/) and returns the id.
func ParseVideoID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("video URL cannot be empty: %w", ErrInvalidVideoURL)
	}
	if videoIDPattern.MatchString(input) {
		return input, nil
	}

	if !strings.Contains(input, "://") {
		input = "https://" + input
	}
	parsed, err := url.Parse(input)
	if err != nil {
		return "", fmt.Errorf("error in parsing video url: %w", ErrInvalidVideoURL)
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")

	var id string
	switch host {
	case "youtu.be":
		id = strings.Trim(parsed.Path, "/")
	case "youtube.com", "music.youtube.com":
		// buscando o id baseado no parâmetro v da url
		id = parsed.Query().Get("v")
		if id == "" {
			segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
			if len(segments) == 2 {
				switch segments[0] {
				case "shorts", "embed", "live", "v":
					id = segments[1]
				}
			}
		}
	}

	if !videoIDPattern.MatchString(id) {
		return "", fmt.Errorf("%q: %w", input, ErrInvalidVideoURL)
	}
	return id, nil
}
