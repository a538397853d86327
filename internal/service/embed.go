package service

import (
	"fmt"
	"regexp"
	"strings"

	"campaign-space-api/internal/domain"
	"campaign-space-api/internal/response"
)

var (
	spotifyLinkPattern  = regexp.MustCompile(`spotify\.com/(track|album|playlist)/([A-Za-z0-9]+)`)
	youtubeWatchPattern = regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]+)`)
	youtubeShortPattern = regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]+)`)
	youtubeEmbedPattern = regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]+)`)
)

// NormalizeEmbedURL converts a user-supplied music link into the embeddable
// player URL for its platform. Links that cannot be converted are rejected.
func NormalizeEmbedURL(platform domain.Platform, rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", response.NewAppError(response.ErrCodeValidation, "Song URL is required", "")
	}

	switch platform {
	case domain.PlatformSpotify:
		return normalizeSpotifyURL(trimmed)
	case domain.PlatformYouTube:
		return normalizeYouTubeURL(trimmed)
	case domain.PlatformSoundCloud:
		if !strings.Contains(trimmed, "soundcloud.com") || !strings.Contains(trimmed, "/tracks/") {
			return "", response.NewAppError(response.ErrCodeValidation,
				"SoundCloud URL must be a player URL containing /tracks/", "")
		}
		return trimmed, nil
	case domain.PlatformAmazonMusic:
		if !strings.Contains(trimmed, "music.amazon.com/embed/") {
			return "", response.NewAppError(response.ErrCodeValidation,
				"Amazon Music URL must be an embed URL", "")
		}
		return trimmed, nil
	default:
		return "", response.NewAppError(response.ErrCodeValidation,
			fmt.Sprintf("Unsupported platform: %s", platform), "")
	}
}

func normalizeSpotifyURL(rawURL string) (string, error) {
	// Already an embed link, keep as-is
	if strings.Contains(rawURL, "spotify.com") && strings.Contains(rawURL, "/embed/") {
		return rawURL, nil
	}

	matches := spotifyLinkPattern.FindStringSubmatch(rawURL)
	if matches == nil {
		return "", response.NewAppError(response.ErrCodeValidation,
			"Spotify URL must link to a track, album or playlist", "")
	}

	kind := matches[1]
	id := matches[2]
	return fmt.Sprintf("https://open.spotify.com/embed/%s/%s", kind, id), nil
}

func normalizeYouTubeURL(rawURL string) (string, error) {
	for _, pattern := range []*regexp.Regexp{youtubeWatchPattern, youtubeShortPattern, youtubeEmbedPattern} {
		if matches := pattern.FindStringSubmatch(rawURL); matches != nil {
			return fmt.Sprintf("https://www.youtube.com/embed/%s", matches[1]), nil
		}
	}
	return "", response.NewAppError(response.ErrCodeValidation,
		"YouTube URL must be a watch, share or embed link", "")
}
