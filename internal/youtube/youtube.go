// Package youtube contains helpers for working with YouTube links:
// video-id extraction, thumbnail URLs, and duration display formatting.
package youtube

import (
	"fmt"
	"regexp"
)

// urlPatterns covers the URL shapes users paste: watch links, short
// youtu.be links, and embed/v player links.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&\n?#]+)`),
}

// ExtractVideoID returns the video id embedded in a YouTube URL, or ""
// if the URL doesn't match any known form.
func ExtractVideoID(url string) string {
	if url == "" {
		return ""
	}
	for _, p := range urlPatterns {
		if m := p.FindStringSubmatch(url); len(m) == 2 && m[1] != "" {
			return m[1]
		}
	}
	return ""
}

// ThumbnailURL returns the medium-quality thumbnail for a video URL,
// or "" if the URL has no extractable video id.
func ThumbnailURL(url string) string {
	id := ExtractVideoID(url)
	if id == "" {
		return ""
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/mqdefault.jpg", id)
}

// FormatDuration renders seconds as M:SS, or H:MM:SS above an hour.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "0:00"
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// FormatTimer renders seconds as M:SS for the live practice timer.
func FormatTimer(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
