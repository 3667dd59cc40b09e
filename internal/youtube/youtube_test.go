package youtube

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=7maJOI3QMu0", "7maJOI3QMu0"},
		{"https://youtube.com/watch?v=7maJOI3QMu0&t=42s", "7maJOI3QMu0"},
		{"https://youtu.be/7maJOI3QMu0", "7maJOI3QMu0"},
		{"https://youtu.be/7maJOI3QMu0?si=xyz", "7maJOI3QMu0"},
		{"https://www.youtube.com/embed/7maJOI3QMu0", "7maJOI3QMu0"},
		{"https://www.youtube.com/v/7maJOI3QMu0", "7maJOI3QMu0"},
		{"https://vimeo.com/12345", ""},
		{"not a url", ""},
		{"", ""},
	}

	for _, tt := range tests {
		got := ExtractVideoID(tt.url)
		if got != tt.want {
			t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestThumbnailURL(t *testing.T) {
	got := ThumbnailURL("https://youtu.be/abc123")
	want := "https://img.youtube.com/vi/abc123/mqdefault.jpg"
	if got != want {
		t.Errorf("ThumbnailURL() = %q, want %q", got, want)
	}

	if got := ThumbnailURL("garbage"); got != "" {
		t.Errorf("ThumbnailURL(garbage) = %q, want empty", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{-5, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{90, "1:30"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}

	for _, tt := range tests {
		got := FormatDuration(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
