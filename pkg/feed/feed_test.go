package feed

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const channelFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns="http://www.w3.org/2005/Atom">
  <id>yt:channel:UCxxx</id>
  <title>Acme</title>
  <entry>
    <id>yt:video:Vzzz</id>
    <yt:videoId>Vzzz</yt:videoId>
    <title>First video</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=Vzzz"/>
    <published>2024-01-02T00:00:00+00:00</published>
  </entry>
  <entry>
    <id>yt:video:Vyyy</id>
    <yt:videoId>Vyyy</yt:videoId>
    <title>Older video</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=Vyyy"/>
    <published>2024-01-01T00:00:00+00:00</published>
  </entry>
</feed>`

func TestRecentUploads(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("channel_id"); got != "UCxxx" {
			t.Errorf("channel_id = %q, want UCxxx", got)
		}
		w.Header().Set("Content-Type", "application/atom+xml")
		_, _ = w.Write([]byte(channelFeed))
	}))
	defer server.Close()

	fetcher := NewFetcher()
	fetcher.BaseURL = server.URL

	uploads, err := fetcher.RecentUploads("UCxxx")
	if err != nil {
		t.Fatalf("RecentUploads() error: %v", err)
	}
	if len(uploads) != 2 {
		t.Fatalf("got %d uploads, want 2", len(uploads))
	}
	if uploads[0].VideoID != "Vzzz" || uploads[0].Title != "First video" {
		t.Errorf("first upload = %+v", uploads[0])
	}
	if uploads[1].Link != "https://www.youtube.com/watch?v=Vyyy" {
		t.Errorf("second upload link = %q", uploads[1].Link)
	}
}

func TestRecentUploadsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher()
	fetcher.BaseURL = server.URL

	if _, err := fetcher.RecentUploads("UCgone"); err == nil {
		t.Fatal("expected error for missing channel feed")
	}
}

func TestRecentUploadsEmptyFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<?xml version="1.0"?><feed xmlns="http://www.w3.org/2005/Atom"><title>empty</title></feed>`))
	}))
	defer server.Close()

	fetcher := NewFetcher()
	fetcher.BaseURL = server.URL

	if _, err := fetcher.RecentUploads("UCquiet"); err == nil {
		t.Fatal("expected error for a feed with no entries")
	}
}

func TestRecentUploadsRequiresChannelID(t *testing.T) {
	if _, err := NewFetcher().RecentUploads(""); err == nil {
		t.Fatal("expected error for empty channel id")
	}
}
