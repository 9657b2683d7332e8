// Package feed reads a channel's public Atom feed. The feed needs no
// API key and no quota, which makes it a cheap preview of the latest
// uploads before committing to a full hierarchy walk.
package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"yt-warehouse/pkg/httpclient"
)

const defaultFeedBase = "https://www.youtube.com/feeds/videos.xml"

// Upload is one entry of the channel feed. The feed only carries the
// latest ~15 uploads.
type Upload struct {
	VideoID   string
	Title     string
	Published string
	Link      string
}

// Fetcher fetches and parses channel Atom feeds.
type Fetcher struct {
	client     *httpclient.HTTPClient
	feedParser *gofeed.Parser

	// BaseURL overrides the feed endpoint; used by tests.
	BaseURL string
}

// NewFetcher creates a feed fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client:     httpclient.NewClient(30 * time.Second),
		feedParser: gofeed.NewParser(),
		BaseURL:    defaultFeedBase,
	}
}

// RecentUploads fetches the channel's feed and returns its entries in
// feed order (newest first).
func (f *Fetcher) RecentUploads(channelID string) ([]Upload, error) {
	if channelID == "" {
		return nil, fmt.Errorf("channel id is required")
	}

	resp, err := f.client.Get(f.BaseURL + "?channel_id=" + channelID)
	if err != nil {
		return nil, fmt.Errorf("fetch channel feed: %w", err)
	}
	defer resp.Body.Close()

	parsed, err := f.feedParser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse channel feed: %w", err)
	}
	if parsed == nil || len(parsed.Items) == 0 {
		return nil, fmt.Errorf("feed contains no items")
	}

	uploads := make([]Upload, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		uploads = append(uploads, Upload{
			VideoID:   videoIDOf(item),
			Title:     item.Title,
			Published: item.Published,
			Link:      item.Link,
		})
	}
	return uploads, nil
}

// videoIDOf pulls the video id from the yt:videoId extension, falling
// back to the "yt:video:<id>" entry guid.
func videoIDOf(item *gofeed.Item) string {
	if ext, ok := item.Extensions["yt"]; ok {
		if ids, ok := ext["videoId"]; ok && len(ids) > 0 {
			return ids[0].Value
		}
	}
	return strings.TrimPrefix(item.GUID, "yt:video:")
}
