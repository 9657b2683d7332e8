// Package youtube implements the channel resolver and the hierarchy
// walker on top of the YouTube Data API v3.
//
// All paginated walks are sequential and degrade on error: a failed
// page ends that listing early and whatever was accumulated so far is
// returned. No call is retried.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	"yt-warehouse/pkg/domain"
)

// ErrChannelNotFound is returned when a channel name cannot be
// resolved or a channel id has no detail record. Underlying API errors
// are logged and collapsed into this sentinel.
var ErrChannelNotFound = errors.New("channel not found")

// Client wraps a YouTube Data API v3 service.
type Client struct {
	svc *youtubeapi.Service
}

// NewClient creates an API-key authenticated client. Extra options are
// appended after the key so tests can point the service at a fake
// endpoint.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}

	all := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := youtubeapi.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// ChannelIDByName resolves a human-readable channel name to a channel
// id via search, taking the first match only. No disambiguation is
// attempted.
func (c *Client) ChannelIDByName(ctx context.Context, name string) (string, error) {
	resp, err := c.svc.Search.List([]string{"id"}).
		Q(name).
		Type("channel").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		log.Printf("youtube: channel search %q: %v", name, err)
		return "", ErrChannelNotFound
	}

	for _, item := range resp.Items {
		if item.Id != nil && item.Id.ChannelId != "" {
			return item.Id.ChannelId, nil
		}
	}
	return "", ErrChannelNotFound
}

// ChannelDetails fetches one channel's snippet, statistics and status.
// Fields the API did not return are coerced to domain.NA (or false for
// the hidden-subscriber flag).
func (c *Client) ChannelDetails(ctx context.Context, channelID string) (*domain.Channel, error) {
	resp, err := c.svc.Channels.List([]string{"snippet", "statistics", "status"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		log.Printf("youtube: channel details %s: %v", channelID, err)
		return nil, ErrChannelNotFound
	}
	if len(resp.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	item := resp.Items[0]
	ch := &domain.Channel{
		ChannelID:     channelID,
		ChannelName:   domain.NA,
		ChannelType:   domain.NA, // the v3 API exposes no channel type
		ChannelStatus: domain.NA,
		VideoCount:    domain.NA,
		ViewCount:     domain.NA,
		SubsCount:     domain.NA,
		PublishDate:   domain.NA,
	}

	if sn := item.Snippet; sn != nil {
		ch.ChannelName = sn.Title
		ch.Description = sn.Description
		ch.PublishDate = compactDate(sn.PublishedAt)
	}
	if st := item.Status; st != nil && st.PrivacyStatus != "" {
		ch.ChannelStatus = st.PrivacyStatus
	}
	if st := item.Statistics; st != nil {
		ch.VideoCount = strconv.FormatUint(st.VideoCount, 10)
		ch.ViewCount = strconv.FormatUint(st.ViewCount, 10)
		ch.HiddenSubsCount = st.HiddenSubscriberCount
		if !st.HiddenSubscriberCount {
			ch.SubsCount = strconv.FormatUint(st.SubscriberCount, 10)
		}
	}
	return ch, nil
}

// compactDate truncates an RFC3339 timestamp to its date component in
// compact digit form: "2017-01-05T11:22:33Z" -> "20170105".
func compactDate(published string) string {
	if published == "" {
		return domain.NA
	}
	date, _, _ := strings.Cut(published, "T")
	return strings.ReplaceAll(date, "-", "")
}
