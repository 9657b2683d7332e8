package youtube

import (
	"context"
	"log"

	"yt-warehouse/pkg/domain"
)

// AnalyzeChannels runs the full hierarchy walk for each requested
// channel name and returns one independent result per name. A name the
// search cannot resolve yields a not-found marker; it never aborts the
// rest of the batch.
//
// Video ids are gathered from both discovery paths — playlist
// membership and direct channel search — and merged into a single
// de-duplicated set before the detail and comment fetches, so a video
// reachable both ways is fetched exactly once.
func (c *Client) AnalyzeChannels(ctx context.Context, names []string) map[string]*domain.ChannelAnalysis {
	out := make(map[string]*domain.ChannelAnalysis, len(names))
	for _, name := range names {
		out[name] = c.analyzeChannel(ctx, name)
	}
	return out
}

func (c *Client) analyzeChannel(ctx context.Context, name string) *domain.ChannelAnalysis {
	channelID, err := c.ChannelIDByName(ctx, name)
	if err != nil {
		log.Printf("youtube: channel %q not found", name)
		return &domain.ChannelAnalysis{Name: name, NotFound: true}
	}

	result := &domain.ChannelAnalysis{Name: name, ChannelID: channelID}
	result.Playlists = c.Playlists(ctx, channelID)

	videoIDs := c.VideoIDsFromChannel(ctx, channelID)
	if len(result.Playlists) > 0 {
		playlistIDs := make([]string, 0, len(result.Playlists))
		for _, playlist := range result.Playlists {
			playlistIDs = append(playlistIDs, playlist.PlaylistID)
		}
		videoIDs = unionIDs(videoIDs, c.VideoIDsFromPlaylists(ctx, playlistIDs))
	}
	result.VideoIDs = videoIDs

	result.Videos = c.VideoDetails(ctx, videoIDs, channelID)
	result.Comments = c.Comments(ctx, videoIDs)

	// Last, same as the reference flow; a failure here leaves the
	// channel record nil and staging skips the whole channel.
	if channel, err := c.ChannelDetails(ctx, channelID); err == nil {
		result.Channel = channel
	}
	return result
}

func unionIDs(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	for _, id := range a {
		seen[id] = true
	}
	for _, id := range b {
		seen[id] = true
	}
	return sortedIDs(seen)
}
