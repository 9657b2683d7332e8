package youtube

import (
	"context"
	"log"
	"sort"
	"strconv"

	"yt-warehouse/pkg/domain"
)

const (
	listPageSize    = 50  // playlists, playlist items, search
	commentPageSize = 100 // comment threads
	maxCommentsPer  = 100 // hard cap of collected comments per video
)

// Playlists lists every playlist owned by the channel, 50 per page.
func (c *Client) Playlists(ctx context.Context, channelID string) []domain.Playlist {
	var playlists []domain.Playlist
	pageToken := ""
	for {
		resp, err := c.svc.Playlists.List([]string{"snippet"}).
			ChannelId(channelID).
			MaxResults(listPageSize).
			PageToken(pageToken).
			Context(ctx).
			Do()
		if err != nil {
			log.Printf("youtube: list playlists for %s: %v", channelID, err)
			break
		}
		if len(resp.Items) == 0 {
			break
		}
		for _, item := range resp.Items {
			title := domain.NA
			if item.Snippet != nil {
				title = item.Snippet.Title
			}
			playlists = append(playlists, domain.Playlist{
				ChannelID:    channelID,
				PlaylistID:   item.Id,
				PlaylistName: title,
			})
		}
		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return playlists
}

// VideoIDsFromPlaylists walks the items of each playlist and unions all
// video ids into one de-duplicated, sorted set.
func (c *Client) VideoIDsFromPlaylists(ctx context.Context, playlistIDs []string) []string {
	seen := make(map[string]bool)
	for _, playlistID := range playlistIDs {
		pageToken := ""
		for {
			resp, err := c.svc.PlaylistItems.List([]string{"contentDetails"}).
				PlaylistId(playlistID).
				MaxResults(listPageSize).
				PageToken(pageToken).
				Context(ctx).
				Do()
			if err != nil {
				log.Printf("youtube: list items of playlist %s: %v", playlistID, err)
				break
			}
			if len(resp.Items) == 0 {
				break
			}
			for _, item := range resp.Items {
				if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
					seen[item.ContentDetails.VideoId] = true
				}
			}
			pageToken = resp.NextPageToken
			if pageToken == "" {
				break
			}
		}
	}
	return sortedIDs(seen)
}

// VideoIDsFromChannel enumerates the channel's videos through search,
// de-duplicated into a sorted set.
func (c *Client) VideoIDsFromChannel(ctx context.Context, channelID string) []string {
	seen := make(map[string]bool)
	pageToken := ""
	for {
		resp, err := c.svc.Search.List([]string{"id"}).
			ChannelId(channelID).
			Type("video").
			MaxResults(listPageSize).
			PageToken(pageToken).
			Context(ctx).
			Do()
		if err != nil {
			log.Printf("youtube: search videos of %s: %v", channelID, err)
			break
		}
		if len(resp.Items) == 0 {
			break
		}
		for _, item := range resp.Items {
			if item.Id != nil && item.Id.VideoId != "" {
				seen[item.Id.VideoId] = true
			}
		}
		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return sortedIDs(seen)
}

// VideoDetails fetches snippet, statistics and content details one
// video at a time. A single failed fetch aborts the remaining batch and
// the details collected so far are returned.
func (c *Client) VideoDetails(ctx context.Context, videoIDs []string, channelID string) []domain.Video {
	var videos []domain.Video
	for _, videoID := range videoIDs {
		resp, err := c.svc.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
			Id(videoID).
			Context(ctx).
			Do()
		if err != nil {
			log.Printf("youtube: video details %s: %v", videoID, err)
			break
		}
		for _, item := range resp.Items {
			video := domain.Video{
				ChannelID:     channelID,
				VideoID:       videoID,
				Title:         domain.NA,
				Description:   domain.NA,
				PublishedAt:   domain.NA,
				ViewCount:     domain.NA,
				LikeCount:     domain.NA,
				DislikeCount:  domain.NA,
				CommentCount:  domain.NA,
				FavoriteCount: domain.NA,
				CaptionStatus: domain.NA,
			}
			if sn := item.Snippet; sn != nil {
				video.Title = sn.Title
				video.Description = sn.Description
				video.PublishedAt = normalizeTimestamp(sn.PublishedAt)
				if sn.Thumbnails != nil && sn.Thumbnails.Default != nil {
					video.ThumbnailURL = sn.Thumbnails.Default.Url
				}
			}
			if st := item.Statistics; st != nil {
				video.ViewCount = strconv.FormatUint(st.ViewCount, 10)
				video.LikeCount = strconv.FormatUint(st.LikeCount, 10)
				video.DislikeCount = strconv.FormatUint(st.DislikeCount, 10)
				video.CommentCount = strconv.FormatUint(st.CommentCount, 10)
				video.FavoriteCount = strconv.FormatUint(st.FavoriteCount, 10)
			}
			if cd := item.ContentDetails; cd != nil {
				video.Duration = FormatDuration(cd.Duration)
				if cd.Caption != "" {
					video.CaptionStatus = cd.Caption
				}
			}
			videos = append(videos, video)
		}
	}
	return videos
}

// Comments collects top-level comment threads per video, 100 per page,
// stopping at 100 collected comments per video. Videos with comments
// disabled fail their listing call and contribute nothing.
func (c *Client) Comments(ctx context.Context, videoIDs []string) []domain.Comment {
	var comments []domain.Comment
	for _, videoID := range videoIDs {
		collected := 0
		pageToken := ""
		for collected < maxCommentsPer {
			resp, err := c.svc.CommentThreads.List([]string{"snippet"}).
				VideoId(videoID).
				MaxResults(commentPageSize).
				PageToken(pageToken).
				Context(ctx).
				Do()
			if err != nil {
				log.Printf("youtube: comment threads of %s: %v", videoID, err)
				break
			}
			if len(resp.Items) == 0 {
				break
			}
			for _, item := range resp.Items {
				if collected >= maxCommentsPer {
					break
				}
				if item.Snippet == nil || item.Snippet.TopLevelComment == nil {
					continue
				}
				top := item.Snippet.TopLevelComment
				comment := domain.Comment{
					CommentID:          top.Id,
					VideoID:            videoID,
					CommenterName:      domain.NA,
					CommentText:        domain.NA,
					CommentPublishedAt: domain.NA,
				}
				if sn := top.Snippet; sn != nil {
					comment.CommenterName = sn.AuthorDisplayName
					comment.CommentText = flattenCommentHTML(sn.TextDisplay)
					comment.CommentPublishedAt = normalizeTimestamp(sn.PublishedAt)
				}
				comments = append(comments, comment)
				collected++
			}
			pageToken = resp.NextPageToken
			if pageToken == "" {
				break
			}
		}
	}
	return comments
}

func sortedIDs(seen map[string]bool) []string {
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
