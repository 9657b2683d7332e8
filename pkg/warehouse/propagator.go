package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"

	"yt-warehouse/pkg/staging"
)

// Propagator copies staged documents into the warehouse tables. Every
// row is existence-checked by primary key first; rows already present
// are skipped, never updated. All per-row failures are logged and the
// batch continues.
type Propagator struct {
	staging staging.Reader
	db      *sql.DB
}

// NewPropagator wires the staging reader to a connected warehouse
// handle.
func NewPropagator(reader staging.Reader, db *sql.DB) (*Propagator, error) {
	if reader == nil {
		return nil, fmt.Errorf("staging reader is required")
	}
	if db == nil {
		return nil, fmt.Errorf("warehouse DB is required")
	}
	return &Propagator{staging: reader, db: db}, nil
}

// Propagate streams the four staged collections into their tables, in
// foreign-key order. A collection whose scan fails is skipped whole;
// the other collections are still processed.
func (p *Propagator) Propagate(ctx context.Context) error {
	if err := EnsureTables(ctx, p.db); err != nil {
		return err
	}
	p.propagateChannels(ctx)
	p.propagatePlaylists(ctx)
	p.propagateVideos(ctx)
	p.propagateComments(ctx)
	return nil
}

func (p *Propagator) propagateChannels(ctx context.Context) {
	channels, err := p.staging.AllChannels(ctx)
	if err != nil {
		log.Printf("warehouse: read staged channels: %v", err)
		return
	}

	const insert = `INSERT INTO channels (channel_id, channel_name, channel_type, channel_status,
		video_count, view_count, subs_count, publish_date, description, hidden_subs_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	inserted, skipped := 0, 0
	for _, channel := range channels {
		exists, err := p.rowExists(ctx, "SELECT 1 FROM channels WHERE channel_id = ?", channel.ChannelID)
		if err != nil {
			log.Printf("warehouse: check channel %s: %v", channel.ChannelID, err)
			continue
		}
		if exists {
			skipped++
			continue
		}
		_, err = p.db.ExecContext(ctx, insert,
			channel.ChannelID,
			channel.ChannelName,
			channel.ChannelType,
			channel.ChannelStatus,
			nullableCount(channel.VideoCount),
			nullableCount(channel.ViewCount),
			nullableCount(channel.SubsCount), // NULL when the channel hides it
			nullIfNA(channel.PublishDate),
			channel.Description,
			channel.HiddenSubsCount,
		)
		if err != nil {
			log.Printf("warehouse: insert channel %s: %v", channel.ChannelID, err)
			continue
		}
		inserted++
	}
	log.Printf("warehouse: channels done, %d inserted, %d already present", inserted, skipped)
}

func (p *Propagator) propagatePlaylists(ctx context.Context) {
	playlists, err := p.staging.AllPlaylists(ctx)
	if err != nil {
		log.Printf("warehouse: read staged playlists: %v", err)
		return
	}

	const insert = `INSERT INTO playlists (channel_id, playlist_id, playlist_name) VALUES (?, ?, ?)`

	inserted, skipped := 0, 0
	for _, playlist := range playlists {
		exists, err := p.rowExists(ctx, "SELECT 1 FROM playlists WHERE playlist_id = ?", playlist.PlaylistID)
		if err != nil {
			log.Printf("warehouse: check playlist %s: %v", playlist.PlaylistID, err)
			continue
		}
		if exists {
			skipped++
			continue
		}
		if _, err := p.db.ExecContext(ctx, insert, playlist.ChannelID, playlist.PlaylistID, playlist.PlaylistName); err != nil {
			log.Printf("warehouse: insert playlist %s: %v", playlist.PlaylistID, err)
			continue
		}
		inserted++
	}
	log.Printf("warehouse: playlists done, %d inserted, %d already present", inserted, skipped)
}

func (p *Propagator) propagateVideos(ctx context.Context) {
	videos, err := p.staging.AllVideos(ctx)
	if err != nil {
		log.Printf("warehouse: read staged videos: %v", err)
		return
	}

	const insert = `INSERT INTO videos (channel_id, video_id, title, description, published_at,
		view_count, like_count, dislike_count, comment_count, favorite_count,
		duration, thumbnail_url, caption_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	inserted, skipped := 0, 0
	for _, video := range videos {
		exists, err := p.rowExists(ctx, "SELECT 1 FROM videos WHERE video_id = ?", video.VideoID)
		if err != nil {
			log.Printf("warehouse: check video %s: %v", video.VideoID, err)
			continue
		}
		if exists {
			skipped++
			continue
		}
		_, err = p.db.ExecContext(ctx, insert,
			video.ChannelID,
			video.VideoID,
			video.Title,
			video.Description,
			video.PublishedAt,
			countOrZero(video.ViewCount),
			countOrZero(video.LikeCount),
			countOrZero(video.DislikeCount),
			countOrZero(video.CommentCount),
			countOrZero(video.FavoriteCount),
			video.Duration,
			video.ThumbnailURL,
			video.CaptionStatus,
		)
		if err != nil {
			log.Printf("warehouse: insert video %s: %v", video.VideoID, err)
			continue
		}
		inserted++
	}
	log.Printf("warehouse: videos done, %d inserted, %d already present", inserted, skipped)
}

func (p *Propagator) propagateComments(ctx context.Context) {
	comments, err := p.staging.AllComments(ctx)
	if err != nil {
		log.Printf("warehouse: read staged comments: %v", err)
		return
	}

	const insert = `INSERT INTO comments (comment_id, video_id, commenter_name, comment_text, comment_published_at)
		VALUES (?, ?, ?, ?, ?)`

	inserted, skipped, dropped := 0, 0, 0
	for _, comment := range comments {
		exists, err := p.rowExists(ctx, "SELECT 1 FROM comments WHERE comment_id = ?", comment.CommentID)
		if err != nil {
			log.Printf("warehouse: check comment %s: %v", comment.CommentID, err)
			continue
		}
		if exists {
			skipped++
			continue
		}
		videoExists, err := p.rowExists(ctx, "SELECT 1 FROM videos WHERE video_id = ?", comment.VideoID)
		if err != nil {
			log.Printf("warehouse: check video %s for comment %s: %v", comment.VideoID, comment.CommentID, err)
			continue
		}
		if !videoExists {
			log.Printf("warehouse: video %s not present, dropping comment %s", comment.VideoID, comment.CommentID)
			dropped++
			continue
		}
		_, err = p.db.ExecContext(ctx, insert,
			comment.CommentID,
			comment.VideoID,
			comment.CommenterName,
			comment.CommentText,
			comment.CommentPublishedAt,
		)
		if err != nil {
			log.Printf("warehouse: insert comment %s: %v", comment.CommentID, err)
			continue
		}
		inserted++
	}
	log.Printf("warehouse: comments done, %d inserted, %d already present, %d orphans dropped",
		inserted, skipped, dropped)
}

func (p *Propagator) rowExists(ctx context.Context, query, id string) (bool, error) {
	var one int
	err := p.db.QueryRowContext(ctx, query, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// countOrZero coerces a staged count to an integer, defaulting to 0
// when the value is absent or non-numeric (e.g. the "N/A" sentinel).
func countOrZero(count string) int64 {
	n, err := strconv.ParseInt(count, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// nullableCount coerces a staged count to an integer or SQL NULL when
// it is absent or non-numeric.
func nullableCount(count string) interface{} {
	n, err := strconv.ParseInt(count, 10, 64)
	if err != nil {
		return nil
	}
	return n
}

func nullIfNA(value string) interface{} {
	if value == "" || value == "N/A" {
		return nil
	}
	return value
}
