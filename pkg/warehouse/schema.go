package warehouse

import (
	"context"
	"database/sql"
	"fmt"
)

// The four warehouse tables. Playlists and videos reference their
// channel, comments reference their video; rows violating either edge
// are never inserted by the propagator.
var tableDDL = []string{
	`CREATE TABLE IF NOT EXISTS channels (
		channel_id VARCHAR(255) PRIMARY KEY,
		channel_name VARCHAR(255),
		channel_type VARCHAR(50),
		channel_status VARCHAR(50),
		video_count INT,
		view_count INT,
		subs_count INT,
		publish_date DATE,
		description TEXT,
		hidden_subs_count BOOLEAN
	)`,
	`CREATE TABLE IF NOT EXISTS playlists (
		channel_id VARCHAR(255),
		playlist_id VARCHAR(255) PRIMARY KEY,
		playlist_name VARCHAR(255),
		FOREIGN KEY (channel_id) REFERENCES channels(channel_id)
	)`,
	`CREATE TABLE IF NOT EXISTS videos (
		channel_id VARCHAR(255),
		video_id VARCHAR(255) PRIMARY KEY,
		title VARCHAR(255),
		description TEXT,
		published_at DATETIME,
		view_count INT,
		like_count INT,
		dislike_count INT,
		comment_count INT,
		favorite_count INT,
		duration VARCHAR(50),
		thumbnail_url VARCHAR(255),
		caption_status VARCHAR(50),
		FOREIGN KEY (channel_id) REFERENCES channels(channel_id)
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		comment_id VARCHAR(255) PRIMARY KEY,
		video_id VARCHAR(255),
		commenter_name VARCHAR(255),
		comment_text TEXT,
		comment_published_at DATETIME,
		FOREIGN KEY (video_id) REFERENCES videos(video_id)
	)`,
}

// EnsureTables creates the four warehouse tables if they do not exist.
// Statement order satisfies the foreign-key edges.
func EnsureTables(ctx context.Context, db *sql.DB) error {
	for _, ddl := range tableDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
