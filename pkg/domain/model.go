package domain

// NA is the sentinel stored for fields the API did not return.
// Numeric coercion to 0 happens only at relational-insert time.
const NA = "N/A"

// Channel represents a YouTube channel as staged in the document store.
// Count fields stay strings so an absent statistic can be staged as NA.
type Channel struct {
	ChannelID       string `bson:"channel_id" json:"channel_id"`
	ChannelName     string `bson:"channel_name" json:"channel_name"`
	ChannelType     string `bson:"channel_type" json:"channel_type"`
	ChannelStatus   string `bson:"channel_status" json:"channel_status"`
	VideoCount      string `bson:"video_count" json:"video_count"`
	ViewCount       string `bson:"view_count" json:"view_count"`
	SubsCount       string `bson:"subs_count" json:"subs_count"`
	PublishDate     string `bson:"publish_date" json:"publish_date"`
	Description     string `bson:"description" json:"description"`
	HiddenSubsCount bool   `bson:"hidden_subs_count" json:"hidden_subs_count"`
}

// Playlist represents a playlist owned by a channel.
type Playlist struct {
	ChannelID    string `bson:"channel_id" json:"channel_id"`
	PlaylistID   string `bson:"playlist_id" json:"playlist_id"`
	PlaylistName string `bson:"playlist_name" json:"playlist_name"`
}

// Video represents a single video with its snippet and statistics.
type Video struct {
	ChannelID     string `bson:"channel_id" json:"channel_id"`
	VideoID       string `bson:"video_id" json:"video_id"`
	Title         string `bson:"title" json:"title"`
	Description   string `bson:"description" json:"description"`
	PublishedAt   string `bson:"published_at" json:"published_at"`
	ViewCount     string `bson:"view_count" json:"view_count"`
	LikeCount     string `bson:"like_count" json:"like_count"`
	DislikeCount  string `bson:"dislike_count" json:"dislike_count"`
	CommentCount  string `bson:"comment_count" json:"comment_count"`
	FavoriteCount string `bson:"favorite_count" json:"favorite_count"`
	Duration      string `bson:"duration" json:"duration"`
	ThumbnailURL  string `bson:"thumbnail_url" json:"thumbnail_url"`
	CaptionStatus string `bson:"caption_status" json:"caption_status"`
}

// Comment represents a top-level comment on a video. Reply threads are
// not fetched.
type Comment struct {
	CommentID          string `bson:"comment_id" json:"comment_id"`
	VideoID            string `bson:"video_id" json:"video_id"`
	CommenterName      string `bson:"commenter_name" json:"commenter_name"`
	CommentText        string `bson:"comment_text" json:"comment_text"`
	CommentPublishedAt string `bson:"comment_published_at" json:"comment_published_at"`
}

// ChannelAnalysis is the walker's output for one requested channel name.
// NotFound marks names the search could not resolve; such entries carry
// no other data and are skipped by staging.
type ChannelAnalysis struct {
	Name      string
	ChannelID string
	NotFound  bool

	Channel   *Channel
	Playlists []Playlist
	VideoIDs  []string
	Videos    []Video
	Comments  []Comment
}
