// Package staging persists raw per-channel walk results into the
// MongoDB staging database and streams them back out for relational
// propagation.
package staging

import (
	"context"

	"yt-warehouse/pkg/domain"
)

// Store is the write surface of the staging database. It is an
// interface so the staging flow can be tested against an in-memory
// fake.
type Store interface {
	// HasChannel reports whether a channel document with the given id
	// is already staged.
	HasChannel(ctx context.Context, channelID string) (bool, error)
	InsertChannel(ctx context.Context, channel *domain.Channel) error
	InsertPlaylists(ctx context.Context, playlists []domain.Playlist) error
	InsertVideos(ctx context.Context, videos []domain.Video) error
	InsertComments(ctx context.Context, comments []domain.Comment) error
}

// Reader is the read surface used by the propagator: unfiltered
// full-collection scans.
type Reader interface {
	AllChannels(ctx context.Context) ([]domain.Channel, error)
	AllPlaylists(ctx context.Context) ([]domain.Playlist, error)
	AllVideos(ctx context.Context) ([]domain.Video, error)
	AllComments(ctx context.Context) ([]domain.Comment, error)
}
