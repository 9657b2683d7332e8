package staging

import (
	"context"
	"log"
	"sort"

	"yt-warehouse/pkg/domain"
)

// Stage writes each resolved channel's walk results into the staging
// store. A channel whose id is already staged is skipped wholesale, so
// re-running on the same input is a no-op. Child documents are bulk
// inserted without per-document existence checks; fine-grained
// deduplication happens at propagation time.
//
// Per-channel failures are logged and the remaining channels are still
// processed.
func Stage(ctx context.Context, store Store, results map[string]*domain.ChannelAnalysis) {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		stageChannel(ctx, store, name, results[name])
	}
}

func stageChannel(ctx context.Context, store Store, name string, result *domain.ChannelAnalysis) {
	if result == nil || result.NotFound {
		log.Printf("staging: %q was not resolved, nothing to stage", name)
		return
	}
	if result.Channel == nil {
		log.Printf("staging: %q (%s) has no channel record, skipping", name, result.ChannelID)
		return
	}

	exists, err := store.HasChannel(ctx, result.ChannelID)
	if err != nil {
		log.Printf("staging: existence check for %q: %v", name, err)
		return
	}
	if exists {
		log.Printf("staging: channel %s already staged, skipping %q", result.ChannelID, name)
		return
	}

	if err := store.InsertChannel(ctx, result.Channel); err != nil {
		log.Printf("staging: insert channel for %q: %v", name, err)
		return
	}
	if len(result.Playlists) > 0 {
		if err := store.InsertPlaylists(ctx, result.Playlists); err != nil {
			log.Printf("staging: insert playlists for %q: %v", name, err)
		}
	}
	if len(result.Videos) > 0 {
		if err := store.InsertVideos(ctx, result.Videos); err != nil {
			log.Printf("staging: insert videos for %q: %v", name, err)
		}
	}
	if len(result.Comments) > 0 {
		if err := store.InsertComments(ctx, result.Comments); err != nil {
			log.Printf("staging: insert comments for %q: %v", name, err)
		}
	}
	log.Printf("staging: %q staged (%d playlists, %d videos, %d comments)",
		name, len(result.Playlists), len(result.Videos), len(result.Comments))
}
