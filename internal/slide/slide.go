// Package slide normalizes playback sessions and library items into
// render-ready slides.
package slide

import (
	"context"
	"time"

	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"go.uber.org/zap"
)

// Placeholders substituted when the source lacks a field
const (
	UnknownUser            = "Unknown User"
	DescriptionUnavailable = "Description not available"
	NoDescription          = "No description available"
)

// Play mode labels
const (
	ModeTranscoding = "Transcoding"
	ModeDirectPlay  = "Direct Play"
)

// Poster transcode target; the background target follows the screen size
const (
	posterWidth  = 200
	posterHeight = 300
)

// Normalizer builds slides from catalog items. Artwork paths are run
// through the catalog's transcode URL builder so the server delivers
// images at the render target sizes.
type Normalizer struct {
	logger  *zap.Logger
	catalog domain.Catalog
	res     *domain.ScreenResolution
}

// NewNormalizer creates a slide normalizer
func NewNormalizer(logger *zap.Logger, catalog domain.Catalog, res *domain.ScreenResolution) *Normalizer {
	return &Normalizer{
		logger:  logger,
		catalog: catalog,
		res:     res,
	}
}

// firstNonEmpty returns the first non-empty candidate. Art fallback
// chains are spelled out as ordered literal argument lists at the call
// sites; the order is part of the contract.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// FromPlayback builds a slide for one active session
func (n *Normalizer) FromPlayback(item domain.PlaybackItem, now time.Time) domain.Slide {
	var fanart, poster, description string

	if item.Kind == domain.KindEpisode {
		fanart = firstNonEmpty(item.GrandparentArt, item.ParentArt, item.Art)
		poster = firstNonEmpty(item.GrandparentThumb, item.Thumb)
		description = item.GrandparentTitle + ": " + item.Summary
	} else {
		fanart = firstNonEmpty(item.Art, item.Thumb)
		poster = item.Thumb
		description = item.Summary
	}

	viewer := UnknownUser
	if len(item.Users) > 0 {
		viewer = item.Users[0]
	}

	mode := ModeDirectPlay
	if item.Transcoding {
		mode = ModeTranscoding
	}

	return domain.Slide{
		Title:       item.Title,
		Description: firstNonEmpty(description, NoDescription),
		FanartURL:   n.catalog.TranscodeImageURL(fanart, n.res.Width, n.res.Height),
		PosterURL:   n.catalog.TranscodeImageURL(poster, posterWidth, posterHeight),
		Playback: &domain.PlaybackInfo{
			Viewer: viewer,
			Mode:   mode,
			EndsAt: item.EstimatedEndTime(now),
		},
	}
}

// FromLibrary builds a slide for one recently-added item. Seasons and
// shows resolve their owning show record for title, description, fanart
// and counts; a failed resolution degrades this slide to the item's own
// title and placeholder fields without aborting the enumeration.
func (n *Normalizer) FromLibrary(ctx context.Context, item domain.LibraryItem) domain.Slide {
	s := domain.Slide{
		Title:       item.Title,
		Description: firstNonEmpty(item.Summary, NoDescription),
		FanartURL:   n.catalog.TranscodeImageURL(item.Art, n.res.Width, n.res.Height),
		PosterURL:   n.catalog.TranscodeImageURL(item.Thumb, posterWidth, posterHeight),
	}

	if item.Kind != domain.KindShow && item.Kind != domain.KindSeason {
		return s
	}

	key := item.RatingKey
	if item.Kind == domain.KindSeason {
		key = item.ParentRatingKey
	}

	show, err := n.catalog.ResolveShow(ctx, key)
	if err != nil {
		n.logger.Warn("Show resolution failed, degrading slide",
			zap.String("ratingKey", key),
			zap.String("title", item.Title),
			zap.Error(err))
		s.Description = DescriptionUnavailable
		s.SeasonEpisode = &domain.SeasonEpisodeInfo{}
		return s
	}

	s.Title = show.Title
	s.Description = firstNonEmpty(show.Summary, NoDescription)
	s.FanartURL = n.catalog.TranscodeImageURL(show.Art, n.res.Width, n.res.Height)
	s.SeasonEpisode = &domain.SeasonEpisodeInfo{
		Seasons:  show.SeasonCount,
		Episodes: show.EpisodeCount,
	}
	return s
}
