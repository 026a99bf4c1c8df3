package domain

import "time"

// MediaKind mirrors the media server's item type discriminator
type MediaKind string

const (
	// KindMovie is a standalone movie
	KindMovie MediaKind = "movie"
	// KindEpisode is a single episode of a show
	KindEpisode MediaKind = "episode"
	// KindShow is a whole TV show
	KindShow MediaKind = "show"
	// KindSeason is one season of a show
	KindSeason MediaKind = "season"
)

// PlaybackItem is one active playback session on the media server.
// Art and thumb fields hold server-relative image paths and are empty
// when the server has no artwork at that level.
type PlaybackItem struct {
	// Title of the playing item (episode title for episodes)
	Title string
	// Kind is movie or episode for sessions
	Kind MediaKind
	// Summary is the item's own description text
	Summary string
	// GrandparentTitle is the show title for episodes
	GrandparentTitle string

	// Art is the item's own fanart path
	Art string
	// Thumb is the item's own poster path
	Thumb string
	// GrandparentArt is the show-level fanart path (episodes only)
	GrandparentArt string
	// ParentArt is the season-level fanart path (episodes only)
	ParentArt string
	// GrandparentThumb is the show-level poster path (episodes only)
	GrandparentThumb string

	// Users holds the usernames attached to the session
	Users []string
	// Transcoding is true when the server runs a transcode sub-session
	Transcoding bool

	// PositionMs is the current playback offset; PositionMs <= DurationMs
	PositionMs int64
	// DurationMs is the total runtime
	DurationMs int64
}

// EstimatedEndTime returns when playback finishes if it keeps running
// from the given instant.
func (p PlaybackItem) EstimatedEndTime(now time.Time) time.Time {
	remaining := time.Duration(p.DurationMs-p.PositionMs) * time.Millisecond
	return now.Add(remaining)
}

// LibraryItem is one entry from the recently-added listing
type LibraryItem struct {
	// RatingKey is the item's own catalog identifier
	RatingKey string
	// ParentRatingKey identifies the owning show for seasons
	ParentRatingKey string
	// Kind is movie, show or season for recently-added entries
	Kind MediaKind

	Title   string
	Summary string
	// Art is the fanart path, Thumb the poster path
	Art   string
	Thumb string
}

// ShowMetadata is the resolved show record backing a season or show
// library item.
type ShowMetadata struct {
	Title   string
	Summary string
	Art     string
	// SeasonCount and EpisodeCount are aggregated across the show's seasons
	SeasonCount  int
	EpisodeCount int
}

// SeasonEpisodeInfo is the optional show-statistics block of a slide
type SeasonEpisodeInfo struct {
	Seasons  int
	Episodes int
}

// PlaybackInfo is the optional session block of a slide
type PlaybackInfo struct {
	Viewer string
	Mode   string
	EndsAt time.Time
}

// Slide is the normalized render input. A slide derived from a playback
// session carries Playback and no SeasonEpisode; a slide derived from a
// show or season library item carries SeasonEpisode and no Playback; a
// movie library item carries neither. Slides are built fresh each cycle
// and discarded after render.
type Slide struct {
	Title string
	// Description is never empty; normalization substitutes a
	// placeholder when the source has no summary.
	Description string
	// PosterURL and FanartURL are absolute, pre-transcoded image URLs,
	// empty when the source has no artwork.
	PosterURL string
	FanartURL string

	SeasonEpisode *SeasonEpisodeInfo
	Playback      *PlaybackInfo
}

// IdleCounts feeds the clock screen's bottom counters
type IdleCounts struct {
	Movies  int
	Shows   int
	Playing int
}

// ScreenResolution holds the display dimensions
type ScreenResolution struct {
	Width  int
	Height int
}
