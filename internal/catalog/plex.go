// Package catalog implements the media-server boundary against a
// Plex-compatible HTTP API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second // bounded so a dead server cannot stall the loop

// Client is a thin JSON client for the Plex API surface the kiosk needs
type Client struct {
	logger  *zap.Logger
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a catalog client for the given server
func NewClient(logger *zap.Logger, serverURL, token string) *Client {
	return &Client{
		logger:  logger,
		baseURL: strings.TrimRight(serverURL, "/"),
		token:   token,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Wire envelopes. Plex wraps every response in a MediaContainer.

type sessionsResponse struct {
	MediaContainer struct {
		Metadata []sessionMetadata `json:"Metadata"`
	} `json:"MediaContainer"`
}

type sessionMetadata struct {
	Title            string `json:"title"`
	Type             string `json:"type"`
	Summary          string `json:"summary"`
	GrandparentTitle string `json:"grandparentTitle"`
	Art              string `json:"art"`
	Thumb            string `json:"thumb"`
	GrandparentArt   string `json:"grandparentArt"`
	ParentArt        string `json:"parentArt"`
	GrandparentThumb string `json:"grandparentThumb"`
	ViewOffset       int64  `json:"viewOffset"`
	Duration         int64  `json:"duration"`
	User             *struct {
		Title string `json:"title"`
	} `json:"User"`
	TranscodeSession *struct {
		Key string `json:"key"`
	} `json:"TranscodeSession"`
}

type libraryResponse struct {
	MediaContainer struct {
		Metadata []libraryMetadata `json:"Metadata"`
	} `json:"MediaContainer"`
}

type libraryMetadata struct {
	RatingKey       string `json:"ratingKey"`
	ParentRatingKey string `json:"parentRatingKey"`
	Type            string `json:"type"`
	Title           string `json:"title"`
	Summary         string `json:"summary"`
	Art             string `json:"art"`
	Thumb           string `json:"thumb"`
	ChildCount      int    `json:"childCount"`
	LeafCount       int    `json:"leafCount"`
}

type sectionsResponse struct {
	MediaContainer struct {
		Directory []struct {
			Key   string `json:"key"`
			Title string `json:"title"`
			Type  string `json:"type"`
		} `json:"Directory"`
	} `json:"MediaContainer"`
}

type sectionAllResponse struct {
	MediaContainer struct {
		TotalSize int `json:"totalSize"`
	} `json:"MediaContainer"`
}

// CurrentlyPlaying returns the active playback sessions
func (c *Client) CurrentlyPlaying(ctx context.Context) ([]domain.PlaybackItem, error) {
	var resp sessionsResponse
	if err := c.get(ctx, "/status/sessions", nil, &resp); err != nil {
		return nil, fmt.Errorf("%w: sessions: %w", domain.ErrCatalogQuery, err)
	}

	items := make([]domain.PlaybackItem, 0, len(resp.MediaContainer.Metadata))
	for _, m := range resp.MediaContainer.Metadata {
		item := domain.PlaybackItem{
			Title:            m.Title,
			Kind:             domain.MediaKind(m.Type),
			Summary:          m.Summary,
			GrandparentTitle: m.GrandparentTitle,
			Art:              m.Art,
			Thumb:            m.Thumb,
			GrandparentArt:   m.GrandparentArt,
			ParentArt:        m.ParentArt,
			GrandparentThumb: m.GrandparentThumb,
			Transcoding:      m.TranscodeSession != nil,
			PositionMs:       m.ViewOffset,
			DurationMs:       m.Duration,
		}
		if m.User != nil && m.User.Title != "" {
			item.Users = []string{m.User.Title}
		}
		items = append(items, item)
	}

	c.logger.Debug("Sessions fetched", zap.Int("count", len(items)))
	return items, nil
}

// RecentlyAdded returns at most limit recently added items, newest first
func (c *Client) RecentlyAdded(ctx context.Context, limit int) ([]domain.LibraryItem, error) {
	q := url.Values{}
	q.Set("X-Plex-Container-Start", "0")
	q.Set("X-Plex-Container-Size", fmt.Sprint(limit))

	var resp libraryResponse
	if err := c.get(ctx, "/library/recentlyAdded", q, &resp); err != nil {
		return nil, fmt.Errorf("%w: recently added: %w", domain.ErrCatalogQuery, err)
	}

	meta := resp.MediaContainer.Metadata
	if len(meta) > limit {
		meta = meta[:limit]
	}

	items := make([]domain.LibraryItem, 0, len(meta))
	for _, m := range meta {
		items = append(items, domain.LibraryItem{
			RatingKey:       m.RatingKey,
			ParentRatingKey: m.ParentRatingKey,
			Kind:            domain.MediaKind(m.Type),
			Title:           m.Title,
			Summary:         m.Summary,
			Art:             m.Art,
			Thumb:           m.Thumb,
		})
	}

	c.logger.Debug("Recently added fetched", zap.Int("count", len(items)))
	return items, nil
}

// ResolveShow fetches the show record with the given rating key. The
// childCount/leafCount fields carry the season and episode totals.
func (c *Client) ResolveShow(ctx context.Context, ratingKey string) (domain.ShowMetadata, error) {
	var resp libraryResponse
	path := "/library/metadata/" + url.PathEscape(ratingKey)
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return domain.ShowMetadata{}, fmt.Errorf("%w: show %s: %w", domain.ErrMetadataResolution, ratingKey, err)
	}
	if len(resp.MediaContainer.Metadata) == 0 {
		return domain.ShowMetadata{}, fmt.Errorf("%w: show %s: not found", domain.ErrMetadataResolution, ratingKey)
	}

	m := resp.MediaContainer.Metadata[0]
	return domain.ShowMetadata{
		Title:        m.Title,
		Summary:      m.Summary,
		Art:          m.Art,
		SeasonCount:  m.ChildCount,
		EpisodeCount: m.LeafCount,
	}, nil
}

// LibraryCounts returns the item count for each named library section.
// Sections not present on the server are reported as zero.
func (c *Client) LibraryCounts(ctx context.Context, sectionNames []string) (map[string]int, error) {
	var sections sectionsResponse
	if err := c.get(ctx, "/library/sections", nil, &sections); err != nil {
		return nil, fmt.Errorf("%w: sections: %w", domain.ErrCatalogQuery, err)
	}

	counts := make(map[string]int, len(sectionNames))
	for _, name := range sectionNames {
		counts[name] = 0
	}

	for _, dir := range sections.MediaContainer.Directory {
		if _, wanted := counts[dir.Title]; !wanted {
			continue
		}
		// Size-zero page returns only the total, not the items
		q := url.Values{}
		q.Set("X-Plex-Container-Start", "0")
		q.Set("X-Plex-Container-Size", "0")

		var all sectionAllResponse
		path := "/library/sections/" + url.PathEscape(dir.Key) + "/all"
		if err := c.get(ctx, path, q, &all); err != nil {
			return nil, fmt.Errorf("%w: section %q: %w", domain.ErrCatalogQuery, dir.Title, err)
		}
		counts[dir.Title] = all.MediaContainer.TotalSize
	}

	return counts, nil
}

// TranscodeImageURL builds the URL of a server-side resized copy of the
// image at the given server path. Pure string construction, no I/O.
func (c *Client) TranscodeImageURL(path string, width, height int) string {
	if path == "" {
		return ""
	}
	q := url.Values{}
	q.Set("url", path)
	q.Set("width", fmt.Sprint(width))
	q.Set("height", fmt.Sprint(height))
	return c.baseURL + "/photo/:/transcode?" + q.Encode()
}

// get issues an authenticated JSON GET and decodes the response body
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
