package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sessionsFixture = `{
  "MediaContainer": {
    "size": 2,
    "Metadata": [
      {
        "title": "Pilot",
        "type": "episode",
        "summary": "A beginning.",
        "grandparentTitle": "Some Show",
        "art": "/library/metadata/10/art/1",
        "thumb": "/library/metadata/10/thumb/1",
        "grandparentArt": "/library/metadata/8/art/1",
        "parentArt": "/library/metadata/9/art/1",
        "grandparentThumb": "/library/metadata/8/thumb/1",
        "viewOffset": 30000,
        "duration": 90000,
        "User": {"title": "alice"},
        "TranscodeSession": {"key": "/transcode/sessions/abc"}
      },
      {
        "title": "Heat",
        "type": "movie",
        "summary": "A heist.",
        "art": "/library/metadata/20/art/1",
        "thumb": "/library/metadata/20/thumb/1",
        "viewOffset": 600000,
        "duration": 10200000
      }
    ]
  }
}`

const recentlyAddedFixture = `{
  "MediaContainer": {
    "Metadata": [
      {"ratingKey": "301", "type": "movie", "title": "Heat", "summary": "A heist.", "art": "/a/301", "thumb": "/t/301"},
      {"ratingKey": "302", "parentRatingKey": "300", "type": "season", "title": "Season 3", "thumb": "/t/302"},
      {"ratingKey": "303", "type": "show", "title": "Other Show", "summary": "s", "art": "/a/303", "thumb": "/t/303"}
    ]
  }
}`

const showFixture = `{
  "MediaContainer": {
    "Metadata": [
      {"ratingKey": "300", "type": "show", "title": "Some Show", "summary": "A show.", "art": "/a/300", "childCount": 3, "leafCount": 30}
    ]
  }
}`

const sectionsFixture = `{
  "MediaContainer": {
    "Directory": [
      {"key": "1", "title": "Movies", "type": "movie"},
      {"key": "2", "title": "TV Shows", "type": "show"},
      {"key": "3", "title": "Music", "type": "artist"}
    ]
  }
}`

// newTestServer serves canned responses and records token headers
func newTestServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var tokens []string
	mux := http.NewServeMux()
	serve := func(pattern, body string) {
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			tokens = append(tokens, r.Header.Get("X-Plex-Token"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})
	}
	serve("/status/sessions", sessionsFixture)
	serve("/library/recentlyAdded", recentlyAddedFixture)
	serve("/library/metadata/300", showFixture)
	serve("/library/sections", sectionsFixture)
	serve("/library/sections/1/all", `{"MediaContainer": {"totalSize": 412}}`)
	serve("/library/sections/2/all", `{"MediaContainer": {"totalSize": 87}}`)
	return httptest.NewServer(mux), &tokens
}

func TestClient_CurrentlyPlaying(t *testing.T) {
	server, tokens := newTestServer(t)
	defer server.Close()

	client := NewClient(zap.NewNop(), server.URL, "tok")
	items, err := client.CurrentlyPlaying(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	episode := items[0]
	assert.Equal(t, "Pilot", episode.Title)
	assert.Equal(t, domain.KindEpisode, episode.Kind)
	assert.Equal(t, "Some Show", episode.GrandparentTitle)
	assert.Equal(t, "/library/metadata/8/art/1", episode.GrandparentArt)
	assert.Equal(t, "/library/metadata/9/art/1", episode.ParentArt)
	assert.Equal(t, []string{"alice"}, episode.Users)
	assert.True(t, episode.Transcoding)
	assert.Equal(t, int64(30000), episode.PositionMs)
	assert.Equal(t, int64(90000), episode.DurationMs)

	movie := items[1]
	assert.Equal(t, domain.KindMovie, movie.Kind)
	assert.Empty(t, movie.Users)
	assert.False(t, movie.Transcoding)

	assert.Equal(t, []string{"tok"}, *tokens)
}

func TestClient_RecentlyAdded(t *testing.T) {
	server, _ := newTestServer(t)
	defer server.Close()

	client := NewClient(zap.NewNop(), server.URL, "tok")

	items, err := client.RecentlyAdded(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, domain.KindMovie, items[0].Kind)
	assert.Equal(t, "300", items[1].ParentRatingKey)
	assert.Equal(t, domain.KindShow, items[2].Kind)

	// Server-side paging is also clamped client-side
	items, err = client.RecentlyAdded(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Heat", items[0].Title)
}

func TestClient_ResolveShow(t *testing.T) {
	server, _ := newTestServer(t)
	defer server.Close()

	client := NewClient(zap.NewNop(), server.URL, "tok")
	show, err := client.ResolveShow(context.Background(), "300")
	require.NoError(t, err)

	assert.Equal(t, "Some Show", show.Title)
	assert.Equal(t, "A show.", show.Summary)
	assert.Equal(t, "/a/300", show.Art)
	assert.Equal(t, 3, show.SeasonCount)
	assert.Equal(t, 30, show.EpisodeCount)
}

func TestClient_ResolveShow_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(zap.NewNop(), server.URL, "tok")
	_, err := client.ResolveShow(context.Background(), "999")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMetadataResolution)
}

func TestClient_LibraryCounts(t *testing.T) {
	server, _ := newTestServer(t)
	defer server.Close()

	client := NewClient(zap.NewNop(), server.URL, "tok")
	counts, err := client.LibraryCounts(context.Background(), []string{"Movies", "TV Shows", "Anime"})
	require.NoError(t, err)

	assert.Equal(t, 412, counts["Movies"])
	assert.Equal(t, 87, counts["TV Shows"])
	assert.Equal(t, 0, counts["Anime"], "missing sections report zero")
}

func TestClient_CurrentlyPlaying_ServerDown(t *testing.T) {
	server, _ := newTestServer(t)
	server.Close()

	client := NewClient(zap.NewNop(), server.URL, "tok")
	_, err := client.CurrentlyPlaying(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogQuery)
}

func TestClient_TranscodeImageURL(t *testing.T) {
	client := NewClient(zap.NewNop(), "http://plex:32400/", "tok")

	got := client.TranscodeImageURL("/library/metadata/10/art/1", 800, 480)
	u, err := url.Parse(got)
	require.NoError(t, err)

	assert.Equal(t, "/photo/:/transcode", u.Path)
	assert.Equal(t, "/library/metadata/10/art/1", u.Query().Get("url"))
	assert.Equal(t, "800", u.Query().Get("width"))
	assert.Equal(t, "480", u.Query().Get("height"))

	assert.Empty(t, client.TranscodeImageURL("", 800, 480), "empty path yields empty URL")
}
