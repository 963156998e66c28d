package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"playlistdl/internal/console"
	"playlistdl/internal/download"
	"playlistdl/internal/model"
	"playlistdl/internal/service"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	tracks []model.Track
	err    error
	calls  []string
}

func (f *fakeSource) GetPlaylistTracks(_ context.Context, playlistID string) ([]model.Track, error) {
	f.calls = append(f.calls, playlistID)
	return f.tracks, f.err
}

// fakeFetcher падает на запросах из fail и "сохраняет" остальные
type fakeFetcher struct {
	requests []download.Request
	fail     map[string]bool
}

func (f *fakeFetcher) Fetch(_ context.Context, req download.Request) (string, error) {
	f.requests = append(f.requests, req)
	query := strings.TrimPrefix(req.Query, download.SearchPrefix)
	if f.fail[query] {
		return "", errors.New("ERROR: [youtube] Video unavailable")
	}
	return filepath.Join(filepath.Dir(req.OutputTemplate), query+".mp3"), nil
}

type harness struct {
	app     *App
	source  *fakeSource
	fetcher *fakeFetcher
	out     *bytes.Buffer
}

func newHarness(tracks []model.Track, sourceErr error, fail map[string]bool) *harness {
	color.NoColor = true
	source := &fakeSource{tracks: tracks, err: sourceErr}
	fetcher := &fakeFetcher{fail: fail}
	var out bytes.Buffer

	logger := zap.NewNop()
	a := New(
		service.NewPlaylistService(source, logger),
		download.NewService(fetcher, nil, logger),
		console.New(&out),
		logger,
	)
	return &harness{app: a, source: source, fetcher: fetcher, out: &out}
}

var twoTracks = []model.Track{
	{ID: "1", Title: "Under Pressure", Artists: []string{"Queen", "David Bowie"}},
	{ID: "2", Title: "Hurricane", Artists: []string{"Bob Dylan"}},
}

func TestApp_Run_EndToEnd(t *testing.T) {
	h := newHarness(twoTracks, nil, nil)
	dest := filepath.Join(t.TempDir(), "out")

	summary, err := h.app.Run(context.Background(), model.Inputs{
		PlaylistRef: "https://open.spotify.com/playlist/ABC123?si=xyz",
		Destination: dest,
		Quality:     model.ParseQuality("2"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"ABC123"}, h.source.calls)
	assert.Equal(t, "ABC123", summary.PlaylistID)
	require.Len(t, h.fetcher.requests, 2)
	for _, req := range h.fetcher.requests {
		require.NotNil(t, req.PostProcess)
		assert.Equal(t, "mp3", req.PostProcess.Codec)
		assert.Equal(t, "0", req.PostProcess.Quality)
		assert.Equal(t, filepath.Join(dest, "%(title)s.mp3"), req.OutputTemplate)
	}
	assert.Equal(t, "ytsearch1:Under Pressure Queen, David Bowie", h.fetcher.requests[0].Query)
	assert.Equal(t, "ytsearch1:Hurricane Bob Dylan", h.fetcher.requests[1].Query)

	assert.Equal(t, 2, summary.Attempted)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Contains(t, h.out.String(), "All Downloads Finished")
}

func TestApp_Run_ContinuesAfterFailure(t *testing.T) {
	tracks := []model.Track{
		{Title: "First", Artists: []string{"A"}},
		{Title: "Second", Artists: []string{"B"}},
		{Title: "Third", Artists: []string{"C"}},
	}
	h := newHarness(tracks, nil, map[string]bool{"First A": true})

	summary, err := h.app.Run(context.Background(), model.Inputs{
		PlaylistRef: "https://open.spotify.com/playlist/ABC123",
		Destination: t.TempDir(),
		Quality:     model.QualityPassthrough,
	})
	require.NoError(t, err)

	require.Len(t, h.fetcher.requests, 3)
	assert.Equal(t, "ytsearch1:Second B", h.fetcher.requests[1].Query)
	assert.Equal(t, "ytsearch1:Third C", h.fetcher.requests[2].Query)
	assert.Equal(t, 3, summary.Attempted)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Contains(t, h.out.String(), "Error downloading")
}

func TestApp_Run_MissingInput(t *testing.T) {
	tests := []model.Inputs{
		{PlaylistRef: "", Destination: "/tmp/out"},
		{PlaylistRef: "https://open.spotify.com/playlist/ABC123", Destination: ""},
	}

	for _, inputs := range tests {
		h := newHarness(twoTracks, nil, nil)

		_, err := h.app.Run(context.Background(), inputs)

		assert.ErrorIs(t, err, ErrMissingInput)
		assert.Empty(t, h.source.calls)
		assert.Empty(t, h.fetcher.requests)
	}
}

func TestApp_Run_DestinationFailureHaltsBeforeProviders(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	h := newHarness(twoTracks, nil, nil)

	_, err := h.app.Run(context.Background(), model.Inputs{
		PlaylistRef: "https://open.spotify.com/playlist/ABC123",
		Destination: filepath.Join(blocker, "music"),
	})

	assert.ErrorIs(t, err, ErrDestination)
	assert.Empty(t, h.source.calls)
	assert.Empty(t, h.fetcher.requests)
}

func TestApp_Run_NoSongs(t *testing.T) {
	tests := []struct {
		name      string
		ref       string
		sourceErr error
		status    service.FetchStatus
		message   string
	}{
		{"invalid reference", "https://open.spotify.com/album/ABC123", nil, service.FetchInvalidRef, "Invalid Spotify playlist URL format"},
		{"provider error", "https://open.spotify.com/playlist/ABC123", errors.New("401"), service.FetchProviderError, "Error accessing Spotify API"},
		{"empty playlist", "https://open.spotify.com/playlist/ABC123", nil, service.FetchNotFound, "No songs found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tracks []model.Track
			h := newHarness(tracks, tt.sourceErr, nil)

			summary, err := h.app.Run(context.Background(), model.Inputs{
				PlaylistRef: tt.ref,
				Destination: t.TempDir(),
			})

			require.NoError(t, err)
			assert.Equal(t, tt.status, summary.FetchStatus)
			assert.Equal(t, 0, summary.Attempted)
			assert.Empty(t, h.fetcher.requests)
			assert.Contains(t, h.out.String(), tt.message)
			assert.Contains(t, h.out.String(), "No songs found")
		})
	}
}

func TestApp_Run_CancelledStopsLoop(t *testing.T) {
	h := newHarness(twoTracks, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := h.app.Run(ctx, model.Inputs{
		PlaylistRef: "https://open.spotify.com/playlist/ABC123",
		Destination: t.TempDir(),
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, summary.Attempted)
	assert.Empty(t, h.fetcher.requests)
	assert.NotContains(t, h.out.String(), "All Downloads Finished")
}

// cancellingFetcher отменяет запуск во время первой загрузки
type cancellingFetcher struct {
	cancel   context.CancelFunc
	requests int
}

func (f *cancellingFetcher) Fetch(ctx context.Context, _ download.Request) (string, error) {
	f.requests++
	f.cancel()
	return "", ctx.Err()
}

func TestApp_Run_InterruptedMidLoop(t *testing.T) {
	color.NoColor = true
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetcher := &cancellingFetcher{cancel: cancel}
	var out bytes.Buffer
	logger := zap.NewNop()
	a := New(
		service.NewPlaylistService(&fakeSource{tracks: twoTracks}, logger),
		download.NewService(fetcher, nil, logger),
		console.New(&out),
		logger,
	)

	summary, err := a.Run(ctx, model.Inputs{
		PlaylistRef: "https://open.spotify.com/playlist/ABC123",
		Destination: t.TempDir(),
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, fetcher.requests)
	assert.Equal(t, 1, summary.Attempted)
	assert.Equal(t, 1, summary.Failed)
	assert.Contains(t, out.String(), "Download interrupted after 1 of 2 tracks.")
	assert.NotContains(t, out.String(), "All Downloads Finished")
}

func TestRenderSummary(t *testing.T) {
	var s Summary
	s.Add(download.Outcome{Descriptor: "Hurricane Bob Dylan", Path: "/music/Hurricane.mp3"})
	s.Add(download.Outcome{Descriptor: "Lost Song X", Err: errors.New("no video")})

	var buf bytes.Buffer
	RenderSummary(&buf, s)
	out := buf.String()

	assert.Contains(t, out, "Hurricane Bob Dylan")
	assert.Contains(t, out, "Hurricane.mp3")
	assert.Contains(t, out, "Lost Song X")
	assert.Contains(t, strings.ToLower(out), "attempted 2")
	assert.Contains(t, strings.ToLower(out), "failed 1")
}

func TestRenderSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderSummary(&buf, Summary{})
	assert.Empty(t, buf.String())
}
