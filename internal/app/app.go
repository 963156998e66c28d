package app

import (
	"context"
	"errors"
	"fmt"

	"playlistdl/internal/console"
	"playlistdl/internal/download"
	"playlistdl/internal/model"
	"playlistdl/internal/prompt"
	"playlistdl/internal/service"

	"go.uber.org/zap"
)

var (
	// ErrMissingInput не указана ссылка на плейлист или каталог
	ErrMissingInput = errors.New("required input missing")
	// ErrDestination каталог назначения не удалось создать
	ErrDestination = errors.New("destination directory unavailable")
)

// PlaylistFetcher получает треки плейлиста
type PlaylistFetcher interface {
	Fetch(ctx context.Context, playlistRef string) service.FetchResult
}

// TrackDownloader загружает один трек
type TrackDownloader interface {
	Download(ctx context.Context, track model.Track, dir string, quality model.Quality) download.Outcome
}

// App последовательно выполняет конвейер: каталог, метаданные, загрузка треков
type App struct {
	playlists PlaylistFetcher
	downloads TrackDownloader
	out       *console.Printer
	logger    *zap.Logger
}

// New создает приложение
func New(playlists PlaylistFetcher, downloads TrackDownloader, out *console.Printer, logger *zap.Logger) *App {
	return &App{
		playlists: playlists,
		downloads: downloads,
		out:       out,
		logger:    logger,
	}
}

// Run выполняет один запуск. Ошибка возвращается до начала загрузки треков
// или при отмене ctx; неудачи отдельных треков отражаются в Summary.
func (a *App) Run(ctx context.Context, inputs model.Inputs) (Summary, error) {
	if inputs.PlaylistRef == "" || inputs.Destination == "" {
		return Summary{}, ErrMissingInput
	}

	if err := prompt.EnsureDestination(inputs.Destination); err != nil {
		return Summary{}, fmt.Errorf("%w: %w", ErrDestination, err)
	}

	result := a.playlists.Fetch(ctx, inputs.PlaylistRef)
	summary := Summary{PlaylistID: result.PlaylistID, FetchStatus: result.Status}

	switch result.Status {
	case service.FetchInvalidRef:
		a.out.Fail("Invalid Spotify playlist URL format.")
	case service.FetchProviderError:
		a.out.Warn("\nError accessing Spotify API: %v", result.Err)
		a.out.Lines("Please ensure your .env file is correct and accessible.")
	case service.FetchOK:
		a.out.Success("Found %d tracks in playlist.", len(result.Tracks))
	}

	if len(result.Tracks) == 0 {
		a.out.Warn("\nNo songs found. Exiting.")
		return summary, nil
	}

	a.logger.Debug("Playlist tracks resolved",
		zap.String("playlist_id", result.PlaylistID),
		zap.Strings("descriptors", result.Descriptors()))

	a.out.Info("\n--- Starting Download of %d Tracks ---", len(result.Tracks))

	for i, track := range result.Tracks {
		if err := ctx.Err(); err != nil {
			a.logger.Warn("Run interrupted, remaining tracks skipped",
				zap.Int("remaining", len(result.Tracks)-i),
				zap.Error(err))
			break
		}

		a.out.Info("\nSearching YouTube for: %s", track.Descriptor())
		outcome := a.downloads.Download(ctx, track, inputs.Destination, inputs.Quality)
		summary.Add(outcome)

		if outcome.OK() {
			a.out.Success("  Downloaded successfully.")
		} else {
			a.out.Fail("  Error downloading: %v", outcome.Err)
		}
	}

	if err := ctx.Err(); err != nil {
		a.out.Warn("\nDownload interrupted after %d of %d tracks.", summary.Attempted, len(result.Tracks))
		return summary, err
	}

	a.out.Success("\n--- All Downloads Finished ---")
	a.logger.Info("Run finished",
		zap.String("playlist_id", summary.PlaylistID),
		zap.Int("attempted", summary.Attempted),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed))

	return summary, nil
}
