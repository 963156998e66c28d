// Package app содержит фабрику компонентов и запуск конвейера загрузки.
package app

import (
	"fmt"

	"playlistdl/internal/config"
	"playlistdl/internal/console"
	"playlistdl/internal/download"
	"playlistdl/internal/gateway/spotify"
	"playlistdl/internal/service"

	"go.uber.org/zap"
)

// ComponentFactory создает компоненты приложения
type ComponentFactory struct {
	config *config.Config
	logger *zap.Logger
}

// NewComponentFactory создает новую фабрику компонентов
func NewComponentFactory(config *config.Config, logger *zap.Logger) *ComponentFactory {
	if logger == nil {
		panic("Logger cannot be nil")
	}
	if config == nil {
		logger.Fatal("Config cannot be nil")
	}

	return &ComponentFactory{
		config: config,
		logger: logger,
	}
}

// CreateSpotifyClient создает клиент Spotify
func (f *ComponentFactory) CreateSpotifyClient() (*spotify.Client, error) {
	if err := f.config.Validate(); err != nil {
		return nil, err
	}

	client, err := spotify.NewClient(spotify.ClientConfig{
		ClientID:            f.config.SpotifyClientID,
		ClientSecret:        f.config.SpotifyClientSecret,
		Timeout:             f.config.HTTPClientConfig.Timeout,
		TLSHandshakeTimeout: f.config.HTTPClientConfig.TLSHandshakeTimeout,
	}, f.logger.Named("spotify"))
	if err != nil {
		return nil, fmt.Errorf("failed to create spotify client: %w", err)
	}

	return client, nil
}

// CreatePlaylistService создает сервис получения треков
func (f *ComponentFactory) CreatePlaylistService() (*service.PlaylistService, error) {
	client, err := f.CreateSpotifyClient()
	if err != nil {
		return nil, err
	}
	return service.NewPlaylistService(client, f.logger.Named("playlist")), nil
}

// CreateDownloadService создает сервис загрузки на базе yt-dlp
func (f *ComponentFactory) CreateDownloadService() *download.Service {
	fetcher := download.NewYTDLPFetcher(
		f.config.YTDLPConfig.Binary,
		f.config.YTDLPConfig.AutoInstall,
		f.logger.Named("ytdlp"),
	)

	var tagger download.Tagger
	if f.config.TagMP3 {
		tagger = download.ID3Tagger{}
	}

	return download.NewService(fetcher, tagger, f.logger.Named("download"))
}

// CreateApp собирает приложение целиком
func (f *ComponentFactory) CreateApp(out *console.Printer) (*App, error) {
	playlists, err := f.CreatePlaylistService()
	if err != nil {
		return nil, err
	}

	f.logger.Debug("Components created")
	return New(playlists, f.CreateDownloadService(), out, f.logger), nil
}
