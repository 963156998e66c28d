// Package spotify реализует клиент для работы с Spotify Web API.
package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"playlistdl/internal/model"

	"github.com/zmb3/spotify/v2"
	"go.uber.org/zap"
)

// DefaultTokenURL адрес обмена client credentials на токен
const DefaultTokenURL = "https://accounts.spotify.com/api/token"

// PlaylistMarker сегмент пути, после которого в ссылке идет ID плейлиста
const PlaylistMarker = "playlist/"

// pageLimit максимальный размер страницы для Spotify API
const pageLimit = 100

// ErrInvalidPlaylistRef ссылка не содержит ID плейлиста
var ErrInvalidPlaylistRef = errors.New("invalid spotify playlist URL format")

// tokenTransport добавляет токен к каждому запросу
type tokenTransport struct {
	base      http.RoundTripper
	token     string
	tokenType string
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTripper не должен менять исходный запрос
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", t.tokenType+" "+t.token)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	return base.RoundTrip(req)
}

// ClientConfig параметры клиента Spotify
type ClientConfig struct {
	ClientID     string
	ClientSecret string

	// TokenURL и APIBaseURL переопределяются в тестах
	TokenURL   string
	APIBaseURL string

	// Timeout равный нулю означает отсутствие таймаута
	Timeout             time.Duration
	TLSHandshakeTimeout time.Duration
}

// Client представляет клиент для работы с Spotify API
type Client struct {
	cfg        ClientConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient создает новый Spotify клиент с использованием Client Credentials Flow
func NewClient(cfg ClientConfig, logger *zap.Logger) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("spotify client ID and secret are required")
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.TLSHandshakeTimeout > 0 {
		transport.TLSHandshakeTimeout = cfg.TLSHandshakeTimeout
	}

	logger.Debug("Spotify client created with client credentials flow",
		zap.String("token_url", cfg.TokenURL))

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		logger: logger,
	}, nil
}

// ExtractPlaylistID извлекает ID плейлиста из ссылки:
// все после первого "playlist/" до "?".
//
//	https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=abc
func ExtractPlaylistID(playlistRef string) (string, error) {
	_, rest, found := strings.Cut(playlistRef, PlaylistMarker)
	if !found {
		return "", ErrInvalidPlaylistRef
	}

	playlistID, _, _ := strings.Cut(rest, "?")
	if playlistID == "" {
		return "", fmt.Errorf("%w: empty playlist id", ErrInvalidPlaylistRef)
	}
	return playlistID, nil
}

// createSpotifyClient получает токен и создает клиент API
func (c *Client) createSpotifyClient(ctx context.Context) (*spotify.Client, error) {
	data := url.Values{}
	data.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(c.cfg.ClientID + ":" + c.cfg.ClientSecret))
	req.Header.Set("Authorization", "Basic "+credentials)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("token request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	if tokenResponse.AccessToken == "" {
		return nil, fmt.Errorf("no access token received")
	}
	if tokenResponse.TokenType == "" {
		tokenResponse.TokenType = "Bearer"
	}

	tokenClient := &http.Client{
		Transport: &tokenTransport{
			base:      c.httpClient.Transport,
			token:     tokenResponse.AccessToken,
			tokenType: tokenResponse.TokenType,
		},
		Timeout: c.cfg.Timeout,
	}

	var opts []spotify.ClientOption
	if c.cfg.APIBaseURL != "" {
		opts = append(opts, spotify.WithBaseURL(c.cfg.APIBaseURL))
	}

	c.logger.Debug("Obtained Spotify access token", zap.Int("expires_in", tokenResponse.ExpiresIn))

	return spotify.New(tokenClient, opts...), nil
}

// GetPlaylistTracks получает все треки плейлиста в порядке API.
// Удаленные треки и эпизоды подкастов пропускаются, дубликаты сохраняются.
func (c *Client) GetPlaylistTracks(ctx context.Context, playlistID string) ([]model.Track, error) {
	client, err := c.createSpotifyClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create spotify client: %w", err)
	}

	var allTracks []model.Track
	offset := 0

	for {
		c.logger.Debug("Requesting playlist items page",
			zap.String("playlist_id", playlistID),
			zap.Int("offset", offset),
			zap.Int("limit", pageLimit))

		page, err := client.GetPlaylistItems(ctx, spotify.ID(playlistID), spotify.Limit(pageLimit), spotify.Offset(offset))
		if err != nil {
			return nil, fmt.Errorf("failed to get playlist items at offset %d: %w", offset, err)
		}

		for _, item := range page.Items {
			track := item.Track.Track
			if track == nil {
				continue
			}

			artists := make([]string, 0, len(track.Artists))
			for _, artist := range track.Artists {
				artists = append(artists, artist.Name)
			}

			allTracks = append(allTracks, model.Track{
				ID:      string(track.ID),
				Title:   track.Name,
				Artists: artists,
			})
		}

		if len(page.Items) == 0 || offset+len(page.Items) >= int(page.Total) {
			break
		}
		offset += len(page.Items)
	}

	c.logger.Debug("Retrieved playlist tracks",
		zap.String("playlist_id", playlistID),
		zap.Int("total_tracks", len(allTracks)))

	return allTracks, nil
}
