// Package config содержит загрузку и валидацию конфигурации.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingCredentials возвращается, если не заданы учетные данные Spotify
var ErrMissingCredentials = errors.New("spotify credentials are missing")

// Имена переменных окружения с учетными данными
const (
	EnvClientID     = "SPOTIPY_CLIENT_ID"
	EnvClientSecret = "SPOTIPY_CLIENT_SECRET"

	envClientIDAlt     = "SPOTIFY_CLIENT_ID"
	envClientSecretAlt = "SPOTIFY_CLIENT_SECRET"
)

// Config представляет конфигурацию приложения
type Config struct {
	// Spotify
	SpotifyClientID     string
	SpotifyClientSecret string

	// Logging
	LogLevel string
	LogPath  string

	// HTTP Client
	HTTPClientConfig HTTPClientConfig

	// yt-dlp
	YTDLPConfig YTDLPConfig

	// Запись ID3-тегов в MP3 после конвертации
	TagMP3 bool
}

// HTTPClientConfig представляет конфигурацию HTTP клиента для Spotify
type HTTPClientConfig struct {
	// Timeout равный нулю означает отсутствие таймаута
	Timeout             time.Duration
	TLSHandshakeTimeout time.Duration
}

// YTDLPConfig представляет настройки запуска yt-dlp
type YTDLPConfig struct {
	Binary      string
	AutoInstall bool
}

// Load загружает конфигурацию из .env и переменных окружения
func Load() (*Config, error) {
	// Отсутствие .env не является ошибкой
	_ = godotenv.Load()

	return FromEnv(), nil
}

// FromEnv собирает конфигурацию из текущего окружения процесса
func FromEnv() *Config {
	return &Config{
		SpotifyClientID:     getEnv(EnvClientID, getEnv(envClientIDAlt, "")),
		SpotifyClientSecret: getEnv(EnvClientSecret, getEnv(envClientSecretAlt, "")),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogPath:             getEnv("LOG_PATH", ""),
		HTTPClientConfig: HTTPClientConfig{
			Timeout:             getEnvDuration("HTTP_TIMEOUT", 0),
			TLSHandshakeTimeout: getEnvDuration("HTTP_TLS_HANDSHAKE_TIMEOUT", 10*time.Second),
		},
		YTDLPConfig: YTDLPConfig{
			Binary:      getEnv("YTDLP_BINARY", ""),
			AutoInstall: getEnvBool("YTDLP_AUTO_INSTALL", false),
		},
		TagMP3: getEnvBool("TAG_MP3", true),
	}
}

// HasCredentials сообщает, заданы ли оба значения учетных данных
func (c *Config) HasCredentials() bool {
	return c.SpotifyClientID != "" && c.SpotifyClientSecret != ""
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if !c.HasCredentials() {
		return ErrMissingCredentials
	}
	return nil
}

// getEnv получает переменную окружения с значением по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как time.Duration
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvBool получает переменную окружения как bool
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
