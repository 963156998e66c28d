// Package download ищет трек на видеоплатформе и сохраняет его аудио через
// yt-dlp (github.com/lrstanley/go-ytdlp). Каждый трек обрабатывается
// независимо: ошибка одного трека не прерывает остальные.
package download
