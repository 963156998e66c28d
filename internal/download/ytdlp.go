package download

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"
)

// printFinalPath заставляет yt-dlp вывести путь файла после всех постпроцессоров
const printFinalPath = "after_move:filepath"

// YTDLPFetcher реализует Fetcher поверх бинарника yt-dlp
type YTDLPFetcher struct {
	binary      string
	autoInstall bool
	logger      *zap.Logger

	installOnce sync.Once
	installErr  error
}

// NewYTDLPFetcher создает Fetcher. Пустой binary означает поиск yt-dlp в PATH.
func NewYTDLPFetcher(binary string, autoInstall bool, logger *zap.Logger) *YTDLPFetcher {
	return &YTDLPFetcher{
		binary:      binary,
		autoInstall: autoInstall,
		logger:      logger,
	}
}

// Fetch запускает yt-dlp для запроса и возвращает путь к сохраненному файлу
func (f *YTDLPFetcher) Fetch(ctx context.Context, req Request) (string, error) {
	if err := f.ensureInstalled(ctx); err != nil {
		return "", err
	}

	f.logger.Debug("Running yt-dlp",
		zap.String("query", req.Query),
		zap.String("output", req.OutputTemplate),
		zap.Bool("extract_audio", req.PostProcess != nil))

	result, err := f.command(req).Run(ctx, req.Query)
	if err != nil {
		return "", fmt.Errorf("yt-dlp failed: %w", err)
	}

	return finalPath(result.Stdout), nil
}

func (f *YTDLPFetcher) command(req Request) *ytdlp.Command {
	cmd := ytdlp.New().
		Format(req.Format).
		Output(req.OutputTemplate).
		NoProgress().
		Quiet().
		Print(printFinalPath)

	if f.binary != "" {
		cmd.SetExecutable(f.binary)
	}

	if pp := req.PostProcess; pp != nil {
		cmd.ExtractAudio().
			AudioFormat(pp.Codec).
			AudioQuality(pp.Quality)
	}

	return cmd
}

// ensureInstalled один раз за процесс скачивает yt-dlp, если это разрешено
func (f *YTDLPFetcher) ensureInstalled(ctx context.Context) error {
	if !f.autoInstall || f.binary != "" {
		return nil
	}

	f.installOnce.Do(func() {
		f.logger.Info("Installing yt-dlp")
		if _, err := ytdlp.Install(ctx, nil); err != nil {
			f.installErr = fmt.Errorf("failed to install yt-dlp: %w", err)
		}
	})

	return f.installErr
}

// finalPath берет последнюю непустую строку вывода yt-dlp
func finalPath(stdout string) string {
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
