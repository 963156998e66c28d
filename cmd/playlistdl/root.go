package main

import (
	"context"
	"errors"
	"io"

	"playlistdl/internal/app"
	"playlistdl/internal/config"
	"playlistdl/internal/console"
	"playlistdl/internal/prompt"
	"playlistdl/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reportedError ошибка, о которой пользователю уже сообщили в консоли
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

func newRootCommand() *cobra.Command {
	var preset prompt.Preset

	rootCmd := &cobra.Command{
		Use:           "playlistdl",
		Short:         "Download a Spotify playlist as audio files found on YouTube",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDownload(cmd.Context(), cmd.OutOrStdout(), prompt.SurveyPrompter{}, preset)
		},
	}

	rootCmd.Flags().StringVarP(&preset.PlaylistRef, "playlist", "p", "", "Spotify playlist URL (asked interactively when empty)")
	rootCmd.Flags().StringVarP(&preset.Destination, "dest", "d", "", "Directory to save the songs in (asked interactively when empty)")
	rootCmd.Flags().StringVarP(&preset.Quality, "quality", "q", "", "1 = MP3 standard, 2 = MP3 high, 3 = original audio")

	return rootCmd
}

// runDownload выполняет один запуск: учетные данные, ввод, загрузка.
// Ошибка означает код выхода 1.
func runDownload(ctx context.Context, w io.Writer, p prompt.Prompter, preset prompt.Preset) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, FilePath: cfg.LogPath}).
		With(zap.String("run_id", uuid.NewString()))
	defer func() { _ = log.Sync() }()

	out := console.New(w)

	if err := cfg.Validate(); err != nil {
		log.Error("Credential check failed", zap.Error(err))
		out.Fail("\nMissing Spotify credentials!")
		out.Lines(config.CredentialGuidance()...)
		return reported(err)
	}

	inputs, err := prompt.Collect(p, out, preset)
	if err != nil {
		return err
	}

	if inputs.PlaylistRef == "" || inputs.Destination == "" {
		out.Fail("Required input missing. Exiting.")
		return reported(app.ErrMissingInput)
	}

	application, err := app.NewComponentFactory(cfg, log).CreateApp(out)
	if err != nil {
		return err
	}

	summary, err := application.Run(ctx, inputs)
	if err != nil {
		if errors.Is(err, app.ErrDestination) {
			out.Fail("Cannot create destination directory: %v", err)
			return reported(err)
		}
		if errors.Is(err, context.Canceled) {
			app.RenderSummary(out.Writer(), summary)
		}
		return err
	}

	app.RenderSummary(out.Writer(), summary)
	return nil
}
