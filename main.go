package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordmix/internal/config"
	"github.com/robalobadob/wordmix/internal/daily"
	"github.com/robalobadob/wordmix/internal/game"
	"github.com/robalobadob/wordmix/internal/mixer"
	"github.com/robalobadob/wordmix/internal/tui"
	"github.com/robalobadob/wordmix/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var srcOpts []words.SourceOption
	gameOpts := []game.Option{game.WithLevel(cfg.Level)}
	if cfg.Daily {
		pickSeed, mixSeed := daily.Seeds(time.Now(), cfg.DailySalt)
		srcOpts = append(srcOpts, words.WithPicker(words.NewPickerWithSeed(pickSeed[0], pickSeed[1])))
		gameOpts = append(gameOpts, game.WithMixer(mixer.NewWithSeed(mixSeed[0], mixSeed[1])))
		log.Info().Str("date", daily.DateKey(time.Now())).Msg("daily mode")
	}

	src, err := loadSource(cfg, srcOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word pairs")
	}

	logOut, closeLog, err := logWriter(cfg.LogFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.LogFile).Msg("open log file")
	}

	err = run(src, logOut, gameOpts)
	closeLog()
	if err != nil {
		log.Logger = log.Output(os.Stderr)
		log.Fatal().Err(err).Msg("game exited")
	}
}

// run owns the terminal for the whole session and restores it before
// returning.
func run(src *words.Source, logOut io.Writer, gameOpts []game.Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// The terminal is ours from here on.
	log.Logger = log.Output(logOut)

	g := game.New(src, gameOpts...)
	app := tui.New(screen, g)
	if err := app.Start(); err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	runErr := app.Run()

	st := g.Statistics()
	log.Info().
		Int("score", st.ObtainedScore).
		Int("available", st.TotalScore).
		Int("guessed", st.GuessedPairs).
		Int("pairs", st.TotalPairs).
		Msg("session finished")
	return runErr
}

func loadSource(cfg config.Config, opts ...words.SourceOption) (*words.Source, error) {
	if cfg.WordsFile == "" {
		return words.Embedded(cfg.Limits(), opts...)
	}
	return words.ReadFile(cfg.WordsFile, cfg.Limits(), opts...)
}

// logWriter returns the destination for logs while the UI owns the
// terminal.
func logWriter(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
