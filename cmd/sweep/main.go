package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/game"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/store"
)

var (
	log = logrus.New()

	logPath    string
	player     string
	difficulty string
)

func init() {
	flag.StringVar(&logPath, "log", "", "log file path, rotated when large")
	flag.StringVar(&player, "player", "local", "key prefix of the saved game")
	flag.StringVar(&difficulty, "difficulty", "", "difficulty to start with")
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func setupLogging() error {
	logLevel := logrus.WarnLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logPath == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.SetLevel(logrus.DebugLevel)
	log.SetOutput(io.Discard)
	log.AddHook(hook)
	return nil
}

func render(w io.Writer, g *game.Game) {
	d := g.Difficulty()
	fmt.Fprintf(w, "%s %s  mines %d  flags %d  time %ds\n",
		d.Name, d.Dimensions(), g.TotalMines(), g.FlagCount(), g.ElapsedSeconds())
	fmt.Fprint(w, g.View().ToString(d.Width))
	switch g.Status() {
	case game.StatusWin:
		fmt.Fprintln(w, "you win! (r to play again)")
	case game.StatusLose:
		fmt.Fprintln(w, "boom. (r to play again)")
	}
}

func main() {
	flag.Parse()
	config.Load()

	if err := setupLogging(); err != nil {
		logrus.Fatal("unable to set up logging: ", err)
	}
	// game internals log through slog; only warnings reach the terminal
	slogger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelWarn}))
	mines.Log = slogger

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	storeCfg, err := config.NewStore()
	if err != nil {
		log.Fatal("unable to read store config: ", err)
	}
	st, err := store.Open(ctx, storeCfg)
	if err != nil {
		log.Fatal("unable to open store: ", err)
	}
	defer st.Close()

	if err := play(ctx, st, os.Stdin, os.Stdout, slogger); err != nil {
		log.Error("game stopped: ", err)
		os.Exit(1)
	}
}

func play(ctx context.Context, st store.Store, in io.Reader, out io.Writer, slogger *slog.Logger) error {
	p := &game.Persister{Store: st, Prefix: player, Logger: slogger}
	g, err := p.Load(ctx, game.WithRand(createRand()), game.WithLogger(slogger))
	if err != nil {
		return err
	}

	if difficulty != "" {
		ds, err := p.LoadDifficulties(ctx)
		if err != nil {
			return err
		}
		d, ok := ds.Lookup(difficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q", difficulty)
		}
		if err := g.SetDifficulty(ctx, d); err != nil {
			return err
		}
	}

	render(out, g)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		log.WithField("command", line).Debug("received command")

		err := g.Execute(ctx, line)
		switch {
		case errors.Is(err, game.ErrUnknownCommand), errors.Is(err, game.ErrInvalidArguments),
			errors.Is(err, mines.ErrPointOutOfBounds), errors.Is(err, game.ErrGameOver):
			fmt.Fprintln(out, err)
			continue
		case err != nil:
			return err
		}

		if err := p.Save(ctx, g); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"status":  g.Status(),
			"elapsed": g.ElapsedSeconds(),
		}).Debug("saved game")
		render(out, g)
	}
	return scanner.Err()
}
