package main

import (
	"flag"
	"os"
	"qwixx/config"
	"qwixx/engine"
	"qwixx/metrics"
	"qwixx/terminal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	players := flag.String("players", strings.Join(cfg.Players, ","), "Comma-separated player names")
	seed := flag.Uint64("seed", cfg.Seed, "Seed for the dice (0 seeds from the clock)")
	shared := flag.Bool("shared-locks", cfg.SharedLocks, "Share locked rows between all boards")
	shuffle := flag.Bool("shuffle", cfg.Shuffle, "Shuffle the turn order")
	records := flag.String("records", cfg.RecordsDir, "Directory to write game records to")
	level := flag.String("log-level", cfg.LogLevel, "Log level")
	flag.Parse()

	cfg.Players = splitNames(*players)
	cfg.Seed = *seed
	cfg.SharedLocks = *shared
	cfg.Shuffle = *shuffle
	cfg.RecordsDir = *records
	cfg.LogLevel = *level

	lvl, err := cfg.Level()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	opts := []engine.Option{engine.WithSeed(cfg.Seed), engine.WithMetrics(metrics.NewCollector())}
	if cfg.SharedLocks {
		opts = append(opts, engine.WithSharedLocks())
	}
	if cfg.Shuffle {
		opts = append(opts, engine.WithShuffledOrder())
	}

	g, err := engine.New(cfg.Players, terminal.New(os.Stdin, os.Stdout), opts...)
	if err != nil {
		log.Fatal().Err(err).Strs("players", cfg.Players).Msg("failed to set up game")
	}
	log.Info().Str("game", g.ID()).Uint64("seed", cfg.Seed).Msg("game created")

	result, err := g.Run()
	if err != nil {
		log.Fatal().Err(err).Str("game", g.ID()).Msg("game aborted")
	}

	if cfg.RecordsDir == "" {
		return
	}
	writer, err := metrics.NewWriter(cfg.RecordsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create records writer")
	}
	if err := writer.WriteGameRecords([]metrics.GameMetric{result.Metric}); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteStandingRecords(result.StandingRecords()); err != nil {
		log.Fatal().Err(err).Msg("failed to write standing records")
	}
	log.Info().Str("dir", writer.Dir()).Msg("records written")
}

func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
