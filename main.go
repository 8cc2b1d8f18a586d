package main

import (
	"flag"
	"os"
	"tetris/config"
	"tetris/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file, defaults when empty")
	mode := flag.String("mode", "play", "One of play, train, learned, throughput")
	games := flag.Int("games", 0, "Number of games, overrides the config")
	seed := flag.Uint64("seed", 0, "Seed of the first game, overrides the config")
	goroutines := flag.Int("goroutines", 0, "Goroutines scoring placements, overrides the config")
	records := flag.Bool("records", false, "Write CSV records under experiments/")
	verbose := flag.Bool("verbose", false, "Log every placed piece")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid config")
		}
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *goroutines > 0 {
		cfg.Heuristic.Goroutines = *goroutines
	}
	cfg.Output.Records = cfg.Output.Records || *records

	switch *mode {
	case "play":
		result, err := experiments.RunHeuristic(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("play failed")
		}
		log.Info().Msgf("cleared %d lines in %d games", result.Lines(), len(result.Games))
	case "train":
		if _, _, err := experiments.RunTraining(cfg); err != nil {
			log.Fatal().Err(err).Msg("training failed")
		}
	case "learned":
		result, err := experiments.RunLearned(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("learned play failed")
		}
		log.Info().Msgf("cleared %d lines in %d games", result.Lines(), len(result.Games))
	case "throughput":
		if _, err := experiments.RunThroughputExperiment(cfg); err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}
