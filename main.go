package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"royalur/dice"
	"royalur/experiments"
	"royalur/settings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML settings file")
	diceName := flag.String("dice", "", "Dice type to roll (FourBinary or ThreeBinary0Max)")
	seed := flag.Uint64("seed", 0, "Seed of the first worker's dice, 0 draws a random seed")
	rolls := flag.Int("rolls", 0, "Number of rolls")
	goroutines := flag.Int("goroutines", 0, "Number of goroutines rolling in parallel")
	outputDir := flag.String("out", "", "Directory experiment records are written to")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	s, err := settings.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load settings")
	}

	// Flags set on the command line take precedence
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dice":
			dt, err := dice.ParseDiceType(*diceName)
			if err != nil {
				log.Fatal().Err(err).Msg("invalid dice flag")
			}
			s.Dice = dt
		case "seed":
			s.Seed = *seed
		case "rolls":
			s.Rolls = *rolls
		case "goroutines":
			s.Goroutines = *goroutines
		case "out":
			s.OutputDir = *outputDir
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := experiments.Run(ctx, s)
	if err != nil {
		log.Fatal().Err(err).Msg("dice experiment failed")
	}

	for _, record := range result.Distribution {
		log.Info().
			Int("value", record.Value).
			Int("count", record.Count).
			Float64("observed", record.Observed).
			Float64("expected", record.Expected).
			Msg("roll frequency")
	}
}
