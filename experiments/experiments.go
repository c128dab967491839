// Package experiments checks the dice against their analytic distributions
// by rolling them many times and storing the observed frequencies.
package experiments

import (
	"context"
	"fmt"

	"royalur/dice"
	"royalur/experiments/metrics"
	"royalur/settings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many rolls a worker makes between context checks.
const cancelCheckInterval = 1024

// Result is the outcome of a dice experiment.
type Result struct {
	ID           string
	Run          metrics.RunMetric
	Distribution []metrics.DistributionRecord
	Dir          string // Directory the records were written to
}

// Run rolls the configured dice s.Rolls times across s.Goroutines workers and
// stores the run and its distribution under s.OutputDir. Worker i rolls its
// own dice seeded with seed+i, so a run with a fixed seed is reproducible.
func Run(ctx context.Context, s settings.Settings) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}

	seed := s.Seed
	if seed == 0 {
		var err error
		seed, err = dice.NewSeed()
		if err != nil {
			return Result{}, err
		}
	}

	workers := make([]dice.Dice, s.Goroutines)
	for i := range workers {
		d, err := s.Dice.CreateDice(dice.WithSeed(seed + uint64(i)))
		if err != nil {
			return Result{}, fmt.Errorf("create dice for worker %d: %w", i, err)
		}
		workers[i] = d
	}

	id := uuid.NewString()
	logger := log.With().Str("run", id).Str("dice", s.Dice.Name()).Logger()
	logger.Info().Msgf("starting dice experiment with %d rolls on %d goroutines...", s.Rolls, s.Goroutines)

	collector := metrics.NewCollector(workers[0].MaxRollValue())
	collector.Start(s.Dice.Name(), s.Goroutines, seed)

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range workers {
		rolls := share(s.Rolls, s.Goroutines, i)
		g.Go(func() error {
			return rollMany(gctx, d, rolls, collector)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn().Err(err).Msg("dice experiment stopped early")
		return Result{}, err
	}

	run := collector.Complete()
	result := Result{
		ID:           id,
		Run:          run,
		Distribution: metrics.NewDistribution(run.Counts, workers[0].RollProbabilities()),
	}
	logger.Info().Dur("duration", run.Duration).Msg("completed dice experiment")

	writer, err := metrics.NewWriter(s.OutputDir, id)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteRunRecords([]metrics.RunRecord{{ID: id, RunMetric: run}})
	if err != nil {
		return Result{}, fmt.Errorf("failed to store run record: %w", err)
	}
	logger.Info().Msg("stored run record")

	err = writer.WriteDistribution(result.Distribution)
	if err != nil {
		return Result{}, fmt.Errorf("failed to store distribution: %w", err)
	}
	logger.Info().Str("dir", writer.Dir()).Msg("stored distribution")

	result.Dir = writer.Dir()
	return result, nil
}

// share splits total rolls across n workers, giving the remainder to the first workers.
func share(total, n, i int) int {
	rolls := total / n
	if i < total%n {
		rolls++
	}
	return rolls
}

func rollMany(ctx context.Context, d dice.Dice, rolls int, collector metrics.Collector) error {
	for i := 0; i < rolls; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		roll, err := d.Roll()
		if err != nil {
			return err
		}
		collector.AddRoll(roll.Value())
	}
	return nil
}
