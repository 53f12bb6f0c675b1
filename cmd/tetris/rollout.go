package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-gym/internal/config"
	"github.com/vovakirdan/tetris-gym/internal/core"
	"github.com/vovakirdan/tetris-gym/internal/registry"
	"github.com/vovakirdan/tetris-gym/internal/tetris"
	"github.com/vovakirdan/tetris-gym/internal/vecenv"
)

var (
	flagSteps   int
	flagEnvs    int
	flagWorkers int
	flagActions []int
)

var rolloutCmd = &cobra.Command{
	Use:   "rollout <env>",
	Short: "Run episodes with a random agent",
	Long: `Step one or more copies of an environment with uniformly random actions
and report per-episode results. Finished episodes restart automatically until
the step budget is spent.

Examples:
  tetris rollout TetrisA-v0
  tetris rollout TetrisA-v3 --steps 20000 --seed 7
  tetris rollout TetrisB-v1 --envs 8 --workers 4
  tetris rollout TetrisA-v1 --actions 0,1,2,3`,
	Args: cobra.ExactArgs(1),
	RunE: runRollout,
}

func init() {
	rolloutCmd.Flags().IntVar(&flagSteps, "steps", 5000, "Ticks to run per environment")
	rolloutCmd.Flags().IntVar(&flagEnvs, "envs", 1, "Number of environments stepped in parallel")
	rolloutCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Concurrent environments (0 = one goroutine each)")
	rolloutCmd.Flags().IntSliceVar(&flagActions, "actions", nil, "Action indices the agent samples from (default all)")
}

// actionSet validates the --actions indices. An empty list means every action.
func actionSet(indices []int) ([]core.Action, error) {
	if len(indices) == 0 {
		all := make([]core.Action, core.NumActions)
		for i := range all {
			all[i] = core.Action(i)
		}
		return all, nil
	}
	set := make([]core.Action, 0, len(indices))
	for _, n := range indices {
		a, err := core.ParseAction(n)
		if err != nil {
			return nil, fmt.Errorf("--actions: %w", err)
		}
		set = append(set, a)
	}
	return set, nil
}

// episodeSummary aggregates finished episodes.
type episodeSummary struct {
	episodes  int
	wins      int
	bestScore int
	scoreSum  int
	linesSum  int
	rewardSum float64
}

func (s *episodeSummary) add(info tetris.Info, won bool, reward float64) {
	s.episodes++
	if won {
		s.wins++
	}
	if info.Score > s.bestScore {
		s.bestScore = info.Score
	}
	s.scoreSum += info.Score
	s.linesSum += info.LinesCleared
	s.rewardSum += reward
}

func runRollout(_ *cobra.Command, args []string) error {
	envID := args[0]
	if !registry.Exists(envID) {
		return fmt.Errorf("unknown environment %q (run 'tetris list')", envID)
	}
	if flagSteps <= 0 || flagEnvs <= 0 {
		return fmt.Errorf("--steps and --envs must be positive")
	}
	choices, err := actionSet(flagActions)
	if err != nil {
		return err
	}

	cfg, err := config.LoadEngine(flagConfigPath)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	batch, err := vecenv.New(envID, flagEnvs, cfg,
		[]tetris.Option{tetris.WithLogger(logger.WithPrefix(envID))},
		vecenv.WithAutoReset(true),
		vecenv.WithWorkers(flagWorkers),
		vecenv.WithSeed(seed),
		vecenv.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := batch.Reset(ctx, nil); err != nil {
		return err
	}
	logger.Info("rollout started", "env", envID, "envs", flagEnvs, "steps", flagSteps, "seed", seed,
		"actions", len(choices))

	agent := rand.New(rand.NewSource(seed))
	actions := make([]core.Action, batch.Len())
	running := make([]float64, batch.Len())
	var summary episodeSummary
	start := time.Now()

	for step := 0; step < flagSteps; step++ {
		for i := range actions {
			actions[i] = choices[agent.Intn(len(choices))]
		}

		results, err := batch.Step(ctx, actions)
		if err != nil {
			if ctx.Err() != nil {
				logger.Warn("rollout interrupted", "step", step)
				break
			}
			return err
		}

		for i, res := range results {
			running[i] += res.Reward
			if !res.Terminated {
				continue
			}
			logger.Info("episode finished",
				"slot", i,
				"episode", res.Info.EpisodeID,
				"ticks", res.Info.Tick,
				"score", res.Info.Score,
				"lines", res.Info.LinesCleared,
				"level", res.Info.Level,
				"won", res.Won,
				"reward", running[i],
			)
			summary.add(res.Info, res.Won, running[i])
			running[i] = 0
		}
	}

	elapsed := time.Since(start)
	logger.Debug("rollout done", "elapsed", elapsed,
		"ticks_per_sec", float64(flagSteps*batch.Len())/elapsed.Seconds())

	printSummary(envID, summary)
	return nil
}

func printSummary(envID string, s episodeSummary) {
	fmt.Printf("Rollout - %s\n", envID)
	fmt.Println()

	if s.episodes == 0 {
		fmt.Println("No episode finished within the step budget.")
		return
	}

	n := float64(s.episodes)
	fmt.Printf("  %-12s  %d\n", "Episodes", s.episodes)
	fmt.Printf("  %-12s  %d\n", "Wins", s.wins)
	fmt.Printf("  %-12s  %d\n", "Best score", s.bestScore)
	fmt.Printf("  %-12s  %.2f\n", "Mean score", float64(s.scoreSum)/n)
	fmt.Printf("  %-12s  %.2f\n", "Mean lines", float64(s.linesSum)/n)
	fmt.Printf("  %-12s  %.2f\n", "Mean reward", s.rewardSum/n)
}
