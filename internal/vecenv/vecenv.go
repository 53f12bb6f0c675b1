// Package vecenv runs several independent environments side by side.
//
// Each slot owns one Env. Reset and Step fan out across slots with one
// goroutine per slot per call, so an Env is never touched by two goroutines
// at once. Results always come back in slot order.
package vecenv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tetris-gym/internal/config"
	"github.com/vovakirdan/tetris-gym/internal/core"
	"github.com/vovakirdan/tetris-gym/internal/registry"
	"github.com/vovakirdan/tetris-gym/internal/tetris"
)

// ErrSize is returned when seeds or actions do not match the batch size.
var ErrSize = errors.New("vecenv: argument length does not match batch size")

// Batch is a fixed set of environments stepped together.
type Batch struct {
	envs      []registry.Env
	seeds     *rand.Rand
	autoReset bool
	workers   int
	logger    *log.Logger
}

// Option configures a Batch.
type Option func(*Batch)

// WithAutoReset resets a slot as soon as its episode terminates. The
// terminal StepResult is still returned; the next Step acts on the new
// episode.
func WithAutoReset(on bool) Option {
	return func(b *Batch) { b.autoReset = on }
}

// WithWorkers caps the number of slots processed concurrently.
// Zero or less means one goroutine per slot.
func WithWorkers(n int) Option {
	return func(b *Batch) { b.workers = n }
}

// WithSeed seeds the sequence used for auto-reset seeds and nil Reset seeds.
func WithSeed(seed int64) Option {
	return func(b *Batch) { b.seeds = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the batch logger. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(b *Batch) {
		if l != nil {
			b.logger = l
		}
	}
}

// New builds a batch of n environments of the registered id.
func New(id string, n int, base config.EngineConfig, envOpts []tetris.Option, opts ...Option) (*Batch, error) {
	if n <= 0 {
		return nil, fmt.Errorf("vecenv: batch size %d must be positive", n)
	}
	envs := make([]registry.Env, n)
	for i := range envs {
		env, err := registry.Create(id, base, envOpts...)
		if err != nil {
			return nil, fmt.Errorf("vecenv: slot %d: %w", i, err)
		}
		envs[i] = env
	}
	return FromEnvs(envs, opts...), nil
}

// FromEnvs wraps existing environments. The batch takes ownership of them.
func FromEnvs(envs []registry.Env, opts ...Option) *Batch {
	b := &Batch{
		envs:   envs,
		seeds:  rand.New(rand.NewSource(0)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Len returns the number of slots.
func (b *Batch) Len() int { return len(b.envs) }

// Env returns the environment in slot i.
func (b *Batch) Env(i int) registry.Env { return b.envs[i] }

// Reset resets every slot. seeds may be nil, in which case each slot gets
// the next seed of the batch sequence; otherwise it needs one seed per slot.
//
// A failing slot does not stop the others. On error the returned slice still
// holds the observations of every slot that reset successfully.
func (b *Batch) Reset(ctx context.Context, seeds []int64) ([]tetris.Observation, error) {
	if seeds != nil && len(seeds) != len(b.envs) {
		return nil, fmt.Errorf("%w: %d seeds for %d slots", ErrSize, len(seeds), len(b.envs))
	}
	if seeds == nil {
		seeds = b.drawSeeds(len(b.envs))
	}

	obs := make([]tetris.Observation, len(b.envs))
	g := b.group()
	for i, env := range b.envs {
		i, env := i, env
		seed := seeds[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o, err := env.Reset(&seed)
			if err != nil {
				return fmt.Errorf("vecenv: reset slot %d: %w", i, err)
			}
			obs[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return obs, err
	}
	return obs, nil
}

// Step applies one action per slot and returns the results in slot order.
//
// A failing slot does not stop the others. On error the returned slice still
// holds the result of every slot that stepped; the failed slots are left at
// the zero value. Slots that stepped have advanced, so the usual recovery is
// a Reset of the whole batch.
func (b *Batch) Step(ctx context.Context, actions []core.Action) ([]tetris.StepResult, error) {
	if len(actions) != len(b.envs) {
		return nil, fmt.Errorf("%w: %d actions for %d slots", ErrSize, len(actions), len(b.envs))
	}

	// Auto-reset seeds are drawn up front so the sequence does not depend on
	// goroutine scheduling.
	var resetSeeds []int64
	if b.autoReset {
		resetSeeds = b.drawSeeds(len(b.envs))
	}

	results := make([]tetris.StepResult, len(b.envs))
	g := b.group()
	for i, env := range b.envs {
		i, env := i, env
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := env.Step(actions[i])
			if err != nil {
				return fmt.Errorf("vecenv: step slot %d: %w", i, err)
			}
			results[i] = res

			if res.Terminated && b.autoReset {
				b.logger.Debug("auto reset", "slot", i, "env", env.ID(),
					"score", res.Info.Score, "lines", res.Info.LinesCleared)
				if _, err := env.Reset(&resetSeeds[i]); err != nil {
					return fmt.Errorf("vecenv: reset slot %d: %w", i, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// group returns an errgroup without a derived context: one slot's failure
// must not cancel its siblings mid-step.
func (b *Batch) group() *errgroup.Group {
	g := new(errgroup.Group)
	if b.workers > 0 {
		g.SetLimit(b.workers)
	}
	return g
}

func (b *Batch) drawSeeds(n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = b.seeds.Int63()
	}
	return seeds
}
