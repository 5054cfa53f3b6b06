// Package app runs the nodelist scenario: sort the generated integers,
// build the node list, print it while the process is running, and tear it
// down. Process state and the list are owned by the Runner, not by
// package globals.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/nodelist/internal/nodelist"
	"github.com/mesh-intelligence/nodelist/internal/report"
	"github.com/mesh-intelligence/nodelist/internal/sorter"
	"github.com/mesh-intelligence/nodelist/pkg/types"
)

// Runner executes one run. Use it once.
type Runner struct {
	cfg    types.Config
	out    io.Writer
	logger *zap.Logger
	state  types.State
}

// NewRunner validates cfg and returns a Runner that writes its report to
// out. A nil logger discards log output.
func NewRunner(cfg types.Config, out io.Writer, logger *zap.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{cfg: cfg, out: out, logger: logger, state: types.StateInit}, nil
}

// State returns the current process state.
func (r *Runner) State() types.State {
	return r.state
}

// Run executes the scenario. On allocation failure list construction is
// aborted, every node created so far is released, the state still reaches
// Stopped, and the returned error wraps types.ErrAllocation.
func (r *Runner) Run(ctx context.Context) error {
	format, err := report.ParseFormat(r.cfg.Output)
	if err != nil {
		return err
	}
	w := report.NewWriter(r.out, format)

	numbers := sorter.Generate(r.cfg.Items)
	sorter.Sort(numbers, sorter.CompareInts)
	if err := w.Numbers(numbers); err != nil {
		return fmt.Errorf("write numbers: %w", err)
	}
	r.logger.Debug("sorted numbers", zap.Int("items", len(numbers)))

	if err := r.state.Start(); err != nil {
		return err
	}
	r.logger.Debug("state changed", zap.Stringer("state", r.state))

	arena := nodelist.NewArena(r.cfg.ArenaLimit)
	list := nodelist.New(arena)

	buildErr := r.build(ctx, arena, list)
	if buildErr == nil && r.state == types.StateRunning {
		if format == report.FormatText {
			buildErr = list.PrintAll(r.out)
		} else {
			buildErr = list.Walk(w.Node)
		}
	}

	released, err := list.DestroyAll()
	if err != nil {
		return errors.Join(buildErr, err)
	}
	r.logger.Debug("list destroyed", zap.Int("released", released), zap.Int("live", arena.Live()))

	if err := r.state.Stop(); err != nil {
		return errors.Join(buildErr, err)
	}
	r.logger.Debug("state changed", zap.Stringer("state", r.state))

	if buildErr != nil {
		return buildErr
	}
	return w.Flush()
}

// build creates and appends the configured nodes in order.
func (r *Runner) build(ctx context.Context, arena *nodelist.Arena, list *nodelist.List) error {
	specs := r.cfg.Nodes
	if specs == nil {
		specs = types.DefaultNodes()
	}

	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return err
		}

		h, err := arena.Create(spec.ID, spec.Name)
		if err != nil {
			r.logger.Warn("node allocation failed; aborting list construction",
				zap.Int32("id", spec.ID), zap.Int("appended", list.Len()), zap.Error(err))
			return err
		}
		if err := list.Append(h); err != nil {
			_ = arena.Release(h)
			return err
		}
		r.logger.Debug("node appended", zap.Int32("id", spec.ID), zap.String("name", spec.Name))
	}
	return nil
}
