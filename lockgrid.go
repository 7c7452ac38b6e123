package lockgrid

import (
	"io"
	"log/slog"

	"github.com/aretw0/lockgrid/internal/runtime"
	"github.com/aretw0/lockgrid/pkg/domain"
)

// Strategy selects how many optimizer passes are run.
type Strategy = runtime.Strategy

const (
	StrategyTwoPass    = runtime.StrategyTwoPass
	StrategyFixedPoint = runtime.StrategyFixedPoint
)

// ParseStrategy validates a strategy name. An empty name selects StrategyTwoPass.
func ParseStrategy(name string) (Strategy, error) {
	return runtime.ParseStrategy(name)
}

// Engine is the high-level entry point for the lockgrid library.
// It wraps the internal runtime and adds logging and lifecycle hooks.
type Engine struct {
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	strategy Strategy
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStrategy sets the optimizer strategy (default: StrategyTwoPass).
func WithStrategy(s Strategy) Option {
	return func(e *Engine) {
		e.strategy = s
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{strategy: StrategyTwoPass}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	logger := eng.logger
	eng.hooks = domain.MergeHooks(domain.LifecycleHooks{
		OnCompact: func(e *domain.CompactEvent) {
			logger.Debug("Compact", "step", e.Step, "instruction", e.Instruction.String(), "moved", e.Moved)
		},
		OnOptimizePass: func(e *domain.OptimizeEvent) {
			logger.Debug("Optimize Pass", "pass", e.Pass, "before", e.Before, "after", e.After)
		},
	}, eng.hooks)

	return eng
}

// Strategy returns the configured optimizer strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Compact applies a single instruction to g.
func (e *Engine) Compact(g *domain.Grid, in domain.Instruction) *domain.Grid {
	return e.Execute(g, domain.Sequence{in})
}

// Execute applies seq to g and returns the resulting grid. g is not modified.
func (e *Engine) Execute(g *domain.Grid, seq domain.Sequence) *domain.Grid {
	return runtime.Run(g, seq, e.hooks)
}

// ExecuteString parses raw leniently (unknown symbols are ignored) and executes it.
func (e *Engine) ExecuteString(g *domain.Grid, raw string) *domain.Grid {
	return e.Execute(g, domain.ParseSequence(raw))
}

// Optimize returns an equivalent sequence that is never longer than seq.
func (e *Engine) Optimize(seq domain.Sequence) domain.Sequence {
	out := runtime.OptimizeWith(seq, e.strategy, e.hooks)
	e.logger.Info("Sequence Optimized", "strategy", string(e.strategy), "before", len(seq), "after", len(out))
	return out
}

// OptimizeString parses raw leniently and returns the optimized instruction string.
func (e *Engine) OptimizeString(raw string) string {
	return e.Optimize(domain.ParseSequence(raw)).String()
}

// Solve optimizes seq and executes the result on g.
func (e *Engine) Solve(g *domain.Grid, seq domain.Sequence) (*domain.Grid, domain.Sequence) {
	opt := e.Optimize(seq)
	return e.Execute(g, opt), opt
}
