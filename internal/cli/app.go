package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/lockgrid"
	"github.com/aretw0/lockgrid/internal/config"
	"github.com/aretw0/lockgrid/internal/metrics"
	"github.com/aretw0/lockgrid/internal/presentation/tui"
	"github.com/aretw0/lockgrid/pkg/domain"
	"github.com/aretw0/lockgrid/pkg/generate"
	"github.com/aretw0/lockgrid/pkg/render"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
)

// Options carries the global CLI flags.
type Options struct {
	LogLevel      string
	Format        string
	Color         string
	MarkdownStyle string
	Strategy      string
	Strict        bool
	Metrics       bool

	Out    io.Writer // defaults to os.Stdout
	ErrOut io.Writer // defaults to os.Stderr
}

// App binds the engine to rendering, logging and metrics for one CLI invocation.
type App struct {
	out      io.Writer
	errOut   io.Writer
	logger   *slog.Logger
	render   render.Options
	strategy lockgrid.Strategy
	strict   bool

	registry  *prometheus.Registry
	collector *metrics.Collector
}

// NewApp validates opts and prepares an App.
func NewApp(opts Options) (*App, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}

	logger, err := createLogger(opts.LogLevel, opts.ErrOut)
	if err != nil {
		return nil, err
	}
	format, err := render.ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}
	strategy, err := lockgrid.ParseStrategy(opts.Strategy)
	if err != nil {
		return nil, err
	}

	ro := render.Options{Format: format, MarkdownStyle: opts.MarkdownStyle}
	mode := render.ColorMode(opts.Color)
	switch mode {
	case "":
		mode = render.ColorAuto
	case render.ColorAuto, render.ColorAlways, render.ColorNever:
	default:
		return nil, fmt.Errorf("unknown color mode %q", opts.Color)
	}
	f, _ := opts.Out.(*os.File)
	ro.Profile = render.ProfileFor(mode, f)
	ro.Color = ro.Profile != termenv.Ascii

	app := &App{
		out:      opts.Out,
		errOut:   opts.ErrOut,
		logger:   logger,
		render:   ro,
		strategy: strategy,
		strict:   opts.Strict,
	}

	if opts.Metrics {
		app.registry = prometheus.NewRegistry()
		app.collector, err = metrics.NewCollector(app.registry)
		if err != nil {
			return nil, err
		}
	}
	return app, nil
}

func (a *App) engine(strategy lockgrid.Strategy) *lockgrid.Engine {
	opts := []lockgrid.Option{
		lockgrid.WithLogger(a.logger),
		lockgrid.WithStrategy(strategy),
	}
	if a.collector != nil {
		opts = append(opts, lockgrid.WithLifecycleHooks(a.collector.Hooks()))
	}
	return lockgrid.New(opts...)
}

// RunRequest describes a single execution.
type RunRequest struct {
	Grid         *domain.Grid
	Instructions string
	Optimize     bool
	Strategy     string // overrides the App strategy when set
}

// RunScenarioFile loads a scenario file and executes it.
// optimize forces optimization even if the file does not ask for it.
func (a *App) RunScenarioFile(path, instructions string, optimize bool) error {
	sc, err := config.LoadScenario(path)
	if err != nil {
		return err
	}
	a.logger.Debug("Scenario Loaded", "path", path, "width", sc.Grid.Width(), "height", sc.Grid.Height())

	req := RunRequest{
		Grid:         sc.Grid,
		Instructions: sc.Instructions,
		Optimize:     sc.Optimize || optimize,
		Strategy:     sc.Strategy,
	}
	if instructions != "" {
		req.Instructions = instructions
	}
	return a.Run(req)
}

// Run executes req and renders the resulting grid.
func (a *App) Run(req RunRequest) error {
	seq, err := parseInstructions(a.logger, req.Instructions, a.strict)
	if err != nil {
		return err
	}

	strategy := a.strategy
	if req.Strategy != "" {
		if strategy, err = lockgrid.ParseStrategy(req.Strategy); err != nil {
			return err
		}
	}
	eng := a.engine(strategy)

	if req.Optimize {
		seq = eng.Optimize(seq)
		a.logger.Info("Running Optimized Instructions", "instructions", seq.String())
	}
	return a.writeGrid(eng.Execute(req.Grid, seq))
}

// Optimize prints the optimized form of raw.
func (a *App) Optimize(raw string) error {
	seq, err := parseInstructions(a.logger, raw, a.strict)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, a.engine(a.strategy).Optimize(seq))
	return err
}

// GenerateRequest describes a random grid and instruction string.
type GenerateRequest struct {
	Seed   uint64
	Width  int // 0 picks a random width
	Height int // 0 picks a random height
}

// Generate prints a random grid followed by a random instruction string.
func (a *App) Generate(req GenerateRequest) error {
	gen := generate.New(req.Seed)
	grid := randomGrid(gen, req.Width, req.Height)
	if err := a.writeGrid(grid); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.out, gen.Sequence())
	return err
}

func randomGrid(gen *generate.Generator, w, h int) *domain.Grid {
	if w <= 0 {
		w = gen.Side()
	}
	if h <= 0 {
		h = gen.Side()
	}
	return gen.GridOf(w, h)
}

// Demo generates a grid and instructions, runs them as given and optimized,
// and reports whether both results agree.
func (a *App) Demo(req GenerateRequest) error {
	if a.render.Color {
		tui.PrintBanner(a.out, a.render.Profile)
	}

	gen := generate.New(req.Seed)
	grid := randomGrid(gen, req.Width, req.Height)
	seq := gen.Sequence()
	eng := a.engine(a.strategy)

	if err := a.writeGrid(grid); err != nil {
		return err
	}
	fmt.Fprintln(a.out, seq)

	direct := eng.Execute(grid, seq)
	if err := a.writeGrid(direct); err != nil {
		return err
	}

	optimized, opt := eng.Solve(grid, seq)
	fmt.Fprintln(a.out, opt)
	if err := a.writeGrid(optimized); err != nil {
		return err
	}

	if !direct.Equal(optimized) {
		return fmt.Errorf("optimized instructions %q diverged from %q", opt, seq)
	}
	printSystemMessage(a.out, "Optimized %d instructions down to %d; results match.", len(seq), len(opt))
	return nil
}

// Close flushes end-of-run output such as collected metrics.
func (a *App) Close() error {
	if a.registry == nil {
		return nil
	}
	return metrics.WriteText(a.errOut, a.registry)
}

func (a *App) writeGrid(g *domain.Grid) error {
	return render.Write(a.out, g, a.render)
}
