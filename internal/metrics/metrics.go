// Package metrics exposes engine activity as Prometheus collectors.
package metrics

import (
	"fmt"
	"io"

	"github.com/aretw0/lockgrid/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Collector groups the lockgrid counters.
type Collector struct {
	Instructions *prometheus.CounterVec
	CellsMoved   prometheus.Counter
	Passes       prometheus.Counter
	Eliminated   prometheus.Counter
}

// NewCollector creates the collectors and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Instructions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lockgrid_instructions_applied_total",
				Help: "Total number of instructions applied to a grid",
			},
			[]string{"direction"},
		),
		CellsMoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lockgrid_cells_moved_total",
			Help: "Total number of occupied cells that changed position during compaction",
		}),
		Passes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lockgrid_optimizer_passes_total",
			Help: "Total number of optimizer reduction passes",
		}),
		Eliminated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lockgrid_instructions_eliminated_total",
			Help: "Total number of instructions removed by the optimizer",
		}),
	}

	for _, col := range []prometheus.Collector{c.Instructions, c.CellsMoved, c.Passes, c.Eliminated} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return c, nil
}

// Hooks returns lifecycle hooks that record engine events.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCompact: func(e *domain.CompactEvent) {
			c.Instructions.WithLabelValues(e.Instruction.String()).Inc()
			c.CellsMoved.Add(float64(e.Moved))
		},
		OnOptimizePass: func(e *domain.OptimizeEvent) {
			c.Passes.Inc()
			c.Eliminated.Add(float64(e.Eliminated()))
		},
	}
}

// WriteText writes every metric family gathered from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}
