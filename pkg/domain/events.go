package domain

// CompactEvent is emitted after one instruction has been applied to a grid.
type CompactEvent struct {
	Step        int         `json:"step"` // Position in the executed sequence
	Instruction Instruction `json:"instruction"`
	Moved       int         `json:"moved"` // Cells whose position changed
}

// OptimizeEvent is emitted after one reduction pass of the optimizer.
type OptimizeEvent struct {
	Pass   int `json:"pass"` // 1-based
	Before int `json:"before"`
	After  int `json:"after"`
}

// Eliminated returns how many instructions the pass removed.
func (e *OptimizeEvent) Eliminated() int {
	return e.Before - e.After
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnCompact      func(*CompactEvent)
	OnOptimizePass func(*OptimizeEvent)
}

// MergeHooks returns hooks that invoke every non-nil callback of each set, in order.
func MergeHooks(sets ...LifecycleHooks) LifecycleHooks {
	var compact []func(*CompactEvent)
	var optimize []func(*OptimizeEvent)
	for _, s := range sets {
		if s.OnCompact != nil {
			compact = append(compact, s.OnCompact)
		}
		if s.OnOptimizePass != nil {
			optimize = append(optimize, s.OnOptimizePass)
		}
	}

	var merged LifecycleHooks
	if len(compact) > 0 {
		merged.OnCompact = func(e *CompactEvent) {
			for _, fn := range compact {
				fn(e)
			}
		}
	}
	if len(optimize) > 0 {
		merged.OnOptimizePass = func(e *OptimizeEvent) {
			for _, fn := range optimize {
				fn(e)
			}
		}
	}
	return merged
}
