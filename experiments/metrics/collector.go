package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Depth      int
	Duration   time.Duration
	Nodes      int // Positions visited, the root included
	Score      int // Negamax score of the chosen move
}

type MoveMetric struct {
	Step   int    // 1-based turn index
	Player string // Player label
	Move   string // Algebraic move, e.g. "d3"
	SearchMetric
}

type GameMetric struct {
	BlackDepth int
	WhiteDepth int
	Winner     string // Player label, "tie" on a draw
	Margin     int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Passes     int
}

type Collector interface {
	Start(goroutines, depth int)
	AddNode()
	Complete(score int) SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	startTime  time.Time
	nodes      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.nodes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Score:      score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int)     {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) Complete(score int) SearchMetric { return SearchMetric{} }
