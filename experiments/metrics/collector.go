package metrics

import (
	"sync/atomic"
	"time"

	"mancala/game"
)

type SearchMetric struct {
	Goroutines int
	MaxDepth   int
	Duration   time.Duration
	Nodes      int
	Score      float64
}

// NodesPerSecond is the search throughput, 0 when nothing was timed.
func (m SearchMetric) NodesPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Nodes) / m.Duration.Seconds()
}

type MoveMetric struct {
	Step      int
	Player    game.Player
	Pit       int
	ExtraTurn bool
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         string // "one", "two" or "draw"
	ScoreOne       int
	ScoreTwo       int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// AgentConfig describes one side of a matchup.
type AgentConfig struct {
	ID         int
	Kind       string // "search" or "random"
	MaxDepth   int
	Goroutines int
	Seed       uint64
}

type Collector interface {
	Start(goroutines, maxDepth int)
	AddNode()
	Complete(score float64) SearchMetric
}

type collector struct {
	goroutines int
	maxDepth   int
	startTime  time.Time
	nodes      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, maxDepth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.maxDepth = maxDepth
	m.nodes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) Complete(score float64) SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		MaxDepth:   m.maxDepth,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Score:      score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, maxDepth int) {}
func (m *dummyCollector) AddNode()                       {}
func (m *dummyCollector) Complete(score float64) SearchMetric {
	return SearchMetric{Score: score}
}
