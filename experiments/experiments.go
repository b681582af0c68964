package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"mancala/agent"
	"mancala/engine"
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/gamemaster"
	"mancala/searcher"
)

const (
	KindSearch = "search"
	KindRandom = "random"
)

type Experiment struct {
	Name      string
	Configs   []metrics.AgentConfig
	Matchups  [][2]metrics.AgentConfig
	NumGames  int // Per matchup
	Sweep     bool
	OutputDir string
}

// Summary tallies wins and search throughput by AgentConfig.ID.
type Summary struct {
	Games          int
	Wins           map[int]int
	Draws          int
	NodesPerSecond map[int]float64
	Dir            string
}

// DepthExperiment pairs search agents of depth 1..maxDepth against a random
// baseline.
func DepthExperiment(maxDepth, goroutines, numGames int, seed uint64, sweep bool, outputDir string) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: KindRandom, Seed: seed}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 1; depth <= maxDepth; depth++ {
		config := metrics.AgentConfig{ID: depth, Kind: KindSearch, MaxDepth: depth, Goroutines: goroutines}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, baseline})
	}

	return Experiment{
		Name:      "depth",
		Configs:   configs,
		Matchups:  matchUps,
		NumGames:  numGames,
		Sweep:     sweep,
		OutputDir: outputDir,
	}
}

func (x Experiment) Run() (Summary, error) {
	start := time.Now()
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchup := range x.Matchups {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(x.Matchups), matchup[0], matchup[1])

		for i := 0; i < x.NumGames; i++ {
			// Alternate seats so each agent moves first in half the games
			one, two := matchup[0], matchup[1]
			if i%2 == 1 {
				one, two = two, one
			}

			count++
			winner, gameMetric, moveMetrics, err := x.runGame(one, two, count)
			if err != nil {
				return Summary{}, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     one.ID,
				Agent2:     two.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(x.Matchups), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	writer, err := metrics.NewWriter(x.OutputDir, x.Name)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	end := time.Now()
	err = writer.WriteSetup(metrics.Setup{
		Name: x.Name,
		Matchups: lo.Map(x.Matchups, func(m [2]metrics.AgentConfig, _ int) [2]int {
			return [2]int{m[0].ID, m[1].ID}
		}),
		NumGames:  x.NumGames,
		Sweep:     x.Sweep,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	})
	if err != nil {
		return Summary{}, fmt.Errorf("failed to store setup: %w", err)
	}
	if err := writer.WriteAgentConfigs(x.Configs); err != nil {
		return Summary{}, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return Summary{}, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return Summary{}, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return summarize(x.Configs, gameRecords, moveRecords, writer.Dir()), nil
}

// runGame plays a single game with one as player one and two as player two
func (x Experiment) runGame(one, two metrics.AgentConfig, gameID int) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := [2]agent.Agent{
		createAgent(one, gameID),
		createAgent(two, gameID),
	}
	options := []gamemaster.SessionOption{}
	if x.Sweep {
		options = append(options, gamemaster.WithSweep())
	}
	return engine.LocalEngine(agents, options...).Run()
}

func createAgent(config metrics.AgentConfig, gameID int) agent.Agent {
	switch config.Kind {
	case KindRandom:
		return agent.NewRandomAgent(config.Seed + uint64(gameID))
	case KindSearch:
		return agent.NewSearchAgent(searcher.New(
			searcher.WithMaxDepth(config.MaxDepth),
			searcher.WithGoroutines(config.Goroutines),
			searcher.WithMetrics(),
		))
	}
	panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
}

func summarize(configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord, dir string) Summary {
	seatOf := func(r metrics.GameRecord) int {
		switch r.Winner {
		case game.One.String():
			return r.Agent1
		case game.Two.String():
			return r.Agent2
		}
		return -1
	}
	byID := lo.KeyBy(games, func(r metrics.GameRecord) int { return r.ID })
	moverOf := func(m metrics.MoveRecord) int {
		if m.Player == game.One {
			return byID[m.Game].Agent1
		}
		return byID[m.Game].Agent2
	}

	wins := lo.SliceToMap(configs, func(c metrics.AgentConfig) (int, int) {
		return c.ID, lo.CountBy(games, func(r metrics.GameRecord) bool { return seatOf(r) == c.ID })
	})
	throughput := lo.SliceToMap(configs, func(c metrics.AgentConfig) (int, float64) {
		own := lo.Filter(moves, func(m metrics.MoveRecord, _ int) bool { return moverOf(m) == c.ID })
		nodes := lo.SumBy(own, func(m metrics.MoveRecord) int { return m.Nodes })
		seconds := lo.SumBy(own, func(m metrics.MoveRecord) float64 { return m.Duration.Seconds() })
		if seconds == 0 {
			return c.ID, 0
		}
		return c.ID, float64(nodes) / seconds
	})
	return Summary{
		Games:          len(games),
		Wins:           wins,
		Draws:          lo.CountBy(games, func(r metrics.GameRecord) bool { return r.Winner == engine.Draw }),
		NodesPerSecond: throughput,
		Dir:            dir,
	}
}
