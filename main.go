package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"mancala/agent"
	"mancala/config"
	"mancala/engine"
	"mancala/experiments"
	"mancala/game"
	"mancala/gamemaster"
	"mancala/searcher"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogger(cfg.Debug)

	var err error
	switch cfg.Mode {
	case config.ModeExperiment:
		err = runExperiment(cfg)
	case config.ModeThroughput:
		err = runThroughput(cfg)
	default:
		err = runGame(cfg)
	}
	if errors.Is(err, agent.ErrQuit) {
		log.Info().Msg("bye")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.Mode)
	}
}

func setupLogger(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Debug().Msg("debug logging is on")
}

// runGame plays the search agent against the configured opponent, which sits
// on cfg.HumanPlayer's side.
func runGame(cfg *config.Config) error {
	engineAgent := agent.NewSearchAgent(searcher.New(
		searcher.WithMaxDepth(cfg.Depth),
		searcher.WithGoroutines(cfg.Goroutines),
		searcher.WithMetrics(),
	))

	var opponent agent.Agent
	switch cfg.Opponent {
	case config.OpponentRandom:
		opponent = agent.NewRandomAgent(cfg.Seed)
	case config.OpponentSearch:
		opponent = agent.NewSearchAgent(searcher.New(
			searcher.WithMaxDepth(cfg.Depth),
			searcher.WithGoroutines(cfg.Goroutines),
		))
	default:
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          "mancala> ",
			EOFPrompt:       "exit",
			InterruptPrompt: "^C",
		})
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		defer rl.Close()
		opponent = agent.NewHumanAgent(rl, rl.Stdout())
	}

	var agents [2]agent.Agent
	agents[cfg.HumanPlayer] = opponent
	agents[cfg.HumanPlayer.Opponent()] = engineAgent

	options := []gamemaster.SessionOption{}
	if cfg.Sweep {
		options = append(options, gamemaster.WithSweep())
	}
	e := engine.LocalEngine(agents, options...)

	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Print(e.Session.Board().String())
	fmt.Printf("player %s: %d, player %s: %d, winner: %s\n", game.One, gameMetric.ScoreOne, game.Two, gameMetric.ScoreTwo, winner)
	return nil
}

func runExperiment(cfg *config.Config) error {
	x := experiments.DepthExperiment(cfg.Depth, cfg.Goroutines, cfg.Games, cfg.Seed, cfg.Sweep, cfg.OutputDir)
	summary, err := x.Run()
	if err != nil {
		return err
	}
	for _, c := range x.Configs {
		log.Info().Int("agent", c.ID).Str("kind", c.Kind).Int("depth", c.MaxDepth).Int("wins", summary.Wins[c.ID]).Msg("result")
	}
	log.Info().Int("games", summary.Games).Int("draws", summary.Draws).Str("dir", summary.Dir).Msg("experiment stored")
	return nil
}

// runThroughput pits every goroutine count against itself and reports the
// search speed of each, relative to the first count.
func runThroughput(cfg *config.Config) error {
	x := experiments.ThroughputExperiment(cfg.GoroutineCounts, cfg.Depth, cfg.Games, cfg.Sweep, cfg.OutputDir)
	summary, err := x.Run()
	if err != nil {
		return err
	}
	base := summary.NodesPerSecond[x.Configs[0].ID]
	for _, c := range x.Configs {
		nps := summary.NodesPerSecond[c.ID]
		speedup := 0.0
		if base > 0 {
			speedup = nps / base
		}
		log.Info().Int("goroutines", c.Goroutines).Float64("nodes_per_second", nps).Float64("speedup", speedup).Msg("throughput")
	}
	log.Info().Int("games", summary.Games).Str("dir", summary.Dir).Msg("experiment stored")
	return nil
}
