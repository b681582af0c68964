package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mancala/game"
	"mancala/meta"
)

const (
	ModePlay       = "play"
	ModeExperiment = "experiment"
	ModeThroughput = "throughput"

	OpponentHuman  = "human"
	OpponentRandom = "random"
	OpponentSearch = "search"
)

type Config struct {
	Mode       string
	Depth      int
	Goroutines int
	// GoroutineCounts are the root split sizes compared in throughput mode.
	GoroutineCounts []int
	Opponent        string
	HumanPlayer     game.Player
	Seed            uint64
	Sweep           bool
	Games           int
	OutputDir       string
	Debug           bool
}

// Load reads flags, then MANCALA_* environment variables, then an optional
// config file given by --config. Flags set explicitly win.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("mancala", pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.String("mode", ModePlay, "play a game or run an experiment: play, experiment, throughput")
	fs.Int("depth", meta.DEFAULT_MAX_DEPTH, "search depth in plies")
	fs.Int("goroutines", 1, "goroutines exploring root moves")
	fs.IntSlice("goroutine-counts", []int{1, 2, 4, 8}, "goroutine counts compared in throughput mode")
	fs.String("opponent", OpponentHuman, "who plays against the search agent: human, random, search")
	fs.String("human-player", "one", "side played by the opponent: one, two")
	fs.Uint64("seed", 1, "seed for random agents")
	fs.Bool("sweep", false, "move leftover row stones into their owners' stores at game over")
	fs.Int("games", 10, "games per matchup in experiment mode")
	fs.String("output-dir", "experiments", "directory for experiment records")
	fs.Bool("debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	v.SetEnvPrefix("mancala")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	player, err := game.ParsePlayer(v.GetString("human-player"))
	if err != nil {
		return err
	}

	c.Mode = v.GetString("mode")
	c.Depth = v.GetInt("depth")
	c.Goroutines = v.GetInt("goroutines")
	c.GoroutineCounts = v.GetIntSlice("goroutine-counts")
	c.Opponent = v.GetString("opponent")
	c.HumanPlayer = player
	c.Seed = v.GetUint64("seed")
	c.Sweep = v.GetBool("sweep")
	c.Games = v.GetInt("games")
	c.OutputDir = v.GetString("output-dir")
	c.Debug = v.GetBool("debug")
	return c.Validate()
}

func (c *Config) Validate() error {
	var errs []error
	switch c.Mode {
	case ModePlay, ModeExperiment, ModeThroughput:
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}
	switch c.Opponent {
	case OpponentHuman, OpponentRandom, OpponentSearch:
	default:
		errs = append(errs, fmt.Errorf("unknown opponent %q", c.Opponent))
	}
	if c.Depth < 1 {
		errs = append(errs, fmt.Errorf("depth must be at least 1, got %d", c.Depth))
	}
	if c.Goroutines < 1 {
		errs = append(errs, fmt.Errorf("goroutines must be at least 1, got %d", c.Goroutines))
	}
	if c.Mode == ModeThroughput && len(c.GoroutineCounts) == 0 {
		errs = append(errs, errors.New("throughput mode needs at least one goroutine count"))
	}
	for _, n := range c.GoroutineCounts {
		if n < 1 {
			errs = append(errs, fmt.Errorf("goroutine counts must be at least 1, got %d", n))
		}
	}
	if c.Games < 1 {
		errs = append(errs, fmt.Errorf("games must be at least 1, got %d", c.Games))
	}
	return errors.Join(errs...)
}
