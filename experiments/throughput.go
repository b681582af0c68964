package experiments

import "mancala/experiments/metrics"

// ThroughputExperiment plays each goroutine count against itself at a fixed
// depth, so both sides search the same positions and nodes per second can be
// compared across counts.
func ThroughputExperiment(goroutineCounts []int, depth, numGames int, sweep bool, outputDir string) Experiment {
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for i, goroutines := range goroutineCounts {
		config := metrics.AgentConfig{ID: i + 1, Kind: KindSearch, MaxDepth: depth, Goroutines: goroutines}
		configs = append(configs, config)
		// Same config for both players for the same playing strength
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}

	return Experiment{
		Name:      "throughput",
		Configs:   configs,
		Matchups:  matchUps,
		NumGames:  numGames,
		Sweep:     sweep,
		OutputDir: outputDir,
	}
}
