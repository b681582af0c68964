package engine

import "mancala/experiments/metrics"

type Runner interface {
	// Run plays a game till it is over or a max number of turns is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
