package engine

import "duel/experiments/metrics"

type Engine interface {
	// Run plays the match till it is over or a max number of turns is reached
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
