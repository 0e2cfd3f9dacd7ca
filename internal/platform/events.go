// Package platform holds pieces shared by the terminal and window front ends.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pizza-rush/internal/core"
)

// LogEvents writes the events of one tick to the logger.
// Round transitions are logged at info level, everything else at debug.
func LogEvents(logger *log.Logger, result core.StepResult) {
	if logger == nil {
		return
	}
	state := result.State
	for _, e := range result.Events {
		switch e {
		case core.EventRoundStarted:
			logger.Info("round started")
		case core.EventRestarted:
			logger.Info("round restarted")
		case core.EventGameOver:
			logger.Info("game over", "score", state.Score)
		case core.EventPickup:
			logger.Debug("pickup", "score", state.Score)
		case core.EventTimeout:
			logger.Debug("timeout", "score", state.Score)
		default:
			logger.Debug(e.String(), "boosting", state.Boosting)
		}
	}
	if result.Quit {
		logger.Info("quit", "round", state.Round, "score", state.Score)
	}
}
