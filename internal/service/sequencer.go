package service

import (
	"context"
	"time"

	"linesink/internal/models"

	"github.com/sirupsen/logrus"
)

// Step is one unit of a push script: a message followed by a pause
// before the next step.
type Step struct {
	Message models.Message
	Delay   time.Duration
}

// Sequencer executes a fully materialized script of heterogeneous
// messages against the fixed push target, strictly in order on the
// calling goroutine. A push failure aborts the remaining script; an
// interrupted delay is logged and the script continues to the next
// step without re-waiting.
type Sequencer struct {
	gateway  Gateway
	targetID string
	logger   *logrus.Logger
	// newTimer returns the expiry channel and a stop function releasing
	// the timer early. An interrupted delay must not leave a timer
	// running for the remainder of a long campaign pace.
	newTimer func(time.Duration) (<-chan time.Time, func() bool)
}

func NewSequencer(gateway Gateway, targetID string, logger *logrus.Logger) *Sequencer {
	return &Sequencer{
		gateway:  gateway,
		targetID: targetID,
		logger:   logger,
		newTimer: func(d time.Duration) (<-chan time.Time, func() bool) {
			t := time.NewTimer(d)
			return t.C, t.Stop
		},
	}
}

func (s *Sequencer) Run(ctx context.Context, steps []Step) error {
	s.logger.WithField("steps", len(steps)).Info("Running push script")

	for i, step := range steps {
		if err := s.gateway.Push(ctx, s.targetID, step.Message); err != nil {
			return err
		}

		if step.Delay <= 0 {
			continue
		}

		expired, stop := s.newTimer(step.Delay)
		select {
		case <-expired:
		case <-ctx.Done():
			stop()
			s.logger.WithFields(logrus.Fields{
				"step":  i,
				"delay": step.Delay,
			}).Info("Script delay interrupted")
		}
	}

	return nil
}
