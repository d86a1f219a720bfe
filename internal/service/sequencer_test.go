package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"linesink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firedTimer is an injected timer seam whose expiry channel is already
// fired, so delays complete immediately.
func firedTimer(time.Duration) (<-chan time.Time, func() bool) {
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch, func() bool { return false }
}

func TestSequencerRunsStepsInOrder(t *testing.T) {
	gw := &mockGateway{}
	seq := NewSequencer(gw, "U123", testLogger())
	seq.newTimer = firedTimer

	steps := []Step{
		{Message: models.NewTextMessage("one"), Delay: time.Second},
		{Message: models.NewStickerMessage("1", "2")},
		{Message: models.NewTextMessage("three"), Delay: time.Second},
	}

	err := seq.Run(context.Background(), steps)
	require.NoError(t, err)

	require.Len(t, gw.pushes, 3)
	assert.Equal(t, models.Message(models.NewTextMessage("one")), gw.pushes[0].messages[0])
	assert.Equal(t, models.Message(models.NewStickerMessage("1", "2")), gw.pushes[1].messages[0])
	assert.Equal(t, models.Message(models.NewTextMessage("three")), gw.pushes[2].messages[0])
	for _, p := range gw.pushes {
		assert.Equal(t, "U123", p.to)
	}
}

func TestSequencerWaitsBetweenSteps(t *testing.T) {
	gw := &mockGateway{}
	seq := NewSequencer(gw, "U123", testLogger())

	var delays []time.Duration
	seq.newTimer = func(d time.Duration) (<-chan time.Time, func() bool) {
		delays = append(delays, d)
		return firedTimer(d)
	}

	steps := []Step{
		{Message: models.NewTextMessage("a"), Delay: 3 * time.Second},
		{Message: models.NewTextMessage("b")},
		{Message: models.NewTextMessage("c"), Delay: 10 * time.Second},
	}

	err := seq.Run(context.Background(), steps)
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{3 * time.Second, 10 * time.Second}, delays,
		"zero-delay steps must not wait at all")
}

func TestSequencerAbortsOnPushFailure(t *testing.T) {
	gw := &mockGateway{pushErr: fmt.Errorf("push failed"), failAfter: 2}
	seq := NewSequencer(gw, "U123", testLogger())
	seq.newTimer = firedTimer

	steps := []Step{
		{Message: models.NewTextMessage("a"), Delay: time.Second},
		{Message: models.NewTextMessage("b"), Delay: time.Second},
		{Message: models.NewTextMessage("c"), Delay: time.Second},
	}

	err := seq.Run(context.Background(), steps)
	require.Error(t, err)
	assert.Len(t, gw.pushes, 1, "steps after the failed push must not run")
}

func TestSequencerContinuesAfterInterruptedDelay(t *testing.T) {
	gw := &mockGateway{}
	seq := NewSequencer(gw, "U123", testLogger())

	var stops int
	seq.newTimer = func(time.Duration) (<-chan time.Time, func() bool) {
		// Never fires; only the cancelled context can unblock the wait.
		return make(chan time.Time), func() bool {
			stops++
			return true
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	steps := []Step{
		{Message: models.NewTextMessage("a"), Delay: time.Hour},
		{Message: models.NewTextMessage("b"), Delay: time.Hour},
	}

	done := make(chan error, 1)
	go func() { done <- seq.Run(ctx, steps) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sequencer did not finish after context cancellation")
	}

	assert.Len(t, gw.pushes, 2, "an interrupted delay skips the wait but not the remaining steps")
	assert.Equal(t, 2, stops, "an interrupted delay must release its timer")
}

func TestSequencerEmptyScript(t *testing.T) {
	gw := &mockGateway{}
	seq := NewSequencer(gw, "U123", testLogger())

	err := seq.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, gw.pushes)
}
