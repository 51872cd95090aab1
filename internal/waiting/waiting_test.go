package waiting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wandb/wandb/filesync/internal/waiting"
)

func TestNoDelay_IsZero(t *testing.T) {
	delay := waiting.NoDelay()

	assert.True(t, delay.IsZero())
}

func TestNoDelay_WaitCompletesImmediately(t *testing.T) {
	delay := waiting.NoDelay()

	select {
	case <-delay.Wait():
	case <-time.After(time.Second):
		t.Error("zero delay did not complete")
	}
}

func TestDelay_WaitElapses(t *testing.T) {
	delay := waiting.NewDelay(time.Millisecond)

	assert.False(t, delay.IsZero())
	select {
	case <-delay.Wait():
	case <-time.After(5 * time.Second):
		t.Error("delay did not elapse")
	}
}

func TestStopwatch_DoneAfterDuration(t *testing.T) {
	stopwatch := waiting.NewStopwatch(time.Millisecond)

	select {
	case <-stopwatch.Wait():
	case <-time.After(5 * time.Second):
		t.Error("stopwatch did not hit zero")
	}
	assert.True(t, stopwatch.IsDone())
}

func TestStopwatch_NotDoneWhileReset(t *testing.T) {
	stopwatch := waiting.NewStopwatch(time.Hour)

	stopwatch.Reset()

	assert.False(t, stopwatch.IsDone())
}
