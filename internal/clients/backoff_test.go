package clients_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wandb/wandb/filesync/internal/clients"
)

func TestExponentialBackoffWithJitter_GrowsWithAttempts(t *testing.T) {
	min := 100 * time.Millisecond
	max := time.Hour

	first := clients.ExponentialBackoffWithJitter(min, max, 0, nil)
	fourth := clients.ExponentialBackoffWithJitter(min, max, 3, nil)

	assert.GreaterOrEqual(t, first, min)
	// 25% jitter at most on top of min * 2^attempt.
	assert.LessOrEqual(t, first, 125*time.Millisecond)
	assert.GreaterOrEqual(t, fourth, 800*time.Millisecond)
	assert.LessOrEqual(t, fourth, 1000*time.Millisecond)
}

func TestExponentialBackoffWithJitter_CapsAtMax(t *testing.T) {
	sleep := clients.ExponentialBackoffWithJitter(
		time.Second, 5*time.Second, 30, nil)

	assert.Equal(t, 5*time.Second, sleep)
}

func TestExponentialBackoffWithJitter_HonorsRetryAfter(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     http.Header{"Retry-After": []string{"7"}},
	}

	sleep := clients.ExponentialBackoffWithJitter(
		time.Millisecond, time.Hour, 0, resp)

	assert.GreaterOrEqual(t, sleep, 7*time.Second)
	assert.LessOrEqual(t, sleep, 8750*time.Millisecond)
}
