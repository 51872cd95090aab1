package clients_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wandb/wandb/filesync/internal/clients"
)

func respondWith(code int) *http.Response {
	return &http.Response{StatusCode: code}
}

func TestRetryMostFailures_PermanentCodes(t *testing.T) {
	for _, code := range []int{400, 401, 403, 404, 409, 410, 413, 422, 501} {
		retry, err := clients.RetryMostFailures(
			context.Background(), respondWith(code), nil)

		assert.NoError(t, err)
		assert.False(t, retry, "status %d should not be retried", code)
	}
}

func TestRetryMostFailures_TransientCodes(t *testing.T) {
	for _, code := range []int{0, 408, 429, 500, 502, 503, 599, 600, 999} {
		retry, err := clients.RetryMostFailures(
			context.Background(), respondWith(code), nil)

		assert.NoError(t, err)
		assert.True(t, retry, "status %d should be retried", code)
	}
}

func TestRetryMostFailures_Success(t *testing.T) {
	retry, err := clients.RetryMostFailures(
		context.Background(), respondWith(200), nil)

	assert.NoError(t, err)
	assert.False(t, retry)
}

func TestRetryMostFailures_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	retry, err := clients.RetryMostFailures(ctx, respondWith(500), nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, retry)
}

func TestRetryMostFailures_ConnectionError(t *testing.T) {
	retry, _ := clients.RetryMostFailures(
		context.Background(), nil, errors.New("dial tcp: i/o timeout"))

	assert.True(t, retry)
}
