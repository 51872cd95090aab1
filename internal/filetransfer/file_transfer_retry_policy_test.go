package filetransfer_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wandb/wandb/filesync/internal/filetransfer"
	"github.com/wandb/wandb/filesync/internal/observability"
)

func TestFileTransferRetryPolicy_RetriesDialTimeout(t *testing.T) {
	retry, _ := filetransfer.FileTransferRetryPolicy(
		context.Background(),
		nil,
		errors.New("dial tcp 10.0.0.1:443: i/o timeout"))

	assert.True(t, retry)
}

func TestFileTransferRetryPolicy_RetriesDeadlineExceeded(t *testing.T) {
	retry, _ := filetransfer.FileTransferRetryPolicy(
		context.Background(),
		nil,
		errors.New("Put \"https://storage\": context deadline exceeded"))

	assert.True(t, retry)
}

func TestFileTransferRetryPolicy_AbortsOtherTransportErrors(t *testing.T) {
	retry, _ := filetransfer.FileTransferRetryPolicy(
		context.Background(),
		nil,
		errors.New("read /tmp/foo: is a directory"))

	assert.False(t, retry)
}

func objectStoreResponse(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestObjectStoreRetryPolicy_RetriesTransientCodes(t *testing.T) {
	policy := filetransfer.ObjectStoreRetryPolicy(observability.NewPrinter(), nil)

	for _, code := range []int{408, 409, 429, 500, 503} {
		retry, err := policy(
			context.Background(), objectStoreResponse(code, ""), nil)

		assert.NoError(t, err)
		assert.True(t, retry, "status %d should be retried", code)
	}
}

func TestObjectStoreRetryPolicy_AuthErrorInvalidatesURL(t *testing.T) {
	invalidated := 0
	policy := filetransfer.ObjectStoreRetryPolicy(
		observability.NewPrinter(),
		func() { invalidated++ })

	for _, code := range []int{401, 403} {
		retry, err := policy(
			context.Background(), objectStoreResponse(code, ""), nil)

		assert.NoError(t, err)
		assert.True(t, retry)
	}
	assert.Equal(t, 2, invalidated)
}

func TestObjectStoreRetryPolicy_RequestTimeoutBody(t *testing.T) {
	policy := filetransfer.ObjectStoreRetryPolicy(observability.NewPrinter(), nil)

	resp := objectStoreResponse(400,
		`<Error><Code>RequestTimeout</Code></Error>`)
	retry, _ := policy(context.Background(), resp, nil)
	assert.True(t, retry)

	// The body must remain readable after being inspected.
	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "RequestTimeout")

	retry, _ = policy(
		context.Background(),
		objectStoreResponse(400, `<Error><Code>InvalidDigest</Code></Error>`),
		nil)
	assert.False(t, retry)
}

func TestObjectStoreRetryPolicy_RateLimitPrintsNotice(t *testing.T) {
	printer := observability.NewPrinter()
	policy := filetransfer.ObjectStoreRetryPolicy(printer, nil)

	_, _ = policy(context.Background(), objectStoreResponse(429, ""), nil)

	messages := printer.Read()
	assert.NotEmpty(t, messages)
	assert.Contains(t, messages[0], "Rate-limited")
}
