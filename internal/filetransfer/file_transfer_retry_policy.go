package filetransfer

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/wandb/wandb/filesync/internal/observability"
)

// FileTransferRetryPolicy is the retry policy to be used for file operations.
func FileTransferRetryPolicy(
	ctx context.Context,
	resp *http.Response,
	err error,
) (bool, error) {
	if err != nil {
		switch {
		// Retry dial tcp <IP>: i/o timeout errors.
		//
		// Cloud storage providers sometimes return such i/o timeout errors
		// when rate limiting without specifying the error type to prevent
		// potential malicious attacks.
		case strings.Contains(err.Error(), "dial tcp") && strings.Contains(err.Error(), "i/o timeout"):
			return true, err
		// Retry context deadline exceeded errors.
		//
		// These come from the per-attempt timeout on the HTTP client.
		case strings.Contains(err.Error(), "context deadline exceeded"):
			return true, err
		// Abort on any other error from the HTTP transport.
		//
		// This happens if reading the file fails, for example if it is a
		// directory or if it doesn't exist. retryablehttp's default policy
		// for this situation is to retry, which we do not want.
		default:
			return false, err
		}
	}

	return retryablehttp.ErrorPropagatedRetryPolicy(ctx, resp, err)
}

// maxPeekBytes bounds how much of an error response body we inspect.
const maxPeekBytes = 1024

// ObjectStoreRetryPolicy wraps FileTransferRetryPolicy with object-store
// specific behavior:
//
//   - 408, 409, 429 and 5xx responses are retried;
//   - a 400 whose body contains "RequestTimeout" is retried, since S3 uses
//     that combination for expired requests;
//   - 401 and 403 responses invalidate the pre-signed URLs via onAuthExpired
//     and are retried so the next attempt fetches fresh URLs;
//   - 429 responses print a rate-limit notice to the user.
func ObjectStoreRetryPolicy(
	printer *observability.Printer,
	onAuthExpired func(),
) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil || resp == nil {
			return FileTransferRetryPolicy(ctx, resp, err)
		}

		switch {
		case resp.StatusCode == http.StatusUnauthorized,
			resp.StatusCode == http.StatusForbidden:
			if onAuthExpired != nil {
				onAuthExpired()
			}
			return true, nil

		case resp.StatusCode == http.StatusTooManyRequests:
			if printer != nil {
				printer.
					AtMostEvery(10 * time.Second).
					Writef("Rate-limited by the object store, backing off.")
			}
			return true, nil

		case resp.StatusCode == http.StatusRequestTimeout,
			resp.StatusCode == http.StatusConflict:
			return true, nil

		case resp.StatusCode == http.StatusBadRequest:
			return responseBodyContains(resp, "RequestTimeout"), nil

		case resp.StatusCode >= 500:
			return true, nil
		}

		return FileTransferRetryPolicy(ctx, resp, err)
	}
}

// responseBodyContains reports whether the response body's prefix contains
// the given string, leaving the body readable for the caller.
func responseBodyContains(resp *http.Response, substr string) bool {
	if resp.Body == nil {
		return false
	}

	peeked, err := io.ReadAll(io.LimitReader(resp.Body, maxPeekBytes))
	if err != nil {
		return false
	}

	resp.Body = struct {
		io.Reader
		io.Closer
	}{
		Reader: io.MultiReader(bytes.NewReader(peeked), resp.Body),
		Closer: resp.Body,
	}

	return bytes.Contains(peeked, []byte(substr))
}
