// Package api implements the HTTP client for the backend server.
package api

import (
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Khan/genqlient/graphql"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/wandb/wandb/filesync/internal/clients"
	"github.com/wandb/wandb/filesync/internal/observability"
)

const (
	// DefaultRetryMax is the maximum number of retries for a request.
	DefaultRetryMax = 20

	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 2 * time.Second

	// DefaultRetryWaitMax is the maximum wait between retries.
	DefaultRetryWaitMax = 60 * time.Second

	// DefaultNonRetryTimeout is the timeout for a single HTTP attempt.
	DefaultNonRetryTimeout = 30 * time.Second
)

// Backend models the backend server.
//
// There is generally exactly one Backend and a small number of Clients in a
// process. The Backend tracks server-wide state, in particular whether the
// server has told us to stop sending requests for a while.
type Backend struct {
	// The URL prefix for all requests to the backend API.
	baseURL *url.URL

	// The API key used as the Basic auth password for backend requests.
	apiKey string

	logger *observability.CoreLogger

	// isRateLimited is true while the server's quota is exhausted.
	//
	// Guarded by isRateLimitedCond's lock.
	isRateLimited     bool
	isRateLimitedCond *sync.Cond
}

// BackendOptions configure a Backend.
type BackendOptions struct {
	// BaseURL is the scheme and hostname for contacting the server, not
	// including a final slash. Example "http://localhost:8080".
	BaseURL *url.URL

	// APIKey authenticates requests whose host matches BaseURL.
	APIKey string

	Logger *observability.CoreLogger
}

// New creates a Backend.
func New(opts BackendOptions) *Backend {
	return &Backend{
		baseURL:           opts.BaseURL,
		apiKey:            opts.APIKey,
		logger:            opts.Logger,
		isRateLimitedCond: sync.NewCond(&sync.Mutex{}),
	}
}

// RetryableClient is an HTTP client that retries requests.
type RetryableClient interface {
	// Do sends an HTTP request, retrying according to the client's policy.
	Do(req *retryablehttp.Request) (*http.Response, error)
}

// ClientOptions configure a Client created by [Backend.NewClient].
type ClientOptions struct {
	// RetryPolicy decides whether a failed request should be retried.
	//
	// Defaults to [clients.RetryMostFailures].
	RetryPolicy retryablehttp.CheckRetry

	// RetryMax is the maximum number of retries. Zero means the default.
	RetryMax int

	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// NonRetryTimeout is the timeout for each HTTP attempt.
	NonRetryTimeout time.Duration

	// ExtraHeaders are sent on every request.
	ExtraHeaders map[string]string
}

// Client is an HTTP client for the backend server.
//
// Multiple Clients can be created for one Backend when different retry
// policies are needed. The client sets auth headers, retries gracefully,
// and respects rate-limit response headers.
type Client struct {
	backend *Backend

	retryableHTTP *retryablehttp.Client

	extraHeaders map[string]string
}

// NewClient creates a Client for making requests to the Backend.
func (backend *Backend) NewClient(opts ClientOptions) *Client {
	retryPolicy := opts.RetryPolicy
	if retryPolicy == nil {
		retryPolicy = clients.RetryMostFailures
	}

	retryMax := opts.RetryMax
	if retryMax == 0 {
		retryMax = DefaultRetryMax
	}
	retryWaitMin := opts.RetryWaitMin
	if retryWaitMin == 0 {
		retryWaitMin = DefaultRetryWaitMin
	}
	retryWaitMax := opts.RetryWaitMax
	if retryWaitMax == 0 {
		retryWaitMax = DefaultRetryWaitMax
	}
	nonRetryTimeout := opts.NonRetryTimeout
	if nonRetryTimeout == 0 {
		nonRetryTimeout = DefaultNonRetryTimeout
	}

	retryableHTTP := retryablehttp.NewClient()
	retryableHTTP.Logger = nil
	retryableHTTP.Backoff = clients.ExponentialBackoffWithJitter
	retryableHTTP.CheckRetry = withRetryLogging(retryPolicy, backend.logger)
	retryableHTTP.RetryMax = retryMax
	retryableHTTP.RetryWaitMin = retryWaitMin
	retryableHTTP.RetryWaitMax = retryWaitMax
	retryableHTTP.HTTPClient.Timeout = nonRetryTimeout

	return &Client{
		backend:       backend,
		retryableHTTP: retryableHTTP,
		extraHeaders:  opts.ExtraHeaders,
	}
}

// Do sends a request to the backend, blocking while the server is
// rate-limited.
//
// Auth headers are only attached if the request targets the backend host.
func (client *Client) Do(req *retryablehttp.Request) (*http.Response, error) {
	client.backend.waitIfRateLimited()

	req.Header.Set("User-Agent", "wandb-filesync")
	for key, value := range client.extraHeaders {
		req.Header.Set(key, value)
	}
	if client.backend.isSameHost(req.URL) {
		req.Header.Set("Authorization", basicAuth("api", client.backend.apiKey))
	}

	resp, err := client.retryableHTTP.Do(req)

	if resp != nil {
		client.backend.processRateLimitHeaders(resp)
		client.backend.logFinalResponseOnError(req, resp)
	}

	return resp, err
}

// GraphQLClient returns a genqlient client that sends operations through
// the given retrying client.
func (backend *Backend) GraphQLClient(client RetryableClient) graphql.Client {
	endpoint := *backend.baseURL
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + "/graphql"
	return graphql.NewClient(endpoint.String(), AsStandardClient(client))
}

func (backend *Backend) isSameHost(u *url.URL) bool {
	return backend.baseURL != nil &&
		u.Host == backend.baseURL.Host &&
		strings.HasPrefix(u.Path, backend.baseURL.Path)
}

func basicAuth(username, password string) string {
	auth := username + ":" + password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(auth))
}
