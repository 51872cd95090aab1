package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wandb/wandb/filesync/internal/api"
	"github.com/wandb/wandb/filesync/internal/apitest"
	"github.com/wandb/wandb/filesync/internal/observability"
)

func newBackend(t *testing.T, baseURL string) *api.Backend {
	parsed, err := url.Parse(baseURL)
	require.NoError(t, err)

	return api.New(api.BackendOptions{
		BaseURL: parsed,
		APIKey:  "test_api_key",
		Logger:  observability.NewNoOpLogger(),
	})
}

func TestDo(t *testing.T) {
	server := apitest.NewRecordingServer()
	defer server.Close()

	backend := newBackend(t, server.URL+"/wandb")
	client := backend.NewClient(api.ClientOptions{
		ExtraHeaders: map[string]string{
			"ClientHeader": "xyz",
		},
	})

	testRequest, err := retryablehttp.NewRequest(
		http.MethodGet,
		server.URL+"/wandb/some/test/path",
		bytes.NewReader([]byte("my test request")),
	)
	require.NoError(t, err)
	testRequest.Header.Set("Header1", "one")
	testRequest.Header.Set("Header2", "two")

	_, err = client.Do(testRequest)
	require.NoError(t, err)

	allRequests := server.Requests()
	assert.Len(t, allRequests, 1)

	req := allRequests[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/wandb/some/test/path", req.URL.Path)
	assert.Equal(t, "my test request", string(req.Body))
	assert.Equal(t, "one", req.Header.Get("Header1"))
	assert.Equal(t, "two", req.Header.Get("Header2"))
	assert.Equal(t, "xyz", req.Header.Get("ClientHeader"))
	assert.Equal(t, "wandb-filesync", req.Header.Get("User-Agent"))
	assert.Equal(t, "Basic YXBpOnRlc3RfYXBpX2tleQ==",
		req.Header.Get("Authorization"))
}

func TestDo_ToBackend_SetsAuth(t *testing.T) {
	server := apitest.NewRecordingServer()
	defer server.Close()

	backend := newBackend(t, server.URL+"/wandb")
	req, _ := retryablehttp.NewRequest(
		http.MethodGet,
		server.URL+"/wandb/xyz",
		bytes.NewBufferString("test body"),
	)

	_, err := backend.NewClient(api.ClientOptions{}).Do(req)
	require.NoError(t, err)

	assert.Len(t, server.Requests(), 1)
	assert.NotEmpty(t, server.Requests()[0].Header.Get("Authorization"))
}

func TestDo_NotToBackend_NoAuth(t *testing.T) {
	server := apitest.NewRecordingServer()
	defer server.Close()

	backend := newBackend(t, server.URL+"/wandb")
	req, _ := retryablehttp.NewRequest(
		http.MethodGet,
		server.URL+"/notwandb/xyz",
		bytes.NewBufferString("test body"),
	)

	_, err := backend.NewClient(api.ClientOptions{}).Do(req)
	require.NoError(t, err)

	assert.Len(t, server.Requests(), 1)
	assert.Empty(t, server.Requests()[0].Header.Get("Authorization"))
}

func TestDo_RetriesPerPolicy(t *testing.T) {
	serverCallCount := 0
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			serverCallCount++
			if serverCallCount == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("Internal Server Error"))
				return
			}
			_, _ = w.Write([]byte("OK"))
		}),
	)
	defer server.Close()

	backend := newBackend(t, server.URL+"/wandb")
	client := backend.NewClient(api.ClientOptions{
		RetryPolicy: func(ctx context.Context, resp *http.Response, err error) (bool, error) {
			return resp != nil && resp.StatusCode == http.StatusInternalServerError, nil
		},
		RetryMax: 2,
	})

	testReq, err := retryablehttp.NewRequest("GET", server.URL+"/wandb", nil)
	require.NoError(t, err)
	resp, err := client.Do(testReq)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, 2, serverCallCount)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAsStandardClient_UsesRetryingClient(t *testing.T) {
	server := apitest.NewRecordingServer(apitest.WithHandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":{}}`))
		}))
	defer server.Close()

	backend := newBackend(t, server.URL+"/wandb")
	client := backend.NewClient(api.ClientOptions{})

	req, err := http.NewRequest(
		http.MethodPost,
		server.URL+"/wandb/graphql",
		bytes.NewBufferString(`{"query":"{}"}`),
	)
	require.NoError(t, err)

	_, err = api.AsStandardClient(client).Do(req)
	require.NoError(t, err)

	assert.Len(t, server.Requests(), 1)
	assert.Equal(t, "/wandb/graphql", server.Requests()[0].URL.Path)
	assert.NotEmpty(t, server.Requests()[0].Header.Get("Authorization"))
}
