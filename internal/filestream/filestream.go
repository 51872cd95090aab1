// Package filestream notifies the backend's metrics-stream service about
// run events, in particular files that finished uploading.
package filestream

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/segmentio/encoding/json"
	"github.com/wandb/wandb/filesync/internal/api"
	"github.com/wandb/wandb/filesync/internal/observability"
	"golang.org/x/time/rate"
)

const BufferSize = 32

type FileStream interface {
	// Start asynchronously begins to transmit updates to the backend.
	//
	// All updates are associated with the run defined by `entity`,
	// `project` and `runID`.
	Start(entity, project, runID string)

	// Finish blocks until all buffered updates are transmitted.
	Finish()

	// StreamUpdate queues information to send to the backend.
	StreamUpdate(update Update)
}

// fileStream is a stream of data to the server.
type fileStream struct {
	// The relative path on the server to which to make requests.
	//
	// This must not include the schema and hostname prefix.
	path string

	baseURL string

	processChan chan Update
	done        *sync.WaitGroup

	logger *observability.CoreLogger

	// The client for making API requests.
	apiClient api.RetryableClient

	// The rate limit for sending data to the backend.
	transmitRateLimit *rate.Limiter
}

type FileStreamParams struct {
	BaseURL           string
	ApiClient         api.RetryableClient
	Logger            *observability.CoreLogger
	TransmitRateLimit *rate.Limiter
}

func NewFileStream(params FileStreamParams) FileStream {
	// Panic early to avoid surprises. These fields are required.
	switch {
	case params.Logger == nil:
		panic("filestream: nil logger")
	case params.TransmitRateLimit == nil:
		panic("filestream: nil rate limit")
	}

	return &fileStream{
		baseURL:           params.BaseURL,
		apiClient:         params.ApiClient,
		logger:            params.Logger,
		processChan:       make(chan Update, BufferSize),
		done:              &sync.WaitGroup{},
		transmitRateLimit: params.TransmitRateLimit,
	}
}

func (fs *fileStream) Start(entity, project, runID string) {
	fs.path = fmt.Sprintf(
		"files/%s/%s/%s/file_stream",
		entity,
		project,
		runID,
	)
	fs.logger.Debug("filestream: start", "path", fs.path)

	fs.done.Add(1)
	go func() {
		defer fs.done.Done()
		fs.transmitLoop()
	}()
}

func (fs *fileStream) StreamUpdate(update Update) {
	fs.logger.Debug("filestream: stream update", "update", update)
	fs.processChan <- update
}

func (fs *fileStream) Finish() {
	close(fs.processChan)
	fs.done.Wait()
	fs.logger.Debug("filestream: closed")
}

// transmitLoop drains the update channel, merging updates that arrive while
// waiting on the rate limit into a single request.
func (fs *fileStream) transmitLoop() {
	pending := &FileStreamRequest{}
	dirty := false

	apply := func(update Update) {
		err := update.Apply(UpdateContext{
			MakeRequest: func(request *FileStreamRequest) {
				pending.Merge(request)
				dirty = true
			},
			Logger: fs.logger,
		})
		if err != nil {
			fs.logger.CaptureError(
				fmt.Errorf("filestream: failed to apply update: %v", err))
		}
	}

	for update := range fs.processChan {
		apply(update)

	drain:
		for {
			select {
			case more, ok := <-fs.processChan:
				if !ok {
					break drain
				}
				apply(more)
			default:
				break drain
			}
		}

		if dirty {
			_ = fs.transmitRateLimit.Wait(context.Background())
			fs.transmit(pending)
			pending = &FileStreamRequest{}
			dirty = false
		}
	}

	if dirty {
		fs.transmit(pending)
	}
}

func (fs *fileStream) transmit(request *FileStreamRequest) {
	body, err := json.Marshal(request.ToJSON())
	if err != nil {
		fs.logger.CaptureError(
			fmt.Errorf("filestream: failed to marshal request: %v", err))
		return
	}

	req, err := retryablehttp.NewRequest(
		"POST",
		fs.baseURL+"/"+fs.path,
		body,
	)
	if err != nil {
		fs.logger.CaptureError(
			fmt.Errorf("filestream: failed to create request: %v", err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := fs.apiClient.Do(req)
	if err != nil {
		fs.logger.CaptureError(
			fmt.Errorf("filestream: failed to send request: %v", err))
		return
	}
	_ = resp.Body.Close()
}
