package filesync

import (
	"context"
	"fmt"
	"time"

	"github.com/Khan/genqlient/graphql"
	"github.com/wandb/wandb/filesync/internal/gql"
	"github.com/wandb/wandb/filesync/internal/observability"
	"github.com/wandb/wandb/filesync/internal/waiting"
)

const (
	// DefaultBatchTime is the longest a request may wait in an open batch.
	DefaultBatchTime = 100 * time.Millisecond

	// DefaultInterEventTime is the longest gap between two consecutive
	// requests within an open batch.
	DefaultInterEventTime = 10 * time.Millisecond

	// DefaultMaxBatchSize caps the number of file specs per GraphQL call.
	DefaultMaxBatchSize = 100
)

// PreparedFile describes where and how to upload one artifact file.
type PreparedFile struct {
	// Name is the file's path within the artifact.
	Name string

	// UploadURL is the presigned destination. Nil means the server
	// already has the content and no upload should happen.
	UploadURL *string

	// UploadHeaders to send on the upload, as "Name:Value" strings.
	UploadHeaders []string

	// StoragePath is the server-side path of the object, used to
	// complete multipart uploads.
	StoragePath string

	// BirthArtifactID is the artifact that first stored this content.
	BirthArtifactID string

	// Multipart is set when the server wants a multipart upload.
	Multipart *MultipartUploadInfo
}

// MultipartUploadInfo carries the part URLs for a multipart upload.
type MultipartUploadInfo struct {
	UploadID string
	Parts    []PartURL
}

// PartURL is the presigned URL for one part of a multipart upload.
type PartURL struct {
	PartNumber int64
	URL        string
}

// PrepareResponse is the result of preparing one file.
type PrepareResponse struct {
	File PreparedFile
	Err  error
}

type prepareRequest struct {
	spec gql.CreateArtifactFileSpecInput
	out  chan PrepareResponse

	// final marks the end of the request stream.
	final bool
}

type PreparerParams struct {
	Ctx           context.Context
	Logger        *observability.CoreLogger
	GraphqlClient graphql.Client

	// BatchTime, InterEventTime and MaxBatchSize tune the flush policy.
	// Zero values select the package defaults.
	BatchTime      time.Duration
	InterEventTime time.Duration
	MaxBatchSize   int

	// StorageLayout defaults to V2.
	StorageLayout gql.ArtifactStorageLayout
}

// Preparer batches createArtifactFiles mutations.
//
// Many files become ready to upload at nearly the same time; one GraphQL
// call registers up to MaxBatchSize of them and returns their presigned
// URLs. A single goroutine drains the request channel and flushes a batch
// when it is full, when the oldest request has waited BatchTime, or when
// no new request arrives within InterEventTime.
type Preparer struct {
	ctx           context.Context
	logger        *observability.CoreLogger
	graphqlClient graphql.Client

	batchTime      time.Duration
	interEventTime time.Duration
	maxBatchSize   int
	layout         gql.ArtifactStorageLayout

	input chan prepareRequest
	done  chan struct{}
}

func NewPreparer(params PreparerParams) *Preparer {
	if params.Ctx == nil {
		params.Ctx = context.Background()
	}
	if params.BatchTime <= 0 {
		params.BatchTime = DefaultBatchTime
	}
	if params.InterEventTime <= 0 {
		params.InterEventTime = DefaultInterEventTime
	}
	if params.MaxBatchSize <= 0 {
		params.MaxBatchSize = DefaultMaxBatchSize
	}
	if params.StorageLayout == "" {
		params.StorageLayout = gql.ArtifactStorageLayoutV2
	}

	return &Preparer{
		ctx:           params.Ctx,
		logger:        params.Logger,
		graphqlClient: params.GraphqlClient,

		batchTime:      params.BatchTime,
		interEventTime: params.InterEventTime,
		maxBatchSize:   params.MaxBatchSize,
		layout:         params.StorageLayout,

		input: make(chan prepareRequest, BufferSize),
		done:  make(chan struct{}),
	}
}

// Start launches the batching goroutine.
func (p *Preparer) Start() {
	go p.loop()
}

// PrepareAsync enqueues a file spec and returns a channel that receives
// the result once the spec's batch has been flushed.
func (p *Preparer) PrepareAsync(
	spec gql.CreateArtifactFileSpecInput,
) <-chan PrepareResponse {
	out := make(chan PrepareResponse, 1)
	p.input <- prepareRequest{spec: spec, out: out}
	return out
}

// Prepare is the synchronous form of PrepareAsync.
func (p *Preparer) Prepare(
	spec gql.CreateArtifactFileSpecInput,
) (PreparedFile, error) {
	response := <-p.PrepareAsync(spec)
	return response.File, response.Err
}

// Finish tells the batcher to stop after flushing enqueued requests.
func (p *Preparer) Finish() {
	p.input <- prepareRequest{final: true}
}

// Shutdown stops the batcher and waits for the final flush.
func (p *Preparer) Shutdown() {
	p.Finish()
	<-p.done
}

func (p *Preparer) loop() {
	defer close(p.done)

	for {
		first := <-p.input
		if first.final {
			return
		}

		batch, terminate := p.gatherBatch(first)
		p.flush(batch)

		if terminate {
			return
		}
	}
}

// gatherBatch collects requests until a flush condition is met.
//
// The second return value is true if the final marker was seen.
func (p *Preparer) gatherBatch(
	first prepareRequest,
) ([]prepareRequest, bool) {
	batch := []prepareRequest{first}
	batchStart := time.Now()

	for {
		remaining := p.batchTime - time.Since(batchStart)
		if remaining <= 0 || len(batch) >= p.maxBatchSize {
			return batch, false
		}

		// Clamp to avoid a zero-duration wait that could starve the
		// select below of ever seeing a queued request.
		wait := min(p.interEventTime, remaining)
		if wait < time.Millisecond {
			wait = time.Millisecond
		}

		select {
		case request := <-p.input:
			if request.final {
				return batch, true
			}
			batch = append(batch, request)

		case <-waiting.NewDelay(wait).Wait():
			return batch, false
		}
	}
}

// flush registers the batch with one createArtifactFiles call and routes
// each response row to its requester, in input order.
func (p *Preparer) flush(batch []prepareRequest) {
	specs := make([]gql.CreateArtifactFileSpecInput, len(batch))
	for i, request := range batch {
		specs[i] = request.spec
	}

	if p.logger != nil {
		p.logger.Debug("filesync: preparing batch", "size", len(batch))
	}

	response, err := gql.CreateArtifactFiles(
		p.ctx, p.graphqlClient, specs, p.layout)

	var edges []gql.CreateArtifactFilesCreateArtifactFilesCreateArtifactFilesPayloadFilesFileConnectionEdgesFileEdge
	if err == nil {
		edges = response.GetCreateArtifactFiles().Files.Edges
		if len(edges) != len(batch) {
			err = fmt.Errorf(
				"filesync: expected %d files in createArtifactFiles"+
					" response, got %d",
				len(batch), len(edges))
		}
	}

	if err != nil {
		for _, request := range batch {
			request.out <- PrepareResponse{Err: err}
		}
		return
	}

	for i, request := range batch {
		node := edges[i].Node

		file := PreparedFile{
			Name:            node.Name,
			UploadURL:       node.UploadUrl,
			UploadHeaders:   node.UploadHeaders,
			StoragePath:     node.StoragePath,
			BirthArtifactID: node.Artifact.Id,
		}

		if multipart := node.UploadMultipartUrls; multipart != nil {
			info := &MultipartUploadInfo{UploadID: multipart.UploadID}
			for _, part := range multipart.UploadUrlParts {
				info.Parts = append(info.Parts, PartURL{
					PartNumber: part.PartNumber,
					URL:        part.UploadUrl,
				})
			}
			file.Multipart = info
		}

		request.out <- PrepareResponse{File: file}
	}
}
