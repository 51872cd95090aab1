package filesync

import (
	"context"

	"github.com/Khan/genqlient/graphql"
	"github.com/wandb/wandb/filesync/internal/filestream"
	"github.com/wandb/wandb/filesync/internal/filetransfer"
	"github.com/wandb/wandb/filesync/internal/observability"
	"github.com/wandb/wandb/filesync/internal/settings"
)

type FilePusherParams struct {
	Ctx      context.Context
	Logger   *observability.CoreLogger
	Settings *settings.Settings

	GraphqlClient graphql.Client
	FileTransfer  FileTransfer
	FileStream    filestream.FileStream

	// FileCache may be nil to skip caching.
	FileCache FileCache

	// Stats may be nil, in which case the pusher keeps its own.
	Stats *Stats

	// StagingDir holds upload snapshots of files enqueued with Copy.
	StagingDir string

	// MaxJobs caps concurrent uploads. Zero selects the settings value.
	MaxJobs int
}

// FilePusher is the pipeline's entry point.
//
// Producers enqueue uploads and commit requests; both travel through the
// checksum stage to the upload stage, so a commit is always processed
// after the uploads enqueued before it.
type FilePusher struct {
	checksum *ChecksumStage
	upload   *UploadStage
	stats    *Stats
}

func NewFilePusher(params FilePusherParams) *FilePusher {
	stats := params.Stats
	if stats == nil {
		stats = NewStats(filetransfer.NewFileTransferStats())
	}

	upload := NewUploadStage(UploadStageParams{
		Ctx:           params.Ctx,
		Logger:        params.Logger,
		Settings:      params.Settings,
		GraphqlClient: params.GraphqlClient,
		FileTransfer:  params.FileTransfer,
		FileStream:    params.FileStream,
		FileCache:     params.FileCache,
		Stats:         stats,
		MaxJobs:       params.MaxJobs,
	})

	checksum := NewChecksumStage(
		upload,
		stats,
		params.Logger,
		params.StagingDir,
	)

	upload.Start()
	checksum.Start()

	return &FilePusher{
		checksum: checksum,
		upload:   upload,
		stats:    stats,
	}
}

// Upload enqueues one file upload.
//
// Must not be called after Finish.
func (p *FilePusher) Upload(req *UploadRequest) {
	p.checksum.AddUpload(req)
}

// StoreManifestFiles enqueues one upload per manifest entry with a local
// path. Each upload runs through saveFn bound to its entry.
func (p *FilePusher) StoreManifestFiles(
	files []ManifestFileSpec,
	artifactID string,
	saveFn ManifestFileSaveFunc,
) {
	p.checksum.AddStoreManifestFiles(files, artifactID, saveFn)
}

// CommitArtifact requests a commit once every upload enqueued for the
// artifact has completed.
//
// The returned channel receives exactly one value: nil after the hooks
// and the commit mutation succeed, or the error that stopped them. If
// any of the artifact's uploads failed, the commit is not attempted and
// the error names the failed files.
func (p *FilePusher) CommitArtifact(
	artifactID string,
	finalize bool,
	beforeCommit func() error,
	onCommit func() error,
) <-chan error {
	result := make(chan error, 1)
	p.checksum.addCommit(&commitRequest{
		artifactID:   artifactID,
		finalize:     finalize,
		beforeCommit: beforeCommit,
		onCommit:     onCommit,
		result:       result,
	})
	return result
}

// Finish drains both stages and then invokes cb.
//
// In-flight uploads complete; no new work may be enqueued.
func (p *FilePusher) Finish(cb func()) {
	p.checksum.finish(cb)
}

// IsAlive reports whether the pipeline is still processing events.
func (p *FilePusher) IsAlive() bool {
	return p.upload.IsAlive()
}

// Stats returns the pipeline's upload statistics.
func (p *FilePusher) Stats() *Stats {
	return p.stats
}
