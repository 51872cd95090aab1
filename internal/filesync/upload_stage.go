package filesync

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/Khan/genqlient/graphql"
	"github.com/wandb/wandb/filesync/internal/filestream"
	"github.com/wandb/wandb/filesync/internal/filetransfer"
	"github.com/wandb/wandb/filesync/internal/gql"
	"github.com/wandb/wandb/filesync/internal/observability"
	"github.com/wandb/wandb/filesync/internal/settings"
)

const (
	// BufferSize is the size of each stage's event channel.
	BufferSize = 32

	// DefaultMaxJobs is the default ceiling on concurrent uploads.
	DefaultMaxJobs = 128
)

// FileTransfer performs one HTTP upload.
type FileTransfer interface {
	Upload(task *filetransfer.DefaultUploadTask) error
}

// FileCache stores uploaded content for reuse across runs on this host.
type FileCache interface {
	// AddFileAndCheckDigest copies the file into the cache, verifying
	// its content still matches the digest.
	AddFileAndCheckDigest(path string, digest string) error
}

type uploadEvent interface{ uploadEvent() }

type uploadEventUpload struct{ req *UploadRequest }

type uploadEventCommit struct{ commit *commitRequest }

type uploadEventFinish struct{ cb func() }

// uploadEventJobDone is posted by a worker when its upload finished.
type uploadEventJobDone struct {
	req *UploadRequest
	err error
}

func (uploadEventUpload) uploadEvent()  {}
func (uploadEventCommit) uploadEvent()  {}
func (uploadEventFinish) uploadEvent()  {}
func (uploadEventJobDone) uploadEvent() {}

// artifactUploadState tracks commit readiness for one artifact.
type artifactUploadState struct {
	// pending counts uploads that have not reported a result.
	pending int

	// commit is the commit request, once one has arrived.
	commit *commitRequest

	failed      bool
	failedFiles []string
}

type UploadStageParams struct {
	Ctx      context.Context
	Logger   *observability.CoreLogger
	Settings *settings.Settings

	GraphqlClient graphql.Client
	FileTransfer  FileTransfer
	FileStream    filestream.FileStream

	// FileCache may be nil to skip caching.
	FileCache FileCache

	Stats *Stats

	// MaxJobs caps concurrent uploads. Zero selects the settings value.
	MaxJobs int
}

// UploadStage schedules object-store writes and gates artifact commits.
//
// A single dispatcher goroutine owns all mutable state. Workers are
// goroutines admitted by a semaphore with ceiling MaxJobs; they post
// their results back onto the event channel. Uploads for the same save
// name are serialized: a second request queues behind the running one,
// which is how a file modified during its own upload gets re-uploaded.
type UploadStage struct {
	events chan uploadEvent
	alive  atomic.Bool

	ctx           context.Context
	logger        *observability.CoreLogger
	settings      *settings.Settings
	graphqlClient graphql.Client
	fileTransfer  FileTransfer
	fileStream    filestream.FileStream
	fileCache     FileCache
	stats         *Stats

	semaphore chan struct{}

	// State below is owned by the dispatcher goroutine.

	// running holds the save names with an active upload.
	running map[string]struct{}

	// blocked queues uploads for save names that are already running.
	blocked map[string][]*UploadRequest

	artifacts map[string]*artifactUploadState

	finishing bool
	finishCb  func()
	done      bool
}

func NewUploadStage(params UploadStageParams) *UploadStage {
	if params.Ctx == nil {
		params.Ctx = context.Background()
	}

	maxJobs := params.MaxJobs
	if maxJobs <= 0 {
		maxJobs = params.Settings.GetMaxJobs()
	}
	if maxJobs <= 0 {
		maxJobs = DefaultMaxJobs
	}

	return &UploadStage{
		events: make(chan uploadEvent, BufferSize),

		ctx:           params.Ctx,
		logger:        params.Logger,
		settings:      params.Settings,
		graphqlClient: params.GraphqlClient,
		fileTransfer:  params.FileTransfer,
		fileStream:    params.FileStream,
		fileCache:     params.FileCache,
		stats:         params.Stats,

		semaphore: make(chan struct{}, maxJobs),
		running:   make(map[string]struct{}),
		blocked:   make(map[string][]*UploadRequest),
		artifacts: make(map[string]*artifactUploadState),
	}
}

// Start launches the dispatcher goroutine.
func (u *UploadStage) Start() {
	u.alive.Store(true)
	go u.loop()
}

// IsAlive reports whether the dispatcher is still processing events.
func (u *UploadStage) IsAlive() bool {
	return u.alive.Load()
}

func (u *UploadStage) addUpload(req *UploadRequest) {
	u.events <- uploadEventUpload{req: req}
}

func (u *UploadStage) addCommit(commit *commitRequest) {
	u.events <- uploadEventCommit{commit: commit}
}

func (u *UploadStage) finish(cb func()) {
	u.events <- uploadEventFinish{cb: cb}
}

func (u *UploadStage) loop() {
	defer u.alive.Store(false)

	for !u.done {
		switch event := (<-u.events).(type) {
		case uploadEventUpload:
			u.handleUpload(event.req)

		case uploadEventCommit:
			u.handleCommit(event.commit)

		case uploadEventJobDone:
			u.handleJobDone(event)

		case uploadEventFinish:
			u.finishing = true
			u.finishCb = event.cb
			u.maybeFinish()
		}
	}
}

func (u *UploadStage) handleUpload(req *UploadRequest) {
	if u.finishing {
		u.logger.CaptureError(fmt.Errorf(
			"filesync: dropped upload of %q enqueued after finish",
			req.SaveName))
		return
	}

	if req.ArtifactID != "" {
		u.artifactState(req.ArtifactID).pending++
	}

	if _, ok := u.running[req.SaveName]; ok {
		u.blocked[req.SaveName] = append(u.blocked[req.SaveName], req)
		return
	}

	u.startJob(req)
}

func (u *UploadStage) startJob(req *UploadRequest) {
	u.running[req.SaveName] = struct{}{}

	go func() {
		u.semaphore <- struct{}{}
		err := u.runUpload(req)
		<-u.semaphore

		u.events <- uploadEventJobDone{req: req, err: err}
	}()
}

func (u *UploadStage) handleJobDone(event uploadEventJobDone) {
	req := event.req

	delete(u.running, req.SaveName)
	if queue := u.blocked[req.SaveName]; len(queue) > 0 {
		next := queue[0]
		if len(queue) == 1 {
			delete(u.blocked, req.SaveName)
		} else {
			u.blocked[req.SaveName] = queue[1:]
		}
		u.startJob(next)
	}

	if req.ArtifactID != "" {
		state := u.artifactState(req.ArtifactID)
		state.pending--

		if event.err != nil {
			state.failed = true
			state.failedFiles = append(state.failedFiles, req.SaveName)
		}

		u.maybeCommit(req.ArtifactID, state)
	}

	u.maybeFinish()
}

func (u *UploadStage) handleCommit(commit *commitRequest) {
	state := u.artifactState(commit.artifactID)

	if state.commit != nil {
		commit.result <- fmt.Errorf(
			"filesync: duplicate commit request for artifact %q",
			commit.artifactID)
		return
	}
	state.commit = commit

	u.maybeCommit(commit.artifactID, state)
	u.maybeFinish()
}

// maybeCommit fires the commit once every upload for the artifact has
// reported a result.
func (u *UploadStage) maybeCommit(
	artifactID string,
	state *artifactUploadState,
) {
	if state.commit == nil || state.pending > 0 {
		return
	}

	commit := state.commit
	delete(u.artifacts, artifactID)

	if state.failed {
		commit.result <- fmt.Errorf(
			"filesync: artifact %q not committed, failed to upload: %s",
			artifactID,
			strings.Join(state.failedFiles, ", "))
		return
	}

	commit.result <- u.runCommit(artifactID, commit)
}

// runCommit executes the hooks and the commit mutation on the dispatcher
// goroutine, so the commit is observably ordered after every upload.
func (u *UploadStage) runCommit(
	artifactID string,
	commit *commitRequest,
) error {
	if commit.beforeCommit != nil {
		if err := commit.beforeCommit(); err != nil {
			return err
		}
	}

	if commit.finalize {
		_, err := gql.CommitArtifact(u.ctx, u.graphqlClient, artifactID)
		if err != nil {
			return fmt.Errorf(
				"filesync: failed to commit artifact %q: %w",
				artifactID, err)
		}
	}

	if commit.onCommit != nil {
		if err := commit.onCommit(); err != nil {
			return err
		}
	}

	return nil
}

func (u *UploadStage) maybeFinish() {
	if !u.finishing || len(u.running) > 0 || len(u.blocked) > 0 {
		return
	}
	for _, state := range u.artifacts {
		if state.pending > 0 || state.commit != nil {
			return
		}
	}

	u.done = true
	if u.finishCb != nil {
		u.finishCb()
	}
}

func (u *UploadStage) artifactState(artifactID string) *artifactUploadState {
	state, ok := u.artifacts[artifactID]
	if !ok {
		state = &artifactUploadState{}
		u.artifacts[artifactID] = state
	}
	return state
}

// runUpload performs one upload on a worker goroutine.
func (u *UploadStage) runUpload(req *UploadRequest) error {
	err := u.doUpload(req)

	if err != nil {
		u.stats.UpdateFailedFile(req.SaveName)
		u.logger.CaptureError(fmt.Errorf(
			"filesync: failed to upload %q: %v", req.SaveName, err))
	} else {
		if req.ArtifactID != "" {
			u.fileStream.StreamUpdate(&filestream.FilesUploadedUpdate{
				ArtifactID: req.ArtifactID,
				SaveName:   req.SaveName,
			})
		}

		u.writeCache(req)
	}

	if req.Copied {
		if removeErr := os.Remove(req.Path); removeErr != nil {
			u.logger.Warn(
				"filesync: failed to remove staging copy",
				"path", req.Path,
				"error", removeErr)
		}
	}

	return err
}

func (u *UploadStage) doUpload(req *UploadRequest) error {
	switch {
	case req.SaveFn != nil:
		return u.uploadWithSaveFn(req)

	case req.MD5 != "":
		return u.uploadManifest(req)

	default:
		return u.uploadRunFile(req)
	}
}

// uploadWithSaveFn delegates the upload to the request's save function,
// which is expected to prepare the file, perform the PUT and write the
// cache itself.
func (u *UploadStage) uploadWithSaveFn(req *UploadRequest) error {
	deduped, err := req.SaveFn(func(processed, total int) {
		u.stats.UpdateUploadedFile(req.SaveName, int64(processed))
	})
	if err != nil {
		return err
	}

	if deduped {
		u.stats.SetFileDeduped(req.SaveName)
	} else {
		u.stats.UpdateUploadedFile(req.SaveName, req.Size)
	}

	return nil
}

// uploadManifest registers the manifest file row and uploads its bytes.
//
// The manifest is the one file the server must create before the upload,
// since its digest is only known after every other file is prepared.
func (u *UploadStage) uploadManifest(req *UploadRequest) error {
	response, err := gql.CreateArtifactManifest(
		u.ctx,
		u.graphqlClient,
		req.ArtifactID,
		nil,
		req.SaveName,
		req.MD5,
		u.settings.GetEntity(),
		u.settings.GetProject(),
		u.settings.GetRunID(),
		gql.ArtifactManifestTypeFull,
		true,
	)
	if err != nil {
		return err
	}

	file := response.GetCreateArtifactManifest().ArtifactManifest.File
	if file.UploadUrl == nil {
		u.stats.SetFileDeduped(req.SaveName)
		return nil
	}

	return u.put(req, *file.UploadUrl, file.UploadHeaders)
}

// uploadRunFile uploads a file that belongs to the run rather than to an
// artifact.
func (u *UploadStage) uploadRunFile(req *UploadRequest) error {
	response, err := gql.CreateRunFiles(
		u.ctx,
		u.graphqlClient,
		u.settings.GetEntity(),
		u.settings.GetProject(),
		u.settings.GetRunID(),
		[]string{req.SaveName},
	)
	if err != nil {
		return err
	}

	payload := response.GetCreateRunFiles()
	if len(payload.Files) != 1 {
		return fmt.Errorf(
			"filesync: expected 1 file in createRunFiles response, got %d",
			len(payload.Files))
	}

	if payload.Files[0].UploadUrl == nil {
		u.stats.SetFileDeduped(req.SaveName)
		return nil
	}

	return u.put(req, *payload.Files[0].UploadUrl, payload.UploadHeaders)
}

func (u *UploadStage) put(req *UploadRequest, url string, headers []string) error {
	kind := filetransfer.RunFileKindOther
	if req.IsArtifactFile {
		kind = filetransfer.RunFileKindArtifact
	}

	return u.fileTransfer.Upload(&filetransfer.DefaultUploadTask{
		FileKind: kind,
		Path:     req.Path,
		Name:     req.SaveName,
		Url:      url,
		Headers:  headers,
		Context:  u.ctx,
		ProgressCallback: func(processed, total int) {
			u.stats.UpdateUploadedFile(req.SaveName, int64(processed))
		},
	})
}

// writeCache copies uploaded bytes into the local content-addressed
// cache. Failures are logged and swallowed, the cache is an optimization.
func (u *UploadStage) writeCache(req *UploadRequest) {
	if u.fileCache == nil || req.SaveFn != nil || req.Digest == "" {
		return
	}

	if err := u.fileCache.AddFileAndCheckDigest(req.Path, req.Digest); err != nil {
		u.logger.Warn(
			"filesync: failed to cache uploaded file",
			"path", req.Path,
			"error", err)
	}
}
