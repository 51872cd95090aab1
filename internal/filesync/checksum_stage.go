package filesync

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wandb/wandb/filesync/internal/hashencode"
	"github.com/wandb/wandb/filesync/internal/observability"
	"github.com/wandb/wandb/filesync/internal/randomid"
)

// stagingIDLength is the length of the random prefix on staging copies.
const stagingIDLength = 11

type checksumEvent interface{ checksumEvent() }

type checksumUpload struct{ req *UploadRequest }

type checksumStoreManifestFiles struct {
	files      []ManifestFileSpec
	artifactID string
	saveFn     ManifestFileSaveFunc
}

type checksumCommit struct{ commit *commitRequest }

type checksumFinish struct{ cb func() }

func (checksumUpload) checksumEvent()             {}
func (checksumStoreManifestFiles) checksumEvent() {}
func (checksumCommit) checksumEvent()             {}
func (checksumFinish) checksumEvent()             {}

// ChecksumStage turns raw upload intents into requests carrying stable,
// uploadable bytes.
//
// Files are optionally snapshotted into the staging directory so later
// writes by the user cannot corrupt the upload, and digests are computed
// for files that use the create-before-upload flow. Commit and finish
// events pass through unchanged, which keeps them ordered after the
// uploads that precede them.
type ChecksumStage struct {
	input chan checksumEvent

	out        *UploadStage
	stats      *Stats
	logger     *observability.CoreLogger
	stagingDir string
}

func NewChecksumStage(
	out *UploadStage,
	stats *Stats,
	logger *observability.CoreLogger,
	stagingDir string,
) *ChecksumStage {
	return &ChecksumStage{
		input:      make(chan checksumEvent, BufferSize),
		out:        out,
		stats:      stats,
		logger:     logger,
		stagingDir: stagingDir,
	}
}

// Start launches the stage's goroutine.
func (c *ChecksumStage) Start() {
	go c.loop()
}

// AddUpload enqueues one file upload.
func (c *ChecksumStage) AddUpload(req *UploadRequest) {
	c.input <- checksumUpload{req: req}
}

// AddStoreManifestFiles enqueues one upload per manifest entry with a
// local path, each bound to the given save function.
func (c *ChecksumStage) AddStoreManifestFiles(
	files []ManifestFileSpec,
	artifactID string,
	saveFn ManifestFileSaveFunc,
) {
	c.input <- checksumStoreManifestFiles{
		files:      files,
		artifactID: artifactID,
		saveFn:     saveFn,
	}
}

func (c *ChecksumStage) addCommit(commit *commitRequest) {
	c.input <- checksumCommit{commit: commit}
}

func (c *ChecksumStage) finish(cb func()) {
	c.input <- checksumFinish{cb: cb}
}

func (c *ChecksumStage) loop() {
	for event := range c.input {
		switch event := event.(type) {
		case checksumUpload:
			c.processUpload(event.req)

		case checksumStoreManifestFiles:
			c.processStoreManifestFiles(event)

		case checksumCommit:
			c.out.addCommit(event.commit)

		case checksumFinish:
			c.out.finish(event.cb)
			return
		}
	}
}

func (c *ChecksumStage) processUpload(req *UploadRequest) {
	// The file may have been deleted between enqueue and now, in which
	// case there is nothing to upload.
	if _, err := os.Stat(req.Path); errors.Is(err, fs.ErrNotExist) {
		c.logger.Debug(
			"filesync: skipping upload of deleted file",
			"path", req.Path)
		return
	}

	if req.Copy {
		staged, err := c.stageFile(req.Path, req.SaveName)
		if err != nil {
			c.dropFailed(req, err)
			return
		}
		req.Path = staged
		req.Copied = true
	}

	if req.UsePrepareFlow {
		md5, err := hashencode.ComputeFileB64MD5(req.Path)
		if err != nil {
			c.dropFailed(req, err)
			return
		}
		req.MD5 = md5
	}

	info, err := os.Stat(req.Path)
	if err != nil {
		c.dropFailed(req, err)
		return
	}
	req.Size = info.Size()

	c.stats.InitFile(req.SaveName, req.Size, req.IsArtifactFile)
	c.out.addUpload(req)
}

func (c *ChecksumStage) processStoreManifestFiles(
	event checksumStoreManifestFiles,
) {
	for _, file := range event.files {
		if file.LocalPath == "" {
			continue
		}

		saveFn := event.saveFn
		c.processUpload(&UploadRequest{
			Path:           file.LocalPath,
			SaveName:       file.SaveName,
			ArtifactID:     event.artifactID,
			Digest:         file.Digest,
			IsArtifactFile: true,
			SaveFn: func(progress func(processed, total int)) (bool, error) {
				return saveFn(file, progress)
			},
		})
	}
}

// dropFailed records the failure and does not forward the request, so
// the artifact never commits.
func (c *ChecksumStage) dropFailed(req *UploadRequest, err error) {
	c.stats.UpdateFailedFile(req.SaveName)
	c.logger.CaptureError(
		fmt.Errorf("filesync: failed to process %q: %v", req.SaveName, err))

	if req.Copied {
		_ = os.Remove(req.Path)
	}
}

// stageFile copies the file into the staging directory under a unique
// name derived from the save name.
func (c *ChecksumStage) stageFile(path, saveName string) (string, error) {
	staged := filepath.Join(
		c.stagingDir,
		randomid.GenerateUniqueID(stagingIDLength)+"-"+saveName,
	)

	if err := os.MkdirAll(filepath.Dir(staged), 0755); err != nil {
		return "", err
	}
	if err := copyFile(path, staged); err != nil {
		return "", err
	}

	return staged, nil
}

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	target, err := os.Create(dst)
	if err != nil {
		return err
	}

	// io.Copy between *os.File values uses copy_file_range or sendfile
	// where available and falls back to a byte-wise copy on its own.
	if _, err := io.Copy(target, source); err != nil {
		_ = target.Close()
		return err
	}

	return target.Close()
}
