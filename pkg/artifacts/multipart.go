package artifacts

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/wandb/wandb/filesync/internal/filetransfer"
	"github.com/wandb/wandb/filesync/internal/gql"
	"github.com/wandb/wandb/filesync/internal/hashencode"
	"github.com/wandb/wandb/filesync/internal/observability"
	"golang.org/x/sync/errgroup"
)

const (
	// S3MinMultiUploadSize is the file size above which uploads switch to
	// the multipart flow.
	S3MinMultiUploadSize = 2 << 30 // 2 GiB

	// S3MaxMultiUploadSize is the maximum possible object size.
	S3MaxMultiUploadSize = 5 << 40 // 5 TiB

	// S3DefaultPartSize is the part size recommended by S3.
	S3DefaultPartSize = 100 * 1024 * 1024

	S3MaxParts = 10000
)

// createMultiPartRequest checks if the file is large enough to use multipart
// upload. If so, it computes the hash of each part, which the server needs to
// generate presigned part URLs. Otherwise it returns nil, which is a valid
// value for the uploadPartsInput field of CreateArtifactFileSpecInput.
func createMultiPartRequest(
	ctx context.Context,
	logger *observability.CoreLogger,
	path string,
) ([]gql.UploadPartsInput, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get file size for path %s: %v", path, err)
	}
	fileSize := fileInfo.Size()

	// Small or empty file. Empty files are valid artifact contents and
	// must not trigger multipart.
	if fileSize < S3MinMultiUploadSize {
		return nil, nil
	}
	if fileSize > S3MaxMultiUploadSize {
		return nil, fmt.Errorf("file size exceeds maximum S3 object size: %v", fileSize)
	}

	return computeMultipartHashes(
		ctx, logger, path, fileSize, getPartSize(fileSize), runtime.NumCPU())
}

func getPartSize(fileSize int64) int64 {
	if fileSize < S3DefaultPartSize*S3MaxParts {
		return S3DefaultPartSize
	}
	// Use a larger part size if we would need more than 10,000 parts.
	partSize := int64(math.Ceil(float64(fileSize) / float64(S3MaxParts)))
	// Round up to the nearest multiple of 4096.
	partSize = int64(math.Ceil(float64(partSize)/4096) * 4096)
	return partSize
}

// computeMultipartHashes splits the parts among workers and waits until all
// of them finish or one fails.
func computeMultipartHashes(
	ctx context.Context,
	logger *observability.CoreLogger,
	path string,
	fileSize int64,
	partSize int64,
	numWorkers int,
) ([]gql.UploadPartsInput, error) {
	if numWorkers < 1 {
		return nil, fmt.Errorf("number of workers is less than 1: %d", numWorkers)
	}
	if partSize < 1 {
		return nil, fmt.Errorf("part size is less than 1: %d", partSize)
	}
	if fileSize < partSize {
		return nil, fmt.Errorf("file size is less than part size: %d < %d", fileSize, partSize)
	}

	numParts := int(fileSize / partSize)
	if fileSize%partSize != 0 {
		numParts++
	}
	workerTasks, err := filetransfer.SplitWorkerTasks(numParts, numWorkers)
	if err != nil {
		return nil, err
	}
	partsInfo := make([]gql.UploadPartsInput, numParts)

	startTime := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for i, task := range workerTasks {
		g.Go(func() error {
			worker := multipartHashWorker{
				id:       i,
				path:     path,
				fileSize: fileSize,
				partSize: partSize,
			}
			return worker.hashFileParts(ctx, task, partsInfo)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	hashTime := time.Since(startTime)
	hashSpeedMBps := float64(fileSize) / (1024 * 1024) / hashTime.Seconds()
	logger.Debug("Computed multipart hashes",
		"hashTimeMs", hashTime.Milliseconds(),
		"hashSpeedMBps", hashSpeedMBps,
		"numWorkers", numWorkers,
		"numParts", len(partsInfo),
		"fileSize", fileSize,
		"partSize", partSize,
	)
	return partsInfo, nil
}

type multipartHashWorker struct {
	id       int
	path     string
	fileSize int64
	partSize int64
}

// hashFileParts hashes a consecutive range of the file's parts in serial.
func (worker *multipartHashWorker) hashFileParts(
	ctx context.Context,
	task filetransfer.WorkerTaskRange,
	partsInfo []gql.UploadPartsInput,
) error {
	// One open file per worker, so each seeks forward within its own
	// handle instead of workers jumping around in a shared one.
	file, err := os.Open(worker.path)
	if err != nil {
		return fmt.Errorf("worker %d failed to open file: %w", worker.id, err)
	}
	defer file.Close()

	for part := task.Start; part < task.End; part++ {
		// Return early if another worker had an error.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		offset := int64(part) * worker.partSize
		partSize := min(worker.partSize, worker.fileSize-offset)
		hexMD5, err := hashencode.ComputeReaderHexMD5(
			io.NewSectionReader(file, offset, partSize))
		if err != nil {
			return fmt.Errorf("worker %d failed to compute hash for part %d: %w",
				worker.id, part, err)
		}

		// Each worker writes a disjoint range of partsInfo indices.
		partsInfo[part] = gql.UploadPartsInput{
			// The server uses 1-indexed part numbers, matching S3 and GCS.
			PartNumber: int64(part + 1),
			HexMD5:     hexMD5,
		}
	}

	return nil
}
