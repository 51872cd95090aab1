package artifacts

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/Khan/genqlient/graphql"
	"github.com/wandb/wandb/filesync/internal/filesync"
	"github.com/wandb/wandb/filesync/internal/filetransfer"
	"github.com/wandb/wandb/filesync/internal/gql"
	"github.com/wandb/wandb/filesync/internal/hashencode"
	"github.com/wandb/wandb/filesync/internal/observability"
	"golang.org/x/sync/errgroup"
)

// WandbStoragePolicy uploads artifact files to wandb-managed object
// storage.
//
// For each file it registers the content with the backend through a
// Preparer batch, PUTs the bytes to the presigned URL the server
// returned (in parts for large files), and inserts the content into the
// local cache.
type WandbStoragePolicy struct {
	logger        *observability.CoreLogger
	graphqlClient graphql.Client
	transfer      filesync.FileTransfer
	cache         Cache
}

func NewWandbStoragePolicy(
	logger *observability.CoreLogger,
	graphqlClient graphql.Client,
	transfer filesync.FileTransfer,
	cache Cache,
) *WandbStoragePolicy {
	return &WandbStoragePolicy{
		logger:        logger,
		graphqlClient: graphqlClient,
		transfer:      transfer,
		cache:         cache,
	}
}

// StoreFile uploads the file behind one manifest entry.
//
// Returns deduped=true without uploading when the server reports it
// already has the content. The returned birth artifact ID identifies
// the artifact that first stored the content, for the final manifest.
func (p *WandbStoragePolicy) StoreFile(
	ctx context.Context,
	artifactID string,
	manifestID string,
	file filesync.ManifestFileSpec,
	preparer *filesync.Preparer,
	progress func(processed, total int),
) (deduped bool, birthArtifactID string, rerr error) {
	parts, err := createMultiPartRequest(ctx, p.logger, file.LocalPath)
	if err != nil {
		return false, "", err
	}

	spec := gql.CreateArtifactFileSpecInput{
		ArtifactID:         artifactID,
		ArtifactManifestID: &manifestID,
		Name:               file.SaveName,
		Md5:                file.Digest,
		UploadPartsInput:   parts,
	}

	prepared, err := preparer.Prepare(spec)
	if err != nil {
		return false, "", err
	}

	if prepared.UploadURL == nil {
		p.addToCache(file)
		return true, prepared.BirthArtifactID, nil
	}

	if prepared.Multipart != nil && len(parts) > 0 {
		err = p.uploadParts(ctx, file, parts, prepared, spec, preparer, progress)
		if err == nil {
			_, err = gql.CompleteMultipartUploadArtifact(
				ctx,
				p.graphqlClient,
				gql.CompleteMultipartActionComplete,
				parts,
				prepared.BirthArtifactID,
				prepared.StoragePath,
				prepared.Multipart.UploadID,
			)
		}
	} else {
		err = p.transfer.Upload(&filetransfer.DefaultUploadTask{
			Context:          ctx,
			FileKind:         filetransfer.RunFileKindArtifact,
			Path:             file.LocalPath,
			Name:             file.SaveName,
			Url:              *prepared.UploadURL,
			Headers:          prepared.UploadHeaders,
			ProgressCallback: progress,
		})
	}
	if err != nil {
		return false, "", err
	}

	p.addToCache(file)
	return false, prepared.BirthArtifactID, nil
}

// StoreManifest PUTs an already serialized manifest file to the URL
// returned by the manifest mutation.
func (p *WandbStoragePolicy) StoreManifest(
	ctx context.Context,
	path string,
	uploadURL *string,
	uploadHeaders []string,
) error {
	if uploadURL == nil {
		return fmt.Errorf("server did not return a manifest upload URL")
	}
	return p.transfer.Upload(&filetransfer.DefaultUploadTask{
		Context:  ctx,
		FileKind: filetransfer.RunFileKindArtifact,
		Path:     path,
		Url:      *uploadURL,
		Headers:  uploadHeaders,
	})
}

// uploadParts PUTs every part of a multipart upload, refreshing expired
// presigned part URLs at most once per part.
func (p *WandbStoragePolicy) uploadParts(
	ctx context.Context,
	file filesync.ManifestFileSpec,
	parts []gql.UploadPartsInput,
	prepared filesync.PreparedFile,
	spec gql.CreateArtifactFileSpecInput,
	preparer *filesync.Preparer,
	progress func(processed, total int),
) error {
	if len(prepared.Multipart.Parts) != len(parts) {
		return fmt.Errorf(
			"expected %d part URLs, got %d",
			len(parts), len(prepared.Multipart.Parts))
	}

	partSize := getPartSize(file.Size)
	urls := newPartURLCache(preparer, spec, prepared.Multipart)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range parts {
		g.Go(func() error {
			return p.uploadOnePart(ctx, file, parts[i], partSize, urls, progress)
		})
	}
	return g.Wait()
}

func (p *WandbStoragePolicy) uploadOnePart(
	ctx context.Context,
	file filesync.ManifestFileSpec,
	part gql.UploadPartsInput,
	partSize int64,
	urls *partURLCache,
	progress func(processed, total int),
) error {
	b64md5, err := hashencode.HexToB64(part.HexMD5)
	if err != nil {
		return err
	}

	offset := (part.PartNumber - 1) * partSize
	size := min(partSize, file.Size-offset)

	provider := filetransfer.NewSharedURLProvider(
		func(ctx context.Context) (string, []string, error) {
			info, err := urls.get(ctx)
			if err != nil {
				return "", nil, err
			}
			for _, partURL := range info.Parts {
				if partURL.PartNumber == part.PartNumber {
					return partURL.URL, nil, nil
				}
			}
			return "", nil, fmt.Errorf("no URL for part %d", part.PartNumber)
		})

	// Presigned part URLs can expire while earlier parts upload. One
	// refetch-and-retry covers that; anything else fails the file.
	var uploadErr error
	for attempt := 0; attempt < 2; attempt++ {
		url, _, err := provider.URL(ctx)
		if err != nil {
			return err
		}

		uploadErr = p.transfer.Upload(&filetransfer.DefaultUploadTask{
			Context:  ctx,
			FileKind: filetransfer.RunFileKindArtifact,
			Path:     file.LocalPath,
			Name:     file.SaveName,
			Url:      url,
			Headers:  []string{"Content-Md5:" + b64md5},
			Offset:   offset,
			Size:     size,
			ProgressCallback: func(processed, _ int) {
				if progress != nil {
					progress(int(offset)+processed, int(file.Size))
				}
			},
		})
		if uploadErr == nil {
			return nil
		}

		provider.Invalidate()
		urls.invalidate()
	}
	return uploadErr
}

func (p *WandbStoragePolicy) addToCache(file filesync.ManifestFileSpec) {
	if p.cache == nil || file.Digest == "" {
		return
	}
	if err := p.cache.AddFileAndCheckDigest(file.LocalPath, file.Digest); err != nil {
		p.logger.Warn(
			"artifacts: failed to cache file",
			"path", file.LocalPath,
			"error", err,
		)
	}
}

// partURLCache refetches the full part URL set at most once no matter
// how many part workers observe an expiry.
type partURLCache struct {
	mu       sync.Mutex
	preparer *filesync.Preparer
	spec     gql.CreateArtifactFileSpecInput

	info  *filesync.MultipartUploadInfo
	stale bool
}

func newPartURLCache(
	preparer *filesync.Preparer,
	spec gql.CreateArtifactFileSpecInput,
	initial *filesync.MultipartUploadInfo,
) *partURLCache {
	return &partURLCache{preparer: preparer, spec: spec, info: initial}
}

func (c *partURLCache) get(
	ctx context.Context,
) (*filesync.MultipartUploadInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.stale {
		return c.info, nil
	}

	prepared, err := c.preparer.Prepare(c.spec)
	if err != nil {
		return nil, err
	}
	if prepared.Multipart == nil {
		return nil, fmt.Errorf("server no longer offers part URLs")
	}

	c.info = prepared.Multipart
	c.stale = false
	return c.info, nil
}

func (c *partURLCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stale = true
}
