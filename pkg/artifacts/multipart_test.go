package artifacts

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wandb/wandb/filesync/internal/hashencode"
	"github.com/wandb/wandb/filesync/internal/observability"
)

func TestCreateMultiPartRequest_SmallFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.bin")
	require.NoError(t, os.WriteFile(path, []byte("tiny"), 0644))

	parts, err := createMultiPartRequest(
		context.Background(), observability.NewNoOpLogger(), path)

	// Small files upload in one request; nil parts is the valid value
	// for the createArtifactFiles spec.
	require.NoError(t, err)
	assert.Nil(t, parts)
}

func TestCreateMultiPartRequest_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	parts, err := createMultiPartRequest(
		context.Background(), observability.NewNoOpLogger(), path)

	require.NoError(t, err)
	assert.Nil(t, parts)
}

func TestCreateMultiPartRequest_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.bin")

	_, err := createMultiPartRequest(
		context.Background(), observability.NewNoOpLogger(), path)

	assert.ErrorContains(t, err, "failed to get file size for path")
}

func TestGetPartSize_DefaultForSmallFiles(t *testing.T) {
	assert.EqualValues(t, S3DefaultPartSize, getPartSize(S3MinMultiUploadSize))
	assert.EqualValues(
		t, S3DefaultPartSize, getPartSize(S3DefaultPartSize*S3MaxParts))
}

func TestGetPartSize_GrowsToStayUnderPartLimit(t *testing.T) {
	fileSizes := []int64{
		S3DefaultPartSize*S3MaxParts + 1,
		2 * S3DefaultPartSize * S3MaxParts,
		S3MaxMultiUploadSize,
	}
	for _, fileSize := range fileSizes {
		partSize := getPartSize(fileSize)
		assert.Greater(t, partSize, int64(S3DefaultPartSize))
		assert.Zero(t, partSize%4096)
		assert.GreaterOrEqual(t, partSize*S3MaxParts, fileSize)
	}
}

func TestComputeMultipartHashes(t *testing.T) {
	partSize := int64(2 * 1024 * 1024)
	fileSize := 10*partSize + partSize/2 // 11 parts, last one short
	content := bytes.Repeat([]byte("0123456789abcdef"), int(fileSize)/16)
	path := filepath.Join(t.TempDir(), "large.bin")
	require.NoError(t, os.WriteFile(path, content, 0644))

	parts, err := computeMultipartHashes(
		context.Background(), observability.NewNoOpLogger(),
		path, fileSize, partSize, 4)

	require.NoError(t, err)
	require.Len(t, parts, 11)
	for i, part := range parts {
		// Part numbers are 1-indexed, matching S3 and GCS.
		assert.EqualValues(t, i+1, part.PartNumber)
		assert.Len(t, part.HexMD5, 32)
	}
	assert.Equal(
		t,
		hashencode.ComputeHexMD5(content[:partSize]),
		parts[0].HexMD5,
	)
	assert.Equal(
		t,
		hashencode.ComputeHexMD5(content[10*partSize:]),
		parts[10].HexMD5,
	)
}

func TestComputeMultipartHashes_SingleWorker(t *testing.T) {
	content := bytes.Repeat([]byte("abcd"), 1024)
	path := filepath.Join(t.TempDir(), "file.bin")
	require.NoError(t, os.WriteFile(path, content, 0644))

	parts, err := computeMultipartHashes(
		context.Background(), observability.NewNoOpLogger(),
		path, int64(len(content)), 1024, 1)

	require.NoError(t, err)
	require.Len(t, parts, 4)
	assert.Equal(
		t, hashencode.ComputeHexMD5(content[:1024]), parts[0].HexMD5)
}

func TestComputeMultipartHashes_Validation(t *testing.T) {
	ctx := context.Background()
	logger := observability.NewNoOpLogger()

	_, err := computeMultipartHashes(ctx, logger, "p", 100, 10, 0)
	assert.ErrorContains(t, err, "number of workers is less than 1")

	_, err = computeMultipartHashes(ctx, logger, "p", 100, 0, 4)
	assert.ErrorContains(t, err, "part size is less than 1")

	_, err = computeMultipartHashes(ctx, logger, "p", 5, 10, 4)
	assert.ErrorContains(t, err, "file size is less than part size")
}

func TestComputeMultipartHashes_UnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.bin")

	_, err := computeMultipartHashes(
		context.Background(), observability.NewNoOpLogger(),
		path, 4096, 1024, 2)

	assert.ErrorContains(t, err, "failed to open file")
}
