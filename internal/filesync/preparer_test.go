package filesync_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wandb/wandb/filesync/internal/filesync"
	"github.com/wandb/wandb/filesync/internal/gql"
	"github.com/wandb/wandb/filesync/internal/gqlmock"
	"github.com/wandb/wandb/filesync/internal/observability"
)

// createFilesResponse builds a createArtifactFiles response with one node
// per (name, uploadURL) pair. An empty URL produces a null uploadUrl.
func createFilesResponse(files ...[2]string) string {
	nodes := make([]string, 0, len(files))
	for _, file := range files {
		url := "null"
		if file[1] != "" {
			url = fmt.Sprintf("%q", file[1])
		}
		nodes = append(nodes, fmt.Sprintf(`{
			"node": {
				"id": "file-%s",
				"name": %q,
				"displayName": %q,
				"uploadUrl": %s,
				"uploadHeaders": [],
				"storagePath": "wandb_artifacts/%s",
				"artifact": {"id": "birth-id"}
			}
		}`, file[0], file[0], file[0], url, file[0]))
	}

	return fmt.Sprintf(
		`{"createArtifactFiles": {"files": {"edges": [%s]}}}`,
		strings.Join(nodes, ","))
}

func TestPreparer_RoutesResponsesInOrder(t *testing.T) {
	mockGQL := gqlmock.NewMockClient()
	mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CreateArtifactFiles"),
		createFilesResponse(
			[2]string{"a.txt", "https://storage/a"},
			[2]string{"b.txt", ""},
		))
	preparer := filesync.NewPreparer(filesync.PreparerParams{
		Logger:        observability.NewNoOpLogger(),
		GraphqlClient: mockGQL,
	})

	// Enqueue before starting so both land in one batch.
	futureA := preparer.PrepareAsync(
		gql.CreateArtifactFileSpecInput{ArtifactID: "A1", Name: "a.txt"})
	futureB := preparer.PrepareAsync(
		gql.CreateArtifactFileSpecInput{ArtifactID: "A1", Name: "b.txt"})
	preparer.Start()
	defer preparer.Shutdown()

	responseA := <-futureA
	responseB := <-futureB

	require.NoError(t, responseA.Err)
	require.NoError(t, responseB.Err)
	assert.Equal(t, "a.txt", responseA.File.Name)
	require.NotNil(t, responseA.File.UploadURL)
	assert.Equal(t, "https://storage/a", *responseA.File.UploadURL)
	assert.Equal(t, "wandb_artifacts/a.txt", responseA.File.StoragePath)
	assert.Equal(t, "birth-id", responseA.File.BirthArtifactID)
	assert.Nil(t, responseB.File.UploadURL)
	assert.True(t, mockGQL.AllStubsUsed())
}

func TestPreparer_SplitsAtMaxBatchSize(t *testing.T) {
	mockGQL := gqlmock.NewMockClient()
	mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CreateArtifactFiles"),
		createFilesResponse(
			[2]string{"f0", "u"},
			[2]string{"f1", "u"},
			[2]string{"f2", "u"},
		))
	mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CreateArtifactFiles"),
		createFilesResponse(
			[2]string{"f3", "u"},
			[2]string{"f4", "u"},
		))
	preparer := filesync.NewPreparer(filesync.PreparerParams{
		Logger:         observability.NewNoOpLogger(),
		GraphqlClient:  mockGQL,
		BatchTime:      time.Second,
		InterEventTime: 20 * time.Millisecond,
		MaxBatchSize:   3,
	})

	futures := make([]<-chan filesync.PrepareResponse, 5)
	for i := range futures {
		futures[i] = preparer.PrepareAsync(gql.CreateArtifactFileSpecInput{
			Name: fmt.Sprintf("f%d", i),
		})
	}
	preparer.Start()
	defer preparer.Shutdown()

	// A row-count mismatch would fail every future in the batch, so
	// clean results prove the 3 + 2 split.
	for i, future := range futures {
		response := <-future
		require.NoError(t, response.Err)
		assert.Equal(t, fmt.Sprintf("f%d", i), response.File.Name)
	}
	assert.Len(t, mockGQL.AllRequests(), 2)
}

func TestPreparer_FlushTiming(t *testing.T) {
	mockGQL := gqlmock.NewMockClient()
	mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CreateArtifactFiles"),
		createFilesResponse(
			[2]string{"f0", "u"},
			[2]string{"f1", "u"},
			[2]string{"f2", "u"},
			[2]string{"f3", "u"},
		))
	mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CreateArtifactFiles"),
		createFilesResponse([2]string{"f4", "u"}))
	preparer := filesync.NewPreparer(filesync.PreparerParams{
		Logger:         observability.NewNoOpLogger(),
		GraphqlClient:  mockGQL,
		BatchTime:      200 * time.Millisecond,
		InterEventTime: 50 * time.Millisecond,
		MaxBatchSize:   100,
	})
	preparer.Start()
	defer preparer.Shutdown()

	start := time.Now()
	futures := make([]<-chan filesync.PrepareResponse, 5)
	for i, at := range []time.Duration{
		0,
		30 * time.Millisecond,
		60 * time.Millisecond,
		90 * time.Millisecond,
		400 * time.Millisecond,
	} {
		time.Sleep(at - time.Since(start))
		futures[i] = preparer.PrepareAsync(gql.CreateArtifactFileSpecInput{
			Name: fmt.Sprintf("f%d", i),
		})
	}

	// The first four requests arrive within the inter-event gap of each
	// other and flush together once the gap after f3 expires; a clean
	// result for each proves they shared one batch of four.
	for i := 0; i < 4; i++ {
		response := <-futures[i]
		require.NoError(t, response.Err)
	}
	firstFlush := time.Since(start)

	response := <-futures[4]
	require.NoError(t, response.Err)
	assert.Equal(t, "f4", response.File.Name)

	// f3 arrived at 90ms, so the batch was due between 140ms and the
	// 200ms batch deadline. Allow slack for scheduling.
	assert.Greater(t, firstFlush, 130*time.Millisecond)
	assert.Less(t, firstFlush, 390*time.Millisecond)
	assert.Len(t, mockGQL.AllRequests(), 2)
}

func TestPreparer_BatchErrorFailsEveryFuture(t *testing.T) {
	mockGQL := gqlmock.NewMockClient()
	mockGQL.StubMatchWithError(
		gqlmock.WithOpName("CreateArtifactFiles"),
		fmt.Errorf("server on fire"))
	preparer := filesync.NewPreparer(filesync.PreparerParams{
		Logger:        observability.NewNoOpLogger(),
		GraphqlClient: mockGQL,
	})

	futureA := preparer.PrepareAsync(
		gql.CreateArtifactFileSpecInput{Name: "a.txt"})
	futureB := preparer.PrepareAsync(
		gql.CreateArtifactFileSpecInput{Name: "b.txt"})
	preparer.Start()
	defer preparer.Shutdown()

	responseA := <-futureA
	responseB := <-futureB

	assert.ErrorContains(t, responseA.Err, "server on fire")
	assert.Equal(t, responseA.Err, responseB.Err)
}

func TestPreparer_RowCountMismatchFailsBatch(t *testing.T) {
	mockGQL := gqlmock.NewMockClient()
	mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CreateArtifactFiles"),
		createFilesResponse([2]string{"a.txt", "u"}))
	preparer := filesync.NewPreparer(filesync.PreparerParams{
		Logger:        observability.NewNoOpLogger(),
		GraphqlClient: mockGQL,
	})

	futureA := preparer.PrepareAsync(
		gql.CreateArtifactFileSpecInput{Name: "a.txt"})
	futureB := preparer.PrepareAsync(
		gql.CreateArtifactFileSpecInput{Name: "b.txt"})
	preparer.Start()
	defer preparer.Shutdown()

	responseA := <-futureA
	responseB := <-futureB

	assert.ErrorContains(t, responseA.Err, "expected 2 files")
	assert.ErrorContains(t, responseB.Err, "expected 2 files")
}

func TestPreparer_ShutdownFlushesEnqueuedRequests(t *testing.T) {
	mockGQL := gqlmock.NewMockClient()
	mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CreateArtifactFiles"),
		createFilesResponse([2]string{"a.txt", "u"}))
	preparer := filesync.NewPreparer(filesync.PreparerParams{
		Logger:        observability.NewNoOpLogger(),
		GraphqlClient: mockGQL,
	})

	future := preparer.PrepareAsync(
		gql.CreateArtifactFileSpecInput{Name: "a.txt"})
	preparer.Start()
	preparer.Shutdown()

	response := <-future
	require.NoError(t, response.Err)
	assert.Equal(t, "a.txt", response.File.Name)
}
