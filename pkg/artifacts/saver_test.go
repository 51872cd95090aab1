package artifacts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wandb/wandb/filesync/internal/filestreamtest"
	"github.com/wandb/wandb/filesync/internal/filesync"
	"github.com/wandb/wandb/filesync/internal/filetransfer"
	"github.com/wandb/wandb/filesync/internal/gqlmock"
	"github.com/wandb/wandb/filesync/internal/hashencode"
	"github.com/wandb/wandb/filesync/internal/observability"
	"github.com/wandb/wandb/filesync/internal/settings"
	"go.uber.org/mock/gomock"
)

// artifactStore is an object store stand-in that records PUT bodies by
// path and fails requests to paths in failPaths.
type artifactStore struct {
	*httptest.Server

	mu        sync.Mutex
	bodies    map[string]string
	failPaths map[string]bool
}

func newArtifactStore(t *testing.T, failPaths ...string) *artifactStore {
	store := &artifactStore{
		bodies:    make(map[string]string),
		failPaths: make(map[string]bool),
	}
	for _, path := range failPaths {
		store.failPaths[path] = true
	}
	store.Server = httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if store.failPaths[r.URL.Path] {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			body, _ := io.ReadAll(r.Body)
			store.mu.Lock()
			store.bodies[r.URL.Path] = string(body)
			store.mu.Unlock()
		}))
	t.Cleanup(store.Close)
	return store
}

func (s *artifactStore) Body(path string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.bodies[path]
	return body, ok
}

func (s *artifactStore) Manifest(t *testing.T) *Manifest {
	t.Helper()
	body, ok := s.Body("/manifest")
	require.True(t, ok, "no manifest was uploaded")
	var manifest Manifest
	require.NoError(t, json.Unmarshal([]byte(body), &manifest))
	return &manifest
}

type saverEnv struct {
	mockGQL *gqlmock.MockClient
	store   *artifactStore
	pusher  *filesync.FilePusher
	policy  *WandbStoragePolicy
	cache   *FileCache
	logger  *observability.CoreLogger
}

func newSaverEnv(t *testing.T, store *artifactStore) *saverEnv {
	logger := observability.NewNoOpLogger()
	mockGQL := gqlmock.NewMockClient()

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = 0
	transfer := filetransfer.NewDefaultFileTransfer(
		client, logger, filetransfer.NewFileTransferStats())

	cache := NewFileCache(t.TempDir())
	pusher := filesync.NewFilePusher(filesync.FilePusherParams{
		Logger: logger,
		Settings: &settings.Settings{
			Entity:  "test-entity",
			Project: "test-project",
			RunID:   "test-run",
			MaxJobs: 16,
		},
		GraphqlClient: mockGQL,
		FileTransfer:  transfer,
		FileStream:    filestreamtest.NewFakeFileStream(),
		StagingDir:    t.TempDir(),
	})
	t.Cleanup(func() {
		done := make(chan struct{})
		pusher.Finish(func() { close(done) })
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("pusher did not finish")
		}
	})

	return &saverEnv{
		mockGQL: mockGQL,
		store:   store,
		pusher:  pusher,
		policy:  NewWandbStoragePolicy(logger, mockGQL, transfer, cache),
		cache:   cache,
		logger:  logger,
	}
}

func (env *saverEnv) save(record *ArtifactRecord, stagingDir string) (string, error) {
	saver := NewArtifactSaver(
		context.Background(), env.logger, env.mockGQL, env.pusher,
		env.policy, record, 0, stagingDir)
	return saver.Save()
}

func (env *saverEnv) requestOpNames() []string {
	var names []string
	for _, request := range env.mockGQL.AllRequests() {
		names = append(names, request.OpName)
	}
	return names
}

func testArtifactRecord() *ArtifactRecord {
	return &ArtifactRecord{
		Entity:           "test-entity",
		Project:          "test-project",
		RunID:            "test-run",
		Type:             "dataset",
		Name:             "test-artifact",
		ClientID:         "client-id",
		SequenceClientID: "sequence-client-id",
		Finalize:         true,
		Manifest:         NewManifest(),
	}
}

func artifactResponse(state string) string {
	return fmt.Sprintf(`{
		"createArtifact": {
			"artifact": {
				"id": "artifact-id",
				"state": %q,
				"artifactSequence": {"latestArtifact": null}
			}
		}
	}`, state)
}

func manifestResponse(uploadURL string) string {
	urlJSON := "null"
	if uploadURL != "" {
		urlJSON = fmt.Sprintf("%q", uploadURL)
	}
	return fmt.Sprintf(`{
		"createArtifactManifest": {
			"artifactManifest": {
				"id": "manifest-id",
				"file": {"uploadUrl": %s, "uploadHeaders": []}
			}
		}
	}`, urlJSON)
}

func stubManifestRows(env *saverEnv, store *artifactStore) {
	// The manifest row is created twice: once without a digest before
	// the uploads start, and again with the final digest and an upload
	// URL right before the commit.
	env.mockGQL.StubMatchAllOnce(
		manifestResponse(""),
		gqlmock.WithOpName("CreateArtifactManifest"),
		gqlmock.WithVariables(gqlmock.GQLVar("digest", gomock.Eq(""))),
	)
	env.mockGQL.StubMatchAllOnce(
		manifestResponse(store.URL+"/manifest"),
		gqlmock.WithOpName("CreateArtifactManifest"),
		gqlmock.WithVariables(gqlmock.GQLVar("digest", gomock.Not(gomock.Eq("")))),
	)
}

func TestArtifactSaver_HappyPath(t *testing.T) {
	store := newArtifactStore(t)
	env := newSaverEnv(t, store)

	stagingDir := t.TempDir()
	content := "artifact file contents"
	path := filepath.Join(stagingDir, "data.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	digest := hashencode.ComputeB64MD5([]byte(content))

	record := testArtifactRecord()
	record.Manifest.AddFileEntry("data.txt", path, digest, int64(len(content)))

	env.mockGQL.StubMatchAllOnce(
		artifactResponse("PENDING"),
		gqlmock.WithOpName("CreateArtifact"),
		gqlmock.WithVariables(
			gqlmock.GQLVar("input.entityName", gomock.Eq("test-entity")),
			gqlmock.GQLVar(
				"input.digest",
				gomock.Eq(ComputeManifestDigest(record.Manifest))),
		),
	)
	stubManifestRows(env, store)
	env.mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CreateArtifactFiles"),
		singleFileResponse("data.txt", store.URL+"/files/data.txt", ""))
	env.mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CommitArtifact"),
		`{"commitArtifact": {"artifact": {"id": "artifact-id", "digest": "d"}}}`)

	artifactID, err := env.save(record, stagingDir)

	require.NoError(t, err)
	assert.Equal(t, "artifact-id", artifactID)

	body, ok := store.Body("/files/data.txt")
	require.True(t, ok)
	assert.Equal(t, content, body)

	manifest := store.Manifest(t)
	entry := manifest.Contents["data.txt"]
	assert.Equal(t, digest, entry.Digest)
	require.NotNil(t, entry.BirthArtifactID)
	assert.Equal(t, "birth-id", *entry.BirthArtifactID)

	assert.True(t, env.cache.Check(digest, int64(len(content))))
	assert.True(t, env.mockGQL.AllStubsUsed())

	// Staged copies are cleaned up after the save.
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestArtifactSaver_CommittedArtifactShortCircuits(t *testing.T) {
	env := newSaverEnv(t, newArtifactStore(t))
	record := testArtifactRecord()
	record.UseAfterCommit = true

	env.mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CreateArtifact"),
		artifactResponse("COMMITTED"))
	env.mockGQL.StubMatchOnce(
		gqlmock.WithOpName("UseArtifact"),
		`{"useArtifact": {"artifact": {"id": "artifact-id"}}}`)

	artifactID, err := env.save(record, "")

	require.NoError(t, err)
	assert.Equal(t, "artifact-id", artifactID)
	assert.Equal(
		t, []string{"CreateArtifact", "UseArtifact"}, env.requestOpNames())
}

func TestArtifactSaver_UnexpectedStateFails(t *testing.T) {
	env := newSaverEnv(t, newArtifactStore(t))

	env.mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CreateArtifact"),
		artifactResponse("COMMITTING"))

	_, err := env.save(testArtifactRecord(), "")

	assert.ErrorContains(t, err, "unexpected artifact state")
}

func TestArtifactSaver_NoManifestFails(t *testing.T) {
	env := newSaverEnv(t, newArtifactStore(t))
	record := testArtifactRecord()
	record.Manifest = nil

	_, err := env.save(record, "")

	assert.ErrorContains(t, err, "record has no manifest")
}

func TestArtifactSaver_ResolvesClientIDReferences(t *testing.T) {
	store := newArtifactStore(t)
	env := newSaverEnv(t, store)

	ref := "wandb-client-artifact://client-id-1/some/file"
	record := testArtifactRecord()
	record.Manifest.Contents["ref.txt"] = ManifestEntry{
		Digest: "etag123",
		Ref:    &ref,
		Size:   7,
	}

	env.mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CreateArtifact"),
		artifactResponse("PENDING"))
	stubManifestRows(env, store)
	env.mockGQL.StubMatchOnce(
		gqlmock.WithOpName("ClientIDMapping"),
		// base64 of "Artifact:123".
		`{"clientIDMapping": {"serverID": "QXJ0aWZhY3Q6MTIz"}}`)
	env.mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CommitArtifact"),
		`{"commitArtifact": {"artifact": {"id": "artifact-id", "digest": "d"}}}`)

	_, err := env.save(record, "")

	require.NoError(t, err)
	manifest := store.Manifest(t)
	entry := manifest.Contents["ref.txt"]
	require.NotNil(t, entry.Ref)
	assert.Equal(
		t,
		"wandb-artifact://41727469666163743a313233/some/file",
		*entry.Ref,
	)
	assert.True(t, env.mockGQL.AllStubsUsed())
}

func TestArtifactSaver_FailedUploadPreventsCommit(t *testing.T) {
	store := newArtifactStore(t, "/files/bad.bin")
	env := newSaverEnv(t, store)

	path := filepath.Join(t.TempDir(), "bad.bin")
	content := "doomed content"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	record := testArtifactRecord()
	record.Manifest.AddFileEntry(
		"bad.bin", path,
		hashencode.ComputeB64MD5([]byte(content)), int64(len(content)))

	env.mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CreateArtifact"),
		artifactResponse("PENDING"))
	env.mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CreateArtifactManifest"),
		manifestResponse(""))
	env.mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CreateArtifactFiles"),
		singleFileResponse("bad.bin", store.URL+"/files/bad.bin", ""))

	_, err := env.save(record, "")

	assert.ErrorContains(t, err, "bad.bin")
	assert.NotContains(t, env.requestOpNames(), "CommitArtifact")
}

func TestArtifactSaver_DistributedUsesPatchManifest(t *testing.T) {
	store := newArtifactStore(t)
	env := newSaverEnv(t, store)

	record := testArtifactRecord()
	record.DistributedID = "dist-group"
	record.Finalize = false

	env.mockGQL.StubMatchOnce(
		gqlmock.WithOpName("CreateArtifact"),
		artifactResponse("PENDING"))
	env.mockGQL.StubMatchAllOnce(
		manifestResponse(""),
		gqlmock.WithOpName("CreateArtifactManifest"),
		gqlmock.WithVariables(
			gqlmock.GQLVar("name", gomock.Eq("wandb_manifest.patch.json"))),
	)
	// Distributed manifests update the existing row instead of
	// recreating it.
	env.mockGQL.StubMatchOnce(
		gqlmock.WithOpName("UpdateArtifactManifest"),
		fmt.Sprintf(`{
			"updateArtifactManifest": {
				"artifactManifest": {
					"id": "manifest-id",
					"file": {"uploadUrl": %q, "uploadHeaders": []}
				}
			}
		}`, store.URL+"/manifest"))

	artifactID, err := env.save(record, "")

	require.NoError(t, err)
	assert.Equal(t, "artifact-id", artifactID)
	assert.NotContains(t, env.requestOpNames(), "CommitArtifact")
	assert.True(t, env.mockGQL.AllStubsUsed())

	_, uploaded := store.Body("/manifest")
	assert.True(t, uploaded)
}
