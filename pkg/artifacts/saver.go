package artifacts

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/Khan/genqlient/graphql"
	lru "github.com/hashicorp/golang-lru"
	"github.com/wandb/simplejsonext"
	"github.com/wandb/wandb/filesync/internal/filesync"
	"github.com/wandb/wandb/filesync/internal/gql"
	"github.com/wandb/wandb/filesync/internal/hashencode"
	"github.com/wandb/wandb/filesync/internal/observability"
)

// clientIDCacheSize bounds the client-id to server-id mapping cache. A
// run rarely references more than a handful of client-side artifacts.
const clientIDCacheSize = 128

// ArtifactSaver drives the protocol that turns an ArtifactRecord into a
// committed artifact version on the server.
//
// Files travel through the shared upload pipeline; the saver's job is
// the GraphQL bookkeeping around them: creating the artifact and its
// manifest row, resolving client-id references, and uploading the final
// manifest right before the commit.
type ArtifactSaver struct {
	ctx           context.Context
	logger        *observability.CoreLogger
	graphqlClient graphql.Client
	uploader      *filesync.FilePusher
	policy        *WandbStoragePolicy

	artifact    *ArtifactRecord
	historyStep int64
	stagingDir  string

	clientIDs *lru.Cache
}

func NewArtifactSaver(
	ctx context.Context,
	logger *observability.CoreLogger,
	graphqlClient graphql.Client,
	uploader *filesync.FilePusher,
	policy *WandbStoragePolicy,
	artifact *ArtifactRecord,
	historyStep int64,
	stagingDir string,
) ArtifactSaver {
	clientIDs, _ := lru.New(clientIDCacheSize)
	return ArtifactSaver{
		ctx:           ctx,
		logger:        logger,
		graphqlClient: graphqlClient,
		uploader:      uploader,
		policy:        policy,
		artifact:      artifact,
		historyStep:   historyStep,
		stagingDir:    stagingDir,
		clientIDs:     clientIDs,
	}
}

// Save runs the full save protocol and returns the server artifact ID.
func (s *ArtifactSaver) Save() (artifactID string, rerr error) {
	manifest := s.artifact.Manifest
	if manifest == nil {
		return "", errors.New("ArtifactSaver.Save: record has no manifest")
	}

	defer s.deleteStagingFiles(manifest)

	digest := ComputeManifestDigest(manifest)

	artifactAttrs, err := s.createArtifact(digest)
	if err != nil {
		return "", fmt.Errorf("ArtifactSaver.createArtifact: %w", err)
	}
	artifactID = artifactAttrs.Id

	var baseArtifactID *string
	if s.artifact.BaseID != "" {
		baseArtifactID = &s.artifact.BaseID
	} else if artifactAttrs.ArtifactSequence.LatestArtifact != nil {
		baseArtifactID = &artifactAttrs.ArtifactSequence.LatestArtifact.Id
	}

	if artifactAttrs.State == gql.ArtifactStateCommitted {
		if s.artifact.UseAfterCommit {
			if err := s.useArtifact(artifactID); err != nil {
				return "", fmt.Errorf("ArtifactSaver.useArtifact: %w", err)
			}
		}
		return artifactID, nil
	}
	// DELETED is returned by old servers for a deleted artifact being
	// recreated; treat it like PENDING.
	if artifactAttrs.State != gql.ArtifactStatePending &&
		artifactAttrs.State != gql.ArtifactStateDeleted {
		return "", fmt.Errorf(
			"ArtifactSaver.createArtifact: unexpected artifact state %v",
			artifactAttrs.State)
	}

	manifestAttrs, err := s.createManifest(
		artifactID, baseArtifactID, "" /* manifestDigest */, false, /* includeUpload */
	)
	if err != nil {
		return "", fmt.Errorf("ArtifactSaver.createManifest: %w", err)
	}

	preparer := filesync.NewPreparer(filesync.PreparerParams{
		Ctx:           s.ctx,
		Logger:        s.logger,
		GraphqlClient: s.graphqlClient,
	})
	preparer.Start()
	defer preparer.Shutdown()

	// Birth artifact IDs arrive per file as uploads complete; the final
	// manifest needs them, so collect them keyed by save name.
	var birthMu sync.Mutex
	birthIDs := make(map[string]string)

	s.uploader.StoreManifestFiles(
		s.manifestFiles(manifest),
		artifactID,
		func(file filesync.ManifestFileSpec, progress func(int, int)) (bool, error) {
			deduped, birthID, err := s.policy.StoreFile(
				s.ctx, artifactID, manifestAttrs.Id, file, preparer, progress)
			if err == nil && birthID != "" {
				birthMu.Lock()
				birthIDs[file.SaveName] = birthID
				birthMu.Unlock()
			}
			return deduped, err
		})

	beforeCommit := func() error {
		birthMu.Lock()
		for name, birthID := range birthIDs {
			if entry, ok := manifest.Contents[name]; ok {
				entry.BirthArtifactID = &birthID
				manifest.Contents[name] = entry
			}
		}
		birthMu.Unlock()

		return s.finalizeManifest(
			artifactID, baseArtifactID, manifestAttrs.Id, manifest)
	}

	commitResult := s.uploader.CommitArtifact(
		artifactID, s.artifact.Finalize, beforeCommit, nil)
	if err := <-commitResult; err != nil {
		return "", fmt.Errorf("ArtifactSaver.commitArtifact: %w", err)
	}

	if s.artifact.Finalize && s.artifact.UseAfterCommit {
		if err := s.useArtifact(artifactID); err != nil {
			return "", fmt.Errorf("ArtifactSaver.useArtifact: %w", err)
		}
	}

	return artifactID, nil
}

func (s *ArtifactSaver) createArtifact(digest string) (
	attrs gql.CreateArtifactCreateArtifactCreateArtifactPayloadArtifact,
	rerr error,
) {
	aliases := make([]gql.ArtifactAliasInput, 0, len(s.artifact.Aliases))
	for _, alias := range s.artifact.Aliases {
		aliases = append(aliases, gql.ArtifactAliasInput{
			ArtifactCollectionName: s.artifact.Name,
			Alias:                  alias,
		})
	}

	tags := make([]gql.TagInput, 0, len(s.artifact.Tags))
	for _, tag := range s.artifact.Tags {
		tags = append(tags, gql.TagInput{TagName: tag})
	}

	metadata, err := normalizedMetadata(s.artifact.Metadata)
	if err != nil {
		return attrs, err
	}

	var runName *string
	if !s.artifact.UserCreated {
		runName = &s.artifact.RunID
	}

	response, err := gql.CreateArtifact(
		s.ctx,
		s.graphqlClient,
		gql.CreateArtifactInput{
			EntityName:             s.artifact.Entity,
			ProjectName:            s.artifact.Project,
			ArtifactTypeName:       s.artifact.Type,
			ArtifactCollectionName: s.artifact.Name,
			RunName:                runName,
			Digest:                 digest,
			DigestAlgorithm:        "MANIFEST_MD5",
			Description:            nilIfZero(s.artifact.Description),
			Aliases:                aliases,
			Tags:                   tags,
			Metadata:               metadata,
			TtlDurationSeconds:     nilIfZero(s.artifact.TTLDurationSeconds),
			HistoryStep:            nilIfZero(s.historyStep),
			DistributedID:          nilIfZero(s.artifact.DistributedID),
			ClientID:               s.artifact.ClientID,
			SequenceClientID:       s.artifact.SequenceClientID,
		},
	)
	if err != nil {
		return attrs, err
	}
	payload := response.GetCreateArtifact()
	return payload.GetArtifact(), nil
}

func (s *ArtifactSaver) createManifest(
	artifactID string, baseArtifactID *string, manifestDigest string, includeUpload bool,
) (attrs gql.CreateArtifactManifestCreateArtifactManifestCreateArtifactManifestPayloadArtifactManifest, rerr error) {
	manifestType := gql.ArtifactManifestTypeFull
	manifestFilename := "wandb_manifest.json"
	if s.artifact.IncrementalBeta1 {
		manifestType = gql.ArtifactManifestTypeIncremental
		manifestFilename = "wandb_manifest.incremental.json"
	} else if s.artifact.DistributedID != "" {
		manifestType = gql.ArtifactManifestTypePatch
		manifestFilename = "wandb_manifest.patch.json"
	}

	response, err := gql.CreateArtifactManifest(
		s.ctx,
		s.graphqlClient,
		artifactID,
		baseArtifactID,
		manifestFilename,
		manifestDigest,
		s.artifact.Entity,
		s.artifact.Project,
		s.artifact.RunID,
		manifestType,
		includeUpload,
	)
	if err != nil {
		return attrs, err
	}
	return response.GetCreateArtifactManifest().ArtifactManifest, nil
}

func (s *ArtifactSaver) updateManifest(
	artifactManifestID string, manifestDigest string,
) (attrs gql.UpdateArtifactManifestUpdateArtifactManifestUpdateArtifactManifestPayloadArtifactManifest, rerr error) {
	response, err := gql.UpdateArtifactManifest(
		s.ctx,
		s.graphqlClient,
		artifactManifestID,
		&manifestDigest,
		nil,
		true, /* includeUpload */
	)
	if err != nil {
		return attrs, err
	}
	return response.GetUpdateArtifactManifest().ArtifactManifest, nil
}

// upsertManifest records the final manifest digest and returns the URL
// to upload the manifest file to.
//
// Distributed and incremental manifests update the row created earlier;
// a regular manifest is recreated with the digest filled in.
func (s *ArtifactSaver) upsertManifest(
	artifactID string, baseArtifactID *string, artifactManifestID string, manifestDigest string,
) (uploadURL *string, uploadHeaders []string, rerr error) {
	if s.artifact.IncrementalBeta1 || s.artifact.DistributedID != "" {
		updateManifestAttrs, err := s.updateManifest(artifactManifestID, manifestDigest)
		if err != nil {
			return nil, nil, fmt.Errorf("ArtifactSaver.updateManifest: %w", err)
		}
		return updateManifestAttrs.File.UploadUrl, updateManifestAttrs.File.UploadHeaders, nil
	}

	manifestAttrs, err := s.createManifest(
		artifactID, baseArtifactID, manifestDigest, true /* includeUpload */)
	if err != nil {
		return nil, nil, fmt.Errorf("ArtifactSaver.createManifest: %w", err)
	}
	return manifestAttrs.File.UploadUrl, manifestAttrs.File.UploadHeaders, nil
}

// finalizeManifest runs right before the commit mutation, after every
// file upload for the artifact succeeded.
func (s *ArtifactSaver) finalizeManifest(
	artifactID string,
	baseArtifactID *string,
	manifestID string,
	manifest *Manifest,
) error {
	if err := s.resolveClientIDReferences(manifest); err != nil {
		return fmt.Errorf("ArtifactSaver.resolveClientIDReferences: %w", err)
	}

	manifestFile, manifestDigest, _, err := manifest.WriteToFile()
	if err != nil {
		return fmt.Errorf("ArtifactSaver.writeManifest: %w", err)
	}
	defer os.Remove(manifestFile)

	uploadURL, uploadHeaders, err := s.upsertManifest(
		artifactID, baseArtifactID, manifestID, manifestDigest)
	if err != nil {
		return err
	}

	if err := s.policy.StoreManifest(
		s.ctx, manifestFile, uploadURL, uploadHeaders,
	); err != nil {
		return fmt.Errorf("ArtifactSaver.uploadManifest: %w", err)
	}
	return nil
}

// resolveClientIDReferences rewrites wandb-client-artifact:// references
// to server-side wandb-artifact:// URIs.
//
// Client IDs are minted by writers that haven't talked to the server
// yet; by commit time the server knows the mapping.
func (s *ArtifactSaver) resolveClientIDReferences(manifest *Manifest) error {
	for name, entry := range manifest.Contents {
		if entry.Ref == nil || !strings.HasPrefix(*entry.Ref, "wandb-client-artifact:") {
			continue
		}

		refParsed, err := url.Parse(*entry.Ref)
		if err != nil {
			return err
		}
		clientID, path := refParsed.Host, strings.TrimPrefix(refParsed.Path, "/")

		var serverID string
		if cached, ok := s.clientIDs.Get(clientID); ok {
			serverID = cached.(string)
		} else {
			response, err := gql.ClientIDMapping(s.ctx, s.graphqlClient, clientID)
			if err != nil {
				return err
			}
			if response.ClientIDMapping == nil {
				return fmt.Errorf("could not resolve client id %v", clientID)
			}
			serverID = response.ClientIDMapping.ServerID
			s.clientIDs.Add(clientID, serverID)
		}

		serverIDHex, err := hashencode.B64ToHex(serverID)
		if err != nil {
			return err
		}

		resolvedRef := "wandb-artifact://" + serverIDHex + "/" + path
		entry.Ref = &resolvedRef
		manifest.Contents[name] = entry
	}
	return nil
}

func (s *ArtifactSaver) useArtifact(artifactID string) error {
	_, err := gql.UseArtifact(
		s.ctx,
		s.graphqlClient,
		s.artifact.Entity,
		s.artifact.Project,
		s.artifact.RunID,
		artifactID,
	)
	return err
}

// manifestFiles lists the manifest entries that have local content to
// upload.
func (s *ArtifactSaver) manifestFiles(manifest *Manifest) []filesync.ManifestFileSpec {
	var files []filesync.ManifestFileSpec
	for name, entry := range manifest.Contents {
		if entry.LocalPath == "" {
			continue
		}
		files = append(files, filesync.ManifestFileSpec{
			SaveName:  name,
			LocalPath: entry.LocalPath,
			Digest:    entry.Digest,
			Size:      entry.Size,
		})
	}
	return files
}

// deleteStagingFiles removes staged copies the client made for this
// artifact. Errors are intentionally ignored; staging directories are
// temporary.
func (s *ArtifactSaver) deleteStagingFiles(manifest *Manifest) {
	if s.stagingDir == "" {
		return
	}
	for _, entry := range manifest.Contents {
		if entry.LocalPath != "" && strings.HasPrefix(entry.LocalPath, s.stagingDir) {
			_ = os.Chmod(entry.LocalPath, 0600)
			_ = os.Remove(entry.LocalPath)
		}
	}
}

// normalizedMetadata serializes user metadata, tolerating NaN and
// Infinity values that arrive from Python-born records.
func normalizedMetadata(metadata map[string]any) (*string, error) {
	if len(metadata) == 0 {
		return nil, nil
	}
	serialized, err := simplejsonext.MarshalToString(metadata)
	if err != nil {
		return nil, err
	}
	return &serialized, nil
}

func nilIfZero[T comparable](value T) *T {
	var zero T
	if value == zero {
		return nil
	}
	return &value
}
