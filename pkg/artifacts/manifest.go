package artifacts

import (
	"fmt"
	"os"

	"github.com/segmentio/encoding/json"
	"github.com/wandb/wandb/filesync/internal/hashencode"
)

// Manifest is the wire format of an artifact manifest.
//
// The JSON written by WriteToFile is what the backend and every other
// client parses; field names and shapes must not change.
type Manifest struct {
	Version             int32                    `json:"version"`
	StoragePolicy       string                   `json:"storagePolicy"`
	StoragePolicyConfig StoragePolicyConfig      `json:"storagePolicyConfig"`
	Contents            map[string]ManifestEntry `json:"contents"`
}

type StoragePolicyConfig struct {
	StorageLayout string `json:"storageLayout"`
}

// ManifestEntry is one file in an artifact manifest.
type ManifestEntry struct {
	// Digest is the base64 MD5 of the file's content, or the etag for
	// reference entries.
	Digest string `json:"digest"`

	// BirthArtifactID is the artifact that first stored this content.
	BirthArtifactID *string `json:"birthArtifactID,omitempty"`

	// Ref is set for reference entries, which point at an external URI
	// instead of uploaded content.
	Ref *string `json:"ref,omitempty"`

	// Size of the file in bytes.
	Size int64 `json:"size"`

	// Extra is per-entry metadata stored alongside the file.
	Extra map[string]any `json:"extra,omitempty"`

	// LocalPath is where the file's content is on disk. It is never
	// serialized: manifests describe server-side state.
	LocalPath string `json:"-"`

	// SkipCache excludes the file from the local content cache.
	SkipCache bool `json:"-"`
}

const (
	manifestVersion      = 1
	wandbStoragePolicy   = "wandb-storage-policy-v1"
	defaultStorageLayout = "V2"
)

// NewManifest returns an empty manifest with the default storage policy.
func NewManifest() *Manifest {
	return &Manifest{
		Version:       manifestVersion,
		StoragePolicy: wandbStoragePolicy,
		StoragePolicyConfig: StoragePolicyConfig{
			StorageLayout: defaultStorageLayout,
		},
		Contents: make(map[string]ManifestEntry),
	}
}

// AddFileEntry records a local file to be uploaded as name.
func (m *Manifest) AddFileEntry(name, localPath, digest string, size int64) {
	m.Contents[name] = ManifestEntry{
		Digest:    digest,
		Size:      size,
		LocalPath: localPath,
	}
}

// WriteToFile serializes the manifest to a temporary file.
//
// Returns the file's path, the base64 MD5 of its content, and its size.
// The caller is responsible for removing the file.
func (m *Manifest) WriteToFile() (filename string, digest string, size int64, rerr error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to marshal manifest: %w", err)
	}

	f, err := os.CreateTemp("", "wandb_manifest-")
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to create manifest file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := f.Write(data); err != nil {
		_ = os.Remove(f.Name())
		return "", "", 0, fmt.Errorf("failed to write manifest: %w", err)
	}

	return f.Name(), hashencode.ComputeB64MD5(data), int64(len(data)), nil
}
