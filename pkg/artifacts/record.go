package artifacts

// ArtifactRecord describes one artifact version to save.
//
// It is the input to ArtifactSaver and carries everything the backend
// needs to create the version: identity, collection metadata, and the
// manifest listing the version's files.
type ArtifactRecord struct {
	// Entity, Project and RunID locate the run creating the artifact.
	Entity  string
	Project string
	RunID   string

	// Type is the artifact type name, e.g. "model" or "dataset".
	Type string

	// Name is the artifact collection name.
	Name string

	// ClientID and SequenceClientID are client-generated IDs that let
	// other processes reference this artifact before the server assigns
	// an ID.
	ClientID         string
	SequenceClientID string

	// Description is shown in the artifact's UI page.
	Description string

	// Metadata is arbitrary user data attached to the version. Values
	// may contain NaN or Infinity when they originate from Python.
	Metadata map[string]any

	// TTLDurationSeconds schedules the version for deletion. Zero means
	// no TTL.
	TTLDurationSeconds int64

	// Aliases to apply to the version within its collection.
	Aliases []string

	// Tags to attach to the version.
	Tags []string

	// DistributedID groups partial writes from multiple processes into
	// one version. Non-empty means this save uploads a PATCH manifest.
	DistributedID string

	// IncrementalBeta1 marks an incremental artifact, which uploads an
	// INCREMENTAL manifest.
	IncrementalBeta1 bool

	// BaseID is the version this one builds on. Empty means the latest
	// committed version of the sequence.
	BaseID string

	// UserCreated is set for artifacts logged outside of a run.
	UserCreated bool

	// Finalize commits the version once its files are uploaded.
	// Distributed writers leave this unset until the last writer.
	Finalize bool

	// UseAfterCommit marks the artifact as used by the run after the
	// commit succeeds.
	UseAfterCommit bool

	// Manifest lists the version's files.
	Manifest *Manifest
}
