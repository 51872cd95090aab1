package filesync

// SaveFunc uploads one file end to end, reporting progress through the
// callback. It returns true if the server already had the content and no
// bytes were sent.
type SaveFunc func(progress func(processed, total int)) (deduped bool, err error)

// ManifestFileSaveFunc uploads the file behind one manifest entry.
type ManifestFileSaveFunc func(
	file ManifestFileSpec,
	progress func(processed, total int),
) (deduped bool, err error)

// ManifestFileSpec identifies one artifact file to upload.
type ManifestFileSpec struct {
	// SaveName is the file's logical path within the artifact.
	SaveName string

	// LocalPath is where the file's content is on disk.
	LocalPath string

	// Digest is the base64 MD5 of the file's content.
	Digest string

	// Size is the file's size in bytes.
	Size int64
}

// UploadRequest asks the pipeline to upload one file.
type UploadRequest struct {
	// Path is the local path to upload from.
	//
	// The checksum stage repoints this at the staging copy when Copy
	// is set.
	Path string

	// SaveName is the file's logical name on the server.
	SaveName string

	// ArtifactID ties the upload to an artifact's commit, if set.
	ArtifactID string

	// Copy snapshots the file into the staging directory before upload,
	// freezing it against concurrent writes by the user.
	Copy bool

	// Copied indicates that Path is a staging copy.
	//
	// The upload stage deletes the copy after the upload succeeds or
	// fails.
	Copied bool

	// UsePrepareFlow computes an MD5 so the server can create the file
	// row before the upload. Reserved for the manifest's own upload.
	UsePrepareFlow bool

	// MD5 is filled in by the checksum stage when UsePrepareFlow is set.
	MD5 string

	// SaveFn, when set, performs the entire upload itself.
	SaveFn SaveFunc

	// Digest is the base64 MD5 of the content when known from the
	// builder. Used for the local cache write after a successful upload.
	Digest string

	// Size is the file's size in bytes, filled in by the checksum stage.
	Size int64

	// IsArtifactFile marks files that belong to an artifact manifest.
	IsArtifactFile bool
}

// commitRequest gates an artifact commit on its uploads.
type commitRequest struct {
	artifactID string

	// finalize selects whether the commit mutation is actually issued.
	finalize bool

	// beforeCommit runs after every upload for the artifact succeeded,
	// before the commit mutation.
	beforeCommit func() error

	// onCommit runs after the commit mutation.
	onCommit func() error

	// result receives the commit outcome exactly once. Capacity 1.
	result chan error
}
