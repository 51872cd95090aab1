package filetransfer

// RunFileKind is the category of a file saved with a run.
type RunFileKind int64

const (
	RunFileKindOther = RunFileKind(iota)

	// An internal run bookkeeping file.
	RunFileKindWandb

	// An artifact file.
	RunFileKindArtifact

	// A media file.
	RunFileKindMedia
)
