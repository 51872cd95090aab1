package filestream

// FilesUploadedUpdate signals that a file's contents were uploaded.
//
// This is used in some deployments where the backend is not notified when
// files finish uploading.
type FilesUploadedUpdate struct {
	// The ID of the artifact the file belongs to, if any.
	ArtifactID string

	// The file's name within the artifact or run.
	SaveName string
}

func (u *FilesUploadedUpdate) Apply(ctx UpdateContext) error {
	ctx.MakeRequest(&FileStreamRequest{
		UploadedFiles: map[string]struct{}{
			u.SaveName: {},
		},
	})

	return nil
}
