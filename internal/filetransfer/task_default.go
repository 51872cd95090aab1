package filetransfer

import (
	"context"
	"fmt"
	"net/http"
)

// DefaultUploadTask is a PUT of a byte range of a local file to a URL.
type DefaultUploadTask struct {
	// FileKind is the category of file being uploaded.
	FileKind RunFileKind

	// Path is the local path to the file.
	Path string

	// Name is the name of the file.
	Name string

	// Url is the endpoint to upload to.
	Url string

	// Headers to send on the upload, as "Name:Value" strings.
	Headers []string

	// Size is the number of bytes to upload.
	//
	// If this is zero, then all bytes starting at `Offset` are uploaded;
	// if non-zero, then that many bytes starting from `Offset` are uploaded.
	Size int64

	// Offset is the beginning of the file segment to upload.
	Offset int64

	// Response is the http.Response from a successful upload request.
	//
	// This is nil for failed requests, or requests that have not completed.
	Response *http.Response

	// ProgressCallback is a callback to execute on progress updates.
	ProgressCallback func(int, int)

	// This can be used to cancel the upload if it is no longer needed.
	Context context.Context
}

func (t *DefaultUploadTask) String() string {
	return fmt.Sprintf(
		"DefaultUploadTask{FileKind: %d, Path: %s, Name: %s, Url: %s, Size: %d}",
		t.FileKind, t.Path, t.Name, t.Url, t.Size,
	)
}
