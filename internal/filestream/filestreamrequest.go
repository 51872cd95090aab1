package filestream

import "sort"

// FileStreamRequest is an accumulated update to send to the backend.
type FileStreamRequest struct {
	// UploadedFiles is the set of file names whose uploads completed.
	UploadedFiles map[string]struct{}
}

// Merge folds another request into this one.
func (r *FileStreamRequest) Merge(other *FileStreamRequest) {
	if len(other.UploadedFiles) > 0 && r.UploadedFiles == nil {
		r.UploadedFiles = make(map[string]struct{})
	}
	for name := range other.UploadedFiles {
		r.UploadedFiles[name] = struct{}{}
	}
}

// FileStreamRequestJSON is the wire format of a request.
type FileStreamRequestJSON struct {
	Uploaded []string `json:"uploaded,omitempty"`
}

// ToJSON returns the request's wire representation.
//
// File names are sorted so the output is deterministic.
func (r *FileStreamRequest) ToJSON() *FileStreamRequestJSON {
	uploaded := make([]string, 0, len(r.UploadedFiles))
	for name := range r.UploadedFiles {
		uploaded = append(uploaded, name)
	}
	sort.Strings(uploaded)

	return &FileStreamRequestJSON{Uploaded: uploaded}
}
