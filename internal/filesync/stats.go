package filesync

import (
	"maps"
	"slices"
	"sync"

	"github.com/wandb/wandb/filesync/internal/filetransfer"
)

// Stats tracks upload progress across the pipeline.
//
// Byte totals and per-kind file counts are delegated to the shared
// FileTransferStats so run-level progress reporting includes pipeline
// uploads. Stats additionally remembers which files the server already
// had and which failed.
type Stats struct {
	mu sync.Mutex

	transfer filetransfer.FileTransferStats

	files   map[string]fileInfo
	deduped map[string]struct{}
	failed  map[string]struct{}
}

type fileInfo struct {
	size int64
	kind filetransfer.RunFileKind
}

func NewStats(transfer filetransfer.FileTransferStats) *Stats {
	return &Stats{
		transfer: transfer,
		files:    make(map[string]fileInfo),
		deduped:  make(map[string]struct{}),
		failed:   make(map[string]struct{}),
	}
}

// InitFile registers a file before its upload begins.
func (s *Stats) InitFile(saveName string, size int64, isArtifactFile bool) {
	kind := filetransfer.RunFileKindOther
	if isArtifactFile {
		kind = filetransfer.RunFileKindArtifact
	}

	s.mu.Lock()
	s.files[saveName] = fileInfo{size: size, kind: kind}
	s.mu.Unlock()

	s.transfer.UpdateUploadStats(filetransfer.FileUploadInfo{
		Path:       saveName,
		FileKind:   kind,
		TotalBytes: size,
	})
}

// UpdateUploadedFile records the absolute number of bytes uploaded so far.
//
// Updates are last-writer-wins: a retried upload that rewinds its reader
// reports from zero again.
func (s *Stats) UpdateUploadedFile(saveName string, uploadedBytes int64) {
	s.mu.Lock()
	info := s.files[saveName]
	s.mu.Unlock()

	s.transfer.UpdateUploadStats(filetransfer.FileUploadInfo{
		Path:          saveName,
		FileKind:      info.kind,
		UploadedBytes: uploadedBytes,
		TotalBytes:    info.size,
	})
}

// UpdateFailedFile marks a file's upload as failed.
func (s *Stats) UpdateFailedFile(saveName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed[saveName] = struct{}{}
}

// SetFileDeduped marks a file as already stored by the server.
//
// A dedup hit counts as fully uploaded.
func (s *Stats) SetFileDeduped(saveName string) {
	s.mu.Lock()
	info := s.files[saveName]
	s.deduped[saveName] = struct{}{}
	s.mu.Unlock()

	s.transfer.UpdateUploadStats(filetransfer.FileUploadInfo{
		Path:          saveName,
		FileKind:      info.kind,
		UploadedBytes: info.size,
		TotalBytes:    info.size,
	})
}

// IsDeduped reports whether the file's content was already on the server.
func (s *Stats) IsDeduped(saveName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.deduped[saveName]
	return ok
}

// NumFailedFiles returns how many files failed to upload.
func (s *Stats) NumFailedFiles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.failed)
}

// FailedFiles returns the save names of failed uploads, sorted.
func (s *Stats) FailedFiles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Sorted(maps.Keys(s.failed))
}

// FilesStats returns overall byte counts for uploads.
func (s *Stats) FilesStats() filetransfer.FilePusherStats {
	return s.transfer.GetFilesStats()
}

// FileCounts returns a breakdown of the kinds of files uploaded.
func (s *Stats) FileCounts() filetransfer.FileCounts {
	return s.transfer.GetFileCounts()
}
