// Package filestreamtest provides a fake FileStream for tests.
package filestreamtest

import (
	"slices"
	"sync"

	"github.com/wandb/wandb/filesync/internal/filestream"
	"github.com/wandb/wandb/filesync/internal/observability"
)

// A fake implementation of FileStream.
type FakeFileStream struct {
	sync.Mutex
	updates []filestream.Update
}

func NewFakeFileStream() *FakeFileStream {
	return &FakeFileStream{
		updates: make([]filestream.Update, 0),
	}
}

// GetUpdates returns all updates passed to `StreamUpdate`.
func (fs *FakeFileStream) GetUpdates() []filestream.Update {
	fs.Lock()
	defer fs.Unlock()
	return slices.Clone(fs.updates)
}

// GetRequest returns a request accumulated from applying all updates.
func (fs *FakeFileStream) GetRequest() *filestream.FileStreamRequest {
	fullRequest := &filestream.FileStreamRequest{}

	for _, update := range fs.GetUpdates() {
		_ = update.Apply(filestream.UpdateContext{
			MakeRequest: func(request *filestream.FileStreamRequest) {
				fullRequest.Merge(request)
			},

			Logger: observability.NewNoOpLogger(),
		})
	}

	return fullRequest
}

// Prove that we implement the interface.
var _ filestream.FileStream = &FakeFileStream{}

func (fs *FakeFileStream) Start(entity, project, runID string) {}

func (fs *FakeFileStream) Finish() {}

func (fs *FakeFileStream) StreamUpdate(update filestream.Update) {
	fs.Lock()
	defer fs.Unlock()

	fs.updates = append(fs.updates, update)
}
