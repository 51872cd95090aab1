package filestream

import (
	"github.com/wandb/wandb/filesync/internal/observability"
)

// Update is a modification to the stream's next API request.
type Update interface {
	// Apply processes data and updates the next API request.
	Apply(UpdateContext) error
}

type UpdateContext struct {
	// MakeRequest merges a request into the stream's next API request.
	MakeRequest func(*FileStreamRequest)

	Logger *observability.CoreLogger
}
