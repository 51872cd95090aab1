package filetransfer

import (
	"context"
	"sync"
	"time"

	"github.com/wandb/wandb/filesync/internal/waiting"
)

// refetchWindow bounds how often invalidation can trigger a new fetch.
const refetchWindow = 5 * time.Second

// URLProvider supplies the destination URL and headers for an upload.
//
// Implementations must be safe for concurrent use: retry policies call
// Invalidate from transfer goroutines.
type URLProvider interface {
	// URL returns the current upload URL and headers.
	URL(ctx context.Context) (string, []string, error)

	// Invalidate marks the current URL as expired.
	//
	// A subsequent URL call fetches a fresh one.
	Invalidate()
}

// SharedURLProvider caches a fetched URL for use by concurrent uploads.
//
// When a transfer hits an auth error, the pre-signed URL has likely expired
// for every concurrent part of the same file. A single Invalidate causes
// exactly one refetch per refetch window, no matter how many callers
// observed the expiry.
type SharedURLProvider struct {
	mu sync.Mutex

	fetch func(ctx context.Context) (string, []string, error)

	url     string
	headers []string
	fetched bool
	stale   bool

	// window is nil until the first invalidation-triggered refetch. While
	// it runs, further invalidations do not cause additional fetches.
	window waiting.Stopwatch
}

func NewSharedURLProvider(
	fetch func(ctx context.Context) (string, []string, error),
) *SharedURLProvider {
	return &SharedURLProvider{fetch: fetch}
}

func (p *SharedURLProvider) URL(ctx context.Context) (string, []string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	refetch := p.stale && (p.window == nil || p.window.IsDone())

	if !p.fetched || refetch {
		url, headers, err := p.fetch(ctx)
		if err != nil {
			return "", nil, err
		}

		p.url = url
		p.headers = headers
		p.fetched = true

		if refetch {
			if p.window == nil {
				p.window = waiting.NewStopwatch(refetchWindow)
			} else {
				p.window.Reset()
			}
		}
	}

	p.stale = false
	return p.url, p.headers, nil
}

func (p *SharedURLProvider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stale = true
}
