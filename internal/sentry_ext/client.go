package sentry_ext

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

type Params struct {
	// DSN is the Data Source Name for the sentry client.
	//
	// If empty, the client is effectively disabled and captures nothing.
	DSN string

	// AttachStacktrace is a flag to attach stacktrace to the sentry event.
	AttachStacktrace bool

	// Release is the version of the application.
	Release string

	// Commit is the git commit hash.
	Commit string

	// Environment is the environment the application is running in.
	Environment string

	// BeforeSend is a callback to modify the event before sending it.
	BeforeSend func(*sentry.Event, *sentry.EventHint) *sentry.Event

	// LRUSize is the size of the recent-error cache.
	LRUSize int
}

type Client struct {
	// Recent is the cache of recent errors sent to sentry to avoid sending
	// the same error multiple times.
	Recent *cache
}

// New initializes the sentry client.
//
// If the DSN is not set, the client is effectively disabled and will not send
// any errors to sentry.
// If we can't create the cache, we will log an error and return nil.
func New(params Params) *Client {
	if params.BeforeSend == nil {
		params.BeforeSend = RemoveLoggerFrames
	}
	if err := sentry.Init(
		sentry.ClientOptions{
			Dsn:              params.DSN,
			AttachStacktrace: params.AttachStacktrace,
			Release:          params.Release,
			Dist:             params.Commit,
			BeforeSend:       params.BeforeSend,
			Environment:      params.Environment,
		}); err != nil {
		slog.Error("sentry_ext: New: failed to initialize sentry", "err", err)
	}

	if params.DSN == "" {
		slog.Debug("sentry_ext: New: sentry is disabled, no DSN provided")
	} else {
		slog.Debug("sentry_ext: New: sentry is enabled", "dsn", params.DSN)
	}

	cache, err := newCache(params.LRUSize)
	if err != nil {
		slog.Error("sentry_ext: New: failed to create cache", "err", err)
		return nil
	}

	return &Client{
		Recent: cache,
	}
}

// CaptureException captures an error and sends it to sentry.
//
// The error is sent as an error level event enriched with the given tags.
// Errors seen recently are skipped.
func (s *Client) CaptureException(err error, tags map[string]string) {
	if !s.Recent.shouldCapture(err.Error()) {
		return
	}

	localHub := sentry.CurrentHub().Clone()
	localHub.ConfigureScope(
		func(scope *sentry.Scope) {
			scope.SetTags(tags)
		},
	)
	localHub.CaptureException(err)
}

// CaptureMessage captures a message and sends it to sentry.
//
// Used for capturing non-error messages. The message is sent as an info
// level event enriched with the given tags.
func (s *Client) CaptureMessage(msg string, tags map[string]string) {
	if !s.Recent.shouldCapture(msg) {
		return
	}

	localHub := sentry.CurrentHub().Clone()
	localHub.ConfigureScope(
		func(scope *sentry.Scope) {
			scope.SetTags(tags)
		},
	)
	localHub.CaptureMessage(msg)
}

// Flush waits for buffered events to be sent, up to the given timeout.
func (s *Client) Flush(timeout time.Duration) bool {
	hub := sentry.CurrentHub()
	return hub.Flush(timeout)
}
