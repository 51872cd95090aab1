package observability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/wandb/wandb/filesync/internal/sentry_ext"
)

type Tags map[string]string

// NewTags creates a new Tags from a mix of slog.Attr and a string and its
// corresponding value. It ignores incomplete pairs and other types.
func NewTags(args ...any) Tags {
	var done bool
	tags := Tags{}
	// add tags from args:
	for len(args) > 0 && !done {
		switch x := args[0].(type) {
		case slog.Attr:
			tags[x.Key] = x.Value.String()
			args = args[1:]
		case string:
			if len(args) < 2 {
				done = true
				break
			}
			attr := slog.Any(x, args[1])
			tags[attr.Key] = attr.Value.String()
			args = args[2:]
		default:
			args = args[1:]
		}
	}
	return tags
}

const LevelFatal = slog.Level(12)

type CoreLoggerParams struct {
	Sentry *sentry_ext.Client
	Tags   Tags

	// CaptureRateLimiter, if set, drops repeated Sentry captures.
	//
	// The upload pipeline can fail the same way for hundreds of files at
	// once; the limiter keeps that from flooding Sentry.
	CaptureRateLimiter *CaptureRateLimiter
}

type CoreLogger struct {
	*slog.Logger
	baseTags    Tags
	sentry      *sentry_ext.Client
	rateLimiter *CaptureRateLimiter
}

func NewCoreLogger(logger *slog.Logger, params *CoreLoggerParams) *CoreLogger {
	if params == nil {
		params = &CoreLoggerParams{}
	}

	tags := Tags{}
	var args []any
	for key, value := range params.Tags {
		args = append(args, slog.String(key, value))
		tags[key] = value
	}

	return &CoreLogger{
		Logger:      logger.With(args...),
		sentry:      params.Sentry,
		baseTags:    tags,
		rateLimiter: params.CaptureRateLimiter,
	}
}

// withArgs applies the given args to the logger's base tags.
//
// Merges the given args with the logger's base tags and returns the result.
// logger's base tags take precedence over args.
func (cl *CoreLogger) withArgs(args ...any) Tags {
	tags := NewTags(args...)
	for key, value := range cl.baseTags {
		tags[key] = value
	}
	return tags
}

// With returns a derived logger that includes the given tags in each message.
func (cl *CoreLogger) With(args ...any) *CoreLogger {
	return &CoreLogger{
		Logger:      cl.Logger.With(args...),
		baseTags:    cl.baseTags,
		sentry:      cl.sentry,
		rateLimiter: cl.rateLimiter,
	}
}

// CaptureError logs an error and sends it to Sentry.
func (cl *CoreLogger) CaptureError(err error, args ...any) {
	cl.Error(err.Error(), args...)

	if cl.sentry != nil && cl.rateLimiter.AllowCapture(err.Error()) {
		cl.sentry.CaptureException(err, cl.withArgs(args...))
	}
}

// CaptureWarn logs a warning and sends it to Sentry.
func (cl *CoreLogger) CaptureWarn(msg string, args ...any) {
	cl.Warn(msg, args...)

	if cl.sentry != nil && cl.rateLimiter.AllowCapture(msg) {
		cl.sentry.CaptureMessage(msg, cl.withArgs(args...))
	}
}

// CaptureFatal logs a fatal error and sends it to Sentry.
func (cl *CoreLogger) CaptureFatal(err error, args ...any) {
	cl.Log(context.Background(), LevelFatal, err.Error(), args...)

	if cl.sentry != nil {
		cl.sentry.CaptureException(err, cl.withArgs(args...))
	}
}

// CaptureFatalAndPanic logs a fatal error, sends it to Sentry and panics.
func (cl *CoreLogger) CaptureFatalAndPanic(err error, args ...any) {
	if err == nil {
		err = errors.New("observability: CaptureFatalAndPanic: panicked with nil error")
	}

	cl.CaptureFatal(err, args...)
	panic(err)
}

// Reraise reports panics to Sentry and re-panics with an error value.
//
// Use in a defer at the top of long-lived goroutines.
func (cl *CoreLogger) Reraise(args ...any) {
	rawErr := recover()
	if rawErr == nil {
		return
	}

	err, ok := rawErr.(error)
	if !ok {
		err = fmt.Errorf("%v", rawErr)
	}

	cl.Error(err.Error(), args...)
	if cl.sentry != nil {
		cl.sentry.CaptureException(err, cl.withArgs(args...))
		cl.sentry.Flush(2 * time.Second)
	}

	panic(err)
}

// GetTags returns the tags associated with the logger.
//
// Used for testing.
func (cl *CoreLogger) GetTags() Tags {
	return cl.baseTags
}

// NewNoOpLogger returns a logger that discards all messages.
//
// Used for testing.
func NewNoOpLogger() *CoreLogger {
	return NewCoreLogger(
		slog.New(slog.NewJSONHandler(io.Discard, nil)),
		nil,
	)
}
