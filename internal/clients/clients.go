// Package clients provides helpers shared by the HTTP clients that talk to
// the backend and to object stores.
package clients

import (
	"time"
)

func SecondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

func DurationToSeconds(duration time.Duration) float64 {
	return float64(duration) / float64(time.Second)
}
