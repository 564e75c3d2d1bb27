package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by services and the HTTP surface. Handlers map these
// to status codes with errors.Is; anything unrecognized becomes a 500.
var (
	// ErrPlayerNotFound means the resolve step produced zero candidates.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrInvalidLeague means the league tag is not in the recognized set.
	ErrInvalidLeague = errors.New("invalid league")

	// ErrDuplicatePlayer means a roster already holds that player id.
	ErrDuplicatePlayer = errors.New("player already added")

	// ErrPredictionFailed covers any transport or provider error on the
	// prediction path. No partial model output is ever returned with it.
	ErrPredictionFailed = errors.New("prediction failed")

	// ErrEstimationFailed means the estimation model replied with something
	// that is not the required strict-JSON stats object.
	ErrEstimationFailed = errors.New("stat estimation failed")
)

// UpstreamError is any non-success response or transport failure from a
// third-party provider. Cause is not distinguished (timeout vs 4xx vs 5xx);
// detail stays server-side.
type UpstreamError struct {
	Provider string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s: status %d", e.Provider, e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
