package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrUpstream = errors.New("upstream request failed")
)

// RecordSource yields the full ordered record collection of one directory
// file. Every call reads fresh; implementations keep no cache.
type RecordSource interface {
	Load(ctx context.Context) ([]Record, error)
}

// LeadSink receives validated handoff leads for the human sales team.
type LeadSink interface {
	Publish(ctx context.Context, l Lead) error
}

// SalesClient is the car-sales inventory API. Payloads are passed through
// to the agent as decoded JSON.
type SalesClient interface {
	Models(ctx context.Context) (any, error)
	ZeroKmCars(ctx context.Context) (any, error)
	FirstHandCar(ctx context.Context, importerModel string) (any, error)
	ZeroKmCar(ctx context.Context, carID string) (any, error)
}
