package storage

import (
	"context"
	"errors"

	"registrySync/internal/model"
)

// Storage defines a sink for synchronization results.
type Storage interface {
	PutObservations(ctx context.Context, records []model.ObservationRecord) error
	PutRun(ctx context.Context, summary model.RunSummary) error
}

// Multi fans every call out to all sinks and joins their errors.
type Multi []Storage

// PutObservations writes the batch to every sink.
func (m Multi) PutObservations(ctx context.Context, records []model.ObservationRecord) error {
	var errs []error
	for _, sink := range m {
		if err := sink.PutObservations(ctx, records); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PutRun writes the summary to every sink.
func (m Multi) PutRun(ctx context.Context, summary model.RunSummary) error {
	var errs []error
	for _, sink := range m {
		if err := sink.PutRun(ctx, summary); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard accepts and drops everything.
type Discard struct{}

func (Discard) PutObservations(context.Context, []model.ObservationRecord) error { return nil }

func (Discard) PutRun(context.Context, model.RunSummary) error { return nil }
