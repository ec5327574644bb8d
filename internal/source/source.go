// Package source loads class and spell documents and derives the raw
// attribute and network counts the scoring layer consumes. Implementations
// are collaborators only; everything downstream of the counts is pure.
package source

import (
	"context"
	"errors"

	"heronomics/internal/domain"
)

// ErrClassNotFound is returned when a named class has no document.
var ErrClassNotFound = errors.New("source: class not found")

// AttributeSource provides per-class attribute counts.
type AttributeSource interface {
	// ClassNames returns every known class name in ascending order.
	ClassNames(ctx context.Context) ([]string, error)

	// ClassCounts returns the raw attribute counts for one class, or
	// ErrClassNotFound.
	ClassCounts(ctx context.Context, name string) (*domain.RawClassCounts, error)
}

// NetworkSource provides per-class graph counts and the global spell count.
type NetworkSource interface {
	// NetworkCounts returns the raw network counts for one class, or
	// (nil, nil) for a class with no graph presence. Missing presence is
	// ordinary, not an error.
	NetworkCounts(ctx context.Context, name string) (*domain.RawNetworkCounts, error)

	// TotalSpellCount returns the number of spells in the dataset.
	TotalSpellCount(ctx context.Context) (int, error)
}
