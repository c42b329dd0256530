// Package geoloc abstracts the one-shot "current position" query. The CLI
// has no platform positioning hardware, so the default source reads a
// configured home coordinate; the interface keeps the session logic
// independent of where the fix comes from.
package geoloc

import (
	"context"
	"errors"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

// ErrUnavailable is returned when no position fix can be produced. It is
// surfaced to the user as a notice, never treated as fatal, and does not
// disturb a previously known location.
var ErrUnavailable = errors.New("current position unavailable")

// Source yields the current position once per call. No retries; failure
// reporting is the caller's concern.
type Source interface {
	Current(ctx context.Context) (types.Location, error)
}

// StaticSource serves a fixed configured coordinate.
type StaticSource struct {
	loc types.Location
	set bool
}

// NewStaticSource creates a source for a configured coordinate. With
// set false, Current always reports ErrUnavailable.
func NewStaticSource(loc types.Location, set bool) *StaticSource {
	return &StaticSource{loc: loc, set: set}
}

// Current implements Source.
func (s *StaticSource) Current(_ context.Context) (types.Location, error) {
	if !s.set || !s.loc.IsFinite() {
		return types.Location{}, ErrUnavailable
	}
	return s.loc, nil
}
