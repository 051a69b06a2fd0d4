package raymarch

import (
	"errors"
	"fmt"

	"github.com/chen-qingyu/black-hole/internal/config"
)

// ErrInvalidResolution is returned for non-positive image dimensions.
var ErrInvalidResolution = errors.New("invalid compute resolution")

// Resolution is an image size in pixels.
type Resolution struct {
	Width, Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Aspect returns width / height.
func (r Resolution) Aspect() float32 {
	return float32(r.Width) / float32(r.Height)
}

// Validate rejects resolutions the kernel cannot be dispatched over.
func (r Resolution) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidResolution, r)
	}
	return nil
}

// ResolutionPolicy trades quality for frame rate while the camera moves.
type ResolutionPolicy struct {
	Moving Resolution
	Static Resolution
}

// DefaultPolicy returns the 200x150 moving / 400x300 static policy.
func DefaultPolicy() ResolutionPolicy {
	return PolicyFromConfig(config.Default().Compute)
}

// PolicyFromConfig reads both resolutions from the compute config section.
func PolicyFromConfig(cfg config.ComputeConfig) ResolutionPolicy {
	return ResolutionPolicy{
		Moving: Resolution{Width: cfg.Moving.Width, Height: cfg.Moving.Height},
		Static: Resolution{Width: cfg.Static.Width, Height: cfg.Static.Height},
	}
}

// Select returns the resolution for the current camera motion state.
func (p ResolutionPolicy) Select(moving bool) Resolution {
	if moving {
		return p.Moving
	}
	return p.Static
}

// Validate checks both resolutions.
func (p ResolutionPolicy) Validate() error {
	if err := p.Moving.Validate(); err != nil {
		return fmt.Errorf("moving: %w", err)
	}
	if err := p.Static.Validate(); err != nil {
		return fmt.Errorf("static: %w", err)
	}
	return nil
}
