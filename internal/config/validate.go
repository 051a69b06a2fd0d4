package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the settings the simulation cannot run without.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	}

	cam := c.Camera
	if cam.MinRadius <= 0 || cam.MinRadius >= cam.MaxRadius {
		return fmt.Errorf("%w: camera radius range [%g, %g]", ErrInvalid, cam.MinRadius, cam.MaxRadius)
	}

	if err := validateBody("central", c.Simulation.Central); err != nil {
		return err
	}
	for i, b := range c.Simulation.Bodies {
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("bodies[%d]", i)
		}
		if err := validateBody(name, b); err != nil {
			return err
		}
	}

	if c.Grid.Size <= 0 || c.Grid.Spacing <= 0 {
		return fmt.Errorf("%w: grid size %d spacing %g", ErrInvalid, c.Grid.Size, c.Grid.Spacing)
	}

	for name, r := range map[string]ResolutionConfig{"moving": c.Compute.Moving, "static": c.Compute.Static} {
		if r.Width <= 0 || r.Height <= 0 {
			return fmt.Errorf("%w: %s resolution %dx%d", ErrInvalid, name, r.Width, r.Height)
		}
	}
	if c.Compute.FOVDegrees <= 0 || c.Compute.FOVDegrees >= 180 {
		return fmt.Errorf("%w: fov %g degrees", ErrInvalid, c.Compute.FOVDegrees)
	}

	switch c.Debug.ScreenshotFormat {
	case "png", "bmp":
	default:
		return fmt.Errorf("%w: screenshot format %q", ErrInvalid, c.Debug.ScreenshotFormat)
	}

	return nil
}

func validateBody(name string, b BodyConfig) error {
	if !(b.Mass > 0) || math.IsInf(b.Mass, 0) {
		return fmt.Errorf("%w: body %s mass %g", ErrInvalid, name, b.Mass)
	}
	if b.Radius < 0 {
		return fmt.Errorf("%w: body %s radius %g", ErrInvalid, name, b.Radius)
	}
	return nil
}
