// Package scene wires one frame of the visualizer together: input,
// gravity, the spacetime grid and the ray-march dispatch.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/chen-qingyu/black-hole/internal/config"
	"github.com/chen-qingyu/black-hole/internal/engine/camera"
	"github.com/chen-qingyu/black-hole/internal/engine/grid"
	"github.com/chen-qingyu/black-hole/internal/engine/input"
	"github.com/chen-qingyu/black-hole/internal/engine/raymarch"
	"github.com/chen-qingyu/black-hole/internal/logger"
	"github.com/chen-qingyu/black-hole/internal/simulation"
)

// Scene owns all mutable simulation state for one session.
type Scene struct {
	registry   *simulation.Registry
	integrator *simulation.Integrator
	camera     *camera.OrbitCamera
	queue      *input.Queue
	grid       *grid.Grid
	marshaller *raymarch.Marshaller
	policy     raymarch.ResolutionPolicy
	dispatcher *raymarch.Dispatcher

	fovDegrees float32
	aspect     float32

	gravity    bool
	screenshot bool
	quit       bool
	steps      uint64

	log *zap.Logger
}

// New builds a scene from cfg.
func New(cfg *config.Config) (*Scene, error) {
	registry, err := simulation.FromConfig(cfg.Simulation)
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}

	policy := raymarch.PolicyFromConfig(cfg.Compute)
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("resolution policy: %w", err)
	}

	s := &Scene{
		registry:   registry,
		integrator: simulation.NewIntegrator(),
		camera:     camera.FromConfig(cfg.Camera),
		queue:      input.NewQueue(),
		grid:       grid.New(grid.ConfigFrom(cfg.Grid)),
		marshaller: raymarch.NewMarshaller(cfg.Compute),
		policy:     policy,
		dispatcher: raymarch.NewDispatcher(),
		fovDegrees: cfg.Compute.FOVDegrees,
		aspect:     float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height),
		gravity:    cfg.Simulation.GravityEnabled,
		log:        logger.Named("scene"),
	}
	s.grid.Update(registry.Bodies())

	s.log.Info("scene ready",
		zap.Int("bodies", registry.Len()),
		zap.Float64("central_rs", registry.Central().SchwarzschildRadius()),
		zap.Bool("gravity", s.gravity))
	return s, nil
}

// Queue returns the input queue the window pushes into.
func (s *Scene) Queue() *input.Queue { return s.queue }

// Camera returns the orbit camera.
func (s *Scene) Camera() *camera.OrbitCamera { return s.camera }

// Registry returns the bodies.
func (s *Scene) Registry() *simulation.Registry { return s.registry }

// Mesh returns the grid as of the last Update.
func (s *Scene) Mesh() *grid.Mesh { return s.grid.Mesh() }

// Policy returns the resolution policy.
func (s *Scene) Policy() raymarch.ResolutionPolicy { return s.policy }

// Aspect returns the window aspect ratio, width / height.
func (s *Scene) Aspect() float32 { return s.aspect }

// FOV returns the vertical field of view in degrees.
func (s *Scene) FOV() float32 { return s.fovDegrees }

// Gravity reports whether bodies are stepped on Update.
func (s *Scene) Gravity() bool { return s.gravity }

// SetGravity turns the integrator on or off. Velocities are kept.
func (s *Scene) SetGravity(on bool) {
	if s.gravity == on {
		return
	}
	s.gravity = on
	s.log.Info("gravity toggled", zap.Bool("enabled", on))
}

// Steps returns how many integrator steps have run.
func (s *Scene) Steps() uint64 { return s.steps }

// QuitRequested reports whether a quit event has been seen.
func (s *Scene) QuitRequested() bool { return s.quit }

// TakeScreenshotRequest reports and clears a pending screenshot request.
func (s *Scene) TakeScreenshotRequest() bool {
	req := s.screenshot
	s.screenshot = false
	return req
}

// Update drains the input queue, steps gravity when enabled and rebuilds
// the grid.
func (s *Scene) Update() {
	for _, e := range s.queue.Drain() {
		s.handleEvent(e)
	}

	if s.gravity {
		s.integrator.Step(s.registry.Bodies())
		s.steps++
	}

	s.grid.Update(s.registry.Bodies())
}

func (s *Scene) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventQuit:
		s.quit = true
	case input.EventWindowResize:
		if e.Width > 0 && e.Height > 0 {
			s.aspect = float32(e.Width) / float32(e.Height)
		}
	case input.EventKeyDown:
		switch e.Key {
		case input.KeyG:
			s.SetGravity(!s.gravity)
		case input.KeyP:
			s.screenshot = true
		case input.KeyEscape:
			s.quit = true
		}
	case input.EventMouseButton:
		// Right button holds gravity on while pressed.
		if e.Button == input.ButtonRight {
			s.SetGravity(e.Action == input.ActionPress)
			return
		}
		s.camera.HandleEvent(e)
	default:
		s.camera.HandleEvent(e)
	}
}

// View returns the camera view the kernel renders from.
func (s *Scene) View() raymarch.CameraView {
	return raymarch.NewCameraView(s.camera.Position(), s.camera.Target(),
		s.fovDegrees, s.aspect, s.camera.Moving())
}

// Frame packs the parameter blocks for the current state.
func (s *Scene) Frame() raymarch.Frame {
	return s.marshaller.Pack(s.View(), s.registry.Central(), s.registry.Bodies())
}

// Render packs the frame and dispatches the kernel on dev at the
// resolution the camera motion calls for.
func (s *Scene) Render(dev raymarch.Device) (raymarch.DispatchStats, error) {
	frame := s.Frame()
	res := s.policy.Select(s.camera.Moving())

	stats, err := s.dispatcher.Dispatch(dev, &frame, res)
	if err != nil {
		return stats, fmt.Errorf("dispatch: %w", err)
	}
	if stats.Reallocated {
		s.log.Debug("compute image resized", zap.Stringer("resolution", res))
	}
	return stats, nil
}
