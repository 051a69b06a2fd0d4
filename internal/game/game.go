// Package game runs the interactive visualizer loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chen-qingyu/black-hole/internal/config"
	"github.com/chen-qingyu/black-hole/internal/engine/compute"
	"github.com/chen-qingyu/black-hole/internal/engine/debug"
	"github.com/chen-qingyu/black-hole/internal/engine/renderer"
	"github.com/chen-qingyu/black-hole/internal/engine/window"
	"github.com/chen-qingyu/black-hole/internal/logger"
	"github.com/chen-qingyu/black-hole/internal/scene"
)

const statusInterval = 200 * time.Millisecond

var gridColor = [4]float32{0.5, 0.5, 0.5, 0.7}

// Game is the interactive application.
type Game struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	device   *compute.Device
	scene    *scene.Scene
	shots    *debug.ScreenshotCapture
	log      *zap.Logger

	width, height int
}

// New creates the window, GL resources and scene.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		log:    logger.Named("game"),
		width:  cfg.Graphics.Width,
		height: cfg.Graphics.Height,
	}
	g.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Black Hole",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer initializes GL, so it must come before the compute device.
	g.renderer, err = renderer.New(renderer.Config{
		Width:     cfg.Graphics.Width,
		Height:    cfg.Graphics.Height,
		GridColor: gridColor,
	})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.device, err = compute.New(cfg.Compute.KernelPath)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create compute device: %w", err)
	}

	g.scene, err = scene.New(cfg)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	format, err := debug.ParseFormat(cfg.Debug.ScreenshotFormat)
	if err != nil {
		g.Close()
		return nil, err
	}
	g.shots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "blackhole", format)

	return g, nil
}

// Run loops until the window is closed or Escape is pressed.
func (g *Game) Run() error {
	g.log.Info("starting loop")

	frames := 0
	lastStatus := time.Now()

	for {
		g.window.PollEvents(g.scene.Queue())
		g.scene.Update()
		if g.scene.QuitRequested() {
			return nil
		}
		g.syncSize()

		stats, err := g.scene.Render(g.device)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		cam := g.scene.Camera()
		g.renderer.Begin()
		g.renderer.DrawImage(g.device.Texture())
		g.renderer.DrawGrid(g.scene.Mesh(),
			renderer.ViewProjection(cam.Position(), g.scene.FOV(), g.scene.Aspect()))

		if g.scene.TakeScreenshotRequest() {
			g.screenshot()
		}

		g.window.SwapBuffers()

		frames++
		if elapsed := time.Since(lastStatus); elapsed >= statusInterval {
			g.log.Info("status",
				zap.Float64("fps", float64(frames)/elapsed.Seconds()),
				zap.Float32("radius", cam.Radius),
				zap.Float32("azimuth", cam.Azimuth),
				zap.Float32("elevation", cam.Elevation),
				zap.Stringer("resolution", stats.Resolution),
				zap.Bool("gravity", g.scene.Gravity()),
			)
			frames = 0
			lastStatus = time.Now()
		}
	}
}

func (g *Game) syncSize() {
	w, h := g.window.GetSize()
	if w == g.width && h == g.height {
		return
	}
	g.width, g.height = w, h
	g.renderer.Resize(w, h)
}

func (g *Game) screenshot() {
	img, err := g.device.ReadPixels()
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	path, err := g.shots.CaptureFromImage(img)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GL and window resources.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.device != nil {
		g.device.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
