// Package renderer presents the lensed image and draws the spacetime grid
// over it.
package renderer

import (
	_ "embed"
	"fmt"
	gomath "math"

	"github.com/go-gl/gl/v4.3-core/gl"
	"go.uber.org/zap"

	"github.com/chen-qingyu/black-hole/internal/engine/grid"
	"github.com/chen-qingyu/black-hole/internal/engine/shader"
	"github.com/chen-qingyu/black-hole/internal/logger"
	"github.com/chen-qingyu/black-hole/pkg/math"
)

//go:embed shaders/quad.vert
var quadVertSrc string

//go:embed shaders/quad.frag
var quadFragSrc string

//go:embed shaders/grid.vert
var gridVertSrc string

//go:embed shaders/grid.frag
var gridFragSrc string

// Grid projection planes in meters.
const (
	gridNear = 1e9
	gridFar  = 1e14
)

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	GridColor [4]float32
}

// Renderer draws the compute output and the grid overlay.
type Renderer struct {
	config Config

	quadProgram uint32
	quadVAO     uint32
	quadVBO     uint32
	uImage      int32

	gridProgram uint32
	gridVAO     uint32
	gridVBO     uint32
	gridEBO     uint32
	gridIndices int32
	uViewProj   int32
	uColor      int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.ClearColor(0, 0, 0, 1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.quadProgram, err = shader.CompileProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}
	r.uImage = shader.GetUniform(r.quadProgram, "uImage")

	r.gridProgram, err = shader.CompileProgram(gridVertSrc, gridFragSrc)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("grid program: %w", err)
	}
	r.uViewProj = shader.GetUniform(r.gridProgram, "uViewProj")
	r.uColor = shader.GetUniform(r.gridProgram, "uColor")

	r.createQuad()
	r.createGrid()

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, vao := range []*uint32{&r.quadVAO, &r.gridVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
		}
	}
	for _, buf := range []*uint32{&r.quadVBO, &r.gridVBO, &r.gridEBO} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
		}
	}
	if r.quadProgram != 0 {
		gl.DeleteProgram(r.quadProgram)
	}
	if r.gridProgram != 0 {
		gl.DeleteProgram(r.gridProgram)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawImage draws texture over the whole viewport.
func (r *Renderer) DrawImage(texture uint32) {
	if texture == 0 {
		return
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(r.quadProgram)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.Uniform1i(r.uImage, 0)

	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// ViewProjection is the grid transform for a camera at eye looking at the origin.
func ViewProjection(eye math.Vec3, fovDegrees, aspect float32) math.Mat4 {
	fov := fovDegrees * gomath.Pi / 180
	proj := math.Perspective(fov, aspect, gridNear, gridFar)
	view := math.LookAt(eye, math.Vec3{}, math.Vec3{X: 0, Y: 1, Z: 0})
	return proj.Mul(view)
}

// DrawGrid draws mesh as lines blended over the image.
func (r *Renderer) DrawGrid(mesh *grid.Mesh, viewProj math.Mat4) {
	if mesh == nil || len(mesh.Vertices) == 0 {
		return
	}

	gl.BindVertexArray(r.gridVAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.gridVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*12, gl.Ptr(mesh.Vertices), gl.DYNAMIC_DRAW)

	// Topology is fixed for a grid; upload indices once.
	if r.gridIndices != int32(len(mesh.Indices)) {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.gridEBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
		r.gridIndices = int32(len(mesh.Indices))
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.gridProgram)
	gl.UniformMatrix4fv(r.uViewProj, 1, false, viewProj.Ptr())
	c := r.config.GridColor
	gl.Uniform4f(r.uColor, c[0], c[1], c[2], c[3])

	gl.DrawElements(gl.LINES, r.gridIndices, gl.UNSIGNED_INT, nil)

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

func (r *Renderer) createQuad() {
	// position (x, y) + uv
	vertices := []float32{
		-1, 1, 0, 1,
		-1, -1, 0, 0,
		1, -1, 1, 0,
		-1, 1, 0, 1,
		1, -1, 1, 0,
		1, 1, 1, 1,
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)

	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("quad created", zap.Uint32("vao", r.quadVAO))
}

func (r *Renderer) createGrid() {
	gl.GenVertexArrays(1, &r.gridVAO)
	gl.BindVertexArray(r.gridVAO)

	gl.GenBuffers(1, &r.gridVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.gridVBO)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &r.gridEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.gridEBO)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("grid buffers created", zap.Uint32("vao", r.gridVAO))
}
