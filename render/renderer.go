package render

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/lixenwraith/spin-cube/constant"
	"github.com/lixenwraith/spin-cube/terminal"
	"github.com/lixenwraith/spin-cube/vmath"
)

// statsLogInterval is the number of frames between debug stat lines
const statsLogInterval = 100

// Phase is the frame loop state
type Phase uint8

const (
	PhaseClearing Phase = iota
	PhaseSampling
	PhasePresenting
	PhaseAdvancing
)

func (p Phase) String() string {
	switch p {
	case PhaseClearing:
		return "clearing"
	case PhaseSampling:
		return "sampling"
	case PhasePresenting:
		return "presenting"
	case PhaseAdvancing:
		return "advancing"
	default:
		return "unknown"
	}
}

// Angles is the rotation state, in radians
type Angles struct {
	A, B, C float64
}

// Stats counts rasterizer outcomes for one frame
type Stats struct {
	Samples     int
	Written     int
	OutOfBounds int
	Occluded    int
}

// Renderer owns the buffers and rotation state of a single render context
// Not safe for concurrent use; run one Renderer per goroutine
type Renderer struct {
	buf    *Buffer
	angles Angles
	phase  Phase
	stats  Stats
	frame  uint64

	steps int           // samples per face axis
	delay time.Duration // sleep after each frame
}

// NewRenderer creates a renderer sized from the constant package
func NewRenderer() *Renderer {
	return &Renderer{
		buf:   NewBuffer(constant.ScreenWidth, constant.ScreenHeight, constant.BackgroundGlyph),
		steps: sampleSteps(constant.CubeHalfWidth, constant.SampleStep),
		delay: constant.FrameDelay,
	}
}

// sampleSteps returns how many samples cover [-half, +half) at the given spacing
func sampleSteps(half, step float64) int {
	return int(math.Ceil(2 * half / step))
}

func (r *Renderer) Buffer() *Buffer { return r.buf }
func (r *Renderer) Angles() Angles { return r.angles }
func (r *Renderer) Phase() Phase { return r.phase }
func (r *Renderer) Stats() Stats { return r.stats }
func (r *Renderer) FrameCount() uint64 { return r.frame }

// SetAngles overrides the rotation state
func (r *Renderer) SetAngles(a Angles) {
	r.angles = a
}

// Clear resets both buffers and the frame stats
func (r *Renderer) Clear() {
	r.phase = PhaseClearing
	r.buf.Clear()
	r.stats = Stats{}
}

// Sample rasterizes every face sample at the current angles
func (r *Renderer) Sample() {
	r.phase = PhaseSampling
	rot := vmath.NewEuler(r.angles.A, r.angles.B, r.angles.C)
	half := constant.CubeHalfWidth
	cubeZ := -half

	for i := 0; i < r.steps; i++ {
		cubeX := -half + float64(i)*constant.SampleStep
		for j := 0; j < r.steps; j++ {
			cubeY := -half + float64(j)*constant.SampleStep
			for f := range Faces {
				r.surface(rot, Faces[f].Map(cubeX, cubeY, cubeZ), Faces[f].Glyph)
			}
		}
	}
}

// surface runs one object-space point through rotate, project and plot
func (r *Renderer) surface(rot vmath.Euler, p vmath.Vec3F, glyph rune) {
	cam := rot.Apply(p)
	cam.Z += constant.CameraDistance
	sp := Project(cam, r.buf.width, r.buf.height)

	r.stats.Samples++
	switch r.buf.plot(sp.X, sp.Y, sp.OOZ, glyph) {
	case plotWritten:
		r.stats.Written++
	case plotOutOfBounds:
		r.stats.OutOfBounds++
	case plotOccluded:
		r.stats.Occluded++
	}
}

// Present hands the glyph grid to the presenter
func (r *Renderer) Present(p terminal.Presenter) error {
	r.phase = PhasePresenting
	if err := p.Present(r.buf.Cells(), r.buf.width, r.buf.height); err != nil {
		return fmt.Errorf("present frame %d: %w", r.frame, err)
	}
	return nil
}

// Advance steps the rotation by the per-frame deltas
func (r *Renderer) Advance() {
	r.phase = PhaseAdvancing
	r.angles.A += constant.DeltaA
	r.angles.B += constant.DeltaB
	r.angles.C += constant.DeltaC
	r.frame++
}

// Step runs one full frame without the trailing sleep
func (r *Renderer) Step(p terminal.Presenter) error {
	r.Clear()
	r.Sample()
	if err := r.Present(p); err != nil {
		return err
	}
	if r.frame%statsLogInterval == 0 {
		log.Printf("frame %d: samples=%d written=%d out_of_bounds=%d occluded=%d",
			r.frame, r.stats.Samples, r.stats.Written, r.stats.OutOfBounds, r.stats.Occluded)
	}
	r.Advance()
	return nil
}

// Run loops frames until ctx is canceled or, when frames > 0, that many frames were shown
// Returns nil on cancellation; only presenter errors are reported
func (r *Renderer) Run(ctx context.Context, p terminal.Presenter, frames int) error {
	timer := time.NewTimer(r.delay)
	defer timer.Stop()

	for n := 0; frames <= 0 || n < frames; n++ {
		if ctx.Err() != nil {
			return nil
		}
		if err := r.Step(p); err != nil {
			return err
		}

		timer.Reset(r.delay)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}
	return nil
}
