package render

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/lixenwraith/spin-cube/constant"
)

// recordingPresenter captures presented frames
type recordingPresenter struct {
	frames []string
	err    error
}

func (p *recordingPresenter) Init() error { return nil }
func (p *recordingPresenter) Fini() {}

func (p *recordingPresenter) Present(cells []rune, width, height int) error {
	if p.err != nil {
		return p.err
	}
	p.frames = append(p.frames, string(cells[:width*height]))
	return nil
}

func newTestRenderer() *Renderer {
	r := NewRenderer()
	r.delay = 0
	return r
}

func TestSampleSteps(t *testing.T) {
	if got := sampleSteps(constant.CubeHalfWidth, constant.SampleStep); got != 54 {
		t.Errorf("Expected 54 samples per axis, got %d", got)
	}
	if got := sampleSteps(1, 0.5); got != 4 {
		t.Errorf("Expected 4 samples for exact division, got %d", got)
	}
}

func TestRenderer_NewIsCleared(t *testing.T) {
	r := newTestRenderer()
	b := r.Buffer()

	if b.Width() != constant.ScreenWidth || b.Height() != constant.ScreenHeight {
		t.Fatalf("Expected %dx%d, got %dx%d", constant.ScreenWidth, constant.ScreenHeight, b.Width(), b.Height())
	}
	expected := strings.Repeat(strings.Repeat(" ", 60)+"\n", 26)
	if b.String() != expected {
		t.Error("Expected blank frame on construction")
	}
}

func TestRenderer_ClearAfterSample(t *testing.T) {
	r := newTestRenderer()
	r.Sample()
	r.Clear()

	b := r.Buffer()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Glyph(x, y) != constant.BackgroundGlyph || b.Depth(x, y) != 0 {
				t.Fatalf("Expected cleared cell at (%d,%d)", x, y)
			}
		}
	}
	if r.Stats() != (Stats{}) {
		t.Errorf("Expected zero stats after clear, got %+v", r.Stats())
	}
	if r.Phase() != PhaseClearing {
		t.Errorf("Expected clearing phase, got %s", r.Phase())
	}
}

func TestRenderer_SampleZeroAngles(t *testing.T) {
	r := newTestRenderer()
	r.Clear()
	r.Sample()

	if got := r.Buffer().Glyph(30, 13); got != '.' {
		t.Errorf("Expected front face at center, got %q", got)
	}

	s := r.Stats()
	if s.Samples != 54*54*len(Faces) {
		t.Errorf("Expected %d samples, got %d", 54*54*len(Faces), s.Samples)
	}
	if s.Written+s.OutOfBounds+s.Occluded != s.Samples {
		t.Errorf("Expected outcomes to sum to samples, got %+v", s)
	}
	if s.Written == 0 || s.Occluded == 0 {
		t.Errorf("Expected both writes and occlusions, got %+v", s)
	}
}

func TestRenderer_OnlyFaceGlyphs(t *testing.T) {
	allowed := string(constant.BackgroundGlyph)
	for _, f := range Faces {
		allowed += string(f.Glyph)
	}

	r := newTestRenderer()
	r.SetAngles(Angles{A: 1.1, B: 0.4, C: 2.7})
	r.Clear()
	r.Sample()

	seen := map[rune]bool{}
	for _, g := range r.Buffer().Cells() {
		if !strings.ContainsRune(allowed, g) {
			t.Fatalf("Unexpected glyph %q", g)
		}
		seen[g] = true
	}
	if len(seen) < 3 {
		t.Errorf("Expected a tumbling cube to show several faces, saw %d glyphs", len(seen))
	}
}

func TestRenderer_FaceGlyphsDistinct(t *testing.T) {
	seen := map[rune]string{}
	for _, f := range Faces {
		if prev, ok := seen[f.Glyph]; ok {
			t.Errorf("Glyph %q shared by %s and %s", f.Glyph, prev, f.Name)
		}
		seen[f.Glyph] = f.Name
	}
}

func TestRenderer_Determinism(t *testing.T) {
	angles := Angles{A: 0.35, B: 1.2, C: 0.07}

	r1 := newTestRenderer()
	r1.SetAngles(angles)
	r1.Clear()
	r1.Sample()

	r2 := newTestRenderer()
	r2.SetAngles(angles)
	r2.Clear()
	r2.Sample()

	if r1.Buffer().String() != r2.Buffer().String() {
		t.Error("Expected identical frames for identical angles")
	}
}

func TestRenderer_AdvanceMonotonic(t *testing.T) {
	r := newTestRenderer()
	start := Angles{A: 0.5, B: -1, C: 3}
	r.SetAngles(start)

	const n = 250
	for i := 0; i < n; i++ {
		r.Advance()
	}

	got := r.Angles()
	checks := []struct {
		name           string
		got, init, inc float64
	}{
		{"A", got.A, start.A, constant.DeltaA},
		{"B", got.B, start.B, constant.DeltaB},
		{"C", got.C, start.C, constant.DeltaC},
	}
	for _, c := range checks {
		want := c.init + n*c.inc
		if math.Abs(c.got-want) > 1e-9 {
			t.Errorf("Angle %s: expected %f, got %f", c.name, want, c.got)
		}
	}
	if r.FrameCount() != n {
		t.Errorf("Expected frame count %d, got %d", n, r.FrameCount())
	}
}

func TestRenderer_StepPresentsAndAdvances(t *testing.T) {
	r := newTestRenderer()
	p := &recordingPresenter{}

	if err := r.Step(p); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	if len(p.frames) != 1 {
		t.Fatalf("Expected 1 frame, got %d", len(p.frames))
	}
	if len(p.frames[0]) != 60*26 {
		t.Errorf("Expected %d cells, got %d", 60*26, len(p.frames[0]))
	}
	if r.Phase() != PhaseAdvancing {
		t.Errorf("Expected advancing phase, got %s", r.Phase())
	}
	if r.Angles() != (Angles{A: constant.DeltaA, B: constant.DeltaB, C: constant.DeltaC}) {
		t.Errorf("Expected one delta applied, got %+v", r.Angles())
	}
}

func TestRenderer_StepPresenterError(t *testing.T) {
	r := newTestRenderer()
	sentinel := errors.New("broken pipe")
	p := &recordingPresenter{err: sentinel}

	err := r.Step(p)
	if !errors.Is(err, sentinel) {
		t.Fatalf("Expected wrapped presenter error, got %v", err)
	}
	if r.Angles() != (Angles{}) {
		t.Errorf("Expected angles unchanged after failed frame, got %+v", r.Angles())
	}
}

func TestRenderer_RunFrameLimit(t *testing.T) {
	r := newTestRenderer()
	p := &recordingPresenter{}

	if err := r.Run(context.Background(), p, 3); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(p.frames) != 3 {
		t.Errorf("Expected 3 frames, got %d", len(p.frames))
	}
	if r.FrameCount() != 3 {
		t.Errorf("Expected frame count 3, got %d", r.FrameCount())
	}
	if p.frames[0] == p.frames[2] {
		t.Error("Expected rotation to change the frame")
	}
}

func TestRenderer_RunCanceled(t *testing.T) {
	r := newTestRenderer()
	p := &recordingPresenter{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.Run(ctx, p, 0); err != nil {
		t.Errorf("Expected nil on cancellation, got %v", err)
	}
	if len(p.frames) != 0 {
		t.Errorf("Expected no frames after cancellation, got %d", len(p.frames))
	}
}

func TestRenderer_RunStopsOnPresenterError(t *testing.T) {
	r := newTestRenderer()
	p := &recordingPresenter{err: errors.New("closed")}

	if err := r.Run(context.Background(), p, 0); err == nil {
		t.Error("Expected presenter error to end the loop")
	}
}

func TestPhase_String(t *testing.T) {
	names := map[Phase]string{
		PhaseClearing:   "clearing",
		PhaseSampling:   "sampling",
		PhasePresenting: "presenting",
		PhaseAdvancing:  "advancing",
		Phase(99):       "unknown",
	}
	for p, want := range names {
		if p.String() != want {
			t.Errorf("Expected %q, got %q", want, p.String())
		}
	}
}
