package synth

import (
	"math"
	"testing"

	"github.com/iburimskiy/glimmera/internal/params"
	"github.com/iburimskiy/glimmera/internal/shutter"
	"github.com/iburimskiy/glimmera/internal/vmath"
)

func stateWithSteps(n int) params.State {
	st := params.Defaults()
	st.Shutter.SetSteps(n)
	return st
}

func TestSynthesizeCount(t *testing.T) {
	for _, n := range []int{1, 2, 3, 17, 260} {
		cmds := Synthesize(42, stateWithSteps(n), Options{})
		if len(cmds) != n {
			t.Errorf("steps=%d: got %d commands", n, len(cmds))
		}
	}
}

func TestSynthesizeAlphaSumsToExposure(t *testing.T) {
	frames := []int{0, 1, 99, 12345}
	for _, n := range []int{1, 2, 3, 10, 260, 520} {
		for _, frame := range frames {
			st := stateWithSteps(n)
			st.Params.Exposure = 1.5
			total := 0.0
			for _, c := range Synthesize(frame, st, Options{}) {
				total += c.Alpha
			}
			if math.Abs(total-1.5) > 1e-9 {
				t.Errorf("steps=%d frame=%d: alpha sum %v, want 1.5", n, frame, total)
			}
		}
	}
}

func TestSynthesizeThreeStepExample(t *testing.T) {
	st := stateWithSteps(3)
	st.Params.Exposure = 1.5
	cmds := Synthesize(0, st, Options{})

	want := []float64{0.001 / 1.002 * 1.5, 1.0 / 1.002 * 1.5, 0.001 / 1.002 * 1.5}
	for i, c := range cmds {
		if math.Abs(c.Alpha-want[i]) > 1e-12 {
			t.Errorf("alpha[%d] = %v, want %v", i, c.Alpha, want[i])
		}
	}
	if math.Abs(cmds[1].Alpha-1.497) > 0.001 {
		t.Errorf("middle alpha = %v, want ~1.497", cmds[1].Alpha)
	}
}

func TestSynthesizeOrder(t *testing.T) {
	st := stateWithSteps(9)
	st.Params.HueFrequency = 1
	st.Params.BaseFrequency = 0.01
	cmds := Synthesize(1000, st, Options{})

	// Hue advances with the sub-sample time while it stays below one turn.
	for i := 1; i < len(cmds); i++ {
		if cmds[i].Hue <= cmds[i-1].Hue {
			t.Errorf("hue not increasing at %d: %v <= %v", i, cmds[i].Hue, cmds[i-1].Hue)
		}
	}
	// Weights rise towards the middle sample and fall afterwards.
	mid := len(cmds) / 2
	for i := 1; i <= mid; i++ {
		if cmds[i].Alpha < cmds[i-1].Alpha {
			t.Errorf("alpha decreases before the middle at %d", i)
		}
	}
	for i := mid + 1; i < len(cmds); i++ {
		if cmds[i].Alpha > cmds[i-1].Alpha {
			t.Errorf("alpha increases after the middle at %d", i)
		}
	}
}

func TestSynthesizeSampleTimes(t *testing.T) {
	st := stateWithSteps(3)
	st.Params.ShutterLength = 4
	st.Params.BaseFrequency = 0.5
	st.Params.HueFrequency = 1
	cmds := Synthesize(8, st, Options{})

	// Sample times are 8*0.5 + {-2, 0, 2}.
	for i, ts := range []float64{2, 4, 6} {
		want := wrapUnit(ts * phaseRate * 1 * 0.5)
		if math.Abs(cmds[i].Hue-want) > 1e-12 {
			t.Errorf("hue[%d] = %v, want %v", i, cmds[i].Hue, want)
		}
	}
}

func TestOffsetWave(t *testing.T) {
	amps := vmath.Vec2{X: 0.4, Y: 0.6}
	freqs := vmath.Vec2{X: 0.027, Y: 0.013}

	w := OffsetWave(100, -2, amps, freqs, false)
	if want := math.Sin(98*0.027) * 0.4; w.X != want {
		t.Errorf("x = %v, want %v", w.X, want)
	}
	if want := math.Cos(98*0.013) * 0.4; w.Y != want {
		t.Errorf("reference y = %v, want %v", w.Y, want)
	}

	w = OffsetWave(100, -2, amps, freqs, true)
	if want := math.Cos(98*0.013) * 0.6; w.Y != want {
		t.Errorf("split y = %v, want %v", w.Y, want)
	}
}

func TestPositionIncludesWave(t *testing.T) {
	st := stateWithSteps(1)
	st.Params.ShutterLength = 0
	st.Params.Offset = vmath.Vec2{X: 1, Y: 2}
	cmd := Synthesize(50, st, Options{})[0]

	wave := OffsetWave(50, 0, st.Params.WaveAmplitudes, st.Params.WaveFrequencies, false)
	want := st.Params.Offset.Add(wave)
	if cmd.Position != want {
		t.Errorf("position = %v, want %v", cmd.Position, want)
	}

	rotated := Synthesize(50, st, Options{RotateOffset: true})[0]
	ts := 50 * st.Params.BaseFrequency
	wantRot := vmath.Rotate(want, vmath.Radians(ts*st.Params.OffsetFrequency*st.Params.BaseFrequency))
	if math.Abs(rotated.Position.X-wantRot.X) > 1e-12 || math.Abs(rotated.Position.Y-wantRot.Y) > 1e-12 {
		t.Errorf("rotated position = %v, want %v", rotated.Position, wantRot)
	}
}

func TestSynthesizeTotal(t *testing.T) {
	st := stateWithSteps(5)
	st.Params.BaseFrequency = 0
	st.Params.WaveAmplitudes = vmath.Vec2{}
	st.Params.HueFrequency = -3

	for _, c := range Synthesize(7, st, Options{RotateOffset: true, SplitWaveAmplitude: true}) {
		for _, v := range []float64{c.Rotation, c.Hue, c.Alpha, c.Scale, c.Position.X, c.Position.Y, c.Color.R, c.Color.G, c.Color.B} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite value in %+v", c)
			}
		}
		if c.Hue < 0 || c.Hue >= 1 {
			t.Errorf("hue %v out of [0,1)", c.Hue)
		}
	}

	st.Params.BaseFrequency = -0.3
	for _, c := range Synthesize(1000, st, Options{}) {
		if c.Hue < 0 || c.Hue >= 1 {
			t.Errorf("negative frequency hue %v out of [0,1)", c.Hue)
		}
	}
}

func TestWrapUnit(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0.25, 0.25},
		{1.25, 0.25},
		{-0.25, 0.75},
		{-1e-18, 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := wrapUnit(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("wrapUnit(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHueColor(t *testing.T) {
	st := stateWithSteps(1)
	st.Params.HueFrequency = 0
	c := Synthesize(3, st, Options{})[0]
	if c.Hue != 0 {
		t.Fatalf("hue = %v, want 0", c.Hue)
	}
	if c.Color.R != 1 || c.Color.G != 0 || c.Color.B != 0 {
		t.Errorf("hue 0 colour = %+v, want pure red", c.Color)
	}
}

func TestProject(t *testing.T) {
	vp := Viewport{Width: 1024, Height: 1024}
	focal := 1 / math.Tan(vmath.Radians(FieldOfView)/2)

	q := Project(FrameCommand{Scale: 1}, vp)
	// Half-size 1 at depth 6 covers focal/6 of the half-viewport.
	half := focal / EyeDistance * 512
	if math.Abs(q[0].X-(512+half)) > 1e-9 || math.Abs(q[0].Y-(512-half)) > 1e-9 {
		t.Errorf("corner 0 = (%v, %v), want (%v, %v)", q[0].X, q[0].Y, 512+half, 512-half)
	}
	if math.Abs(q[2].X-(512-half)) > 1e-9 || math.Abs(q[2].Y-(512+half)) > 1e-9 {
		t.Errorf("corner 2 = (%v, %v)", q[2].X, q[2].Y)
	}
	if q[0].U != 0 || q[0].V != 1 || q[2].U != 1 || q[2].V != 0 {
		t.Errorf("unexpected texture coordinates %+v", q)
	}

	r := Project(FrameCommand{Scale: 1, Rotation: 180}, vp)
	if math.Abs(r[0].X-q[2].X) > 1e-9 || math.Abs(r[0].Y-q[2].Y) > 1e-9 {
		t.Errorf("half turn did not swap corners: %+v vs %+v", r[0], q[2])
	}

	wide := Project(FrameCommand{Scale: 1}, Viewport{Width: 2048, Height: 1024})
	if math.Abs((wide[0].X-1024)-half) > 1e-9 {
		t.Errorf("aspect not applied: %v", wide[0].X)
	}
}

func TestAlphaMatchesShutter(t *testing.T) {
	st := stateWithSteps(11)
	for i, c := range Synthesize(5, st, Options{}) {
		w := shutter.Weight(shutter.Position(i, 11), st.Shutter.FadeWidth(), shutter.DefaultMinimum)
		if want := w / st.Shutter.Sum() * st.Params.Exposure; c.Alpha != want {
			t.Errorf("alpha[%d] = %v, want %v", i, c.Alpha, want)
		}
	}
}
