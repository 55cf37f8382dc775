package params

import (
	"fmt"

	"github.com/iburimskiy/glimmera/internal/vmath"
)

// Kind identifies a user command.
type Kind int

const (
	None Kind = iota

	BaseFreqUp
	BaseFreqDown
	HueFreqUp
	HueFreqDown
	OffsetFreqUp
	OffsetFreqDown
	RotationFreqUp
	RotationFreqDown
	ScaleFreqUp
	ScaleFreqDown
	ExposureUp
	ExposureDown
	ShutterLengthUp
	ShutterLengthDown
	StepsUp
	StepsDown
	ReverseFrequency
	Reset
	TextureNext
	TexturePrev

	// Pointer commands carry their payload in Command.Vec and Command.Size.
	Drag
	ZeroOffset
	PlaceOffset

	// Mode commands do not change State; the game loop acts on them.
	ToggleRecording
	ToggleFullscreen
	ToggleHUD
	ChooseTextureDir
	Quit
)

var kindNames = map[Kind]string{
	None:              "none",
	BaseFreqUp:        "base-freq-up",
	BaseFreqDown:      "base-freq-down",
	HueFreqUp:         "hue-freq-up",
	HueFreqDown:       "hue-freq-down",
	OffsetFreqUp:      "offset-freq-up",
	OffsetFreqDown:    "offset-freq-down",
	RotationFreqUp:    "rotation-freq-up",
	RotationFreqDown:  "rotation-freq-down",
	ScaleFreqUp:       "scale-freq-up",
	ScaleFreqDown:     "scale-freq-down",
	ExposureUp:        "exposure-up",
	ExposureDown:      "exposure-down",
	ShutterLengthUp:   "shutter-length-up",
	ShutterLengthDown: "shutter-length-down",
	StepsUp:           "steps-up",
	StepsDown:         "steps-down",
	ReverseFrequency:  "reverse-frequency",
	Reset:             "reset",
	TextureNext:       "texture-next",
	TexturePrev:       "texture-prev",
	Drag:              "drag",
	ZeroOffset:        "zero-offset",
	PlaceOffset:       "place-offset",
	ToggleRecording:   "toggle-recording",
	ToggleFullscreen:  "toggle-fullscreen",
	ToggleHUD:         "toggle-hud",
	ChooseTextureDir:  "choose-texture-dir",
	Quit:              "quit",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind looks up a command by its String name.
func ParseKind(name string) (Kind, error) {
	for k, s := range kindNames {
		if s == name {
			return k, nil
		}
	}
	return None, fmt.Errorf("unknown command %q", name)
}

// IsMode reports whether k toggles a mode instead of changing State.
func (k Kind) IsMode() bool {
	return k >= ToggleRecording
}

// Command is one discrete user action.
type Command struct {
	Kind Kind
	// Coarse switches additive steps to doubling/halving where supported.
	Coarse bool
	// Vec is the pointer delta for Drag and the pointer position for PlaceOffset.
	Vec vmath.Vec2
	// Size is the surface size PlaceOffset normalizes against.
	Size vmath.Vec2
}

const (
	freqStep     = 0.2
	exposureStep = 0.1
	// DragSensitivity converts pointer pixels into offset units.
	DragSensitivity = 1.0 / 100.0
	placeScale      = -10.0
)

// Apply returns st with cmd applied. Mode commands return st unchanged.
func Apply(st State, cmd Command) State {
	p := &st.Params
	switch cmd.Kind {
	case BaseFreqUp:
		p.BaseFrequency *= 1 + freqStep
	case BaseFreqDown:
		p.BaseFrequency *= 1 - freqStep
	case HueFreqUp:
		p.HueFrequency *= 1 + freqStep
	case HueFreqDown:
		p.HueFrequency *= 1 - freqStep
	case OffsetFreqUp:
		p.OffsetFrequency *= 1 + freqStep
	case OffsetFreqDown:
		p.OffsetFrequency *= 1 - freqStep
	case RotationFreqUp:
		p.RotationFrequency *= 1 + freqStep
	case RotationFreqDown:
		p.RotationFrequency *= 1 - freqStep
	case ScaleFreqUp:
		p.ScaleFrequency *= 1 + freqStep
	case ScaleFreqDown:
		p.ScaleFrequency *= 1 - freqStep
	case ExposureUp:
		p.Exposure *= 1 + exposureStep
	case ExposureDown:
		p.Exposure *= 1 - exposureStep

	case ShutterLengthUp:
		if cmd.Coarse {
			p.ShutterLength *= 2.0
		} else {
			p.ShutterLength += 1.0
		}
	case ShutterLengthDown:
		if cmd.Coarse {
			p.ShutterLength *= 0.5
		} else {
			p.ShutterLength -= 1.0
		}

	case StepsUp:
		n := st.Shutter.Steps()
		if cmd.Coarse {
			n *= 2
		} else {
			n++
		}
		st.Shutter.SetSteps(n)
	case StepsDown:
		n := st.Shutter.Steps()
		if cmd.Coarse {
			n /= 2
		} else {
			n--
		}
		st.Shutter.SetSteps(n)

	case ReverseFrequency:
		p.BaseFrequency = -p.BaseFrequency
	case Reset:
		*p = ResetSnapshot(*p)

	case TextureNext:
		p.Texture++
	case TexturePrev:
		p.Texture--

	case Drag:
		p.Offset = p.Offset.Add(cmd.Vec.Scale(DragSensitivity))
	case ZeroOffset:
		p.Offset = vmath.Vec2{}
	case PlaceOffset:
		if cmd.Size.X > 0 && cmd.Size.Y > 0 {
			p.Offset = vmath.Vec2{
				X: (cmd.Vec.X/cmd.Size.X - 0.5) * placeScale,
				Y: (cmd.Vec.Y/cmd.Size.Y - 0.5) * placeScale,
			}
		}
	}
	return st
}
