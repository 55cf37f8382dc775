// Package input translates device events into params commands. Keys are
// identified by name (the ebiten key names, e.g. "PageUp", "BracketLeft") so
// the bindings can be tested and overridden without a window.
package input

import (
	"fmt"
	"strings"

	"github.com/iburimskiy/glimmera/internal/params"
)

// CtrlPrefix marks a binding that only fires with the coarse modifier held.
const CtrlPrefix = "Ctrl+"

// Keymap binds key names to command kinds.
type Keymap map[string]params.Kind

// DefaultKeymap returns the stock bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		"ArrowRight":   params.TextureNext,
		"ArrowLeft":    params.TexturePrev,
		"PageUp":       params.StepsUp,
		"PageDown":     params.StepsDown,
		"Home":         params.ShutterLengthUp,
		"End":          params.ShutterLengthDown,
		"Insert":       params.ExposureUp,
		"Delete":       params.ExposureDown,
		"BracketLeft":  params.BaseFreqDown,
		"BracketRight": params.BaseFreqUp,
		"Comma":        params.HueFreqDown,
		"Period":       params.HueFreqUp,
		"Semicolon":    params.OffsetFreqDown,
		"Quote":        params.OffsetFreqUp,
		"Digit7":       params.RotationFreqDown,
		"Digit8":       params.RotationFreqUp,
		"Digit9":       params.ScaleFreqDown,
		"Digit0":       params.ScaleFreqUp,
		"Equal":        params.Reset,
		"Minus":        params.ReverseFrequency,
		"Space":        params.ToggleRecording,
		"Enter":        params.ToggleFullscreen,
		"Escape":       params.Quit,
		"Ctrl+Q":       params.Quit,
		"H":            params.ToggleHUD,
		"O":            params.ChooseTextureDir,
	}
}

// Override applies name → command-name bindings on top of km. A command name
// of "none" removes the binding.
func (km Keymap) Override(bindings map[string]string) error {
	for key, name := range bindings {
		kind, err := params.ParseKind(name)
		if err != nil {
			return fmt.Errorf("binding %q: %w", key, err)
		}
		if kind == params.None {
			delete(km, key)
			continue
		}
		km[key] = kind
	}
	return nil
}

// Translate maps a key press to a command. With ctrl held a "Ctrl+" binding
// wins; otherwise the plain binding fires with Coarse set.
func (km Keymap) Translate(key string, ctrl bool) (params.Command, bool) {
	if ctrl {
		if k, ok := km[CtrlPrefix+key]; ok {
			return params.Command{Kind: k}, true
		}
	}
	if strings.HasPrefix(key, CtrlPrefix) {
		return params.Command{}, false
	}
	k, ok := km[key]
	if !ok {
		return params.Command{}, false
	}
	return params.Command{Kind: k, Coarse: ctrl}, true
}
