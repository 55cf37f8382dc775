package input

import (
	"testing"

	"github.com/iburimskiy/glimmera/internal/params"
	"github.com/iburimskiy/glimmera/internal/vmath"
)

func TestTranslate(t *testing.T) {
	km := DefaultKeymap()
	tests := []struct {
		key      string
		ctrl     bool
		wantKind params.Kind
		coarse   bool
		ok       bool
	}{
		{"PageUp", false, params.StepsUp, false, true},
		{"PageUp", true, params.StepsUp, true, true},
		{"End", true, params.ShutterLengthDown, true, true},
		{"BracketRight", false, params.BaseFreqUp, false, true},
		{"Q", true, params.Quit, false, true},
		{"Q", false, params.None, false, false},
		{"Escape", false, params.Quit, false, true},
		{"Ctrl+Q", false, params.None, false, false},
		{"F13", false, params.None, false, false},
	}

	for _, tt := range tests {
		cmd, ok := km.Translate(tt.key, tt.ctrl)
		if ok != tt.ok {
			t.Errorf("Translate(%q, %v) ok = %v, want %v", tt.key, tt.ctrl, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if cmd.Kind != tt.wantKind || cmd.Coarse != tt.coarse {
			t.Errorf("Translate(%q, %v) = %+v, want kind %v coarse %v", tt.key, tt.ctrl, cmd, tt.wantKind, tt.coarse)
		}
	}
}

func TestOverride(t *testing.T) {
	km := DefaultKeymap()
	err := km.Override(map[string]string{
		"R":     "reset",
		"Equal": "none",
	})
	if err != nil {
		t.Fatalf("Override: %v", err)
	}
	if cmd, ok := km.Translate("R", false); !ok || cmd.Kind != params.Reset {
		t.Errorf("R not bound to reset: %+v %v", cmd, ok)
	}
	if _, ok := km.Translate("Equal", false); ok {
		t.Error("Equal still bound")
	}

	if err := km.Override(map[string]string{"X": "self-destruct"}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestPointer(t *testing.T) {
	var p Pointer
	size := vmath.Vec2{X: 1024, Y: 1024}

	if cmds := p.Update(PointerSample{X: 100, Y: 100, Left: true}, size); cmds != nil {
		t.Fatalf("first sample produced %v", cmds)
	}

	cmds := p.Update(PointerSample{X: 110, Y: 95, Left: true}, size)
	if len(cmds) != 1 || cmds[0].Kind != params.Drag || cmds[0].Vec != (vmath.Vec2{X: 10, Y: -5}) {
		t.Fatalf("drag = %+v", cmds)
	}

	if cmds := p.Update(PointerSample{X: 110, Y: 95, Left: true, Right: true}, size); cmds != nil {
		t.Errorf("no motion produced %v", cmds)
	}

	cmds = p.Update(PointerSample{X: 512, Y: 0, Left: true, Middle: true, Right: true}, size)
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	if cmds[0].Kind != params.Drag || cmds[1].Kind != params.ZeroOffset || cmds[2].Kind != params.PlaceOffset {
		t.Errorf("wrong order: %v %v %v", cmds[0].Kind, cmds[1].Kind, cmds[2].Kind)
	}
	if cmds[2].Vec != (vmath.Vec2{X: 512, Y: 0}) || cmds[2].Size != size {
		t.Errorf("place payload = %+v", cmds[2])
	}

	if cmds := p.Update(PointerSample{X: 600, Y: 600}, size); cmds != nil {
		t.Errorf("motion without buttons produced %v", cmds)
	}

	p.Reset()
	if cmds := p.Update(PointerSample{X: 0, Y: 0, Left: true}, size); cmds != nil {
		t.Errorf("sample after reset produced %v", cmds)
	}
}
