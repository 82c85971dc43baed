package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flappy/constants"
)

func TestHandleEventDefaultKeys(t *testing.T) {
	h := NewInputHandler(nil, nil)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"space flaps", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentFlap},
		{"k flaps", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), IntentFlap},
		{"up flaps", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), IntentFlap},
		{"enter confirms", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentConfirm},
		{"r restarts", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentRestart},
		{"p pauses", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentPause},
		{"plus raises volume", tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), IntentVolumeUp},
		{"minus lowers volume", tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), IntentVolumeDown},
		{"pause key pauses", tcell.NewEventKey(tcell.KeyPause, 0, tcell.ModNone), IntentPause},
		{"m toggles pointer", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentTogglePointer},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"esc quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl+c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.HandleEvent(tt.ev).Type; got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestHandleEventResize(t *testing.T) {
	p := NewPointerSource(50, 32, 24)
	h := NewInputHandler(nil, p)

	if got := h.HandleEvent(tcell.NewEventResize(100, 48)).Type; got != IntentResize {
		t.Errorf("Expected resize intent, got %s", got)
	}
	if p.rows != 48 {
		t.Errorf("Expected pointer rows updated to 48, got %d", p.rows)
	}
}

func TestHandleEventMouseClickEdge(t *testing.T) {
	p := NewPointerSource(50, 32, 16)
	h := NewInputHandler(nil, p)

	// Press flaps once
	in := h.HandleEvent(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
	if in.Type != IntentFlap {
		t.Errorf("Expected flap on press, got %s", in.Type)
	}

	// Dragging with the button held does not flap again
	in = h.HandleEvent(tcell.NewEventMouse(3, 6, tcell.Button1, tcell.ModNone))
	if in.Type != IntentPointerMove {
		t.Errorf("Expected pointer move while held, got %s", in.Type)
	}

	// Release then press flaps again
	h.HandleEvent(tcell.NewEventMouse(3, 6, tcell.ButtonNone, tcell.ModNone))
	in = h.HandleEvent(tcell.NewEventMouse(3, 6, tcell.Button1, tcell.ModNone))
	if in.Type != IntentFlap {
		t.Errorf("Expected flap on second press, got %s", in.Type)
	}

	// Pointer saw the last row
	_, y, ok := p.Position()
	want := (6.5/16)*constants.WorldHeight - 16
	if !ok || y != want {
		t.Errorf("Expected pointer y %v, got %v ok=%v", want, y, ok)
	}
}

func TestPointerSource(t *testing.T) {
	p := NewPointerSource(50, 32, 8)

	if _, _, ok := p.Position(); ok {
		t.Error("Expected no position before the mouse is seen")
	}

	p.Move(0)
	x, y, ok := p.Position()
	if !ok || x != 50 || y != constants.WorldHeight/16-16 {
		t.Errorf("Row 0: got (%v,%v,%v)", x, y, ok)
	}

	p.Move(7)
	_, y, _ = p.Position()
	if want := 15.0/16*constants.WorldHeight - 16; y != want {
		t.Errorf("Row 7: expected y %v, got %v", want, y)
	}

	p.SetRows(0)
	if _, _, ok := p.Position(); ok {
		t.Error("Expected no position with zero rows")
	}

	p.SetRows(8)
	p.Reset()
	if _, _, ok := p.Position(); ok {
		t.Error("Expected no position after reset")
	}
}

func TestIntentString(t *testing.T) {
	if IntentFlap.String() != "flap" {
		t.Errorf("Expected flap, got %s", IntentFlap.String())
	}
	if IntentResize.String() != "resize" {
		t.Errorf("Expected resize, got %s", IntentResize.String())
	}
	if IntentType(200).String() != "unknown" {
		t.Errorf("Expected unknown for out of range intent")
	}
}
