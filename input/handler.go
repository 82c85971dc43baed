package input

import (
	"github.com/gdamore/tcell/v2"
)

// InputHandler parses tcell events into intents
// Mouse events also feed the pointer source, if one is attached
type InputHandler struct {
	keys    *KeyTable
	pointer *PointerSource
	buttons tcell.ButtonMask
}

// NewInputHandler creates a handler; keys nil means the default table
func NewInputHandler(keys *KeyTable, pointer *PointerSource) *InputHandler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &InputHandler{keys: keys, pointer: pointer}
}

// HandleEvent parses a tcell event into an Intent
// Unbound keys and unknown events yield IntentNone
func (h *InputHandler) HandleEvent(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Intent{Type: h.keys.Lookup(ev)}
	case *tcell.EventMouse:
		return h.handleMouse(ev)
	case *tcell.EventResize:
		if h.pointer != nil {
			_, rows := ev.Size()
			h.pointer.SetRows(rows)
		}
		return Intent{Type: IntentResize}
	}
	return Intent{Type: IntentNone}
}

// handleMouse flaps on the press edge of the left button only, tcell
// repeats the button mask on every motion event while it is held
func (h *InputHandler) handleMouse(ev *tcell.EventMouse) Intent {
	_, y := ev.Position()
	if h.pointer != nil {
		h.pointer.Move(y)
	}

	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
	h.buttons = buttons

	if pressed {
		return Intent{Type: IntentFlap}
	}
	return Intent{Type: IntentPointerMove}
}
