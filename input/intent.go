package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Esc, q, Ctrl+C
	IntentResize // Terminal resize event

	// Game intents
	IntentFlap          // Space, Up, k, left click
	IntentConfirm       // Enter: flap while playing, restart after a crash
	IntentRestart       // r
	IntentPause         // p, Pause
	IntentTogglePointer // m: mouse steering on/off
	IntentVolumeUp      // +, =
	IntentVolumeDown    // -

	// Mouse
	IntentPointerMove // Mouse motion without a new click
)

// Intent is a parsed input event
type Intent struct {
	Type IntentType
}
