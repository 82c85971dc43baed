package input

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve config action strings to bindings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":    IntentQuit,
	"flap":    IntentFlap,
	"confirm": IntentConfirm,
	"restart": IntentRestart,
	"pause":   IntentPause,
	"pointer": IntentTogglePointer,

	"volume_up":   IntentVolumeUp,
	"volume_down": IntentVolumeDown,
}

// intentNames is the reverse of actionRegistry plus intents that have no binding
var intentNames = func() map[IntentType]string {
	names := map[IntentType]string{
		IntentResize:      "resize",
		IntentPointerMove: "pointer_move",
	}
	for name, it := range actionRegistry {
		names[it] = name
	}
	return names
}()

// ActionIntent looks up an intent by action name
func ActionIntent(name string) (IntentType, bool) {
	it, ok := actionRegistry[name]
	return it, ok
}

// String returns the action name
func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}
