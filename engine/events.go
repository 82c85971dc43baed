package engine

// EventType identifies something that happened during a tick
type EventType int

const (
	EventStart   EventType = iota // first flap left WaitingToStart
	EventFlap                     // flap impulse applied
	EventScore                    // one pipe pair passed
	EventHit                      // collision detected
	EventDie                      // run ended
	EventRestart                  // back to WaitingToStart
	EventPause
	EventResume
)

var eventNames = [...]string{
	EventStart:   "Start",
	EventFlap:    "Flap",
	EventScore:   "Score",
	EventHit:     "Hit",
	EventDie:     "Die",
	EventRestart: "Restart",
	EventPause:   "Pause",
	EventResume:  "Resume",
}

func (e EventType) String() string {
	if int(e) < 0 || int(e) >= len(eventNames) {
		return "Unknown"
	}
	return eventNames[e]
}
