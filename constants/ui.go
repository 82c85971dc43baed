package constants

// Banner text per phase
const (
	TextTitle    = "FLAPPY"
	TextStart    = "press space to flap"
	TextPaused   = "PAUSED"
	TextGameOver = "GAME OVER"
	TextRestart  = "press enter to restart"
	TextQuitHint = "p pause  m pointer  +/- volume  q quit"
)

// ScoreRow is the terminal row where the score is drawn
const ScoreRow = 1
