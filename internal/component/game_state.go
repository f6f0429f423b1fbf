package component

// Mode is the session lifecycle state.
type Mode int

const (
	ModeStart Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "START"
	case ModePlaying:
		return "PLAYING"
	case ModePaused:
		return "PAUSED"
	case ModeGameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}
