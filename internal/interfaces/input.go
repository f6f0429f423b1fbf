package interfaces

// Intent is the logical input sampled once per display frame.
type Intent struct {
	Left, Right bool
	Jump        bool
	Dash        bool

	// Fire is a discrete trigger: true only on the frame the shot was requested.
	Fire         bool
	AimX, AimY   float64 // arena coordinates
	PauseToggled bool
}

// Direction folds Left/Right into -1, 0 or 1.
func (i Intent) Direction() int {
	dir := 0
	if i.Left {
		dir--
	}
	if i.Right {
		dir++
	}
	return dir
}

// InputSource is polled by the session before each frame's ticks.
type InputSource interface {
	Poll() Intent
}

// StaticInput replays a fixed intent; useful for headless runs and tests.
type StaticInput struct {
	Intent Intent
}

func (s *StaticInput) Poll() Intent {
	intent := s.Intent
	s.Intent.Fire = false
	s.Intent.PauseToggled = false
	return intent
}
