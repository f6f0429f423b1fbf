// internal/interfaces/game_context.go
package interfaces

import "go-echo-arena/internal/component"

// SessionControl is the control surface frontends drive. Transitions that
// are not allowed from the current mode are ignored and report false.
type SessionControl interface {
	Start() bool
	Pause() bool
	Resume() bool
	Restart() bool
	Quit() bool
	Mode() component.Mode
}
