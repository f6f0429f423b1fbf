package state

import (
	"go-echo-arena/internal/interfaces"
	"go-echo-arena/internal/ui"
	"go-echo-arena/pkg/render"
)

// Session is what the screens need from the simulation.
type Session interface {
	interfaces.SessionControl
	Frame() int
	Score() int
	Depth() int
}

// Context bundles the collaborators shared by every screen.
type Context struct {
	Session  Session
	Renderer *render.ArenaRenderer
	Effects  *render.Effects
	HUD      *ui.HUD
}
