// internal/system/state.go
package system

import (
	"log"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/entity"
)

// transitions lists the modes each mode may move to.
var transitions = map[component.Mode][]component.Mode{
	component.ModeStart:    {component.ModePlaying},
	component.ModePlaying:  {component.ModePaused, component.ModeGameOver, component.ModeStart, component.ModePlaying},
	component.ModePaused:   {component.ModePlaying, component.ModeStart},
	component.ModeGameOver: {component.ModePlaying, component.ModeStart},
}

// StateSystem guards the session lifecycle stored on the ECS.
type StateSystem struct {
	ecs *entity.ECS
}

func NewStateSystem(ecs *entity.ECS) *StateSystem {
	return &StateSystem{ecs: ecs}
}

// CanSwitch reports whether the current mode may move to next.
func (s *StateSystem) CanSwitch(next component.Mode) bool {
	for _, m := range transitions[s.ecs.Mode] {
		if m == next {
			return true
		}
	}
	return false
}

// Switch moves to next if the transition is allowed.
func (s *StateSystem) Switch(next component.Mode) bool {
	if !s.CanSwitch(next) {
		return false
	}
	prev := s.ecs.Mode
	s.ecs.Mode = next
	if prev != next {
		log.Printf("session: %s -> %s", prev, next)
	}
	return true
}

func (s *StateSystem) Current() component.Mode {
	return s.ecs.Mode
}
