package system

import (
	"testing"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/entity"
)

func TestStateSystemTransitions(t *testing.T) {
	ecs := entity.NewECS()
	s := NewStateSystem(ecs)

	if s.Current() != component.ModeStart {
		t.Fatalf("initial mode = %s", s.Current())
	}
	if s.Switch(component.ModePaused) {
		t.Error("START -> PAUSED allowed")
	}
	if !s.Switch(component.ModePlaying) || !s.Switch(component.ModePaused) {
		t.Fatal("START -> PLAYING -> PAUSED rejected")
	}
	if s.Switch(component.ModeGameOver) {
		t.Error("PAUSED -> GAME_OVER allowed")
	}
	if !s.Switch(component.ModePlaying) || !s.Switch(component.ModeGameOver) {
		t.Fatal("PAUSED -> PLAYING -> GAME_OVER rejected")
	}
	if s.Switch(component.ModePaused) {
		t.Error("GAME_OVER -> PAUSED allowed")
	}
	if !s.Switch(component.ModeStart) {
		t.Error("GAME_OVER -> START rejected")
	}
}

func TestResetKeepsMode(t *testing.T) {
	ecs := entity.NewECS()
	s := NewStateSystem(ecs)
	s.Switch(component.ModePlaying)
	ecs.Spawn(0, 0, 1, 1)

	ecs.Reset()
	if s.Current() != component.ModePlaying {
		t.Errorf("mode = %s after Reset", s.Current())
	}
	if len(ecs.Positions) != 0 {
		t.Error("Reset kept entities")
	}
}
