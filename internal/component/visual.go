// internal/component/visual.go
package component

// DamageFlash marks an entity that should be drawn in the hit color.
type DamageFlash struct {
	Timer    float64 // ms left
	Duration float64
}
