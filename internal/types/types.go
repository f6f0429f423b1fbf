package types

// EntityID identifies an entity inside one session's ECS.
type EntityID uint64
