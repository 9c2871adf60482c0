// internal/types/types.go
package types

// EntityID identifies an enemy, item or projectile for the lifetime of a run.
// Zero is never issued.
type EntityID uint64
