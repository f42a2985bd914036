// internal/types/types.go
package types

// EntityID — идентификатор сущности. Ноль никогда не выдаётся.
type EntityID uint64

// NoEntity — пустой идентификатор.
const NoEntity EntityID = 0
