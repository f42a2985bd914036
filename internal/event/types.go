// internal/event/types.go
package event

const (
	ProjectileSpawned   EventType = "ProjectileSpawned"   // Data: types.EntityID
	ProjectileDespawned EventType = "ProjectileDespawned" // Data: types.EntityID
	CameraLockToggled   EventType = "CameraLockToggled"   // Data: component.CameraMode
	CommandCompleted    EventType = "CommandCompleted"    // Data: types.EntityID
	CommandFailed       EventType = "CommandFailed"       // Data: CommandFailure
)
