// internal/state/state.go
package state

import "go-topdown-arena/internal/input"

// State — интерфейс для всех состояний
type State interface {
	Name() string
	Enter()
	Update(deltaTime float64, dev input.Device) error
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current возвращает текущее состояние (может быть nil).
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64, dev input.Device) error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update(deltaTime, dev)
}
