// internal/event/event.go
package event

import "go-topdown-arena/internal/types"

// EventType — тип события
type EventType string

// Event — уведомление о том, что уже произошло в мире.
// Запросы на действие (например, SpawnEvent) идут через свои очереди, а не сюда.
type Event struct {
	Type EventType
	Data interface{}
}

// CommandFailure — данные события CommandFailed.
type CommandFailure struct {
	Entity types.EntityID
	Err    error
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — синхронный диспетчер событий. Вызывается только из потока тика.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на один или несколько типов событий.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Dispatch отправляет событие подписчикам в порядке подписки.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
