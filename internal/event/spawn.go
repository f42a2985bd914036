// internal/event/spawn.go
package event

import "github.com/go-gl/mathgl/mgl32"

// SpawnEvent — запрос на создание снаряда. Живёт ровно один тик.
type SpawnEvent struct {
	Origin    mgl32.Vec2
	Direction mgl32.Vec2
	Angle     float32
}

// SpawnQueue — очередь запросов одного тика: один писатель (ввод), один читатель (снаряды).
type SpawnQueue struct {
	events []SpawnEvent
}

func NewSpawnQueue() *SpawnQueue {
	return &SpawnQueue{events: make([]SpawnEvent, 0, 4)}
}

// Push добавляет событие в конец очереди.
func (q *SpawnQueue) Push(e SpawnEvent) {
	q.events = append(q.events, e)
}

// Drain возвращает все события в порядке поступления и очищает очередь.
// Возвращённый срез принадлежит вызывающему.
func (q *SpawnQueue) Drain() []SpawnEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]SpawnEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

func (q *SpawnQueue) Len() int {
	return len(q.events)
}
