// internal/component/command.go
package component

import "github.com/go-gl/mathgl/mgl32"

// Command — намерение скриптовой сущности.
type Command interface {
	command()
}

// MoveTo — идти к точке.
type MoveTo struct {
	Target mgl32.Vec2
}

// Attack — атака. Пока не реализована.
type Attack struct{}

func (MoveTo) command() {}
func (Attack) command() {}

// CommandQueue — FIFO намерений. Команда снимается только по завершении.
type CommandQueue struct {
	items []Command
}

// NewCommandQueue создаёт очередь с начальными командами.
func NewCommandQueue(cmds ...Command) *CommandQueue {
	q := &CommandQueue{}
	for _, c := range cmds {
		q.Push(c)
	}
	return q
}

// Push добавляет команду в конец.
func (q *CommandQueue) Push(c Command) {
	q.items = append(q.items, c)
}

// Peek возвращает первую команду без удаления.
func (q *CommandQueue) Peek() (Command, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return q.items[0], true
}

// Complete снимает первую команду.
func (q *CommandQueue) Complete() {
	if len(q.items) == 0 {
		return
	}
	q.items[0] = nil
	q.items = q.items[1:]
}

func (q *CommandQueue) Len() int {
	return len(q.items)
}
