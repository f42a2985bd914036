// internal/system/command.go
package system

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"go-topdown-arena/internal/component"
	"go-topdown-arena/internal/config"
	"go-topdown-arena/internal/entity"
	"go-topdown-arena/internal/event"
	"go-topdown-arena/internal/utils"
)

// ErrAttackNotImplemented возвращается, когда в начале очереди оказывается Attack.
var ErrAttackNotImplemented = errors.New("attack command is not implemented")

// CommandSystem исполняет первую команду в очереди каждой скриптовой сущности.
type CommandSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	arrival         config.ArrivalMode
	epsilon         float32
	logger          *zap.Logger
}

func NewCommandSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, cfg config.CommandConfig, logger *zap.Logger) *CommandSystem {
	return &CommandSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		arrival:         cfg.Arrival,
		epsilon:         cfg.Epsilon,
		logger:          logger.Named("command"),
	}
}

// Update возвращает ошибки команд, которые не удалось исполнить.
// Такие команды остаются в очереди.
func (s *CommandSystem) Update(deltaTime float64) error {
	var errs []error
	for id, queue := range s.ecs.CommandQueues {
		cmd, ok := queue.Peek()
		if !ok {
			continue
		}
		t, vel := s.ecs.Transforms[id], s.ecs.Velocities[id]
		if t == nil || vel == nil {
			continue
		}

		switch c := cmd.(type) {
		case component.MoveTo:
			if s.moveTo(t, vel, c.Target, float32(deltaTime)) {
				queue.Complete()
				s.logger.Debug("move completed", zap.Uint64("entity", uint64(id)), zap.Float32s("target", c.Target[:]))
				s.eventDispatcher.Dispatch(event.Event{Type: event.CommandCompleted, Data: id})
			}
		case component.Attack:
			err := fmt.Errorf("entity %d: %w", id, ErrAttackNotImplemented)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.CommandFailed,
				Data: event.CommandFailure{Entity: id, Err: err},
			})
			errs = append(errs, err)
		default:
			errs = append(errs, fmt.Errorf("entity %d: unknown command %T", id, cmd))
		}
	}
	return errors.Join(errs...)
}

// moveTo выставляет скорость по осям и сообщает, прибыла ли сущность.
func (s *CommandSystem) moveTo(t *component.Transform, vel *component.Velocity, target mgl32.Vec2, dt float32) bool {
	if s.arrival == config.ArrivalExact {
		return moveToExact(t, vel, target)
	}
	return moveToTolerant(t, vel, target, s.epsilon, dt)
}

// moveToExact сравнивает position + velocity с целью строго.
// Ось прибыла только при точном равенстве. По прибытии скорость обнуляется, позиция не трогается.
func moveToExact(t *component.Transform, vel *component.Velocity, target mgl32.Vec2) bool {
	predicted := t.XY().Add(vel.Value)
	arrived := 0
	for axis := 0; axis < 2; axis++ {
		switch {
		case predicted[axis] > target[axis]:
			vel.Value[axis] = -vel.Speed
		case predicted[axis] < target[axis]:
			vel.Value[axis] = vel.Speed
		default:
			arrived++
		}
	}
	if arrived < 2 {
		return false
	}
	vel.Value = mgl32.Vec2{}
	return true
}

// moveToTolerant считает ось прибывшей, если до цели не больше epsilon + шаг за тик.
// Прибывшая ось ставится точно в цель, её скорость обнуляется.
func moveToTolerant(t *component.Transform, vel *component.Velocity, target mgl32.Vec2, epsilon, dt float32) bool {
	pos := t.XY()
	reach := epsilon + vel.Speed*dt
	arrived := 0
	for axis := 0; axis < 2; axis++ {
		remaining := target[axis] - pos[axis]
		if utils.Abs32(remaining) <= reach {
			pos[axis] = target[axis]
			vel.Value[axis] = 0
			arrived++
			continue
		}
		vel.Value[axis] = utils.Sign(remaining) * vel.Speed
	}
	t.SetXY(pos)
	return arrived == 2
}
