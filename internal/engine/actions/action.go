package actions

import (
	"fmt"

	"rogue-engine/internal/domain"
	"rogue-engine/internal/systems"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Action - одно намерение актера на один ход. Закрытый набор вариантов.
type Action interface {
	Name() string
	sealedAction()
}

// Result - что движок должен сделать после успешного действия.
type Result struct {
	Event domain.EventType
}

// Perform выполняет действие от имени actor.
// Ошибка domain.ImpossibleError - штатный отказ: мир не изменен, ход игрока не потрачен.
func Perform(env systems.Env, actor *domain.Entity, a Action) (Result, error) {
	logger.Log.WithFields(logrus.Fields{
		"component": "actions",
		"actor_id":  actor.ID,
		"action":    a.Name(),
	}).Debug("Performing action.")

	switch act := a.(type) {
	case Wait:
		return Result{}, nil
	case Movement:
		return Result{}, performMovement(env, actor, act)
	case Melee:
		return Result{}, performMelee(env, actor, act)
	case Bump:
		return Perform(env, actor, act.Resolve(env.Map, actor))
	case Pickup:
		return Result{}, systems.TryPickup(env, actor)
	case Drop:
		return Result{}, systems.TryDrop(env, actor, act.Item)
	case Equip:
		return Result{}, systems.TryEquip(env, actor, act.Item)
	case ItemAction:
		return Result{}, performItem(env, actor, act)
	case TakeStairs:
		return performStairs(env, actor)
	default:
		return Result{}, fmt.Errorf("unsupported action %T", a)
	}
}
