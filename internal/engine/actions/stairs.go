package actions

import (
	"rogue-engine/internal/domain"
	"rogue-engine/internal/systems"
)

// TakeStairs - спуск на следующий этаж. Генерацию и сообщение делает движок по событию.
type TakeStairs struct{}

func (TakeStairs) Name() string  { return "DESCEND" }
func (TakeStairs) sealedAction() {}

func performStairs(env systems.Env, actor *domain.Entity) (Result, error) {
	if actor.Pos != env.Map.DownstairsLocation {
		return Result{}, domain.Impossible("There are no stairs here.")
	}
	return Result{Event: domain.EventDescend}, nil
}
