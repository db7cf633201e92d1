package actions

import (
	"rogue-engine/internal/domain"
	"rogue-engine/internal/systems"
)

// Melee - удар по актеру в соседней клетке.
type Melee struct {
	Dx, Dy int
}

func (Melee) Name() string  { return "MELEE" }
func (Melee) sealedAction() {}

func performMelee(env systems.Env, actor *domain.Entity, a Melee) error {
	// 1. Цель должна быть живым актером
	target := env.Map.ActorAt(actor.Pos.Shift(a.Dx, a.Dy))
	if target == nil || target == actor {
		return domain.Impossible("Nothing to attack.")
	}

	// 2. Бой. Нулевой урон - тоже валидный исход
	systems.ApplyAttack(env, actor, target)
	return nil
}
