package actions

import (
	"rogue-engine/internal/domain"
	"rogue-engine/internal/systems"
)

// Movement - шаг на (Dx, Dy) без атаки.
type Movement struct {
	Dx, Dy int
}

func (Movement) Name() string  { return "MOVE" }
func (Movement) sealedAction() {}

func performMovement(env systems.Env, actor *domain.Entity, a Movement) error {
	res := systems.CalculateMove(env.Map, actor, a.Dx, a.Dy)
	if !res.CanMove() {
		return domain.Impossible("That way is blocked.")
	}
	actor.Move(a.Dx, a.Dy)
	return nil
}

// Bump - основное действие клавиш направления: атака, если в клетке актер, иначе шаг.
type Bump struct {
	Dx, Dy int
}

func (Bump) Name() string  { return "BUMP" }
func (Bump) sealedAction() {}

// Resolve выбирает Melee или Movement. Ровно одно из двух.
func (b Bump) Resolve(m *domain.GameMap, actor *domain.Entity) Action {
	if m.ActorAt(actor.Pos.Shift(b.Dx, b.Dy)) != nil {
		return Melee{Dx: b.Dx, Dy: b.Dy}
	}
	return Movement{Dx: b.Dx, Dy: b.Dy}
}
