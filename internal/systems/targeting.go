package systems

import "rogue-engine/internal/domain"

// NearestVisibleActor ищет ближайшего видимого актера, кроме exclude, не дальше maxRange.
// При равной дистанции побеждает первый найденный (строгое сравнение).
func NearestVisibleActor(m *domain.GameMap, from domain.Position, exclude *domain.Entity, maxRange int) *domain.Entity {
	var target *domain.Entity
	closest := float64(maxRange) + 1.0

	for _, actor := range m.Actors() {
		if actor == exclude || !m.IsVisible(actor.Pos) {
			continue
		}
		if d := from.DistanceTo(actor.Pos); d < closest {
			target = actor
			closest = d
		}
	}
	return target
}

// ActorsInRadius - все живые актеры в евклидовом радиусе от center
func ActorsInRadius(m *domain.GameMap, center domain.Position, radius int) []*domain.Entity {
	var hit []*domain.Entity
	for _, actor := range m.Actors() {
		if actor.Pos.DistanceTo(center) <= float64(radius) {
			hit = append(hit, actor)
		}
	}
	return hit
}

// ValidateTargetCell - клетку можно выбрать целью, только если она сейчас видна.
func ValidateTargetCell(m *domain.GameMap, target *domain.Position) error {
	if target == nil {
		return domain.Impossible("You must select a target.")
	}
	if !m.IsVisible(*target) {
		return domain.Impossible("You cannot target an area that you cannot see.")
	}
	return nil
}
