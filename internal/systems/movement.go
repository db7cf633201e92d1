package systems

import "rogue-engine/internal/domain"

// MovementResult - результат проверки шага. Не меняет состояние мира!
type MovementResult struct {
	Dest        domain.Position
	OutOfBounds bool
	IsWall      bool
	BlockedBy   *domain.Entity // сущность, блокирующая проход
}

func (r MovementResult) CanMove() bool {
	return !r.OutOfBounds && !r.IsWall && r.BlockedBy == nil
}

// CalculateMove проверяет, можно ли шагнуть на (dx, dy).
func CalculateMove(m *domain.GameMap, e *domain.Entity, dx, dy int) MovementResult {
	dest := e.Pos.Shift(dx, dy)
	res := MovementResult{Dest: dest}

	// 1. Границы
	if !m.InBounds(dest) {
		res.OutOfBounds = true
		return res
	}

	// 2. Стены
	if !m.IsWalkable(dest) {
		res.IsWall = true
		return res
	}

	// 3. Блокирующие сущности
	res.BlockedBy = m.BlockingEntityAt(dest)
	return res
}
