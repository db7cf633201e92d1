package systems

import (
	"fmt"

	"rogue-engine/internal/domain"
)

// Attribute - что прокачать при повышении уровня
type Attribute string

const (
	AttributeConstitution Attribute = "constitution"
	AttributeStrength     Attribute = "strength"
	AttributeAgility      Attribute = "agility"
)

// ApplyLevelUp повышает уровень выбранной характеристикой. Ход не тратит.
func ApplyLevelUp(env Env, actor *domain.Entity, attr Attribute) error {
	if actor.Level == nil || actor.Fighter == nil || !actor.Level.RequiresLevelUp() {
		return domain.Impossible("You are not ready to level up.")
	}

	switch attr {
	case AttributeConstitution:
		actor.Level.IncreaseMaxHP(actor.Fighter, domain.LevelUpHPAmount, env.Log)
	case AttributeStrength:
		actor.Level.IncreasePower(actor.Fighter, domain.LevelUpPowerAmount, env.Log)
	case AttributeAgility:
		actor.Level.IncreaseDefense(actor.Fighter, domain.LevelUpDefenseAmount, env.Log)
	default:
		return fmt.Errorf("unknown attribute %q", attr)
	}
	return nil
}
