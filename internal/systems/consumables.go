package systems

import (
	"fmt"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ActivateConsumable применяет эффект предмета. target нужен только
// расходникам с выбором клетки (Confusion, Fireball).
// Предмет расходуется ровно один раз и только при успехе.
func ActivateConsumable(env Env, consumer, item *domain.Entity, target *domain.Position) error {
	logger.Log.WithFields(logrus.Fields{
		"component": "consumable_system",
		"consumer":  consumer.ID,
		"item":      item.Name,
		"target":    target,
	}).Debug("Activating consumable.")

	switch c := item.Consumable.(type) {
	case domain.Healing:
		return activateHealing(env, consumer, item, c)
	case domain.Lightning:
		return activateLightning(env, consumer, item, c)
	case domain.Confusion:
		return activateConfusion(env, consumer, item, c, target)
	case domain.Fireball:
		return activateFireball(env, consumer, item, c, target)
	default:
		return domain.Impossible(fmt.Sprintf("The %s cannot be used.", item.Name))
	}
}

func activateHealing(env Env, consumer, item *domain.Entity, c domain.Healing) error {
	if consumer.Fighter == nil {
		return domain.Impossible("Your health is already full.")
	}
	recovered := consumer.Fighter.Heal(c.Amount)
	if recovered <= 0 {
		return domain.Impossible("Your health is already full.")
	}

	env.Log.Add(fmt.Sprintf("You consume the %s, and recover %d HP!", item.Name, recovered), domain.ColorHealthRecovered)
	Consume(env, item, consumer)
	return nil
}

func activateLightning(env Env, consumer, item *domain.Entity, c domain.Lightning) error {
	target := NearestVisibleActor(env.Map, consumer.Pos, consumer, c.MaxRange)
	if target == nil {
		return domain.Impossible("No enemy is close enough to strike.")
	}

	env.Log.Add(fmt.Sprintf("A lightning bolt strikes the %s with a loud thunder, for %d damage!", target.Name, c.Damage), domain.ColorWhite)
	ApplyDamage(env, target, c.Damage)
	Consume(env, item, consumer)
	return nil
}

func activateConfusion(env Env, consumer, item *domain.Entity, c domain.Confusion, target *domain.Position) error {
	if err := ValidateTargetCell(env.Map, target); err != nil {
		return err
	}
	victim := env.Map.ActorAt(*target)
	if victim == nil {
		return domain.Impossible("You must select an enemy to target.")
	}
	if victim == consumer {
		return domain.Impossible("You cannot confuse yourself!")
	}

	env.Log.Add(fmt.Sprintf("The eyes of the %s look vacant, as it starts to stumble around!", victim.Name), domain.ColorStatusEffectApplied)
	victim.AI = domain.NewConfusedAI(victim.AI, c.Turns)
	Consume(env, item, consumer)
	return nil
}

// activateFireball: провал только если в радиусе не оказалось ни одного актера,
// расход - один раз после всех попаданий.
func activateFireball(env Env, consumer, item *domain.Entity, c domain.Fireball, target *domain.Position) error {
	if err := ValidateTargetCell(env.Map, target); err != nil {
		return err
	}

	victims := ActorsInRadius(env.Map, *target, c.Radius)
	if len(victims) == 0 {
		return domain.Impossible("There are no targets in the radius.")
	}

	for _, victim := range victims {
		env.Log.Add(fmt.Sprintf("The %s is engulfed in a fiery explosion, taking %d damage!", victim.Name, c.Damage), domain.ColorWhite)
		ApplyDamage(env, victim, c.Damage)
	}
	Consume(env, item, consumer)
	return nil
}
