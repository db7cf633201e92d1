package systems

import (
	"fmt"
	"strings"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ApplyAttack - рукопашный удар. Урон = power - defense;
// HP снимается только при строго положительном уроне.
func ApplyAttack(env Env, attacker, target *domain.Entity) int {
	damage := attacker.Power() - target.Defense()

	logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"attacker_id": attacker.ID,
		"target_id":   target.ID,
		"power":       attacker.Power(),
		"defense":     target.Defense(),
		"damage":      damage,
	}).Debug("Attack resolved.")

	fg := domain.ColorEnemyAttack
	if attacker.IsPlayer() {
		fg = domain.ColorPlayerAttack
	}

	description := fmt.Sprintf("%s attacks %s", capitalize(attacker.Name), target.Name)
	if damage <= 0 {
		env.Log.Add(description+" but does no damage.", fg)
		return 0
	}

	env.Log.Add(fmt.Sprintf("%s for %d hit points.", description, damage), fg)
	ApplyDamage(env, target, damage)
	return damage
}

// ApplyDamage снимает HP и проводит смерть, если удар оказался смертельным.
func ApplyDamage(env Env, target *domain.Entity, amount int) {
	if target.Fighter == nil {
		return
	}
	if target.Fighter.TakeDamage(amount) {
		Die(env, target)
	}
}

// Die превращает актера в останки, пишет некролог и отдает опыт игроку.
func Die(env Env, e *domain.Entity) {
	xp := 0
	if e.Level != nil {
		xp = e.Level.XPGiven
	}

	var msg, fg string
	if e.IsPlayer() {
		msg, fg = "You died!", domain.ColorPlayerDie
	} else {
		msg, fg = fmt.Sprintf("%s is dead!", e.Name), domain.ColorEnemyDie
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"entity_id": e.ID,
		"name":      e.Name,
		"xp_given":  xp,
	}).Info("Actor died.")

	e.BecomeCorpse()
	env.Log.Add(msg, fg)

	if !e.IsPlayer() && env.Player != nil && env.Player.Level != nil {
		env.Player.Level.AddXP(xp, env.Log)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
