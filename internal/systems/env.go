package systems

import (
	"math/rand"

	"rogue-engine/internal/domain"
)

// Env - явный контекст хода: карта, игрок, лента сообщений и ГСЧ.
// Передается в каждое действие вместо глобального состояния.
type Env struct {
	Map    *domain.GameMap
	Player *domain.Entity
	Log    *domain.MessageLog
	Rng    *rand.Rand
}
