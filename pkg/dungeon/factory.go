package dungeon

import (
	"errors"
	"fmt"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrUnknownSpawn - в реестре нет шаблона с таким именем
var ErrUnknownSpawn = errors.New("dungeon: unknown spawn name")

// PlayerID - постоянный ID игрока, не меняется между этажами
var PlayerID = domain.PackEntityID(domain.KindPlayer, 0, 1)

// registry - все шаблоны по отображаемому имени. По нему же восстанавливаются сохранения.
var registry = map[string]EntityTemplate{
	Player.Name:          Player,
	Orc.Name:             Orc,
	Troll.Name:           Troll,
	HealthPotion.Name:    HealthPotion,
	LightningScroll.Name: LightningScroll,
	ConfusionScroll.Name: ConfusionScroll,
	FireballScroll.Name:  FireballScroll,
	Dagger.Name:          Dagger,
	Sword.Name:           Sword,
	LeatherArmor.Name:    LeatherArmor,
	ChainMail.Name:       ChainMail,
}

// Template возвращает шаблон по имени
func Template(name string) (EntityTemplate, bool) {
	t, ok := registry[name]
	return t, ok
}

// Spawn создает сущность по имени, не размещая ее на карте
func Spawn(name string, pos domain.Position) (*domain.Entity, error) {
	t, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpawn, name)
	}
	return t.Spawn(pos), nil
}

// SpawnAt создает сущность и регистрирует ее на карте
func SpawnAt(name string, m *domain.GameMap, pos domain.Position) (*domain.Entity, error) {
	e, err := Spawn(name, pos)
	if err != nil {
		return nil, err
	}
	m.AddEntity(e)
	return e, nil
}

// CreatePlayer создает игрока со стартовым снаряжением (надето молча)
func CreatePlayer() *domain.Entity {
	p := Player.Spawn(domain.Position{})
	p.ID = PlayerID

	for _, gear := range []EntityTemplate{Dagger, LeatherArmor} {
		item := gear.Spawn(domain.Position{})
		if err := p.Inventory.Add(p, item); err != nil {
			// надетым может быть только то, что лежит в инвентаре
			logger.Log.WithFields(logrus.Fields{
				"component": "factory",
				"item":      item.Name,
				"capacity":  p.Inventory.Capacity,
			}).WithError(err).Error("Starting gear does not fit into inventory.")
			continue
		}
		p.Equipment.Toggle(item, nil)
	}
	return p
}
