package actions

import (
	"fmt"

	"rogue-engine/internal/domain"
	"rogue-engine/internal/systems"
)

// ItemAction - применение расходника. Target заполнен только после режима выбора цели.
type ItemAction struct {
	Item   *domain.Entity
	Target *domain.Position
}

func (ItemAction) Name() string  { return "USE" }
func (ItemAction) sealedAction() {}

func performItem(env systems.Env, actor *domain.Entity, a ItemAction) error {
	if a.Item == nil || a.Item.Consumable == nil {
		return domain.Impossible("You cannot use that.")
	}
	if actor.Inventory == nil || actor.Inventory.IndexOf(a.Item) < 0 {
		return domain.Impossible(fmt.Sprintf("You do not have the %s.", a.Item.Name))
	}
	return systems.ActivateConsumable(env, actor, a.Item, a.Target)
}
