package systems

import (
	"fmt"

	"rogue-engine/internal/domain"
)

// --- PICKUP ---

// TryPickup поднимает первый предмет в клетке актера (в порядке списка сущностей).
func TryPickup(env Env, actor *domain.Entity) error {
	if actor.Inventory == nil {
		return domain.Impossible("You cannot carry anything.")
	}

	for _, item := range env.Map.Items() {
		if item.Pos != actor.Pos {
			continue
		}
		if actor.Inventory.IsFull() {
			return domain.Impossible("Your inventory is full.")
		}

		env.Map.RemoveEntity(item)
		if err := actor.Inventory.Add(actor, item); err != nil {
			return err
		}
		env.Log.Add(fmt.Sprintf("You picked up the %s!", item.Name), domain.ColorWhite)
		return nil
	}

	return domain.Impossible("There is nothing here to pick up.")
}

// --- DROP ---

// TryDrop выкладывает предмет под ноги. Надетый предмет сначала снимается.
func TryDrop(env Env, actor *domain.Entity, item *domain.Entity) error {
	if actor.Inventory == nil || actor.Inventory.IndexOf(item) < 0 {
		return domain.Impossible("You do not have that item.")
	}

	actor.Equipment.Unequip(item, env.Log)
	actor.Inventory.Remove(item)

	item.Pos = actor.Pos
	env.Map.AddEntity(item)
	env.Log.Add(fmt.Sprintf("You dropped the %s.", item.Name), domain.ColorWhite)
	return nil
}

// --- EQUIP ---

// TryEquip переключает предмет в подходящем слоте
func TryEquip(env Env, actor *domain.Entity, item *domain.Entity) error {
	if item.Equippable == nil {
		return domain.Impossible(fmt.Sprintf("The %s cannot be equipped.", item.Name))
	}
	if actor.Equipment == nil || actor.Inventory == nil || actor.Inventory.IndexOf(item) < 0 {
		return domain.Impossible("You do not have that item.")
	}
	actor.Equipment.Toggle(item, env.Log)
	return nil
}

// --- CONSUME ---

// Consume убирает использованный предмет из инвентаря владельца.
// Владелец ищется по обратной ссылке предмета, fallback - тот, кто использовал.
func Consume(env Env, item *domain.Entity, user *domain.Entity) {
	holder := user
	if item.Owner.Kind == domain.OwnerInventory {
		if h := env.Map.GetEntity(item.Owner.Holder); h != nil {
			holder = h
		}
	}
	if holder != nil && holder.Inventory != nil {
		holder.Inventory.Remove(item)
	}
}
