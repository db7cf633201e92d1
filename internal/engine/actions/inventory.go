package actions

import "rogue-engine/internal/domain"

// Pickup - поднять первый предмет под ногами.
type Pickup struct{}

func (Pickup) Name() string  { return "PICKUP" }
func (Pickup) sealedAction() {}

// Drop - выложить предмет из инвентаря.
type Drop struct {
	Item *domain.Entity
}

func (Drop) Name() string  { return "DROP" }
func (Drop) sealedAction() {}

// Equip - надеть или снять предмет.
type Equip struct {
	Item *domain.Entity
}

func (Equip) Name() string  { return "EQUIP" }
func (Equip) sealedAction() {}
