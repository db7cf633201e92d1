package dungeon

import "rogue-engine/internal/domain"

// FighterStats - стартовые боевые характеристики шаблона
type FighterStats struct {
	HP      int
	Defense int
	Power   int
}

// EntityTemplate определяет шаблон для создания сущности
type EntityTemplate struct {
	Name  string
	Kind  domain.EntityKind
	Char  string
	Fg    string
	Stats *FighterStats

	InventoryCap  int
	LevelUpBase   int
	LevelUpFactor int
	XPGiven       int
	Hostile       bool

	Consumable domain.Consumable
	Equippable *domain.Equippable
}

// Spawn создает новую сущность по шаблону. Каждый вызов - свежие компоненты.
func (t EntityTemplate) Spawn(pos domain.Position) *domain.Entity {
	e := &domain.Entity{
		Kind:        t.Kind,
		Name:        t.Name,
		Pos:         pos,
		Char:        t.Char,
		Fg:          t.Fg,
		Bg:          "#000000",
		RenderOrder: domain.RenderItem,
		Consumable:  t.Consumable,
	}

	if t.Equippable != nil {
		eq := *t.Equippable
		e.Equippable = &eq
	}

	// Актеры: все компоненты сразу, даже если часть не используется
	if t.Stats != nil {
		e.BlocksMovement = true
		e.RenderOrder = domain.RenderActor
		e.Fighter = domain.NewFighter(t.Stats.HP, t.Stats.Defense, t.Stats.Power)
		e.Inventory = domain.NewInventory(t.InventoryCap)
		e.Equipment = &domain.Equipment{}
		e.Level = &domain.Level{
			CurrentLevel:  1,
			LevelUpBase:   t.LevelUpBase,
			LevelUpFactor: t.LevelUpFactor,
			XPGiven:       t.XPGiven,
		}
		if t.Hostile {
			e.AI = domain.NewHostileAI()
		}
	}
	return e
}

// --- ИГРОК ---

var Player = EntityTemplate{
	Name:          "Player",
	Kind:          domain.KindPlayer,
	Char:          "@",
	Fg:            "#ffffff",
	Stats:         &FighterStats{HP: 30, Defense: 1, Power: 2},
	InventoryCap:  26,
	LevelUpBase:   200,
	LevelUpFactor: 150,
}

// --- ВРАГИ ---

var Orc = EntityTemplate{
	Name:          "Orc",
	Kind:          domain.KindMonster,
	Char:          "o",
	Fg:            "#3f7f3f",
	Stats:         &FighterStats{HP: 10, Defense: 0, Power: 3},
	LevelUpFactor: 150,
	XPGiven:       35,
	Hostile:       true,
}

var Troll = EntityTemplate{
	Name:          "Troll",
	Kind:          domain.KindMonster,
	Char:          "T",
	Fg:            "#007f00",
	Stats:         &FighterStats{HP: 16, Defense: 1, Power: 4},
	LevelUpFactor: 150,
	XPGiven:       100,
	Hostile:       true,
}

// --- РАСХОДНИКИ ---

var HealthPotion = EntityTemplate{
	Name:       "Health Potion",
	Kind:       domain.KindItem,
	Char:       "!",
	Fg:         "#7f00ff",
	Consumable: domain.Healing{Amount: 4},
}

var LightningScroll = EntityTemplate{
	Name:       "Lightning Scroll",
	Kind:       domain.KindItem,
	Char:       "~",
	Fg:         "#ffff00",
	Consumable: domain.Lightning{Damage: 20, MaxRange: 5},
}

var ConfusionScroll = EntityTemplate{
	Name:       "Confusion Scroll",
	Kind:       domain.KindItem,
	Char:       "~",
	Fg:         "#cf3fff",
	Consumable: domain.Confusion{Turns: 10},
}

var FireballScroll = EntityTemplate{
	Name:       "Fireball Scroll",
	Kind:       domain.KindItem,
	Char:       "~",
	Fg:         "#ff0000",
	Consumable: domain.Fireball{Damage: 12, Radius: 3},
}

// --- СНАРЯЖЕНИЕ ---

var Dagger = EntityTemplate{
	Name:       "Dagger",
	Kind:       domain.KindItem,
	Char:       "/",
	Fg:         "#00bfff",
	Equippable: &domain.Equippable{Type: domain.EquipmentWeapon, PowerBonus: 2},
}

var Sword = EntityTemplate{
	Name:       "Sword",
	Kind:       domain.KindItem,
	Char:       "/",
	Fg:         "#00bfff",
	Equippable: &domain.Equippable{Type: domain.EquipmentWeapon, PowerBonus: 4},
}

var LeatherArmor = EntityTemplate{
	Name:       "Leather Armor",
	Kind:       domain.KindItem,
	Char:       "[",
	Fg:         "#8b4513",
	Equippable: &domain.Equippable{Type: domain.EquipmentArmor, DefenseBonus: 1},
}

var ChainMail = EntityTemplate{
	Name:       "Chain Mail",
	Kind:       domain.KindItem,
	Char:       "[",
	Fg:         "#8b4513",
	Equippable: &domain.Equippable{Type: domain.EquipmentArmor, DefenseBonus: 3},
}
