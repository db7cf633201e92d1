package domain

// Equippable - бонусы предмета, который можно надеть.
type Equippable struct {
	Type         EquipmentType `json:"type"`
	PowerBonus   int           `json:"powerBonus"`
	DefenseBonus int           `json:"defenseBonus"`
}

// TargetKind - нужна ли расходнику выбранная клетка
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetSingle
	TargetArea
)

// Consumable - закрытый набор эффектов расходников.
type Consumable interface {
	// Targeting сообщает, нужно ли переводить ввод в режим выбора цели (и радиус для области).
	Targeting() (TargetKind, int)
	sealedConsumable()
}

// Healing восстанавливает Amount HP
type Healing struct {
	Amount int
}

// Lightning бьет ближайшего видимого врага в пределах MaxRange
type Lightning struct {
	Damage   int
	MaxRange int
}

// Confusion сбивает с толку цель на Turns ходов
type Confusion struct {
	Turns int
}

// Fireball бьет всех актеров в радиусе от выбранной клетки
type Fireball struct {
	Damage int
	Radius int
}

func (Healing) Targeting() (TargetKind, int)   { return TargetNone, 0 }
func (Lightning) Targeting() (TargetKind, int) { return TargetNone, 0 }
func (Confusion) Targeting() (TargetKind, int) { return TargetSingle, 0 }
func (f Fireball) Targeting() (TargetKind, int) {
	return TargetArea, f.Radius
}

func (Healing) sealedConsumable()   {}
func (Lightning) sealedConsumable() {}
func (Confusion) sealedConsumable() {}
func (Fireball) sealedConsumable()  {}
