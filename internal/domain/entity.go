package domain

// Entity - любая интерактивная вещь в подземелье: игрок, монстр, предмет, труп.
// Компоненты опциональны: nil значит, что свойства нет.
type Entity struct {
	ID   EntityID   `json:"id"`
	Kind EntityKind `json:"kind"`
	Name string     `json:"name"`
	Pos  Position   `json:"pos"`

	Char string `json:"char"`
	Fg   string `json:"fg"`
	Bg   string `json:"bg"`

	BlocksMovement bool        `json:"blocksMovement"`
	RenderOrder    RenderOrder `json:"renderOrder"`
	Owner          Owner       `json:"-"`

	// Актер
	Fighter   *Fighter   `json:"fighter,omitempty"`
	Inventory *Inventory `json:"inventory,omitempty"`
	Equipment *Equipment `json:"equipment,omitempty"`
	Level     *Level     `json:"level,omitempty"`
	AI        AI         `json:"-"`

	// Предмет
	Consumable Consumable  `json:"-"`
	Equippable *Equippable `json:"equippable,omitempty"`
}

func (e *Entity) IsPlayer() bool {
	return e.Kind == KindPlayer
}

func (e *Entity) IsActor() bool {
	return e.Fighter != nil
}

func (e *Entity) IsItem() bool {
	return e.Kind == KindItem
}

// IsAlive: монстр жив, пока у него есть AI, игрок - пока у него есть HP.
func (e *Entity) IsAlive() bool {
	if e.Fighter == nil || e.Fighter.HP() <= 0 {
		return false
	}
	return e.AI != nil || e.IsPlayer()
}

// Power - базовая сила плюс бонусы экипировки
func (e *Entity) Power() int {
	if e.Fighter == nil {
		return 0
	}
	return e.Fighter.BasePower + e.Equipment.PowerBonus()
}

// Defense - базовая защита плюс бонусы экипировки
func (e *Entity) Defense() int {
	if e.Fighter == nil {
		return 0
	}
	return e.Fighter.BaseDefense + e.Equipment.DefenseBonus()
}

func (e *Entity) Move(dx, dy int) {
	e.Pos = e.Pos.Shift(dx, dy)
}

// BecomeCorpse превращает актера в останки на месте смерти.
func (e *Entity) BecomeCorpse() {
	e.Char = "%"
	e.Fg = "#bf0000"
	e.BlocksMovement = false
	e.AI = nil
	e.Name = "Remains of " + e.Name
	e.RenderOrder = RenderCorpse
}
