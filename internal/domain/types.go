package domain

// EntityKind - тип сущности, упаковывается в EntityID
type EntityKind uint8

const (
	KindUnknown EntityKind = iota
	KindPlayer
	KindMonster
	KindItem
)

var kindToString = map[EntityKind]string{
	KindPlayer:  "PLAYER",
	KindMonster: "ENEMY",
	KindItem:    "ITEM",
}

func (k EntityKind) String() string {
	if val, ok := kindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// RenderOrder - слой отрисовки, когда несколько сущностей стоят в одной клетке.
type RenderOrder uint8

const (
	RenderCorpse RenderOrder = iota
	RenderItem
	RenderActor
)

// EquipmentType - в какой слот надевается предмет
type EquipmentType uint8

const (
	EquipmentWeapon EquipmentType = iota + 1
	EquipmentArmor
)

func (t EquipmentType) String() string {
	switch t {
	case EquipmentWeapon:
		return "weapon"
	case EquipmentArmor:
		return "armor"
	default:
		return "unknown"
	}
}

// OwnerKind - кто сейчас владеет сущностью.
type OwnerKind uint8

const (
	OwnerNone OwnerKind = iota
	OwnerMap
	OwnerInventory
)

// Owner - обратная ссылка на владельца. Это только ключ для поиска,
// владеет сущностью всегда коллекция (карта или инвентарь).
type Owner struct {
	Kind   OwnerKind
	Holder EntityID // для OwnerInventory: ID актера
}
