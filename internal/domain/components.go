package domain

import "fmt"

// --- ИНВЕНТАРЬ ---

// Inventory - ограниченный упорядоченный список предметов.
type Inventory struct {
	Capacity int       `json:"capacity"`
	Items    []*Entity `json:"items"`
}

func NewInventory(capacity int) *Inventory {
	return &Inventory{Capacity: capacity, Items: []*Entity{}}
}

func (inv *Inventory) IsFull() bool {
	return len(inv.Items) >= inv.Capacity
}

// Add кладет предмет в инвентарь holder'а. При полном инвентаре ничего не меняет.
func (inv *Inventory) Add(holder *Entity, item *Entity) error {
	if inv.IsFull() {
		return Impossible("Your inventory is full.")
	}
	inv.Items = append(inv.Items, item)
	item.Owner = Owner{Kind: OwnerInventory, Holder: holder.ID}
	return nil
}

func (inv *Inventory) Remove(item *Entity) bool {
	idx := inv.IndexOf(item)
	if idx < 0 {
		return false
	}
	inv.Items = append(inv.Items[:idx], inv.Items[idx+1:]...)
	item.Owner = Owner{}
	return true
}

func (inv *Inventory) IndexOf(item *Entity) int {
	for i, it := range inv.Items {
		if it == item {
			return i
		}
	}
	return -1
}

// At возвращает nil для неверного индекса
func (inv *Inventory) At(index int) *Entity {
	if index < 0 || index >= len(inv.Items) {
		return nil
	}
	return inv.Items[index]
}

// --- ЭКИПИРОВКА ---

// Equipment - два слота. Предметы в слотах принадлежат инвентарю,
// здесь хранятся только ссылки.
type Equipment struct {
	Weapon *Entity `json:"-"`
	Armor  *Entity `json:"-"`
}

func (eq *Equipment) PowerBonus() int {
	if eq == nil {
		return 0
	}
	return bonus(eq.Weapon, true) + bonus(eq.Armor, true)
}

func (eq *Equipment) DefenseBonus() int {
	if eq == nil {
		return 0
	}
	return bonus(eq.Weapon, false) + bonus(eq.Armor, false)
}

func bonus(item *Entity, power bool) int {
	if item == nil || item.Equippable == nil {
		return 0
	}
	if power {
		return item.Equippable.PowerBonus
	}
	return item.Equippable.DefenseBonus
}

func (eq *Equipment) IsEquipped(item *Entity) bool {
	return eq != nil && item != nil && (eq.Weapon == item || eq.Armor == item)
}

func (eq *Equipment) slot(t EquipmentType) **Entity {
	if t == EquipmentWeapon {
		return &eq.Weapon
	}
	return &eq.Armor
}

// SlotFor: оружие в weapon, все остальное в armor
func SlotFor(item *Entity) EquipmentType {
	if item.Equippable != nil && item.Equippable.Type == EquipmentWeapon {
		return EquipmentWeapon
	}
	return EquipmentArmor
}

// EquipToSlot снимает прежний предмет слота (со своим сообщением) и надевает новый.
func (eq *Equipment) EquipToSlot(t EquipmentType, item *Entity, log *MessageLog) {
	if *eq.slot(t) != nil {
		eq.UnequipSlot(t, log)
	}
	*eq.slot(t) = item
	if log != nil {
		log.Add(fmt.Sprintf("You equip the %s.", item.Name), ColorWhite)
	}
}

func (eq *Equipment) UnequipSlot(t EquipmentType, log *MessageLog) {
	current := *eq.slot(t)
	if current != nil && log != nil {
		log.Add(fmt.Sprintf("You remove the %s.", current.Name), ColorWhite)
	}
	*eq.slot(t) = nil
}

// Toggle надевает предмет или снимает его, если он уже надет.
// log == nil - молча (стартовое снаряжение, загрузка сохранения).
func (eq *Equipment) Toggle(item *Entity, log *MessageLog) {
	t := SlotFor(item)
	if *eq.slot(t) == item {
		eq.UnequipSlot(t, log)
		return
	}
	eq.EquipToSlot(t, item, log)
}

// Unequip снимает предмет, если он надет в каком-либо слоте
func (eq *Equipment) Unequip(item *Entity, log *MessageLog) {
	if eq == nil {
		return
	}
	if eq.Weapon == item {
		eq.UnequipSlot(EquipmentWeapon, log)
	}
	if eq.Armor == item {
		eq.UnequipSlot(EquipmentArmor, log)
	}
}

// --- УРОВЕНЬ ---

// Level - опыт и прокачка. LevelUpBase == 0 - сущность не прокачивается,
// только отдает XPGiven при смерти.
type Level struct {
	CurrentLevel  int `json:"currentLevel"`
	CurrentXP     int `json:"currentXp"`
	LevelUpBase   int `json:"levelUpBase"`
	LevelUpFactor int `json:"levelUpFactor"`
	XPGiven       int `json:"xpGiven"`
}

func (l *Level) ExperienceToNextLevel() int {
	return l.LevelUpBase + l.CurrentLevel*l.LevelUpFactor
}

func (l *Level) RequiresLevelUp() bool {
	return l.CurrentXP > l.ExperienceToNextLevel()
}

func (l *Level) AddXP(xp int, log *MessageLog) {
	if xp == 0 || l.LevelUpBase == 0 {
		return
	}
	l.CurrentXP += xp
	log.Add(fmt.Sprintf("You gain %d experience points.", xp), ColorWhite)
	if l.RequiresLevelUp() {
		log.Add(fmt.Sprintf("You advance to level %d!", l.CurrentLevel+1), ColorWhite)
	}
}

func (l *Level) increaseLevel() {
	l.CurrentXP -= l.ExperienceToNextLevel()
	l.CurrentLevel++
}

// IncreaseMaxHP поднимает и максимум, и текущее здоровье.
func (l *Level) IncreaseMaxHP(f *Fighter, amount int, log *MessageLog) {
	f.MaxHP += amount
	f.SetHP(f.HP() + amount)
	log.Add("Your health improves!", ColorWhite)
	l.increaseLevel()
}

func (l *Level) IncreasePower(f *Fighter, amount int, log *MessageLog) {
	f.BasePower += amount
	log.Add("You feel stronger!", ColorWhite)
	l.increaseLevel()
}

func (l *Level) IncreaseDefense(f *Fighter, amount int, log *MessageLog) {
	f.BaseDefense += amount
	log.Add("Your movements are getting swifter!", ColorWhite)
	l.increaseLevel()
}
