package domain

import "encoding/json"

// Fighter - боевые характеристики актера.
type Fighter struct {
	MaxHP       int `json:"maxHp"`
	BaseDefense int `json:"defense"`
	BasePower   int `json:"power"`

	hp int
}

func NewFighter(maxHP, defense, power int) *Fighter {
	return &Fighter{MaxHP: maxHP, BaseDefense: defense, BasePower: power, hp: maxHP}
}

func (f *Fighter) HP() int {
	return f.hp
}

// SetHP зажимает значение в [0, MaxHP].
// Возвращает true ровно один раз - когда HP впервые падает до нуля.
func (f *Fighter) SetHP(value int) (died bool) {
	wasAlive := f.hp > 0
	f.hp = max(0, min(value, f.MaxHP))
	return wasAlive && f.hp == 0
}

// Heal возвращает, сколько HP реально восстановлено.
func (f *Fighter) Heal(amount int) int {
	if f.hp == f.MaxHP {
		return 0
	}
	before := f.hp
	f.SetHP(f.hp + amount)
	return f.hp - before
}

// TakeDamage возвращает true, если удар оказался смертельным.
func (f *Fighter) TakeDamage(amount int) bool {
	return f.SetHP(f.hp - amount)
}

// MarshalJSON нужен, чтобы в debug-дампах было видно текущее HP.
func (f *Fighter) MarshalJSON() ([]byte, error) {
	type view struct {
		HP          int `json:"hp"`
		MaxHP       int `json:"maxHp"`
		BaseDefense int `json:"defense"`
		BasePower   int `json:"power"`
	}
	return json.Marshal(view{HP: f.hp, MaxHP: f.MaxHP, BaseDefense: f.BaseDefense, BasePower: f.BasePower})
}
