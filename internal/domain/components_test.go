package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFighter_SetHPClamps(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  int
	}{
		{"within range", 7, 7},
		{"above max", 50, 30},
		{"below zero", -5, 0},
		{"exact max", 30, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFighter(30, 1, 2)
			f.SetHP(tt.value)
			assert.Equal(t, tt.want, f.HP())
		})
	}
}

func TestFighter_DeathFiresOnce(t *testing.T) {
	f := NewFighter(10, 0, 3)

	assert.True(t, f.SetHP(0), "first write to zero is a death")
	assert.False(t, f.SetHP(0), "repeated zero write must not die again")
	assert.False(t, f.TakeDamage(5), "damage to the dead is not a new death")
	assert.Equal(t, 0, f.HP())
}

func TestFighter_Heal(t *testing.T) {
	f := NewFighter(30, 0, 0)
	assert.Equal(t, 0, f.Heal(4), "full health heals nothing")

	f.SetHP(28)
	assert.Equal(t, 2, f.Heal(4))
	assert.Equal(t, 30, f.HP())
}

func TestInventory_Capacity(t *testing.T) {
	holder := &Entity{ID: PackEntityID(KindPlayer, 1, 1), Kind: KindPlayer}
	inv := NewInventory(2)

	require.NoError(t, inv.Add(holder, &Entity{Name: "a"}))
	require.NoError(t, inv.Add(holder, &Entity{Name: "b"}))

	extra := &Entity{Name: "c"}
	err := inv.Add(holder, extra)
	require.Error(t, err)
	assert.True(t, IsImpossible(err))
	assert.Equal(t, "Your inventory is full.", err.Error())
	assert.Len(t, inv.Items, 2)
	assert.Equal(t, OwnerNone, extra.Owner.Kind)

	assert.Equal(t, OwnerInventory, inv.Items[0].Owner.Kind)
	assert.Equal(t, holder.ID, inv.Items[0].Owner.Holder)
}

func TestInventory_RemoveAndAt(t *testing.T) {
	inv := NewInventory(5)
	holder := &Entity{}
	a, b := &Entity{Name: "a"}, &Entity{Name: "b"}
	require.NoError(t, inv.Add(holder, a))
	require.NoError(t, inv.Add(holder, b))

	assert.True(t, inv.Remove(a))
	assert.False(t, inv.Remove(a))
	assert.Same(t, b, inv.At(0))
	assert.Nil(t, inv.At(1))
	assert.Nil(t, inv.At(-1))
}

func TestEquipment_ToggleAndBonuses(t *testing.T) {
	log := NewMessageLog()
	player := &Entity{Kind: KindPlayer, Fighter: NewFighter(30, 1, 2), Equipment: &Equipment{}}
	dagger := &Entity{Name: "Dagger", Equippable: &Equippable{Type: EquipmentWeapon, PowerBonus: 2}}
	sword := &Entity{Name: "Sword", Equippable: &Equippable{Type: EquipmentWeapon, PowerBonus: 4}}
	mail := &Entity{Name: "Chain Mail", Equippable: &Equippable{Type: EquipmentArmor, DefenseBonus: 3}}

	player.Equipment.Toggle(dagger, log)
	player.Equipment.Toggle(mail, log)
	assert.Equal(t, 4, player.Power())
	assert.Equal(t, 4, player.Defense())

	// Меч вытесняет кинжал из слота
	player.Equipment.Toggle(sword, log)
	assert.Same(t, sword, player.Equipment.Weapon)
	assert.False(t, player.Equipment.IsEquipped(dagger))
	assert.Equal(t, 6, player.Power())

	// Повторный toggle снимает
	player.Equipment.Toggle(sword, log)
	assert.Nil(t, player.Equipment.Weapon)

	var texts []string
	for _, m := range log.Messages {
		texts = append(texts, m.Text)
	}
	assert.Equal(t, []string{
		"You equip the Dagger.",
		"You equip the Chain Mail.",
		"You remove the Dagger.",
		"You equip the Sword.",
		"You remove the Sword.",
	}, texts)
}

func TestEquipment_SilentToggle(t *testing.T) {
	eq := &Equipment{}
	armor := &Entity{Name: "Leather Armor", Equippable: &Equippable{Type: EquipmentArmor, DefenseBonus: 1}}
	eq.Toggle(armor, nil)
	assert.Same(t, armor, eq.Armor)
}

func TestLevel_Progression(t *testing.T) {
	log := NewMessageLog()
	l := &Level{CurrentLevel: 1, LevelUpBase: 200, LevelUpFactor: 150}
	f := NewFighter(30, 1, 2)

	assert.Equal(t, 350, l.ExperienceToNextLevel())

	l.AddXP(350, log)
	assert.False(t, l.RequiresLevelUp(), "level up needs strictly more than the threshold")

	l.AddXP(35, log)
	require.True(t, l.RequiresLevelUp())
	assert.Equal(t, "You advance to level 2!", log.Messages[len(log.Messages)-1].Text)

	l.IncreaseMaxHP(f, LevelUpHPAmount, log)
	assert.Equal(t, 2, l.CurrentLevel)
	assert.Equal(t, 35, l.CurrentXP)
	assert.Equal(t, 50, f.MaxHP)
	assert.Equal(t, 50, f.HP())
}

func TestLevel_MonstersNeverLevel(t *testing.T) {
	log := NewMessageLog()
	l := &Level{XPGiven: 35}
	l.AddXP(1000, log)
	assert.Zero(t, l.CurrentXP)
	assert.Empty(t, log.Messages)
}

func TestMessageLog_Coalesces(t *testing.T) {
	log := NewMessageLog()
	log.Add("That way is blocked.", ColorImpossible)
	log.Add("That way is blocked.", ColorImpossible)
	log.Add("That way is blocked.", ColorImpossible)
	log.Add("You picked up the Sword!", ColorWhite)
	log.Add("That way is blocked.", ColorImpossible)

	require.Len(t, log.Messages, 3)
	assert.Equal(t, "That way is blocked. (x3)", log.Messages[0].FullText())
	assert.Equal(t, "You picked up the Sword!", log.Messages[1].FullText())
	assert.Equal(t, 1, log.Messages[2].Count)

	tail := log.Tail(2)
	assert.Len(t, tail, 2)
	assert.Equal(t, "You picked up the Sword!", tail[0].Text)
}

func TestEntity_BecomeCorpse(t *testing.T) {
	orc := &Entity{Kind: KindMonster, Name: "Orc", Char: "o", BlocksMovement: true,
		RenderOrder: RenderActor, Fighter: NewFighter(10, 0, 3), AI: NewHostileAI()}
	orc.Fighter.SetHP(0)
	orc.BecomeCorpse()

	assert.Equal(t, "Remains of Orc", orc.Name)
	assert.Equal(t, "%", orc.Char)
	assert.Equal(t, "#bf0000", orc.Fg)
	assert.False(t, orc.BlocksMovement)
	assert.Nil(t, orc.AI)
	assert.Equal(t, RenderCorpse, orc.RenderOrder)
	assert.False(t, orc.IsAlive())
}
