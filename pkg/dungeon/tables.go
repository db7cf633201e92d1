package dungeon

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTablesYAML []byte

// Step - порог этажа и значение, действующее начиная с него
type Step [2]int

// Weight - вес одного варианта спавна
type Weight struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

// ChanceStep - веса, которые добавляются (или переопределяются) начиная с Floor
type ChanceStep struct {
	Floor   int      `yaml:"floor"`
	Weights []Weight `yaml:"weights"`
}

// Tables - таблицы спавна, зависящие от этажа
type Tables struct {
	MaxItemsByFloor    []Step       `yaml:"max_items_by_floor"`
	MaxMonstersByFloor []Step       `yaml:"max_monsters_by_floor"`
	ItemChances        []ChanceStep `yaml:"item_chances"`
	MonsterChances     []ChanceStep `yaml:"monster_chances"`
}

// DefaultTables - встроенные таблицы. Паника здесь означает битый tables.yaml в сборке.
func DefaultTables() *Tables {
	t, err := ParseTables(defaultTablesYAML)
	if err != nil {
		panic(err)
	}
	return t
}

// LoadTables читает таблицы из файла (переопределение контента без пересборки)
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spawn tables: %w", err)
	}
	return ParseTables(data)
}

func ParseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse spawn tables: %w", err)
	}

	// Пороги должны идти по возрастанию
	sort.SliceStable(t.MaxItemsByFloor, func(i, j int) bool { return t.MaxItemsByFloor[i][0] < t.MaxItemsByFloor[j][0] })
	sort.SliceStable(t.MaxMonstersByFloor, func(i, j int) bool { return t.MaxMonstersByFloor[i][0] < t.MaxMonstersByFloor[j][0] })
	sort.SliceStable(t.ItemChances, func(i, j int) bool { return t.ItemChances[i].Floor < t.ItemChances[j].Floor })
	sort.SliceStable(t.MonsterChances, func(i, j int) bool { return t.MonsterChances[i].Floor < t.MonsterChances[j].Floor })

	for _, steps := range [][]ChanceStep{t.ItemChances, t.MonsterChances} {
		for _, step := range steps {
			for _, w := range step.Weights {
				if _, ok := registry[w.Name]; !ok {
					return nil, fmt.Errorf("%w: %q", ErrUnknownSpawn, w.Name)
				}
			}
		}
	}
	return &t, nil
}

func (t *Tables) MaxItems(floor int) int {
	return MaxByFloor(t.MaxItemsByFloor, floor)
}

func (t *Tables) MaxMonsters(floor int) int {
	return MaxByFloor(t.MaxMonstersByFloor, floor)
}

// MaxByFloor - значение наибольшего порога <= floor, 0 если порогов ниже нет
func MaxByFloor(steps []Step, floor int) int {
	current := 0
	for _, s := range steps {
		if s[0] > floor {
			break
		}
		current = s[1]
	}
	return current
}

// ChoicesForFloor сводит все ступени <= floor в список вариантов с весами.
// Порядок - порядок первого появления имени, чтобы выбор был детерминирован для сида.
func ChoicesForFloor(steps []ChanceStep, floor int) ([]string, []int) {
	var names []string
	weights := make(map[string]int)

	for _, step := range steps {
		if step.Floor > floor {
			break
		}
		for _, w := range step.Weights {
			if _, seen := weights[w.Name]; !seen {
				names = append(names, w.Name)
			}
			weights[w.Name] = w.Weight
		}
	}

	out := make([]int, len(names))
	for i, name := range names {
		out[i] = weights[name]
	}
	return names, out
}
