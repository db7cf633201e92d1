package domain

// Snapshot - сериализуемый срез этажа: тайлы, номер этажа и плоский список сущностей.
// Предметы в инвентаре хранятся только именами; восстанавливаются фабриками.
type Snapshot struct {
	CurrentFloor int              `json:"currentFloor"`
	Width        int              `json:"width"`
	Height       int              `json:"height"`
	Tiles        [][]Tile         `json:"tiles"`
	Downstairs   Position         `json:"downstairs"`
	Entities     []EntitySnapshot `json:"entities"`
	Messages     []Message        `json:"messages,omitempty"`

	// Заполняется из заголовка файла, в тело не пишется
	SavedAt int64 `json:"-"`
}

type EntitySnapshot struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Char string `json:"char"`
	Fg   string `json:"fg"`
	Bg   string `json:"bg"`
	Name string `json:"name"`

	Fighter *FighterSnapshot `json:"fighter,omitempty"`
	Level   *Level           `json:"level,omitempty"`

	AIType                 AIKind `json:"aiType,omitempty"`
	ConfusedTurnsRemaining int    `json:"confusedTurnsRemaining,omitempty"`

	// Только у игрока
	Inventory []ItemSnapshot `json:"inventory,omitempty"`
	Equipped  []string       `json:"equipped,omitempty"`
}

type FighterSnapshot struct {
	MaxHP   int `json:"maxHp"`
	HP      int `json:"hp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`
}

type ItemSnapshot struct {
	ItemType string `json:"itemType"`
}
