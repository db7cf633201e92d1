package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Полный снимок того, что видит игрок, отправляется после каждой обработанной команды.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" или "ERROR".
	Type string `json:"type"`

	// Token сессии. Клиент сохраняет его, чтобы переподключиться к той же игре.
	Token string `json:"token,omitempty"`

	// Floor номер текущего этажа подземелья.
	Floor int `json:"floor"`

	// Turn сколько ходов игрок уже сделал.
	Turn int `json:"turn"`

	// Mode режим ввода: normal, targeting, level_up, dead.
	// Клиент по нему решает, какие команды вообще имеет смысл слать.
	Mode string `json:"mode"`

	// MyEntityID ID сущности игрока.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех видимых и/или исследованных тайлов.
	Map []TileView `json:"map,omitempty"`

	// Entities видимые сущности, отсортированные по порядку отрисовки.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs хвост ленты сообщений.
	Logs []LogEntry `json:"logs,omitempty"`

	// Player характеристики, опыт и инвентарь игрока.
	Player *PlayerView `json:"player,omitempty"`

	// Targeting заполнен только в режиме выбора цели.
	Targeting *TargetingView `json:"targeting,omitempty"`

	// Error текст ошибки протокола (не игровой отказ, те идут в Logs).
	Error string `json:"error,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного тайла карты, уже в нужной палитре (светлой или темной).
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	Symbol string `json:"symbol"`
	Fg     string `json:"fg"`
	Bg     string `json:"bg"`

	Walkable bool `json:"walkable"`

	// IsVisible true, если тайл находится в текущем поле зрения. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если тайл когда-либо был увиден.
	IsExplored bool `json:"isExplored"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, ENEMY, ITEM
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Fg     string `json:"fg"`
		Bg     string `json:"bg"`
		Order  int    `json:"order"`
	} `json:"render"`

	// Stats есть только у актеров.
	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView это DTO для боевых характеристик.
type StatsView struct {
	HP      int  `json:"hp"`
	MaxHP   int  `json:"maxHp"`
	Power   int  `json:"power"`
	Defense int  `json:"defense"`
	IsDead  bool `json:"isDead"`
}

// PlayerView - панель игрока
type PlayerView struct {
	Stats          StatsView  `json:"stats"`
	Level          int        `json:"level"`
	XP             int        `json:"xp"`
	XPToNextLevel  int        `json:"xpToNextLevel"`
	Inventory      []ItemView `json:"inventory"`
	InventoryLimit int        `json:"inventoryLimit"`
}

// ItemView представляет предмет инвентаря. Index - то, что клиент шлет в DROP/USE/EQUIP.
type ItemView struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Fg       string `json:"fg"`
	Category string `json:"category"` // consumable, weapon, armor
	Equipped bool   `json:"equipped,omitempty"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	Text  string `json:"text"`
	Fg    string `json:"fg"`
	Count int    `json:"count"`
}

// TargetingView - какой предмет ждет цель и какого радиуса подсветку рисовать
type TargetingView struct {
	ItemIndex int  `json:"itemIndex"`
	Radius    int  `json:"radius"`
	Area      bool `json:"area"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token сессии. Обязателен только для первого сообщения "LOGIN";
	// пустой токен означает новую игру.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE.
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// IndexPayload - номер предмета в инвентаре (DROP, USE, EQUIP).
type IndexPayload struct {
	Index int `json:"index"`
}

// PositionPayload - выбранная клетка в режиме прицеливания (TARGET).
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LevelUpPayload - выбранная характеристика (LEVEL_UP).
type LevelUpPayload struct {
	Attribute string `json:"attribute"` // constitution, strength, agility
}
