package domain

import "encoding/json"

// InternalCommand - команда в очереди движка.
// Action уже распознан, Payload разбирает хендлер.
type InternalCommand struct {
	Action  ActionType
	Token   string // токен сессии
	Payload json.RawMessage
}
