package domain

// EventType - побочный эффект действия, который обрабатывает движок, а не само действие.
type EventType uint8

const (
	EventNone EventType = iota
	EventDescend
)

var eventToString = map[EventType]string{
	EventNone:    "NONE",
	EventDescend: "DESCEND",
}

func (e EventType) String() string {
	if val, ok := eventToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}
