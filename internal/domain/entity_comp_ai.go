package domain

// AIKind - метка варианта для сохранений и логов
type AIKind string

const (
	AIKindHostile  AIKind = "hostile"
	AIKindConfused AIKind = "confused"
)

// AI - закрытый набор состояний поведения монстра.
// Реализуют только *HostileAI и *ConfusedAI.
type AI interface {
	Kind() AIKind
	sealedAI()
}

// HostileAI преследует игрока. Path - закешированный маршрут без стартовой клетки.
type HostileAI struct {
	Path []Position
}

func NewHostileAI() *HostileAI {
	return &HostileAI{}
}

func (*HostileAI) Kind() AIKind { return AIKindHostile }
func (*HostileAI) sealedAI()    {}

// ConfusedAI - временная обертка. По истечении ходов актеру возвращается Previous.
type ConfusedAI struct {
	Previous       AI
	TurnsRemaining int
}

func NewConfusedAI(previous AI, turns int) *ConfusedAI {
	return &ConfusedAI{Previous: previous, TurnsRemaining: turns}
}

func (*ConfusedAI) Kind() AIKind { return AIKindConfused }
func (*ConfusedAI) sealedAI()    {}
