package actions

// Wait - пропуск хода. Всегда успешен.
type Wait struct{}

func (Wait) Name() string  { return "WAIT" }
func (Wait) sealedAction() {}
