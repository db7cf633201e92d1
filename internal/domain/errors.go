package domain

import "errors"

// ImpossibleError - локальный провал одного действия.
// Показывается игроку в логе, ход мира не прерывает.
type ImpossibleError struct {
	Msg string
}

func (e *ImpossibleError) Error() string {
	return e.Msg
}

func Impossible(msg string) error {
	return &ImpossibleError{Msg: msg}
}

func IsImpossible(err error) bool {
	var imp *ImpossibleError
	return errors.As(err, &imp)
}
