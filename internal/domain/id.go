package domain

import (
	"fmt"
	"strconv"
)

// EntityID - упакованный идентификатор (Kind + Floor + Index)
type EntityID uint64

const (
	bitsIndex = 40
	bitsFloor = 16
	bitsKind  = 8

	shiftFloor = bitsIndex
	shiftKind  = bitsIndex + bitsFloor

	maskIndex = (1 << bitsIndex) - 1
	maskFloor = (1 << bitsFloor) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackEntityID создает ID из компонентов
func PackEntityID(kind EntityKind, floor int16, index uint64) EntityID {
	id := index & maskIndex
	id |= (uint64(uint16(floor)) & maskFloor) << shiftFloor
	id |= (uint64(kind) & maskKind) << shiftKind
	return EntityID(id)
}

func (id EntityID) Kind() EntityKind {
	return EntityKind((id >> shiftKind) & maskKind)
}

// Floor - этаж, на котором сущность впервые попала на карту.
func (id EntityID) Floor() int16 {
	return int16((id >> shiftFloor) & maskFloor)
}

func (id EntityID) Index() uint64 {
	return uint64(id & maskIndex)
}

// MarshalJSON сериализует ID в строку, так как JS теряет точность для больших int64
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON парсит строку или число из JSON
func (id *EntityID) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	val, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}
	*id = EntityID(val)
	return nil
}

// String для логов: [Kind:Floor:Idx]
func (id EntityID) String() string {
	return fmt.Sprintf("[%s:%d:%d]", id.Kind(), id.Floor(), id.Index())
}
