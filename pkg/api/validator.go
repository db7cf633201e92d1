package api

import (
	"errors"
	"fmt"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errors.New("movement step too large")
	}
	return nil
}

func (p IndexPayload) Validate() error {
	if p.Index < 0 {
		return errors.New("index cannot be negative")
	}
	return nil
}

func (p LevelUpPayload) Validate() error {
	switch p.Attribute {
	case "constitution", "strength", "agility":
		return nil
	case "":
		return errors.New("attribute is required")
	default:
		return fmt.Errorf("unknown attribute %q", p.Attribute)
	}
}
