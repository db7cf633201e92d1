package domain

// InputMode - что сейчас принимает слой ввода.
type InputMode string

const (
	ModeNormal    InputMode = "normal"
	ModeTargeting InputMode = "targeting"
	ModeLevelUp   InputMode = "level_up"
	ModeDead      InputMode = "dead"
)
