package domain

// Параметры восприятия
const (
	VisionRadius = 8
)

// Прокачка при повышении уровня
const (
	LevelUpHPAmount      = 20
	LevelUpPowerAmount   = 1
	LevelUpDefenseAmount = 1
)

// Цвета сообщений лога
const (
	ColorWhite               = "#ffffff"
	ColorPlayerAttack        = "#e0e0e0"
	ColorEnemyAttack         = "#ffc0c0"
	ColorPlayerDie           = "#ff3030"
	ColorEnemyDie            = "#ffa030"
	ColorInvalid             = "#ffff00"
	ColorImpossible          = "#808080"
	ColorWelcome             = "#20a0ff"
	ColorHealthRecovered     = "#00ff00"
	ColorNeedsTarget         = "#3fffff"
	ColorStatusEffectApplied = "#3fff3f"
	ColorDescend             = "#9f3fff"
)
