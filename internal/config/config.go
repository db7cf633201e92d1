package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"rogue-engine/pkg/dungeon"

	"gopkg.in/yaml.v3"
)

// Config holds all server configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
}

// ServerConfig holds server-specific settings
type ServerConfig struct {
	Port int `yaml:"port"`
}

// GameConfig - параметры генерации и правил
type GameConfig struct {
	// Seed - мастер-зерно. 0 - взять от времени запуска.
	Seed              int64  `yaml:"seed"`
	MapWidth          int    `yaml:"map_width"`
	MapHeight         int    `yaml:"map_height"`
	MaxRooms          int    `yaml:"max_rooms"`
	RoomMinSize       int    `yaml:"room_min_size"`
	RoomMaxSize       int    `yaml:"room_max_size"`
	FOVRadius         int    `yaml:"fov_radius"`
	InventoryCapacity int    `yaml:"inventory_capacity"`
	TablesPath        string `yaml:"tables_path"` // пусто - встроенные таблицы
	Cheats            bool   `yaml:"cheats"`      // SPAWN и REVEAL
}

// StorageConfig - куда писать сохранения
type StorageConfig struct {
	Driver string `yaml:"driver"` // file | sqlite | postgres
	DSN    string `yaml:"dsn"`
	Slot   string `yaml:"slot"`
}

// DungeonParams переводит игровые настройки в параметры генератора
func (g GameConfig) DungeonParams() dungeon.Params {
	return dungeon.Params{
		Width:       g.MapWidth,
		Height:      g.MapHeight,
		MaxRooms:    g.MaxRooms,
		RoomMinSize: g.RoomMinSize,
		RoomMaxSize: g.RoomMaxSize,
	}
}

// Load reads configuration from a YAML file.
// Отсутствующий файл - не ошибка: остаются значения по умолчанию.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// файла нет - работаем на умолчаниях
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	d := dungeon.DefaultParams()

	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Game.MapWidth == 0 {
		c.Game.MapWidth = d.Width
	}
	if c.Game.MapHeight == 0 {
		c.Game.MapHeight = d.Height
	}
	if c.Game.MaxRooms == 0 {
		c.Game.MaxRooms = d.MaxRooms
	}
	if c.Game.RoomMinSize == 0 {
		c.Game.RoomMinSize = d.RoomMinSize
	}
	if c.Game.RoomMaxSize == 0 {
		c.Game.RoomMaxSize = d.RoomMaxSize
	}
	if c.Game.FOVRadius == 0 {
		c.Game.FOVRadius = 8
	}
	if c.Game.InventoryCapacity == 0 {
		c.Game.InventoryCapacity = 26
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "file"
	}
	if c.Storage.DSN == "" {
		c.Storage.DSN = "saves"
	}
	if c.Storage.Slot == "" {
		c.Storage.Slot = "autosave"
	}
}

// applyEnv - переменные окружения сильнее файла
func (c *Config) applyEnv() error {
	if v := os.Getenv("ROGUE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ROGUE_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("ROGUE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ROGUE_SEED %q: %w", v, err)
		}
		c.Game.Seed = seed
	}
	if v := os.Getenv("ROGUE_STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("ROGUE_STORAGE_DSN"); v != "" {
		c.Storage.DSN = v
	}
	return nil
}

// Validate ловит конфиги, на которых генератор не уложит ни одной комнаты
func (c *Config) Validate() error {
	g := c.Game
	if g.RoomMinSize < 3 || g.RoomMaxSize < g.RoomMinSize {
		return fmt.Errorf("invalid room size range [%d, %d]", g.RoomMinSize, g.RoomMaxSize)
	}
	if g.MapWidth <= g.RoomMaxSize+1 || g.MapHeight <= g.RoomMaxSize+1 {
		return fmt.Errorf("map %dx%d too small for rooms up to %d", g.MapWidth, g.MapHeight, g.RoomMaxSize)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	return nil
}

// ResolveSeed возвращает сид из конфига или от текущего времени
func (g GameConfig) ResolveSeed() int64 {
	if g.Seed != 0 {
		return g.Seed
	}
	return time.Now().UnixNano()
}
