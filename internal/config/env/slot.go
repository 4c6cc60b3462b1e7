package env

import (
	"fmt"
	"os"
	"time"

	"slot_backend/internal/config"

	"gopkg.in/yaml.v3"
)

// slotYAML Структура файла config.yaml (секция slot)
type slotYAML struct {
	Slot struct {
		Symbols      []string `yaml:"symbols"`
		ReelCount    int      `yaml:"reel_count"`
		SlotsPerReel int      `yaml:"slots_per_reel"`
		CellHeight   float64  `yaml:"cell_height"`
		SpinCost     int      `yaml:"spin_cost"`
		WinPayout    int      `yaml:"win_payout"`
		StartBalance int      `yaml:"start_balance"`
		MinFullSpins int      `yaml:"min_full_spins"`
		// Тайминги в миллисекундах
		BaseDurationMS   int     `yaml:"base_spin_duration_ms"`
		StopStaggerMS    int     `yaml:"stop_stagger_ms"`
		Backout          float64 `yaml:"backout"`
		TickIntervalMS   int     `yaml:"tick_interval_ms"`
		StreamIntervalMS int     `yaml:"stream_interval_ms"`
	} `yaml:"slot"`
}

type slotConfig struct {
	data slotYAML
}

// NewSlotConfigFromYAML - читает игровые параметры автомата из yaml файла
func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var data slotYAML
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Валидация критичных для геометрии параметров
	if len(data.Slot.Symbols) < 2 {
		return nil, fmt.Errorf("slot config: at least 2 symbols required")
	}
	if data.Slot.ReelCount <= 0 || data.Slot.SlotsPerReel <= 0 {
		return nil, fmt.Errorf("slot config: reel_count and slots_per_reel must be positive")
	}
	if data.Slot.SlotsPerReel < len(data.Slot.Symbols) {
		return nil, fmt.Errorf("slot config: slots_per_reel must not be less than the symbol count")
	}
	if data.Slot.CellHeight <= 0 {
		return nil, fmt.Errorf("slot config: cell_height must be positive")
	}
	if data.Slot.MinFullSpins < 5 {
		return nil, fmt.Errorf("slot config: min_full_spins must be at least 5")
	}
	if data.Slot.SpinCost <= 0 || data.Slot.WinPayout <= 0 {
		return nil, fmt.Errorf("slot config: spin_cost and win_payout must be positive")
	}
	if data.Slot.BaseDurationMS <= 0 || data.Slot.StopStaggerMS < 0 {
		return nil, fmt.Errorf("slot config: invalid spin durations")
	}
	if data.Slot.TickIntervalMS <= 0 {
		return nil, fmt.Errorf("slot config: tick_interval_ms must be positive")
	}
	if data.Slot.StreamIntervalMS <= 0 {
		return nil, fmt.Errorf("slot config: stream_interval_ms must be positive")
	}

	return &slotConfig{data: data}, nil
}

func (cfg *slotConfig) Symbols() []string {
	return cfg.data.Slot.Symbols
}

func (cfg *slotConfig) ReelCount() int {
	return cfg.data.Slot.ReelCount
}

func (cfg *slotConfig) SlotsPerReel() int {
	return cfg.data.Slot.SlotsPerReel
}

func (cfg *slotConfig) CellHeight() float64 {
	return cfg.data.Slot.CellHeight
}

func (cfg *slotConfig) SpinCost() int {
	return cfg.data.Slot.SpinCost
}

func (cfg *slotConfig) WinPayout() int {
	return cfg.data.Slot.WinPayout
}

func (cfg *slotConfig) StartBalance() int {
	return cfg.data.Slot.StartBalance
}

func (cfg *slotConfig) MinFullSpins() int {
	return cfg.data.Slot.MinFullSpins
}

func (cfg *slotConfig) BaseSpinDuration() time.Duration {
	return time.Duration(cfg.data.Slot.BaseDurationMS) * time.Millisecond
}

func (cfg *slotConfig) StopStagger() time.Duration {
	return time.Duration(cfg.data.Slot.StopStaggerMS) * time.Millisecond
}

func (cfg *slotConfig) BackoutAmount() float64 {
	return cfg.data.Slot.Backout
}

func (cfg *slotConfig) TickInterval() time.Duration {
	return time.Duration(cfg.data.Slot.TickIntervalMS) * time.Millisecond
}

func (cfg *slotConfig) StreamInterval() time.Duration {
	return time.Duration(cfg.data.Slot.StreamIntervalMS) * time.Millisecond
}
