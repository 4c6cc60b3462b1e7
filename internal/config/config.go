package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type SlotConfig interface {
	Symbols() []string
	ReelCount() int
	SlotsPerReel() int
	CellHeight() float64
	SpinCost() int
	WinPayout() int
	StartBalance() int
	MinFullSpins() int
	BaseSpinDuration() time.Duration
	StopStagger() time.Duration
	BackoutAmount() float64
	TickInterval() time.Duration
	StreamInterval() time.Duration
}

type HTTPConfig interface {
	Address() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
