// Package config loads keypad settings from the environment.
package config

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the keypad command.
type Config struct {
	// Prec is the precision of calculations in bits.
	Prec uint `env:"KEYPAD_PREC" envDefault:"64"`
	// Digits is the maximum number of digits after the decimal point in a
	// result.
	Digits int `env:"KEYPAD_DIGITS" envDefault:"12"`
	// Quiet discards diagnostic logs.
	Quiet bool `env:"KEYPAD_QUIET"`
}

// Parse loads configuration from environment variables.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks that the settings can produce an evaluator.
func (c Config) Validate() error {
	if c.Prec == 0 {
		return errors.New("precision must be positive")
	}
	if c.Prec > big.MaxPrec {
		return fmt.Errorf("precision (%d) exceeds %d bits", c.Prec, uint(big.MaxPrec))
	}
	if c.Digits < 0 {
		return fmt.Errorf("digits (%d) must not be negative", c.Digits)
	}
	return nil
}
