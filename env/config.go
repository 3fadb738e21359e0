// SPDX-License-Identifier: MIT
// Package env: YAML configuration.
//
// Purpose:
//   - Read environment settings from a file without a CLI surface.
//   - Reject unknown keys so typos fail loudly.

package env

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config mirrors the YAML document. Zero values mean "use the default".
//
//	seeds: [1234, 5678]
//	workers: 8
//	parallel_threshold: 16384
//	epsilon: 1e-13
//	max_qubits: 28
//	log_level: debug
type Config struct {
	Seeds             []uint64 `yaml:"seeds"`
	Workers           int      `yaml:"workers"`
	ParallelThreshold int      `yaml:"parallel_threshold"`
	Epsilon           float64  `yaml:"epsilon"`
	MaxQubits         int      `yaml:"max_qubits"`
	LogLevel          string   `yaml:"log_level"`
}

// ParseConfig decodes and validates a YAML document. An empty document
// yields the zero Config.
//
// Errors: decoding errors (unknown keys included) and ErrInvalidConfig /
// ErrUnknownLogLevel from Validate.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("ParseConfig: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("ParseConfig: %w", err)
	}

	return cfg, nil
}

// LoadConfig reads path and parses it with ParseConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return ParseConfig(data)
}

// Validate checks every non-zero field.
func (c Config) Validate() error {
	switch {
	case c.Workers < 0:
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalidConfig)
	case c.ParallelThreshold < 0:
		return fmt.Errorf("parallel_threshold=%d: %w", c.ParallelThreshold, ErrInvalidConfig)
	case math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0:
		return fmt.Errorf("epsilon=%g: %w", c.Epsilon, ErrInvalidConfig)
	case c.MaxQubits < 0 || c.MaxQubits > maxQubitsLimit:
		return fmt.Errorf("max_qubits=%d: %w", c.MaxQubits, ErrInvalidConfig)
	}
	if c.LogLevel != "" {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level=%q: %w", c.LogLevel, ErrUnknownLogLevel)
		}
	}

	return nil
}

// buildLogger returns a production zap logger at the configured level.
func (c Config) buildLogger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}
