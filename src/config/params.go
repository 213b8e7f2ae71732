// Package config loads extraction parameters from a JSON or YAML file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"meshderive/src/geometry"
)

// Params holds the tunable extraction parameters. Nil fields keep their
// defaults, so partial files are safe.
type Params struct {
	Threshold  *float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Thickness  *float64 `json:"thickness,omitempty" yaml:"thickness,omitempty"`
	OffsetMode *string  `json:"offset_mode,omitempty" yaml:"offset_mode,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }

// Defaults returns Params with every field set to its built-in default.
func Defaults() *Params {
	return &Params{
		Threshold:  ptrFloat64(geometry.DefaultThreshold),
		Thickness:  ptrFloat64(geometry.DefaultThickness),
		OffsetMode: ptrString(geometry.OffsetFirstNormal.String()),
	}
}

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Load reads Params from a .json, .yaml or .yml file.
func Load(path string) (*Params, error) {
	cleanPath := filepath.Clean(path)
	ext := filepath.Ext(cleanPath)
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .json, .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	p := &Params{}
	if ext == ".json" {
		err = json.Unmarshal(data, p)
	} else {
		err = yaml.Unmarshal(data, p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return p, nil
}

// Validate checks the fields that have a closed set of values. Threshold and
// thickness accept any number.
func (p *Params) Validate() error {
	if p.OffsetMode != nil {
		if _, err := geometry.ParseOffsetMode(*p.OffsetMode); err != nil {
			return err
		}
	}
	return nil
}

func (p *Params) GetThreshold() float64 {
	if p.Threshold == nil {
		return geometry.DefaultThreshold
	}
	return *p.Threshold
}

func (p *Params) GetThickness() float64 {
	if p.Thickness == nil {
		return geometry.DefaultThickness
	}
	return *p.Thickness
}

func (p *Params) GetOffsetMode() geometry.OffsetMode {
	if p.OffsetMode == nil {
		return geometry.OffsetFirstNormal
	}
	m, err := geometry.ParseOffsetMode(*p.OffsetMode)
	if err != nil {
		return geometry.OffsetFirstNormal
	}
	return m
}

// ApplyContour sets the threshold on c.
func (p *Params) ApplyContour(c *geometry.ContourExtractor) {
	c.SetThreshold(p.GetThreshold())
}

// ApplyShell sets thickness and offset mode on s.
func (p *Params) ApplyShell(s *geometry.ShellExtruder) {
	s.SetThickness(p.GetThickness())
	s.SetOffsetMode(p.GetOffsetMode())
}
