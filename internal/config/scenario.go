// Package config loads scenario files describing a grid and the instructions to run on it.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/lockgrid/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ScenarioFile mirrors the on-disk layout of a scenario.
//
//	instructions: LURD
//	optimize: true
//	strategy: fixed-point
//	grid:
//	  - "A # B"
//	  - "# C #"
type ScenarioFile struct {
	Instructions string   `json:"instructions" mapstructure:"instructions"`
	Optimize     bool     `json:"optimize" mapstructure:"optimize"`
	Strategy     string   `json:"strategy" mapstructure:"strategy"`
	Grid         []string `json:"grid" mapstructure:"grid"`
}

// Scenario is a decoded, validated scenario.
type Scenario struct {
	Grid         *domain.Grid
	Instructions string
	Optimize     bool
	Strategy     string
}

// LoadScenario reads a scenario from a YAML or JSON file, chosen by extension.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var raw map[string]any
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}
	return DecodeScenario(raw)
}

// DecodeScenario converts generic key/value data into a Scenario.
func DecodeScenario(raw map[string]any) (*Scenario, error) {
	var file ScenarioFile
	if err := mapstructure.Decode(raw, &file); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	grid, err := ParseGrid(file.Grid)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario grid: %w", err)
	}

	return &Scenario{
		Grid:         grid,
		Instructions: file.Instructions,
		Optimize:     file.Optimize,
		Strategy:     file.Strategy,
	}, nil
}

// ParseGrid builds a grid from rows of whitespace-separated cells.
// "#" and "." denote empty cells; anything else is a token.
func ParseGrid(rows []string) (*domain.Grid, error) {
	cells := make([][]domain.Token, 0, len(rows))
	for _, row := range rows {
		fields := strings.Fields(row)
		tokens := make([]domain.Token, len(fields))
		for i, f := range fields {
			if f != "#" && f != "." {
				tokens[i] = domain.Token(f)
			}
		}
		cells = append(cells, tokens)
	}
	return domain.FromRows(cells)
}
