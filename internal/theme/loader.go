package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// schemeFile is the root structure of a scheme YAML file. A file names
// a built-in preset to start from and overrides ramp control points
// and player colors.
type schemeFile struct {
	Name       string             `yaml:"name"`
	Base       string             `yaml:"base"`
	Appearance string             `yaml:"appearance"` // "light" or "dark"
	Ramps      map[string]rampDef `yaml:"ramps"`
	Players    []playerDef        `yaml:"players"`
}

// rampDef accepts either a single chroma string or a list of control
// colors.
type rampDef struct {
	hexes []string
}

func (d *rampDef) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		d.hexes = []string{s}
		return nil
	case yaml.SequenceNode:
		return value.Decode(&d.hexes)
	default:
		return fmt.Errorf("ramp must be a color string or a list of colors")
	}
}

type playerDef struct {
	Index     int    `yaml:"index"`
	Cursor    string `yaml:"cursor"`
	Selection string `yaml:"selection"`
}

// Load reads a scheme file and builds its ColorScheme. The file's
// base preset supplies every ramp the file does not override.
func Load(path string) (*ColorScheme, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied scheme path
	if err != nil {
		return nil, fmt.Errorf("read scheme %s: %w", path, err)
	}

	var file schemeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scheme %s: %w", path, err)
	}

	baseName := file.Base
	if baseName == "" {
		baseName = "one-dark"
	}
	preset, ok := Presets[baseName]
	if !ok {
		return nil, fmt.Errorf("unknown base scheme %q", baseName)
	}

	isLight := preset.IsLight
	switch file.Appearance {
	case "":
	case "light":
		isLight = true
	case "dark":
		isLight = false
	default:
		return nil, fmt.Errorf("invalid appearance %q: want \"light\" or \"dark\"", file.Appearance)
	}

	ramps := preset.Ramps
	for name, def := range file.Ramps {
		ramp, err := buildRampDef(name, def)
		if err != nil {
			return nil, fmt.Errorf("scheme %s: %w", path, err)
		}
		if name == "neutral" {
			ramps.Neutral = ramp
			continue
		}
		if err := setChromatic(&ramps, name, ramp); err != nil {
			return nil, fmt.Errorf("scheme %s: %w", path, err)
		}
	}

	name := file.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	scheme := Build(name, isLight, ramps)

	for _, p := range file.Players {
		if p.Index < 0 || p.Index >= PlayerCount {
			return nil, fmt.Errorf("scheme %s: player index %d out of range [0, %d)", path, p.Index, PlayerCount)
		}
		if p.Cursor != "" {
			scheme.Players[p.Index].Cursor = p.Cursor
		}
		if p.Selection != "" {
			scheme.Players[p.Index].Selection = p.Selection
		}
	}

	return scheme, nil
}

func buildRampDef(name string, def rampDef) (Ramp, error) {
	if len(def.hexes) == 0 {
		return Ramp{}, fmt.Errorf("ramp %q: no control colors", name)
	}
	if len(def.hexes) == 1 {
		ramp, err := ColorRamp(def.hexes[0])
		if err != nil {
			return Ramp{}, fmt.Errorf("ramp %q: %w", name, err)
		}
		return ramp, nil
	}
	ramp, err := NewRamp(def.hexes...)
	if err != nil {
		return Ramp{}, fmt.Errorf("ramp %q: %w", name, err)
	}
	return ramp, nil
}

func setChromatic(ramps *RampSet, name string, ramp Ramp) error {
	switch name {
	case "red":
		ramps.Red = ramp
	case "orange":
		ramps.Orange = ramp
	case "yellow":
		ramps.Yellow = ramp
	case "green":
		ramps.Green = ramp
	case "cyan":
		ramps.Cyan = ramp
	case "blue":
		ramps.Blue = ramp
	case "violet":
		ramps.Violet = ramp
	case "magenta":
		ramps.Magenta = ramp
	default:
		return fmt.Errorf("unknown ramp %q", name)
	}
	return nil
}
