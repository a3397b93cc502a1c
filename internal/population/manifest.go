// Package population reads star manifests: lists of stars to evolve, given as
// TOML ([[star]] tables) or YAML (a stars: list).
package population

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"herd/core/evolve"
	"herd/internal/pipeline"
)

// Defaults apply to every entry that does not set the field itself.
type Defaults struct {
	Metallicity *float64 `toml:"metallicity" yaml:"metallicity"`
	MaxAge      *float64 `toml:"max_age" yaml:"max_age"`
	Spin        *float64 `toml:"spin" yaml:"spin"`
}

// Entry describes one star, or one star per mass when Masses is set.
type Entry struct {
	ID          string    `toml:"id" yaml:"id"`
	Mass        float64   `toml:"mass" yaml:"mass"`
	Masses      []float64 `toml:"masses" yaml:"masses"`
	Metallicity *float64  `toml:"metallicity" yaml:"metallicity"`
	MaxAge      *float64  `toml:"max_age" yaml:"max_age"`
	Spin        *float64  `toml:"spin" yaml:"spin"`
}

// Manifest is a decoded star list.
type Manifest struct {
	Defaults Defaults `toml:"defaults" yaml:"defaults"`
	Stars    []Entry  `toml:"star" yaml:"stars"`
}

// Load reads a manifest, choosing the decoder by file extension.
// Unknown keys are rejected.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return DecodeTOML(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return Manifest{}, fmt.Errorf("manifest %s: unsupported extension %q (want .toml, .yaml or .yml)", path, ext)
	}
}

// DecodeTOML parses a TOML manifest.
func DecodeTOML(data []byte) (Manifest, error) {
	var m Manifest
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

// DecodeYAML parses a YAML manifest.
func DecodeYAML(data []byte) (Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

// Expand expands the manifest into pipeline work items on top of base.
// Entries without an ID are named star-<n> (1-based); a Masses entry yields
// <id>/<mass> per mass. Parameters are validated per star by the evolution
// itself, so an invalid star fails alone.
func (m Manifest) Expand(base evolve.Parameters) ([]pipeline.Star, error) {
	if len(m.Stars) == 0 {
		return nil, fmt.Errorf("manifest: no stars")
	}
	seen := make(map[string]int)
	var out []pipeline.Star
	add := func(id string, p evolve.Parameters, entry int) error {
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("manifest: duplicate star id %q (entries %d and %d)", id, prev, entry)
		}
		seen[id] = entry
		out = append(out, pipeline.Star{ID: id, Params: p})
		return nil
	}

	for i, e := range m.Stars {
		n := i + 1
		if e.Mass != 0 && len(e.Masses) > 0 {
			return nil, fmt.Errorf("manifest: entry %d sets both mass and masses", n)
		}
		p := base
		apply(&p, m.Defaults.Metallicity, m.Defaults.MaxAge, m.Defaults.Spin)
		apply(&p, e.Metallicity, e.MaxAge, e.Spin)

		id := e.ID
		if id == "" {
			id = fmt.Sprintf("star-%d", n)
		}
		if len(e.Masses) == 0 {
			p.Mass = e.Mass
			if err := add(id, p, n); err != nil {
				return nil, err
			}
			continue
		}
		for _, mass := range e.Masses {
			q := p
			q.Mass = mass
			if err := add(fmt.Sprintf("%s/%g", id, mass), q, n); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func apply(p *evolve.Parameters, z, maxAge, spin *float64) {
	if z != nil {
		p.Metallicity = *z
	}
	if maxAge != nil {
		p.MaxAge = *maxAge
	}
	if spin != nil {
		p.InitialSpin = *spin
	}
}
