// Package scene describes the map schemes the viewer can load and turns a
// scheme into a loaded Scene: a region of the Web Mercator world at a base
// zoom level, optionally backed by a Tiled map.
package scene

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/zoomview/shared/geo"
	"github.com/golang/geo/s2"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownScheme = errors.New("unknown scheme")
	ErrEmptyManifest = errors.New("manifest has no schemes")
	ErrInvalidScheme = errors.New("invalid scheme")
)

const (
	DefaultExtent    = 4096
	DefaultBaseLevel = 12
)

type MarkerSpec struct {
	Name string `yaml:"name"`
	At   string `yaml:"at"`
}

// Scheme is one entry of the manifest. Level fields left out of the
// manifest get defaults derived from base_level; an explicit 0 is kept.
// A zero extent means DefaultExtent.
type Scheme struct {
	Name      string       `yaml:"name"`
	Map       string       `yaml:"map"` // TMX path inside the manifest's file system
	Center    string       `yaml:"center"`
	Level     float64      `yaml:"level"`
	BaseLevel float64      `yaml:"base_level"`
	MinLevel  float64      `yaml:"min_level"`
	MaxLevel  float64      `yaml:"max_level"`
	Extent    int          `yaml:"extent"` // Grid schemes: world size in pixels at BaseLevel
	Markers   []MarkerSpec `yaml:"markers"`

	declared map[string]bool // keys present in the manifest
}

func (s *Scheme) UnmarshalYAML(node *yaml.Node) error {
	type plain Scheme
	if err := node.Decode((*plain)(s)); err != nil {
		return err
	}
	s.declared = make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		s.declared[node.Content[i].Value] = true
	}
	return nil
}

type Manifest struct {
	Schemes []Scheme `yaml:"schemes"`
}

// ParseManifest decodes and validates a YAML manifest, filling defaults.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Schemes) == 0 {
		return nil, ErrEmptyManifest
	}
	seen := make(map[string]bool, len(m.Schemes))
	for i := range m.Schemes {
		s := &m.Schemes[i]
		s.applyDefaults()
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidScheme, s.Name)
		}
		seen[s.Name] = true
	}
	return &m, nil
}

// LoadManifest reads a manifest from fsys.
func LoadManifest(fsys fs.FS, path string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return ParseManifest(data)
}

// Scheme returns the named scheme, or the first one when name is empty.
func (m *Manifest) Scheme(name string) (Scheme, error) {
	if name == "" {
		return m.Schemes[0], nil
	}
	for _, s := range m.Schemes {
		if s.Name == name {
			return s, nil
		}
	}
	return Scheme{}, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Next returns the scheme after name, wrapping around.
func (m *Manifest) Next(name string) Scheme {
	for i, s := range m.Schemes {
		if s.Name == name {
			return m.Schemes[(i+1)%len(m.Schemes)]
		}
	}
	return m.Schemes[0]
}

func (m *Manifest) Names() []string {
	names := make([]string, len(m.Schemes))
	for i, s := range m.Schemes {
		names[i] = s.Name
	}
	return names
}

func (s *Scheme) applyDefaults() {
	if !s.declared["base_level"] {
		s.BaseLevel = DefaultBaseLevel
	}
	if !s.declared["level"] {
		s.Level = s.BaseLevel
	}
	if !s.declared["min_level"] {
		s.MinLevel = s.BaseLevel - 3
	}
	if !s.declared["max_level"] {
		s.MaxLevel = s.BaseLevel + 6
	}
	if s.Extent == 0 {
		s.Extent = DefaultExtent
	}
}

func (s Scheme) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScheme)
	}
	if _, err := geo.ParseLatLng(s.Center); err != nil {
		return fmt.Errorf("%w %q: center: %w", ErrInvalidScheme, s.Name, err)
	}
	if s.MinLevel > s.MaxLevel || s.Level < s.MinLevel || s.Level > s.MaxLevel {
		return fmt.Errorf("%w %q: level %v outside [%v, %v]", ErrInvalidScheme, s.Name, s.Level, s.MinLevel, s.MaxLevel)
	}
	if s.Extent < 0 {
		return fmt.Errorf("%w %q: extent %d", ErrInvalidScheme, s.Name, s.Extent)
	}
	for _, mk := range s.Markers {
		if _, err := geo.ParseLatLng(mk.At); err != nil {
			return fmt.Errorf("%w %q: marker %q: %w", ErrInvalidScheme, s.Name, mk.Name, err)
		}
	}
	return nil
}

// CenterLatLng returns the parsed center. The scheme must be valid.
func (s Scheme) CenterLatLng() s2.LatLng {
	ll, _ := geo.ParseLatLng(s.Center)
	return ll
}
