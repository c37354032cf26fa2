// Package profile loads named formatting presets from YAML.
//
// A preset binds a mode and its parameters to a name so that callers only
// supply the raw scaled value:
//
//	profiles:
//	  - name: voltage
//	    mode: fixed
//	    digits: 2
//	  - name: temperature
//	    mode: dynamic
//	    digits: 3
//	    budget: 4
//	  - name: clock
//	    mode: leading0
//	    width: 2
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rshade/streamfmt/internal/stream"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound is returned by Lookup for an unknown profile name.
	ErrNotFound = errors.New("profile not found")

	// ErrInvalid reports a profile that failed validation.
	ErrInvalid = errors.New("invalid profile")
)

// Profile is a named formatting preset.
type Profile struct {
	Name   string `yaml:"name"`
	Mode   string `yaml:"mode"`
	Digits int    `yaml:"digits"`
	Budget int    `yaml:"budget,omitempty"`
	Width  int    `yaml:"width,omitempty"`

	kind stream.Kind
	tmpl stream.Request
}

// Request returns the formatting request for value under p.
func (p Profile) Request(value int64) stream.Request {
	r := p.tmpl
	r.Value = value
	return r
}

// Kind returns the request kind selected by p's mode.
func (p Profile) Kind() stream.Kind {
	return p.kind
}

type document struct {
	Profiles []Profile `yaml:"profiles"`
}

// Set is an immutable collection of validated profiles.
type Set struct {
	byName map[string]Profile
}

// Load decodes and validates a YAML profile document. Unknown keys are
// rejected.
func Load(r io.Reader) (*Set, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return newSet(doc.Profiles)
}

// LoadFile loads profiles from the YAML file at path.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}
	set, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

func newSet(profiles []Profile) (*Set, error) {
	set := &Set{byName: make(map[string]Profile, len(profiles))}
	for i, p := range profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalid, i)
		}
		if _, dup := set.byName[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalid, p.Name)
		}
		if err := p.compile(); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalid, p.Name, err)
		}
		set.byName[p.Name] = p
	}
	return set, nil
}

// compile resolves the mode and prepares the request template.
func (p *Profile) compile() error {
	kind, base, err := stream.ParseKind(p.Mode)
	if err != nil {
		return err
	}
	switch kind {
	case stream.KindFixed:
		p.tmpl = stream.Fixed(0, p.Digits)
	case stream.KindDynamic:
		if p.Budget <= 0 {
			return fmt.Errorf("mode %s needs a positive budget", p.Mode)
		}
		p.tmpl = stream.Dynamic(0, p.Digits, p.Budget)
	case stream.KindLeading0:
		if p.Width <= 0 {
			return fmt.Errorf("mode %s needs a positive width", p.Mode)
		}
		p.tmpl = stream.Leading0(0, p.Digits, p.Width)
	case stream.KindBased:
		p.tmpl = stream.Based(0, base)
	default:
		return fmt.Errorf("mode %s does not format integers", p.Mode)
	}
	p.kind = kind
	return nil
}

// Lookup returns the profile with the given name.
func (s *Set) Lookup(name string) (Profile, error) {
	p, ok := s.byName[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p, nil
}

// Names returns the profile names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of profiles.
func (s *Set) Len() int {
	return len(s.byName)
}
