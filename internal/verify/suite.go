// Package verify replays probe tables against freshly built trees and
// checks how much work each circle query did.
package verify

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-sod/dotquad/pkg/geom"
)

//go:embed builtin.toml
var builtinSuite string

// Probe is one circle query with the counts it must produce.
type Probe struct {
	X              float64 `toml:"x"`
	Y              float64 `toml:"y"`
	R              float64 `toml:"r"`
	RectangleTests int64   `toml:"rectangle_tests"`
	InCircleTests  int64   `toml:"in_circle_tests"`
	Hits           int     `toml:"hits"`
	Note           string  `toml:"note"`
}

func (p Probe) String() string {
	return fmt.Sprintf("(%g,%g)@%g", p.X, p.Y, p.R)
}

// Scenario is a tree, given as the seed followed by the inserted points in
// order, and the probes to run against it.
type Scenario struct {
	Name     string       `toml:"name"`
	Universe geom.Rect    `toml:"universe"`
	Points   [][2]float64 `toml:"points"`
	Probes   []Probe      `toml:"probe"`
}

type Suite struct {
	Scenarios []Scenario `toml:"scenario"`
}

// Builtin returns the reference scenarios shipped with the binary.
func Builtin() (*Suite, error) {
	var s Suite
	if _, err := toml.Decode(builtinSuite, &s); err != nil {
		return nil, fmt.Errorf("decoding builtin suite: %w", err)
	}
	return &s, nil
}

// Load reads a suite from a TOML file. Coordinates are floats (400.0, not
// 400).
func Load(path string) (*Suite, error) {
	var s Suite
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("decoding suite %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("suite %s: unknown keys %v", path, undecoded)
	}
	return &s, nil
}
