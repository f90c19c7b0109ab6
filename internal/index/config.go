package index

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sod/dotquad/pkg/geom"
)

type Config struct {
	Universe     Universe `envconfig:"DOTQUAD_UNIVERSE" default:"0,0,800,600"`
	MaxPoints    int      `envconfig:"DOTQUAD_MAX_POINTS" default:"0"`
	StrictBounds bool     `envconfig:"DOTQUAD_STRICT_BOUNDS" default:"true"`
}

// Universe is decoded from "x1,y1,x2,y2".
type Universe geom.Rect

func (u *Universe) Decode(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return fmt.Errorf("universe %q: expected x1,y1,x2,y2", value)
	}
	var bounds [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("universe %q: %w", value, err)
		}
		bounds[i] = v
	}
	r, err := geom.NewRect(bounds[0], bounds[1], bounds[2], bounds[3])
	if err != nil {
		return err
	}
	*u = Universe(r)
	return nil
}

func (u Universe) Rect() geom.Rect {
	return geom.Rect(u)
}
