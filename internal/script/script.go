// Package script decodes and replays gesture scripts: YAML documents
// that describe a crop box, its container, and a series of pointer
// drags to apply to it.
//
// A script looks like
//
//	container: {width: 390, height: 600}
//	min: {width: 100, height: 100}
//	hit_distance: 16
//	rect: {x: 10, y: 10, width: 200, height: 150}
//	gestures:
//	  - start: {x: 12, y: 12}
//	    moves:
//	      - {dx: -5, dy: -5}
//	      - {dx: -20, dy: -30}
//
// Each move is the cumulative translation since the start of its
// gesture. The min and hit_distance keys are optional and override
// the configured values. A gesture may also carry its own container,
// which replaces the previous one from that gesture onward. The box is
// refitted to a new container before the gesture begins.
package script

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"deedles.dev/cropbox"
	"deedles.dev/cropbox/geom"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned, wrapped, when a script is well-formed YAML
// but does not describe a usable set of gestures.
var ErrInvalid = errors.New("invalid script")

// Size is a width and height.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (s Size) point() cropbox.Point {
	return geom.Pt(s.Width, s.Height)
}

// Position is a point in container coordinates.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Delta is a pointer translation.
type Delta struct {
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
}

// Rect is a rectangle given by its origin and size.
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r Rect) rect() cropbox.Rect {
	return cropbox.RectAt(r.X, r.Y, r.Width, r.Height)
}

// Gesture is a single drag from press to release.
type Gesture struct {
	Start     Position `yaml:"start"`
	Container *Size    `yaml:"container,omitempty"`
	Moves     []Delta  `yaml:"moves"`
}

// Script is a decoded gesture script.
type Script struct {
	Container   Size      `yaml:"container"`
	Min         *Size     `yaml:"min,omitempty"`
	HitDistance *float64  `yaml:"hit_distance,omitempty"`
	Rect        Rect      `yaml:"rect"`
	Gestures    []Gesture `yaml:"gestures"`
}

// Decode reads a script from r and validates it. Unknown keys are
// rejected.
func Decode(r io.Reader) (*Script, error) {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)

	var s Script
	err := d.Decode(&s)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("decode: %w", err)
	}

	err = s.Validate()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a script from the file at path.
func Load(path string) (*Script, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Validate checks that every size in s is positive, that the box
// starts inside its container, and that every gesture moves.
func (s *Script) Validate() error {
	if !positive(s.Container) {
		return fmt.Errorf("%w: container size %vx%v", ErrInvalid, s.Container.Width, s.Container.Height)
	}
	if s.Min != nil && !positive(*s.Min) {
		return fmt.Errorf("%w: minimum size %vx%v", ErrInvalid, s.Min.Width, s.Min.Height)
	}
	if s.HitDistance != nil && *s.HitDistance < 0 {
		return fmt.Errorf("%w: negative hit distance", ErrInvalid)
	}

	r := s.Rect.rect()
	if r.Empty() {
		return fmt.Errorf("%w: empty rect", ErrInvalid)
	}
	if !geom.RectAt(cropbox.Point{}, s.Container.point()).Contains(r.Bounds()) {
		return fmt.Errorf("%w: rect %v outside of container", ErrInvalid, r)
	}

	for i, g := range s.Gestures {
		if g.Container != nil && !positive(*g.Container) {
			return fmt.Errorf("%w: gesture %v: container size %vx%v", ErrInvalid, i, g.Container.Width, g.Container.Height)
		}
		if len(g.Moves) == 0 {
			return fmt.Errorf("%w: gesture %v has no moves", ErrInvalid, i)
		}
	}

	return nil
}

func positive(s Size) bool {
	return s.Width > 0 && s.Height > 0
}

// Box returns base with the container and any overrides from s
// applied.
func (s *Script) Box(base cropbox.Box) cropbox.Box {
	base.Frame = s.Container.point()
	if s.Min != nil {
		base.MinSize = s.Min.point()
	}
	if s.HitDistance != nil {
		base.HitDistance = *s.HitDistance
	}
	return base
}

// Step is the state of the box after a single move of a gesture.
type Step struct {
	Gesture int
	Move    int
	Frame   cropbox.Point
	Corner  cropbox.Corner
	Rect    cropbox.Rect
}

// Run returns an iterator over the steps of s, replayed on a box
// configured by base. See [Script.Box].
func (s *Script) Run(base cropbox.Box) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		box := s.Box(base)
		rect := s.Rect.rect()

		for gi, g := range s.Gestures {
			if g.Container != nil {
				box.Frame = g.Container.point()
				rect = cropbox.Fit(rect, box.Frame)
			}

			var session cropbox.Session
			start := geom.Pt(g.Start.X, g.Start.Y)
			for mi, m := range g.Moves {
				session, rect = box.Update(session, rect, cropbox.Drag{
					Start:       start,
					Translation: geom.Pt(m.DX, m.DY),
				})

				step := Step{
					Gesture: gi,
					Move:    mi,
					Frame:   box.Frame,
					Corner:  session.Corner,
					Rect:    rect,
				}
				if !yield(step) {
					return
				}
			}
		}
	}
}

// Final replays s and returns the last step. If s has no gestures,
// the returned step holds the starting box.
func (s *Script) Final(base cropbox.Box) Step {
	last := Step{
		Gesture: -1,
		Move:    -1,
		Frame:   s.Box(base).Frame,
		Rect:    s.Rect.rect(),
	}
	for step := range s.Run(base) {
		last = step
	}
	return last
}
