// Package scene loads worlds described in YAML.
//
//	gravity: [0, -9.8]
//	seed: 42
//	bodies:
//	  - name: floor
//	    static: true
//	    shapes:
//	      - vertices: [[-20, 0], [20, 0], [20, -1], [-20, -1]]
//	  - name: box
//	    bounciness: 0.2
//	    shapes:
//	      - regular: {count: 4, radius: 1.5, center: [0, 10]}
//
// Polygon vertices are world coordinates listed clockwise.
package scene

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	msfl2d "github.com/MyselfLeo/msfl2D"
)

// ErrInvalidScene is wrapped by every validation error of a scene.
var ErrInvalidScene = errors.New("scene: invalid scene")

// Point is a 2D point written as a [x, y] sequence.
type Point [2]float64

func (p Point) Vec() msfl2d.Vec2D {
	return msfl2d.MakeVec2D(p[0], p[1])
}

// Scene is the root of a scene file.
type Scene struct {
	Gravity  *Point   `yaml:"gravity,omitempty"`
	Friction *float64 `yaml:"friction,omitempty"`
	Seed     *uint64  `yaml:"seed,omitempty"`
	Bodies   []Body   `yaml:"bodies"`
}

// Body describes one body. Unset fields take the engine defaults.
type Body struct {
	Name            string   `yaml:"name"`
	Static          bool     `yaml:"static,omitempty"`
	Mass            *float64 `yaml:"mass,omitempty"`
	Bounciness      *float64 `yaml:"bounciness,omitempty"`
	Friction        *float64 `yaml:"friction,omitempty"`
	Velocity        Point    `yaml:"velocity,omitempty"`
	AngularVelocity float64  `yaml:"angular_velocity,omitempty"`
	Shapes          []Shape  `yaml:"shapes"`
}

// Shape is either an explicit polygon or a regular one.
type Shape struct {
	Vertices []Point  `yaml:"vertices,omitempty"`
	Regular  *Regular `yaml:"regular,omitempty"`
	Rotation float64  `yaml:"rotation,omitempty"`
}

type Regular struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	Center Point   `yaml:"center"`
}

// Load decodes a scene from YAML.
func Load(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decode scene")
	}
	return &s, nil
}

// LoadFile decodes the scene stored at path.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open scene %s", path)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", path)
	}
	return s, nil
}

// Options returns the world options described by the scene.
func (s *Scene) Options() []msfl2d.WorldOption {
	var opts []msfl2d.WorldOption
	if s.Gravity != nil {
		opts = append(opts, msfl2d.WithGravity(s.Gravity.Vec()))
	}
	if s.Friction != nil {
		opts = append(opts, msfl2d.WithFriction(*s.Friction))
	}
	if s.Seed != nil {
		opts = append(opts, msfl2d.WithSeed(*s.Seed))
	}
	return opts
}

// Build creates a world populated with the bodies of the scene. opts are
// applied after the scene settings and take precedence. The returned map
// gives the ID of every body by name.
func (s *Scene) Build(opts ...msfl2d.WorldOption) (*msfl2d.World, map[string]msfl2d.BodyID, error) {
	world, err := msfl2d.NewWorld(append(s.Options(), opts...)...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create world")
	}

	ids := make(map[string]msfl2d.BodyID, len(s.Bodies))
	for i, desc := range s.Bodies {
		name := desc.Name
		if name == "" {
			name = fmt.Sprintf("body-%d", i)
		}
		if _, ok := ids[name]; ok {
			return nil, nil, errors.Wrapf(ErrInvalidScene, "duplicate body name %q", name)
		}

		body, err := desc.build()
		if err != nil {
			return nil, nil, errors.Wrapf(err, "body %q", name)
		}

		id, err := world.AddBody(body)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "body %q", name)
		}
		ids[name] = id
	}

	return world, ids, nil
}

func (b Body) build() (*msfl2d.Body, error) {
	if len(b.Shapes) == 0 {
		return nil, errors.Wrap(ErrInvalidScene, "a body needs at least one shape")
	}

	def := msfl2d.MakeBodyDef()
	def.Static = b.Static
	def.Velocity = b.Velocity.Vec()
	def.AngularVelocity = b.AngularVelocity
	if b.Mass != nil {
		def.Mass = *b.Mass
	}
	if b.Bounciness != nil {
		def.Bounciness = *b.Bounciness
	}
	if b.Friction != nil {
		def.Friction = *b.Friction
	}

	body, err := msfl2d.NewBodyFromDef(def)
	if err != nil {
		return nil, err
	}

	for i, desc := range b.Shapes {
		shape, err := desc.build()
		if err != nil {
			return nil, errors.Wrapf(err, "shape %d", i)
		}
		if err := body.AddShape(shape); err != nil {
			return nil, errors.Wrapf(err, "shape %d", i)
		}
	}

	return body, nil
}

func (s Shape) build() (*msfl2d.ConvexPolygon, error) {
	var (
		poly *msfl2d.ConvexPolygon
		err  error
	)

	switch {
	case s.Regular != nil && len(s.Vertices) > 0:
		return nil, errors.Wrap(ErrInvalidScene, "a shape has either vertices or regular, not both")
	case s.Regular != nil:
		poly, err = msfl2d.NewRegularPolygon(s.Regular.Count, s.Regular.Radius, s.Regular.Center.Vec())
	case len(s.Vertices) > 0:
		vertices := make([]msfl2d.Vec2D, len(s.Vertices))
		for i, p := range s.Vertices {
			vertices[i] = p.Vec()
		}
		poly, err = msfl2d.NewConvexPolygonFromVertices(vertices)
	default:
		return nil, errors.Wrap(ErrInvalidScene, "a shape needs vertices or regular")
	}
	if err != nil {
		return nil, err
	}

	poly.SetRotation(s.Rotation)
	return poly, nil
}
