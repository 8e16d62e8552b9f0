// Package trace records the state of the bodies of a world, step after step.
//
// A trace renders as text, one line per body and step:
//
//	<step>(<name>): <x> <y> <rotation>
//
// hashes into a stable digest, and streams as a sequence of msgpack
// encoded frames.
package trace

import (
	"fmt"
	"io"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	msfl2d "github.com/MyselfLeo/msfl2D"
)

// BodyState is the state of a body at the end of a step.
type BodyState struct {
	Name            string  `msgpack:"name"`
	X               float64 `msgpack:"x"`
	Y               float64 `msgpack:"y"`
	Rotation        float64 `msgpack:"rot"`
	VX              float64 `msgpack:"vx"`
	VY              float64 `msgpack:"vy"`
	AngularVelocity float64 `msgpack:"w"`
}

// Frame holds the state of every recorded body after one step, sorted by
// body name.
type Frame struct {
	Step   int         `msgpack:"step"`
	Bodies []BodyState `msgpack:"bodies"`
}

// Recorder accumulates frames. It is not safe for concurrent use.
type Recorder struct {
	names  []string
	ids    map[string]msfl2d.BodyID
	frames []Frame
}

// NewRecorder records the bodies of the given name to ID map.
func NewRecorder(ids map[string]msfl2d.BodyID) *Recorder {
	names := make([]string, 0, len(ids))
	copied := make(map[string]msfl2d.BodyID, len(ids))
	for name, id := range ids {
		names = append(names, name)
		copied[name] = id
	}
	sort.Strings(names)

	return &Recorder{
		names: names,
		ids:   copied,
	}
}

// Record appends the current state of the world as the frame of the given
// step.
func (r *Recorder) Record(step int, world *msfl2d.World) error {
	frame := Frame{
		Step:   step,
		Bodies: make([]BodyState, 0, len(r.names)),
	}

	for _, name := range r.names {
		body, err := world.GetBody(r.ids[name])
		if err != nil {
			return errors.Wrapf(err, "record %q", name)
		}

		position := body.GetPosition()
		velocity := body.GetVelocity()
		frame.Bodies = append(frame.Bodies, BodyState{
			Name:            name,
			X:               position.X,
			Y:               position.Y,
			Rotation:        body.GetRotation(),
			VX:              velocity.X,
			VY:              velocity.Y,
			AngularVelocity: body.GetAngularVelocity(),
		})
	}

	r.frames = append(r.frames, frame)
	return nil
}

func (r *Recorder) Frames() []Frame {
	return r.frames
}

// WriteText renders the trace, one line per body and frame.
func (r *Recorder) WriteText(w io.Writer) error {
	for _, frame := range r.frames {
		for _, state := range frame.Bodies {
			if _, err := fmt.Fprintf(w, "%v(%s): %4.3f %4.3f %4.3f\n", frame.Step, state.Name, state.X, state.Y, state.Rotation); err != nil {
				return errors.Wrap(err, "write trace")
			}
		}
	}
	return nil
}

// Digest hashes the text rendering of the trace. Two runs printing the same
// trace have the same digest.
func (r *Recorder) Digest() uint64 {
	h := xxhash.New()
	_ = r.WriteText(h)
	return h.Sum64()
}

// WriteMsgpack streams every frame as a msgpack value.
func (r *Recorder) WriteMsgpack(w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	for _, frame := range r.frames {
		if err := enc.Encode(&frame); err != nil {
			return errors.Wrapf(err, "encode frame %d", frame.Step)
		}
	}
	return nil
}

// ReadMsgpack decodes a stream written by WriteMsgpack.
func ReadMsgpack(rd io.Reader) ([]Frame, error) {
	dec := msgpack.NewDecoder(rd)

	var frames []Frame
	for {
		var frame Frame
		err := dec.Decode(&frame)
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "decode frame %d", len(frames))
		}
		frames = append(frames, frame)
	}
}
