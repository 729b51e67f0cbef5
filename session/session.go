// SPDX-License-Identifier: GPL-2.0-or-later

// Package session keeps the viewer state between runs: where the camera is,
// where it looks and the active effect.
package session

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"goscene/postprocess"
	"goscene/scene"
)

type State struct {
	Location mgl32.Vec3
	Target   mgl32.Vec3
	Effect   postprocess.Mode
}

// Capture reads the state of s.
func Capture(s *scene.Scene) State {
	return State{
		Location: s.Camera().Location(),
		Target:   s.Camera().Target(),
		Effect:   s.Post().Mode(),
	}
}

// Apply moves the camera of s and selects the effect.
func (st State) Apply(s *scene.Scene) {
	s.Camera().SetLocation(st.Location)
	s.Camera().SetTarget(st.Target)
	s.Post().SetMode(st.Effect)
}

func vec(v mgl32.Vec3) *structpb.Value {
	return structpb.NewListValue(&structpb.ListValue{Values: []*structpb.Value{
		structpb.NewNumberValue(float64(v[0])),
		structpb.NewNumberValue(float64(v[1])),
		structpb.NewNumberValue(float64(v[2])),
	}})
}

func readVec(f map[string]*structpb.Value, name string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	l := f[name].GetListValue().GetValues()
	if len(l) != 3 {
		return v, errors.Errorf("session field %s needs 3 numbers, has %d", name, len(l))
	}
	for i, e := range l {
		if _, ok := e.GetKind().(*structpb.Value_NumberValue); !ok {
			return v, errors.Errorf("session field %s: element %d is not a number", name, i)
		}
		v[i] = float32(e.GetNumberValue())
	}
	return v, nil
}

func (st State) Marshal() ([]byte, error) {
	data := &structpb.Struct{Fields: map[string]*structpb.Value{
		"location": vec(st.Location),
		"target":   vec(st.Target),
		"effect":   structpb.NewNumberValue(float64(st.Effect)),
	}}
	out, err := proto.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode session")
	}
	return out, nil
}

// Unmarshal decodes a session. An unknown effect falls back to Normal.
func Unmarshal(in []byte) (State, error) {
	var st State
	data := &structpb.Struct{}
	if err := proto.Unmarshal(in, data); err != nil {
		return st, errors.Wrap(err, "failed to decode session")
	}
	f := data.GetFields()
	var err error
	if st.Location, err = readVec(f, "location"); err != nil {
		return st, err
	}
	if st.Target, err = readVec(f, "target"); err != nil {
		return st, err
	}
	st.Effect = postprocess.Wrap(int(f["effect"].GetNumberValue()))
	return st, nil
}

// Load reads the named session file. ok is false if there is none yet.
func Load(name string) (st State, ok bool, err error) {
	in, err := os.ReadFile(name)
	if os.IsNotExist(err) {
		return st, false, nil
	}
	if err != nil {
		return st, false, errors.Wrap(err, "failed to read session file")
	}
	st, err = Unmarshal(in)
	if err != nil {
		return st, false, errors.Wrap(err, name)
	}
	return st, true, nil
}

func Save(name string, st State) error {
	out, err := st.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, out, 0660); err != nil {
		return errors.Wrap(err, "failed to write session file")
	}
	return nil
}
