// SPDX-License-Identifier: GPL-2.0-or-later

// Package scenefile reads the line based scene description:
//
//	# comment
//	TERRAIN width depth x_slices z_slices heightmap
//	LIGHT x y z r g b
//	MESH path x y z opacity
//
// Paths may be quoted. A word starting with "//" begins a trailing comment,
// so a path starting with "//" must be quoted; "//" inside a word is kept.
// Unknown records are skipped, missing or malformed numbers read as zero.
// Both are logged.
package scenefile

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"goscene/cmd"
	"goscene/filesystem"
)

type Kind int

const (
	Terrain Kind = iota
	Light
	Mesh
)

func (k Kind) String() string {
	switch k {
	case Terrain:
		return "TERRAIN"
	case Light:
		return "LIGHT"
	case Mesh:
		return "MESH"
	}
	return "UNKNOWN"
}

// Record is one parsed line. Only the fields of its Kind are set.
type Record struct {
	Line int
	Kind Kind
	Path string

	Position mgl32.Vec3
	Color    mgl32.Vec3
	Opacity  float32

	Width   float32
	Depth   float32
	XSlices int
	ZSlices int
}

type parser struct {
	line    int
	records []Record
	cmds    *cmd.Commands
}

func newParser() *parser {
	p := &parser{cmds: cmd.New()}
	cmd.Must(p.cmds.Add("terrain", p.terrain))
	cmd.Must(p.cmds.Add("light", p.light))
	cmd.Must(p.cmds.Add("mesh", p.mesh))
	return p
}

func (p *parser) warn(a cmd.Arguments, err error) {
	log.Printf("scene line %d (%s): %v, using 0", p.line, a.Argv(0), err)
}

func (p *parser) float(a cmd.Arguments, i int) float32 {
	if i >= len(a.Args()) {
		p.warn(a, errors.Errorf("missing argument %d", i))
		return 0
	}
	f, err := a.Argv(i).ParseFloat32()
	if err != nil {
		p.warn(a, err)
	}
	return f
}

func (p *parser) integer(a cmd.Arguments, i int) int {
	if i >= len(a.Args()) {
		p.warn(a, errors.Errorf("missing argument %d", i))
		return 0
	}
	n, err := a.Argv(i).ParseInt()
	if err != nil {
		p.warn(a, err)
	}
	return n
}

func (p *parser) vec3(a cmd.Arguments, i int) mgl32.Vec3 {
	return mgl32.Vec3{p.float(a, i), p.float(a, i+1), p.float(a, i+2)}
}

func (p *parser) path(a cmd.Arguments, i int) string {
	if i >= len(a.Args()) {
		log.Printf("scene line %d (%s): missing path", p.line, a.Argv(0))
	}
	return a.Argv(i).String()
}

func (p *parser) terrain(a cmd.Arguments) error {
	p.records = append(p.records, Record{
		Line:    p.line,
		Kind:    Terrain,
		Width:   p.float(a, 1),
		Depth:   p.float(a, 2),
		XSlices: p.integer(a, 3),
		ZSlices: p.integer(a, 4),
		Path:    p.path(a, 5),
	})
	return nil
}

func (p *parser) light(a cmd.Arguments) error {
	p.records = append(p.records, Record{
		Line:     p.line,
		Kind:     Light,
		Position: p.vec3(a, 1),
		Color:    p.vec3(a, 4),
	})
	return nil
}

func (p *parser) mesh(a cmd.Arguments) error {
	p.records = append(p.records, Record{
		Line:     p.line,
		Kind:     Mesh,
		Path:     p.path(a, 1),
		Position: p.vec3(a, 2),
		Opacity:  p.float(a, 5),
	})
	return nil
}

// Parse reads all records of r. Only read errors are returned.
func Parse(r io.Reader) ([]Record, error) {
	p := newParser()
	s := bufio.NewScanner(r)
	for s.Scan() {
		p.line++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		a := cmd.Parse(line)
		ok, err := p.cmds.Execute(a)
		if err != nil {
			return p.records, errors.Wrapf(err, "line %d", p.line)
		}
		if !ok {
			log.Printf("scene line %d: unknown record %q, skipped", p.line, a.Argv(0))
		}
	}
	if err := s.Err(); err != nil {
		return p.records, errors.Wrap(err, "reading scene")
	}
	return p.records, nil
}

// Load parses the named file from the asset search path.
func Load(name string) ([]Record, error) {
	f, err := filesystem.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	log.Printf("Loaded scene %v (%d records)", name, len(recs))
	return recs, nil
}
