// SPDX-License-Identifier: GPL-2.0-or-later

// Package config reads and writes the settings file, a flat YAML mapping of
// cvar names to values:
//
//	cam_speed: 8
//	skybox: "assets/skybox/sky-cube-map-"
package config

import (
	"io"
	"log"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"goscene/cvar"
)

// Read applies all entries of r to the cvar registry. Unknown names and
// values that are not scalars are logged and skipped. It returns the number
// of applied entries.
func Read(r io.Reader) (int, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, errors.Wrap(err, "Failed to decode config")
	}
	if len(doc.Content) == 0 {
		return 0, nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return 0, errors.Errorf("config line %d: expected a mapping of names to values", m.Line)
	}
	applied := 0
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		cv, ok := cvar.Get(k.Value)
		if !ok {
			log.Printf("config line %d: unknown setting %q", k.Line, k.Value)
			continue
		}
		if v.Kind != yaml.ScalarNode {
			log.Printf("config line %d: %s needs a plain value", v.Line, k.Value)
			continue
		}
		value := v.Value
		if v.Tag == "!!bool" {
			value = boolValue(v.Value)
		}
		cv.SetByString(value)
		applied++
	}
	return applied, nil
}

func boolValue(s string) string {
	var b bool
	if err := yaml.Unmarshal([]byte(s), &b); err == nil && b {
		return "1"
	}
	return "0"
}

// Load reads the named file. A missing file is not an error.
func Load(name string) error {
	f, err := os.Open(name)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()
	n, err := Read(f)
	if err != nil {
		return errors.Wrap(err, name)
	}
	log.Printf("Loaded config %s (%d settings)", name, n)
	return nil
}

// Write stores all archived cvars, sorted by name.
func Write(w io.Writer) error {
	cvars := make([]*cvar.Cvar, 0)
	for _, cv := range cvar.All() {
		if cv.Archive() {
			cvars = append(cvars, cv)
		}
	}
	sort.Slice(cvars, func(i, j int) bool { return cvars[i].Name() < cvars[j].Name() })

	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, cv := range cvars {
		v := &yaml.Node{Kind: yaml.ScalarNode, Value: cv.String()}
		if cv.String() == "" {
			v.Style = yaml.DoubleQuotedStyle
		}
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: cv.Name()},
			v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return errors.Wrap(err, "Failed to encode config")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "Failed to close yaml encoder")
	}
	return nil
}

// Save writes the archived cvars to the named file.
func Save(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Write(f); err != nil {
		f.Close()
		return errors.Wrap(err, name)
	}
	return f.Close()
}
