// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"strings"

	"github.com/pkg/errors"

	"goscene/conlog"
	"goscene/filesystem"
)

var (
	loaders = make(map[string]LoadFunc)
)

// LoadFunc imports the file at path. path is already resolved against the
// asset search path.
type LoadFunc func(path string) (*Scene, error)

// Register makes f the importer for files with the extension ext (".obj").
func Register(ext string, f LoadFunc) {
	loaders[strings.ToLower(ext)] = f
}

func Load(name string) (*Scene, error) {
	ext := strings.ToLower(filesystem.Ext(name))
	f, ok := loaders[ext]
	if !ok {
		return nil, errors.Errorf("file %s has an unknown file format", name)
	}
	path, err := filesystem.Resolve(name)
	if err != nil {
		return nil, err
	}
	sc, err := f(path)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	conlog.DPrintf("%s: %d meshes\n", name, sc.MeshCount())
	return sc, nil
}
