// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Lookup order:
// 1) absolute names are opened as they are
// 2) the directories added with AddDir, last added first
// 3) the base dir
// Without any directory names are relative to the working directory.

var (
	baseDir string
	// search order, highest priority first. The base dir is always last.
	dirs  []string
	mutex sync.RWMutex
)

type File interface {
	io.ReadSeekCloser
	io.ReaderAt
}

func BaseDir() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return baseDir
}

// UseBaseDir resets the search path to only contain dir.
func UseBaseDir(dir string) {
	mutex.Lock()
	defer mutex.Unlock()
	baseDir = dir
	dirs = []string{dir}
}

// AddDir puts dir in front of the search path.
func AddDir(dir string) {
	mutex.Lock()
	defer mutex.Unlock()
	for i, d := range dirs {
		if d == dir {
			dirs = append(dirs[:i], dirs[i+1:]...)
			break
		}
	}
	dirs = append([]string{dir}, dirs...)
}

// Dirs returns the search path, highest priority first.
func Dirs() []string {
	mutex.RLock()
	defer mutex.RUnlock()
	r := make([]string, len(dirs))
	copy(r, dirs)
	return r
}

func candidates(name string) []string {
	if filepath.IsAbs(name) {
		return []string{name}
	}
	mutex.RLock()
	defer mutex.RUnlock()
	if len(dirs) == 0 {
		return []string{name}
	}
	r := make([]string, 0, len(dirs))
	for _, d := range dirs {
		r = append(r, filepath.Join(d, name))
	}
	return r
}

// Resolve returns the path of the first file along the search path with the
// given name.
func Resolve(name string) (string, error) {
	var err error
	for _, c := range candidates(name) {
		fi, err1 := os.Stat(c)
		if err1 == nil && !fi.IsDir() {
			return c, nil
		}
		if err == nil || os.IsNotExist(err) {
			err = err1
		}
	}
	if err == nil {
		err = fs.ErrNotExist
	}
	return "", &fs.PathError{Op: "resolve", Path: name, Err: unwrapPathError(err)}
}

func unwrapPathError(err error) error {
	if pe, ok := err.(*fs.PathError); ok {
		return pe.Err
	}
	if err == nil {
		return fs.ErrNotExist
	}
	return err
}

func Stat(name string) (os.FileInfo, error) {
	p, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	return os.Stat(p)
}

func Open(name string) (File, error) {
	p, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}

func ReadFile(name string) ([]byte, error) {
	file, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func StripExt(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}
