package files

import (
	"errors"
	"path/filepath"
)

var (
	ErrDirNotFound = errors.New("no directory found during walk")
	ErrStopWalk    = errors.New("WalkUp: stop")
)

// A WalkUpFunc takes a directory and returns an error.
type WalkUpFunc func(dir string) error

// WalkUp takes a starting directory, an upper boundary directory, and a
// WalkUpFunc, and calls the function, passing the starting directory and then
// each of its ancestors in upwards order until the boundary has been visited.
// When boundary is not an ancestor of startdir, only startdir is visited.
//
// If the function returns ErrStopWalk, then WalkUp stops and returns the
// current directory name. If the function returns any other error, then WalkUp
// stops and that error is returned as the error of WalkUp. If ErrStopWalk is
// never returned, WalkUp returns ErrDirNotFound.
func WalkUp(startdir, boundary string, walker WalkUpFunc) (string, error) {
	dir, err := filepath.Abs(startdir)
	if err != nil {
		return "", err
	}
	bound, err := filepath.Abs(boundary)
	if err != nil {
		return "", err
	}
	if !Contains(bound, dir) {
		bound = dir
	}

	for {
		err := walker(dir)
		if err == ErrStopWalk {
			return dir, nil
		}
		if err != nil {
			return "", err
		}
		// Stop once the boundary (or the filesystem root) has been visited.
		if dir == bound || dir == filepath.Dir(dir) {
			return "", ErrDirNotFound
		}
		dir = filepath.Dir(dir)
	}
}
