// Package files implements utility routines for finding and reading files.
package files

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/LaudateCorpus1/licensed/log"
)

func fileMode(elem ...string) (os.FileMode, error) {
	file, err := os.Stat(filepath.Join(elem...))
	if err != nil {
		return 0, err
	}

	return file.Mode(), nil
}

func Exists(pathElems ...string) (bool, error) {
	mode, err := fileMode(pathElems...)
	if notExistErr(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return mode.IsRegular(), nil
}

func ExistsFolder(pathElems ...string) (bool, error) {
	mode, err := fileMode(pathElems...)
	if notExistErr(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return mode.IsDir(), nil
}

func Read(pathElems ...string) ([]byte, error) {
	name := filepath.Join(pathElems...)

	log.Debugf("Reading file `%s`", name)
	contents, err := os.ReadFile(name)
	if err != nil {
		log.Debugf("Could not read file `%s`: %s", name, err.Error())
	}

	return contents, err
}

// List returns the names of the regular files within a directory, in
// lexical order.
func List(pathElems ...string) ([]string, error) {
	name := filepath.Join(pathElems...)

	log.Debugf("Listing directory `%s`", name)
	entries, err := os.ReadDir(name)
	if err != nil {
		log.Debugf("Could not list directory `%s`: %s", name, err.Error())
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Contains reports whether dir is root itself or lexically within root. It
// does not resolve symlinks.
func Contains(root, dir string) bool {
	if root == dir {
		return true
	}
	root = strings.TrimSuffix(root, string(filepath.Separator))
	return strings.HasPrefix(dir, root+string(filepath.Separator))
}

// os.IsNotExist doesn't handle non-existent parent directories e.g.
// stat /some/path/without/a/parent.json: not a directory
func notExistErr(err error) bool {
	if os.IsNotExist(err) {
		return true
	}
	if _, ok := err.(*os.PathError); ok {
		return true
	}
	return false
}
