// Package licenses determines the license and legal notices of a single
// dependency checkout.
//
// A Dependency combines up to four evidence classes: license files, notice
// files, a README license section, and a package-manager-declared license.
// Evidence is resolved to one license key under a conservative policy where
// any disagreement between sources yields Other rather than guessing.
//
// The fuzzy text-to-license classification itself is delegated to a Matcher;
// see the match package for the default implementation.
package licenses

import (
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/LaudateCorpus1/licensed/config"
)

// PathNotFound is the soft error recorded on dependencies constructed without
// a checkout path.
const PathNotFound = "dependency path not found"

// A Matcher classifies license text against a corpus of known license texts.
// It returns the matched license key, or ok == false when the text is not
// recognizably any known license.
type Matcher interface {
	Match(text []byte) (key string, ok bool)
}

// Metadata carries the package-manager-declared fields of a dependency.
// Unknown keys in the source mapping are ignored.
type Metadata struct {
	// Name overrides the constructor-supplied dependency name.
	Name string `mapstructure:"name"`
	// License is a declared license key, e.g. from a parsed manifest.
	License string `mapstructure:"license"`
}

// Config describes a dependency to inspect.
type Config struct {
	Name    string
	Version string
	// Path is the absolute path to the dependency's checkout.
	Path string
	// SearchRoot bounds upward license-file discovery; it defaults to Path,
	// which disables the upward walk.
	SearchRoot string
	// Metadata optionally carries package-manager-declared fields; see
	// Metadata for the recognized keys.
	Metadata map[string]interface{}
	// Errors are prior fatal errors (e.g. a failed checkout). Any entry makes
	// the dependency un-inspectable: every detection accessor short-circuits
	// to its neutral result without touching the filesystem.
	Errors []string
}

// A Dependency is one third-party component under compliance review.
//
// Detection accessors re-read the filesystem on every call and hold no state
// between calls; callers needing a stable result must snapshot the Record.
type Dependency struct {
	Name       string
	Version    string
	Path       string
	SearchRoot string
	Metadata   Metadata

	errs    []string
	matcher Matcher
	tables  config.File
}

// NewDependency builds a Dependency from conf, classifying license texts with
// matcher and recognizing evidence files per tables (unset tables fall back
// to the config defaults).
//
// A non-empty relative conf.Path is a programmer error and fails
// construction. An empty conf.Path never fails construction: the dependency
// is built with the PathNotFound error recorded instead.
func NewDependency(conf Config, matcher Matcher, tables config.File) (*Dependency, error) {
	if conf.Path != "" && !filepath.IsAbs(conf.Path) {
		return nil, errors.Errorf("dependency path `%s` is not absolute", conf.Path)
	}

	var metadata Metadata
	if conf.Metadata != nil {
		err := mapstructure.Decode(conf.Metadata, &metadata)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode dependency metadata")
		}
	}

	d := &Dependency{
		Name:       conf.Name,
		Version:    conf.Version,
		Path:       conf.Path,
		SearchRoot: conf.SearchRoot,
		Metadata:   metadata,
		errs:       append([]string(nil), conf.Errors...),
		matcher:    matcher,
		tables:     tables.WithDefaults(),
	}
	if metadata.Name != "" {
		d.Name = metadata.Name
	}
	if d.SearchRoot == "" {
		d.SearchRoot = d.Path
	}
	if d.Path == "" {
		d.errs = append(d.errs, PathNotFound)
	}
	return d, nil
}

// Errors returns the dependency's soft errors in the order recorded.
func (d *Dependency) Errors() []string {
	return append([]string(nil), d.errs...)
}

func (d *Dependency) faulted() bool {
	return len(d.errs) > 0
}
