// Package config defines the filename tables that classify files into
// evidence classes (license file, notice file, README, package manifest).
//
// The tables are data, not code: each is a list of doublestar patterns
// matched case-insensitively against bare filenames, and any table can be
// overridden by a YAML configuration file without a code change.
package config

import (
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/LaudateCorpus1/licensed/files"
	"github.com/LaudateCorpus1/licensed/log"
)

// File holds the evidence filename tables. Empty tables fall back to the
// defaults, so an override file only needs to name the tables it changes.
type File struct {
	LicenseFiles  []string `yaml:"license_files,omitempty"`
	NoticeFiles   []string `yaml:"notice_files,omitempty"`
	ReadmeFiles   []string `yaml:"readme_files,omitempty"`
	ManifestFiles []string `yaml:"manifest_files,omitempty"`
}

// Default returns the canonical evidence filename tables.
func Default() File {
	return File{
		LicenseFiles: []string{
			"licen{s,c}e",
			"licen{s,c}e.{md,markdown,txt,rst}",
			"copying",
			"copying.{md,markdown,txt,rst}",
			"copyright",
			"copyright.{md,markdown,txt,rst}",
			"unlicen{s,c}e",
		},
		NoticeFiles: []string{
			"notice",
			"notice.{md,txt}",
			"authors",
			"authors.{md,txt}",
			"legal",
			"legal.{md,txt}",
		},
		ReadmeFiles: []string{
			"readme",
			"readme.{md,markdown,txt,rst}",
		},
		ManifestFiles: []string{
			"*.gemspec",
			"*.podspec",
			"package.json",
			"cargo.toml",
			"pyproject.toml",
		},
	}
}

// New parses YAML configuration data, filling unset tables from Default.
// Unknown keys are an error so that typos do not silently disable a table.
func New(data []byte) (File, error) {
	var f File
	err := yaml.UnmarshalStrict(data, &f)
	if err != nil {
		return File{}, errors.Wrap(err, "could not parse configuration")
	}
	return f.WithDefaults(), nil
}

// ReadFile loads an evidence-table configuration file.
func ReadFile(filename string) (File, error) {
	data, err := files.Read(filename)
	if err != nil {
		return File{}, errors.Wrapf(err, "could not read configuration file `%s`", filename)
	}
	return New(data)
}

// WithDefaults returns f with every unset table replaced by its default.
func (f File) WithDefaults() File {
	defaults := Default()
	if len(f.LicenseFiles) == 0 {
		f.LicenseFiles = defaults.LicenseFiles
	}
	if len(f.NoticeFiles) == 0 {
		f.NoticeFiles = defaults.NoticeFiles
	}
	if len(f.ReadmeFiles) == 0 {
		f.ReadmeFiles = defaults.ReadmeFiles
	}
	if len(f.ManifestFiles) == 0 {
		f.ManifestFiles = defaults.ManifestFiles
	}
	return f
}

// Match reports whether a filename matches any pattern in a table. Matching
// is case-insensitive and considers the bare name only, never path segments.
func Match(patterns []string, name string) bool {
	name = strings.ToLower(name)
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			log.Warningf("Bad filename pattern `%s`: %s", pattern, err.Error())
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
