package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LaudateCorpus1/licensed/config"
)

func TestDefaultTablesMatchCanonicalNames(t *testing.T) {
	tables := config.Default()

	assert.True(t, config.Match(tables.LicenseFiles, "LICENSE"))
	assert.True(t, config.Match(tables.LicenseFiles, "LICENCE"))
	assert.True(t, config.Match(tables.LicenseFiles, "LiCeNsE.md"))
	assert.True(t, config.Match(tables.LicenseFiles, "COPYING"))
	assert.True(t, config.Match(tables.LicenseFiles, "COPYRIGHT.txt"))
	assert.False(t, config.Match(tables.LicenseFiles, "LICENSE-APACHE"))
	assert.False(t, config.Match(tables.LicenseFiles, "main.go"))

	assert.True(t, config.Match(tables.NoticeFiles, "NOTICE"))
	assert.True(t, config.Match(tables.NoticeFiles, "AUTHORS.md"))
	assert.True(t, config.Match(tables.NoticeFiles, "LEGAL"))
	assert.False(t, config.Match(tables.NoticeFiles, "NOTES"))

	assert.True(t, config.Match(tables.ReadmeFiles, "README"))
	assert.True(t, config.Match(tables.ReadmeFiles, "Readme.markdown"))
	assert.False(t, config.Match(tables.ReadmeFiles, "README.rdoc"))

	assert.True(t, config.Match(tables.ManifestFiles, "project.gemspec"))
	assert.True(t, config.Match(tables.ManifestFiles, "package.json"))
	assert.False(t, config.Match(tables.ManifestFiles, "Gemfile"))
}

func TestNewOverridesOneTableAndKeepsDefaults(t *testing.T) {
	f, err := config.New([]byte("license_files:\n  - legalese\n"))
	assert.NoError(t, err)

	assert.True(t, config.Match(f.LicenseFiles, "LEGALESE"))
	assert.False(t, config.Match(f.LicenseFiles, "LICENSE"))

	// Tables not named in the file keep their defaults.
	assert.True(t, config.Match(f.NoticeFiles, "NOTICE"))
	assert.True(t, config.Match(f.ReadmeFiles, "README.md"))
}

func TestNewRejectsUnknownKeys(t *testing.T) {
	_, err := config.New([]byte("bogus: true\n"))
	assert.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := config.ReadFile("testdata/does-not-exist.yml")
	assert.Error(t, err)
}

func TestWithDefaultsOnZeroValue(t *testing.T) {
	f := config.File{}.WithDefaults()
	assert.Equal(t, config.Default(), f)
}
