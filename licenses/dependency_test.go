package licenses_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LaudateCorpus1/licensed/config"
	"github.com/LaudateCorpus1/licensed/licenses"
)

// fakeMatcher classifies the fixture texts by their distinctive phrases, so
// detection scenarios do not depend on a real classifier corpus.
type fakeMatcher struct{}

func (fakeMatcher) Match(text []byte) (string, bool) {
	s := string(text)
	switch {
	case strings.Contains(s, "MIT License"):
		return "mit", true
	case strings.Contains(s, "Redistribution and use"):
		return "bsd-3-clause", true
	}
	return "", false
}

func fixture(t *testing.T, elem ...string) string {
	path, err := filepath.Abs(filepath.Join(append([]string{"testdata"}, elem...)...))
	assert.NoError(t, err)
	return path
}

func newDependency(t *testing.T, conf licenses.Config) *licenses.Dependency {
	dep, err := licenses.NewDependency(conf, fakeMatcher{}, config.File{})
	assert.NoError(t, err)
	return dep
}

func TestRelativePathFailsConstruction(t *testing.T) {
	_, err := licenses.NewDependency(licenses.Config{
		Name: "dep",
		Path: filepath.Join("testdata", "mit"),
	}, fakeMatcher{}, config.File{})
	assert.Error(t, err)
}

func TestEmptyPathRecordsPathNotFound(t *testing.T) {
	dep := newDependency(t, licenses.Config{Name: "dep"})

	assert.Contains(t, dep.Errors(), licenses.PathNotFound)
	assert.Nil(t, dep.Record())
	assert.Equal(t, licenses.None, dep.LicenseKey())
	assert.Empty(t, dep.LicenseContents())
	assert.Empty(t, dep.NoticeContents())
}

func TestPriorErrorsShortCircuitDetection(t *testing.T) {
	dep := newDependency(t, licenses.Config{
		Name:   "dep",
		Path:   fixture(t, "mit"),
		Errors: []string{"checkout failed"},
	})

	assert.Nil(t, dep.Record())
	assert.Equal(t, licenses.None, dep.LicenseKey())
	assert.Empty(t, dep.LicenseContents())
	assert.Empty(t, dep.NoticeContents())
}

func TestMetadataNameOverride(t *testing.T) {
	dep := newDependency(t, licenses.Config{
		Name: "constructor-name",
		Path: fixture(t, "mit"),
		Metadata: map[string]interface{}{
			"name": "metadata-name",
		},
	})

	record := dep.Record()
	assert.NotNil(t, record)
	assert.Equal(t, "metadata-name", record.Name)
}

func TestMetadataUnknownKeysIgnored(t *testing.T) {
	dep := newDependency(t, licenses.Config{
		Name: "dep",
		Path: fixture(t, "mit"),
		Metadata: map[string]interface{}{
			"homepage": "https://example.com",
		},
	})

	record := dep.Record()
	assert.NotNil(t, record)
	assert.Equal(t, "dep", record.Name)
	assert.Equal(t, licenses.Metadata{}, dep.Metadata)
}

func TestMetadataDeclaredLicense(t *testing.T) {
	dep := newDependency(t, licenses.Config{
		Name: "dep",
		Path: fixture(t, "none"),
		Metadata: map[string]interface{}{
			"license": "Apache-2.0",
		},
	})

	assert.Equal(t, licenses.Key("apache-2.0"), dep.LicenseKey())
}

func TestRecordIsRecomputedAndEqual(t *testing.T) {
	dep := newDependency(t, licenses.Config{
		Name:    "dep",
		Version: "1.0.0",
		Path:    fixture(t, "mit"),
	})

	first := dep.Record()
	second := dep.Record()
	assert.NotNil(t, first)
	assert.Equal(t, first, second)
}

func TestKeySentinels(t *testing.T) {
	assert.False(t, licenses.None.Resolved())
	assert.False(t, licenses.Other.Resolved())
	assert.True(t, licenses.Key("mit").Resolved())
}
