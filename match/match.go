// Package match implements license text classification against the built-in
// SPDX corpus of github.com/google/licensecheck.
package match

import (
	"strings"

	"github.com/google/licensecheck"

	"github.com/LaudateCorpus1/licensed/log"
)

// DefaultMinCoverage is the fraction of the input, in percent, that must be
// covered by license text before a scan counts as a match.
const DefaultMinCoverage = 75.0

// Scanner classifies license texts. The zero value is ready to use and
// applies DefaultMinCoverage.
type Scanner struct {
	// MinCoverage overrides DefaultMinCoverage when non-zero.
	MinCoverage float64
}

// Match returns the lower-cased SPDX identifier of the license covering text.
// Text that falls below the coverage threshold, or that matches more than one
// distinct license, is reported as unrecognized.
func (s Scanner) Match(text []byte) (string, bool) {
	min := s.MinCoverage
	if min == 0 {
		min = DefaultMinCoverage
	}

	coverage := licensecheck.Scan(text)
	if coverage.Percent < min || len(coverage.Match) == 0 {
		log.Debugf("Text unrecognized at %.1f%% coverage", coverage.Percent)
		return "", false
	}

	id := coverage.Match[0].ID
	for _, m := range coverage.Match[1:] {
		if m.ID != id {
			log.Debugf("Text matches both `%s` and `%s`", id, m.ID)
			return "", false
		}
	}
	return strings.ToLower(id), true
}
