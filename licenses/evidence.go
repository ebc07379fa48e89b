package licenses

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/LaudateCorpus1/licensed/config"
	"github.com/LaudateCorpus1/licensed/files"
	"github.com/LaudateCorpus1/licensed/log"
)

// evidence is one piece of raw license or notice text and where it was found.
type evidence struct {
	source string
	text   string
}

// searchDirs returns the ordered directories eligible for license-file
// discovery: the dependency path, then each ancestor up to and including the
// search root. A search root that is not an ancestor of the path yields the
// path alone.
func (d *Dependency) searchDirs() []string {
	var dirs []string
	_, err := files.WalkUp(d.Path, d.SearchRoot, func(dir string) error {
		dirs = append(dirs, dir)
		return nil
	})
	if err != nil && err != files.ErrDirNotFound {
		log.Warningf("Could not walk up from `%s`: %s", d.Path, err.Error())
		return []string{d.Path}
	}
	return dirs
}

// licenseFiles collects license-file evidence: every qualifying file in the
// dependency path or, when the path has none, every qualifying file in the
// nearest ancestor (bounded by the search root) that has any.
func (d *Dependency) licenseFiles() []evidence {
	for _, dir := range d.searchDirs() {
		var items []evidence
		for _, name := range matchingFiles(dir, d.tables.LicenseFiles) {
			text, err := files.Read(dir, name)
			if err != nil {
				continue
			}
			items = append(items, evidence{source: d.sourceID(dir, name), text: string(text)})
		}
		if len(items) > 0 {
			return items
		}
	}
	return nil
}

// noticeFiles collects notice-file evidence from the dependency path only.
// Files whose trimmed content is empty contribute nothing.
func (d *Dependency) noticeFiles() []evidence {
	var items []evidence
	for _, name := range matchingFiles(d.Path, d.tables.NoticeFiles) {
		text, err := files.Read(d.Path, name)
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(text)) == "" {
			continue
		}
		items = append(items, evidence{source: name, text: rstrip(string(text))})
	}
	return items
}

// readmeSection returns the text under a License heading in the dependency's
// README, if any.
func (d *Dependency) readmeSection() (evidence, bool) {
	for _, name := range matchingFiles(d.Path, d.tables.ReadmeFiles) {
		text, err := files.Read(d.Path, name)
		if err != nil {
			continue
		}
		section, ok := licenseSection(string(text))
		if !ok {
			continue
		}
		return evidence{source: name, text: section}, true
	}
	return evidence{}, false
}

var manifestLicenseRe = regexp.MustCompile(`(?i)\blicen[sc]es?\b["']?\s*[:=]+\s*["']([^"']+)["']`)

// declaredLicense returns the package-manager-declared license key, if any:
// the metadata license when the caller supplied one, otherwise a string
// literal assigned to a license field in a manifest file at the dependency
// path. Keys are lower-cased. A manifest that does not yield exactly one
// literal contributes no evidence.
func (d *Dependency) declaredLicense() string {
	if d.Metadata.License != "" {
		return strings.ToLower(strings.TrimSpace(d.Metadata.License))
	}

	for _, name := range matchingFiles(d.Path, d.tables.ManifestFiles) {
		data, err := files.Read(d.Path, name)
		if err != nil {
			continue
		}
		found := ""
		consistent := true
		for _, line := range strings.Split(string(data), "\n") {
			m := manifestLicenseRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			key := strings.ToLower(strings.TrimSpace(m[1]))
			if found != "" && found != key {
				log.Debugf("Manifest `%s` declares both `%s` and `%s`", name, found, key)
				consistent = false
				break
			}
			found = key
		}
		if consistent && found != "" {
			return found
		}
	}
	return ""
}

// sourceID formats where a piece of evidence was found: the bare filename for
// files under the dependency path, or a forward-slash path relative to the
// search root's parent for files found during the upward walk.
func (d *Dependency) sourceID(dir, name string) string {
	if dir == d.Path {
		return name
	}
	rel, err := filepath.Rel(filepath.Dir(d.SearchRoot), filepath.Join(dir, name))
	if err != nil {
		return name
	}
	return filepath.ToSlash(rel)
}

// matchingFiles lists the regular files in dir whose names match a filename
// table, in lexical order.
func matchingFiles(dir string, patterns []string) []string {
	entries, err := files.List(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, name := range entries {
		if config.Match(patterns, name) {
			names = append(names, name)
		}
	}
	return names
}

// licenseSection extracts the body of a markdown "License" section: the
// lines following a heading titled License (or Licence), up to the next
// heading of equal or higher level or end of input.
func licenseSection(readme string) (string, bool) {
	lines := strings.Split(readme, "\n")
	start, level := -1, 0
	end := len(lines)

	for i, line := range lines {
		n, title := heading(line)
		if n == 0 {
			continue
		}
		if start == -1 {
			if strings.EqualFold(title, "license") || strings.EqualFold(title, "licence") {
				start, level = i+1, n
			}
			continue
		}
		if n <= level {
			end = i
			break
		}
	}

	if start == -1 {
		return "", false
	}
	section := strings.TrimSpace(strings.Join(lines[start:end], "\n"))
	if section == "" {
		return "", false
	}
	return section, true
}

// heading parses a markdown ATX heading, returning its level and title, or
// level 0 when the line is not a heading.
func heading(line string) (int, string) {
	trimmed := strings.TrimSpace(line)
	n := 0
	for n < len(trimmed) && trimmed[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return 0, ""
	}
	rest := trimmed[n:]
	if rest != "" && !strings.HasPrefix(rest, " ") {
		return 0, ""
	}
	return n, strings.TrimSpace(rest)
}

// rstrip trims trailing whitespace. Evidence texts are compared post-rstrip
// so that line-ending differences do not defeat deduplication.
func rstrip(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
