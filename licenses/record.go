package licenses

// Content is one aggregated piece of license or notice text, along with the
// comma-joined names of the source files that contained it.
type Content struct {
	Sources string `json:"sources"`
	Text    string `json:"text"`
}

// A Record is the detection result for one dependency, in the shape consumed
// by persistence and reporting. Licenses holds license-file evidence only;
// README-derived text appears in LicenseContents but never here.
type Record struct {
	License  string    `json:"license"`
	Name     string    `json:"name"`
	Version  string    `json:"version"`
	Licenses []Content `json:"licenses"`
	Notices  []Content `json:"notices"`
}

// Record computes the dependency's detection record. It returns nil for a
// dependency carrying prior errors, without touching the filesystem. Every
// call recomputes the record from disk.
func (d *Dependency) Record() *Record {
	if d.faulted() {
		return nil
	}
	return &Record{
		License:  string(d.licenseKey()),
		Name:     d.Name,
		Version:  d.Version,
		Licenses: aggregate(d.licenseFiles()),
		Notices:  aggregate(d.noticeFiles()),
	}
}

// LicenseKey resolves the dependency's license key. It returns None for a
// dependency carrying prior errors.
func (d *Dependency) LicenseKey() Key {
	if d.faulted() {
		return None
	}
	return d.licenseKey()
}

// LicenseContents returns the aggregated license texts: license-file evidence
// plus any README-derived license section.
func (d *Dependency) LicenseContents() []Content {
	if d.faulted() {
		return nil
	}
	items := d.licenseFiles()
	if readme, ok := d.readmeSection(); ok {
		items = append(items, readme)
	}
	return aggregate(items)
}

// NoticeContents returns the aggregated legal-notice texts.
func (d *Dependency) NoticeContents() []Content {
	if d.faulted() {
		return nil
	}
	return aggregate(d.noticeFiles())
}

// licenseKey applies the resolution policy. Each evidence class contributes
// at most one candidate key per distinct text:
//
//   - no candidates and nothing unrecognized -> None
//   - exactly one candidate and nothing unrecognized -> that key
//   - anything else -> Other
//
// Disagreement between sources is never broken by precedence: a declared
// manifest key does not override a differing or unrecognizable license file,
// and vice versa.
func (d *Dependency) licenseKey() Key {
	var candidates []string
	unrecognized := false
	add := func(key string) {
		for _, candidate := range candidates {
			if candidate == key {
				return
			}
		}
		candidates = append(candidates, key)
	}

	for _, text := range distinctTexts(d.licenseFiles()) {
		if key, ok := d.classify(text); ok {
			add(key)
		} else {
			unrecognized = true
		}
	}
	if readme, ok := d.readmeSection(); ok {
		if key, ok := d.classify(readme.text); ok {
			add(key)
		} else {
			unrecognized = true
		}
	}
	if declared := d.declaredLicense(); declared != "" {
		add(declared)
	}

	switch {
	case len(candidates) == 0 && !unrecognized:
		return None
	case len(candidates) == 1 && !unrecognized:
		return Key(candidates[0])
	default:
		return Other
	}
}

func (d *Dependency) classify(text string) (string, bool) {
	if d.matcher == nil {
		return "", false
	}
	return d.matcher.Match([]byte(text))
}

// distinctTexts dedups evidence by trimmed text, preserving first-seen order,
// so that identical license texts across several files classify once.
func distinctTexts(items []evidence) []string {
	seen := make(map[string]bool)
	var texts []string
	for _, item := range items {
		key := rstrip(item.text)
		if seen[key] {
			continue
		}
		seen[key] = true
		texts = append(texts, item.text)
	}
	return texts
}

// aggregate merges evidence items with identical trimmed text into one
// Content whose sources join every contributing file. Output preserves
// first-discovery order and keeps the first occurrence's exact text.
func aggregate(items []evidence) []Content {
	var out []Content
	index := make(map[string]int)
	for _, item := range items {
		key := rstrip(item.text)
		if i, ok := index[key]; ok {
			out[i].Sources += ", " + item.source
			continue
		}
		index[key] = len(out)
		out = append(out, Content{Sources: item.source, Text: item.text})
	}
	return out
}
